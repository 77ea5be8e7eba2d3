// hashfunc.go - salted hash function family
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package chm

// hashFunc is one of the two salted hash functions h1, h2: a per-position
// salt table s, drawn lazily as longer keys are seen, reduced mod m. Two
// independent hashFunc values share the process-global randomness stream
// but never share salt state.
type hashFunc struct {
	salt    []int64
	modulus int64
	stats   *buildStats
}

// reset drops the salt length to zero (keeping the backing array) and
// installs a new modulus. Every construction trial calls reset on both
// hash functions so that stale salt values drawn against a previous m
// are never reused.
func (h *hashFunc) reset(m int64) {
	h.modulus = m
	h.salt = h.salt[:0]
}

// length returns how many salt positions have been drawn so far, i.e. the
// longest key length this hashFunc has hashed since its last reset.
func (h *hashFunc) length() int {
	return len(h.salt)
}

// ensureSalt draws fresh random values in [0, m) for any salt positions
// up to l that haven't been drawn yet.
func (h *hashFunc) ensureSalt(l int) {
	if l <= len(h.salt) {
		return
	}
	oldCap := cap(h.salt)
	for len(h.salt) < l {
		h.salt = append(h.salt, randIntn(h.modulus))
		h.stats.randCall()
	}
	h.stats.saltGrew(oldCap, cap(h.salt))
}

// hash computes Σ key[i]*s[i] mod m, drawing new salt as needed. Used
// only during construction; a frozen hashFunc after Build must never
// call this (it would perturb the shared randomness stream).
func (h *hashFunc) hash(key []byte) int64 {
	h.ensureSalt(len(key))
	var acc int64
	for i, b := range key {
		acc += int64(b) * h.salt[i]
	}
	h.stats.hashCalculated()
	return acc % h.modulus
}

// hashConst computes the same digest as hash, but never draws new salt.
// It reports ok=false if key is longer than any key this hashFunc has
// hashed since its last reset, in which case the digest is meaningless (no inserted key
// had that length, so the caller should treat this as a lookup miss).
func (h *hashFunc) hashConst(key []byte) (v int64, ok bool) {
	if len(key) > len(h.salt) {
		return 0, false
	}
	var acc int64
	for i, b := range key {
		acc += int64(b) * h.salt[i]
	}
	return acc % h.modulus, true
}

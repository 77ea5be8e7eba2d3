// table.go - the frozen hash table and lookups against it
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

import "bytes"

// Table is a minimal perfect hash function frozen against a fixed set of
// keys. It owns the keys, both final salted hash functions, and the
// value table produced by Build.
type Table struct {
	keys  []*Key
	h1, h2 *hashFunc
	g     []int64
	m     int
	n     int
	stats Statistics
}

// LookupResult is what Lookup returns on a hit: the caller's original
// key bytes and payload. Its Key slice is valid for the lifetime of the
// Table that produced it, or until that Table's RecycleInputs is called.
type LookupResult struct {
	Key     []byte
	Payload any
}

// Lookup evaluates both hash functions and the value table for key,
// returning the stored record if key was one of the keys this Table was
// built from. A probe whose length was never inserted, whose (h1, h2, g)
// arithmetic doesn't land in [0, N), or whose stored key bytes differ
// from the probe, reports a miss, including a probe that coincidentally
// hashes to a valid slot but isn't actually one of the inserted keys.
func (t *Table) Lookup(key []byte) (*LookupResult, bool) {
	l := len(key)
	if l > t.h1.length() || l > t.h2.length() {
		return nil, false
	}

	r1, ok1 := t.h1.hashConst(key)
	r2, ok2 := t.h2.hashConst(key)
	if !ok1 || !ok2 {
		return nil, false
	}

	idx := (t.g[r1] + t.g[r2]) % int64(t.m)
	if idx < 0 || int(idx) >= t.n {
		return nil, false
	}

	stored := t.keys[idx]
	if !bytes.Equal(stored.bytes, key) {
		return nil, false
	}

	return &LookupResult{Key: stored.bytes, Payload: stored.Payload}, true
}

// Apply visits every stored key, in assigned-index order, exactly once.
func (t *Table) Apply(fn func(key []byte, payload *any)) {
	for _, k := range t.keys {
		fn(k.bytes, &k.Payload)
	}
}

// Count returns N, the number of keys this Table was built from.
func (t *Table) Count() int {
	return t.n
}

// Keys returns every stored key, in assigned-index order, and their
// count. The returned slices alias the Table's storage; do not mutate
// them.
func (t *Table) Keys() ([][]byte, int) {
	out := make([][]byte, len(t.keys))
	for i, k := range t.keys {
		out[i] = k.bytes
	}
	return out, len(out)
}

// Statistics returns counters gathered while this Table was built.
// Always callable; zero-valued unless built with -tags chmstats.
func (t *Table) Statistics() Statistics {
	return t.stats
}

// RecycleInputs empties this Table and hands its keys back as a fresh
// Inputs, in their original insertion order, for modification and
// reuse. The Table must not be used afterward.
func (t *Table) RecycleInputs() *Inputs {
	in := &Inputs{keys: t.keys}
	t.keys = nil
	return in
}

// InputsFromHash copies this Table's keys into a new Inputs, leaving the
// Table itself untouched and usable.
func (t *Table) InputsFromHash() *Inputs {
	cp := make([]*Key, len(t.keys))
	for i, k := range t.keys {
		nk := *k
		cp[i] = &nk
	}
	return &Inputs{keys: cp}
}

// inputs.go - key collection prior to construction
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

// _InputsGrowIncrement is how many extra slots Inputs.Add allocates when
// it runs out of capacity.
const _InputsGrowIncrement = 1

// Key is one distinct entry added to an Inputs (and, after Build, held by
// a Table). Its byte storage is stable for the lifetime of whatever
// currently owns it, since Lookup results hand back pointers into it.
type Key struct {
	bytes   []byte
	Payload any
}

// Bytes returns the key's byte content. Do not mutate the returned slice.
func (k *Key) Bytes() []byte {
	return k.bytes
}

// Len returns the key's length in bytes.
func (k *Key) Len() int {
	return len(k.bytes)
}

// Inputs owns a growable, ordered collection of keys prior to
// construction. Insertion order determines each key's assigned index in
// the resulting Table.
//
// A key must not be added more than once to the same Inputs: Add does
// not check for duplicates, and a hash table built from an Inputs
// containing a duplicate is undefined (the two edges it produces will
// either form a cycle or silently mislabel a vertex). Use AddSafe when
// uniqueness cannot be guaranteed by the caller; sort or dedupe keys
// beforehand and prefer Add when it can be.
type Inputs struct {
	keys  []*Key
	stats InputStatistics
}

// NewInputs creates an empty input collector.
func NewInputs() *Inputs {
	return &Inputs{}
}

// Reserve ensures capacity for at least n keys without shrinking any
// existing capacity.
func (in *Inputs) Reserve(n int) {
	if cap(in.keys) >= n {
		return
	}
	grown := make([]*Key, len(in.keys), n)
	copy(grown, in.keys)
	in.keys = grown
	if statsEnabled {
		in.stats.NGrowths++
	}
}

// GrowBy grows the collector's capacity by n slots.
func (in *Inputs) GrowBy(n int) {
	in.Reserve(cap(in.keys) + n)
}

// Add appends key with the given payload. A zero-length key cannot be
// hashed; Add ignores it and emits a warning instead (unless warnings
// are compiled out).
//
// See the Inputs doc comment for the key-uniqueness precondition.
func (in *Inputs) Add(key []byte, payload any) {
	if len(key) == 0 {
		warnf("zero-length key ignored")
		return
	}
	in.append(newKey(key, payload, false))
}

// AddSafe behaves like Add, but first scans every key already present
// for a byte-exact match; on a match it is a no-op. This is O(N) per
// call by design (a caller convenience, not a fast path), and does not
// protect any subsequent call to Add with the same key.
func (in *Inputs) AddSafe(key []byte, payload any) {
	for _, k := range in.keys {
		if bytes.Equal(k.bytes, key) {
			if statsEnabled {
				in.stats.NSafeAddsWereUnsafe++
			}
			return
		}
	}
	if statsEnabled {
		in.stats.NSafeAddsWereSafe++
	}
	in.Add(key, payload)
}

// AddNoCopy takes ownership of key without copying it and without
// guaranteeing a trailing zero byte past its end. The caller must not
// mutate key afterward.
func (in *Inputs) AddNoCopy(key []byte, payload any) {
	if len(key) == 0 {
		warnf("zero-length key ignored")
		return
	}
	in.append(newKey(key, payload, true))
}

// append grows in.keys by exactly _InputsGrowIncrement slots at a time
// rather than relying on append's amortized doubling, so N calls cost
// O(N^2) in the worst case. This mirrors the grow-by-one default of the
// C hash library's input collector; callers adding many keys should call
// Reserve or GrowBy up front to avoid it.
func (in *Inputs) append(k *Key) {
	if len(in.keys) == cap(in.keys) {
		in.GrowBy(_InputsGrowIncrement)
	}
	in.keys = append(in.keys, k)
}

// Apply visits every key in insertion order. fn may replace a key's
// payload through the pointer it is given.
func (in *Inputs) Apply(fn func(key []byte, payload *any)) {
	for _, k := range in.keys {
		fn(k.bytes, &k.Payload)
	}
}

// Count returns the number of keys currently held.
func (in *Inputs) Count() int {
	return len(in.keys)
}

// Statistics returns counters gathered on this Inputs. Always callable;
// zero-valued unless built with -tags chmstats.
func (in *Inputs) Statistics() InputStatistics {
	st := in.stats
	if statsEnabled {
		st.Capacity = cap(in.keys)
	}
	return st
}

func newKey(key []byte, payload any, noCopy bool) *Key {
	if noCopy {
		return &Key{bytes: key, Payload: payload}
	}
	// allocate one extra byte so the stored key is null-terminated for
	// callers that want to treat it as a C string; not exposed via
	// Bytes(), which returns exactly len(key) bytes.
	buf := make([]byte, len(key)+1)
	copy(buf, key)
	return &Key{bytes: buf[:len(key)], Payload: payload}
}

// hashfunc_test.go -- test suite for hashFunc
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

import (
	"math/rand"
	"testing"
)

func TestHashFuncDeterministicUnderFixedStream(t *testing.T) {
	assert := newAsserter(t)

	rand.Seed(42)
	h := &hashFunc{}
	h.reset(1000)
	a := h.hash([]byte("hello"))

	h2 := &hashFunc{}
	h2.reset(1000)
	rand.Seed(42)
	b := h2.hash([]byte("hello"))

	assert(a == b, "same seed + same key should hash identically: %d vs %d", a, b)
}

func TestHashFuncResetDropsSaltButKeepsBuffer(t *testing.T) {
	assert := newAsserter(t)

	h := &hashFunc{}
	h.reset(1000)
	h.hash([]byte("abcdef"))
	assert(h.length() == 6, "salt length after hashing 6-byte key: exp 6, got %d", h.length())

	oldCap := cap(h.salt)
	h.reset(1000)
	assert(h.length() == 0, "salt length after reset: exp 0, got %d", h.length())
	assert(cap(h.salt) == oldCap, "reset should keep the backing array: cap %d -> %d", oldCap, cap(h.salt))
}

func TestHashFuncGrowsSaltForLongerKeys(t *testing.T) {
	assert := newAsserter(t)

	h := &hashFunc{}
	h.reset(500)
	h.hash([]byte("ab"))
	assert(h.length() == 2, "exp salt length 2, got %d", h.length())

	h.hash([]byte("abcde"))
	assert(h.length() == 5, "exp salt length 5, got %d", h.length())
}

func TestHashFuncConstModeDoesNotDrawSalt(t *testing.T) {
	assert := newAsserter(t)

	h := &hashFunc{}
	h.reset(500)
	h.hash([]byte("abc"))
	before := h.length()

	_, ok := h.hashConst([]byte("abc"))
	assert(ok, "hashConst on a trained length should succeed")
	assert(h.length() == before, "hashConst must not grow salt: %d -> %d", before, h.length())

	_, ok = h.hashConst([]byte("abcdefgh"))
	assert(!ok, "hashConst on an untrained length should fail")
	assert(h.length() == before, "hashConst must not grow salt even on failure: %d -> %d", before, h.length())
}

func TestHashFuncInRange(t *testing.T) {
	assert := newAsserter(t)

	h := &hashFunc{}
	h.reset(97)
	for _, s := range keyw {
		v := h.hash([]byte(s))
		assert(v >= 0 && v < 97, "hash out of range [0,97): %d", v)
	}
}

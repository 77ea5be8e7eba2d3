// doc.go - top level documentation
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

// Package chm builds a minimal perfect hash function (MPHF) over a static
// set of byte-string keys using the randomized acyclic-graph method of
// Czech, Havas and Majewski: http://cmph.sourceforge.net/papers/esa09.pdf
// describes the closely related CHD family; this package implements the
// older CHM construction it is descended from. Two salted hash functions
// place each key as an edge in a graph, and a graph free of cycles lets
// every vertex be assigned a value such that the sum of a key's two
// endpoint values is that key's unique index.
//
// Callers build up a set of keys with an Inputs, then call Build to
// construct a Table. The Table answers Lookup in O(L) time, where L is
// the length of the probe key, and returns the caller's original key
// bytes and payload on a match.
//
// Construction consumes randomness from the process-global math/rand
// source; seed it before calling Build if deterministic output is
// required. This package never seeds it itself.
package chm

// errors.go - public errors exposed by chm
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
	"errors"
)

var (
	// ErrEmptyInput is returned by Build when the Inputs holds no keys.
	ErrEmptyInput = errors.New("chm: no keys to build a hash table from")

	// ErrConstructionFailed is returned by Build when repeated retries and
	// graph growth failed to find an acyclic graph within the configured
	// search-effort bound.
	ErrConstructionFailed = errors.New("chm: failed to construct minimal perfect hash")
)

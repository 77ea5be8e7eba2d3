// warnings.go - textual warning side channel
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
	"fmt"
	"os"
)

// Warn receives every textual warning this package emits: zero-length
// key inserts, and construction giving up after exhausting its search
// budget. Callers may replace it to redirect or capture warnings.
//
// Build with -tags chmnowarn to compile all warnings out entirely.
var Warn = func(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "chm: "+format+"\n", args...)
}

func warnf(format string, args ...interface{}) {
	if !warningsEnabled {
		return
	}
	Warn(format, args...)
}

// rand.go - process-global randomness source
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
)

// randIntn draws a uniform sample in [0, n) from the process-global
// randomness stream. Callers are responsible for seeding that stream
// (rand.Seed or the runtime default); this package never seeds it.
//
// n must be > 0. Callers that track statistics are responsible for
// counting the call themselves (see hashFunc.ensureSalt).
func randIntn(n int64) int64 {
	return rand.Int63n(n)
}

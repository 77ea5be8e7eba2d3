// stats_test.go -- test suite for statistics accessors
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

// Without -tags chmstats, every statistics field reads zero, including
// InputStatistics.Capacity.
func TestStatisticsZeroWhenDisabled(t *testing.T) {
	assert := newAsserter(t)

	if statsEnabled {
		t.Skip("built with -tags chmstats; zero-value contract doesn't apply")
	}

	rand.Seed(2)
	in := NewInputs()
	for _, s := range keyw {
		in.Add([]byte(s), nil)
	}
	in.AddSafe([]byte(keyw[0]), nil)

	ist := in.Statistics()
	assert(ist.NGrowths == 0, "NGrowths should be 0 when stats disabled, got %d", ist.NGrowths)
	assert(ist.NSafeAddsWereSafe == 0, "NSafeAddsWereSafe should be 0 when stats disabled, got %d", ist.NSafeAddsWereSafe)
	assert(ist.NSafeAddsWereUnsafe == 0, "NSafeAddsWereUnsafe should be 0 when stats disabled, got %d", ist.NSafeAddsWereUnsafe)

	tbl, err := Build(in)
	assert(err == nil, "build failed: %v", err)

	st := tbl.Statistics()
	assert(st.Iterations == 0, "Iterations should be 0 when stats disabled, got %d", st.Iterations)
	assert(st.RandCalls == 0, "RandCalls should be 0 when stats disabled, got %d", st.RandCalls)
	assert(st.GraphSize == 0, "GraphSize should be 0 when stats disabled, got %d", st.GraphSize)
}

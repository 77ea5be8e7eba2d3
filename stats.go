// stats.go - opt-in construction and input-collection statistics
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

// Statistics reports counters gathered during one call to Build. Every
// field is zero unless this package was built with -tags chmstats; the
// gate is a compile-time const so the disabled path costs nothing.
//
// Field names and shapes mirror the statistics struct exposed by the C
// hash library this package's construction algorithm is descended from.
type Statistics struct {
	KeyLengthMax           int
	Iterations             int
	NodesExplored          int
	RandCalls              int
	HashesCalculated       int
	GraphSize              int
	VertexStackCapacity    int
	EdgesAllocated         int
	EdgesPreallocated      int
	UnneededEdgesAllocated int
	EdgeCapacityMin        int
	EdgeCapacityMax        int
	NetMemoryAllocated     int64
	TotalMemoryAllocated   int64
	ReallocsEdges          int
	ReallocsSalt           int
	ReallocsStack          int
	ReallocsVertices       int
	ReallocAmountEdges     int64
	ReallocAmountSalt      int64
	ReallocAmountStack     int64
	ReallocAmountVertices  int64
}

// InputStatistics reports counters gathered by an Inputs. Mirrors the
// input-statistics struct exposed by the same C hash library.
type InputStatistics struct {
	NGrowths            int
	Capacity            int
	NSafeAddsWereSafe   int
	NSafeAddsWereUnsafe int
}

// buildStats is the live accumulator threaded through one Build() call.
// It is nil-safe: every method is a no-op on a nil receiver, so callers
// that don't care about statistics (or builds without -tags chmstats)
// pay only the cost of a nil check.
type buildStats struct {
	Statistics
}

func newBuildStats() *buildStats {
	if !statsEnabled {
		return nil
	}
	return &buildStats{}
}

func (s *buildStats) randCall() {
	if s == nil {
		return
	}
	s.RandCalls++
}

func (s *buildStats) hashCalculated() {
	if s == nil {
		return
	}
	s.HashesCalculated++
}

func (s *buildStats) nodeExplored() {
	if s == nil {
		return
	}
	s.NodesExplored++
}

func (s *buildStats) iteration() {
	if s == nil {
		return
	}
	s.Iterations++
}

func (s *buildStats) stackGrew(oldCap, newCap int) {
	if s == nil || newCap <= oldCap {
		return
	}
	s.ReallocsStack++
	delta := int64(newCap-oldCap) * int64(sizeofStackItem)
	s.ReallocAmountStack += delta
	s.NetMemoryAllocated += delta
	s.TotalMemoryAllocated += delta
	if newCap > s.VertexStackCapacity {
		s.VertexStackCapacity = newCap
	}
}

func (s *buildStats) verticesGrew(oldCap, newCap int) {
	if s == nil || newCap <= oldCap {
		return
	}
	s.ReallocsVertices++
	delta := int64(newCap-oldCap) * int64(sizeofVertex)
	s.ReallocAmountVertices += delta
	s.NetMemoryAllocated += delta
	s.TotalMemoryAllocated += delta
}

func (s *buildStats) saltGrew(oldCap, newCap int) {
	if s == nil || newCap <= oldCap {
		return
	}
	s.ReallocsSalt++
	delta := int64(newCap-oldCap) * 8
	s.ReallocAmountSalt += delta
	s.NetMemoryAllocated += delta
	s.TotalMemoryAllocated += delta
}

func (s *buildStats) edgesPreallocated(n int) {
	if s == nil {
		return
	}
	s.EdgesPreallocated += n
	delta := int64(n) * int64(sizeofEdge)
	s.NetMemoryAllocated += delta
	s.TotalMemoryAllocated += delta
}

// edgesGrew records a real reallocation of a vertex's edge list beyond its
// initial preallocated capacity. Growth absorbed by edgesPreallocated's
// initial reservation never reaches here.
func (s *buildStats) edgesGrew(oldCap, newCap int) {
	if s == nil || newCap <= oldCap {
		return
	}
	s.ReallocsEdges++
	n := newCap - oldCap
	s.EdgesAllocated += n
	delta := int64(n) * int64(sizeofEdge)
	s.ReallocAmountEdges += delta
	s.NetMemoryAllocated += delta
	s.TotalMemoryAllocated += delta
}

func (s *buildStats) keyLength(l int) {
	if s == nil {
		return
	}
	if l > s.KeyLengthMax {
		s.KeyLengthMax = l
	}
}

// snapshot finalizes edge-capacity extremes, graph size, and preallocation
// waste once construction has settled on a final m and vertex set.
func (s *buildStats) snapshot(m int, vertices []vertex) Statistics {
	if s == nil {
		return Statistics{}
	}
	s.GraphSize = m
	for i, v := range vertices {
		c := cap(v.edges)
		if i == 0 || c < s.EdgeCapacityMin {
			s.EdgeCapacityMin = c
		}
		if c > s.EdgeCapacityMax {
			s.EdgeCapacityMax = c
		}
		if v.edges != nil && len(v.edges) < _EdgePrealloc {
			s.UnneededEdgesAllocated += _EdgePrealloc - len(v.edges)
		}
	}
	return s.Statistics
}

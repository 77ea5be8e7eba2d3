// construct.go - the construction loop: retries and graph growth
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

const (
	// _IterMaxMult bounds total search effort: construction gives up
	// once the graph size reaches _IterMaxMult * (N+1).
	_IterMaxMult = 650

	// _GrowEvery considers growing the graph every this many failed
	// trials.
	_GrowEvery = 5

	// _GrowthNum / _GrowthDen approximate a 1.05x multiplicative growth
	// factor for the graph size.
	_GrowthNum = 1075
	_GrowthDen = 1024
)

// Build constructs a minimal perfect hash Table from in. On success, in
// is left empty (its keys have been moved into the returned Table); on
// failure, in is left untouched and this returns a nil Table and a
// non-nil error (ErrEmptyInput or ErrConstructionFailed).
func Build(in *Inputs) (*Table, error) {
	n := in.Count()
	if n == 0 {
		return nil, ErrEmptyInput
	}

	stats := newBuildStats()
	for _, k := range in.keys {
		stats.keyLength(k.Len())
	}

	m := n + 1
	gr := newGraph(m, stats)
	h1 := &hashFunc{stats: stats}
	h2 := &hashFunc{stats: stats}

	scaled := int64(m) * _GrowthDen
	limit := int64(_IterMaxMult) * int64(n+1)
	iteration := 0

	for {
		if iteration > 0 && iteration%_GrowEvery == 0 {
			scaled = scaled * _GrowthNum / _GrowthDen
			mNext := int(scaled / _GrowthDen)
			if mNext > m {
				m = mNext
				gr.ensureVertices(m)
			}
			if int64(m) >= limit {
				warnf("giving up after %d iterations (graph size %d)", iteration, m)
				return nil, ErrConstructionFailed
			}
		}

		iteration++
		stats.iteration()
		gr.wipe()
		h1.reset(int64(m))
		h2.reset(int64(m))

		for i, k := range in.keys {
			a := h1.hash(k.bytes)
			b := h2.hash(k.bytes)
			gr.biconnect(int(a), int(b), i)
		}

		if gr.resolve() {
			break
		}
	}

	g := make([]int64, m)
	for i := range gr.vertices {
		g[i] = gr.vertices[i].g
	}

	t := &Table{
		keys:  in.keys,
		h1:    h1,
		h2:    h2,
		g:     g,
		m:     m,
		n:     n,
		stats: stats.snapshot(m, gr.vertices),
	}

	in.keys = nil
	return t, nil
}

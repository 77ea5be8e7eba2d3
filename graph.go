// graph.go - the assignment graph and its acyclicity resolver
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

import "unsafe"

// _EdgePrealloc is the number of edge slots reserved the first time a
// vertex gets an edge, trading a little memory for fewer reallocations.
const _EdgePrealloc = 12

// edge is one incidence of a key on a vertex: the other endpoint, and
// the key's assigned index. biconnect always adds edges in symmetric
// pairs, so every key contributes exactly one edge entry per endpoint.
type edge struct {
	to    int
	label int
}

// vertex holds construction-time state for one graph vertex: its
// assigned value (meaningless until resolve visits it), whether resolve
// has visited it yet this trial, and its incident edges.
type vertex struct {
	g       int64
	visited bool
	edges   []edge
}

var (
	sizeofEdge      = int(unsafe.Sizeof(edge{}))
	sizeofVertex    = int(unsafe.Sizeof(vertex{}))
	sizeofStackItem = int(unsafe.Sizeof(stackItem{}))
)

// graph is an undirected multigraph over m vertices, used once per
// construction trial: keys are biconnected in, resolve() checks the
// result for cycles and assigns vertex values if there are none.
type graph struct {
	vertices []vertex
	m        int
	stats    *buildStats
}

func newGraph(m int, stats *buildStats) *graph {
	g := &graph{stats: stats}
	g.ensureVertices(m)
	return g
}

// ensureVertices grows the vertex set to at least m, never shrinking.
// Newly added vertices are zero-valued.
func (g *graph) ensureVertices(m int) {
	if m <= len(g.vertices) {
		return
	}
	oldCap := cap(g.vertices)
	grown := make([]vertex, m)
	copy(grown, g.vertices)
	g.vertices = grown
	g.stats.verticesGrew(oldCap, cap(g.vertices))
	g.m = m
}

// wipe resets every vertex to its pre-trial state (value -1, unvisited,
// no edges) while keeping each vertex's edge-list backing array, so a
// fresh trial doesn't need to reallocate every edge slice from scratch.
func (g *graph) wipe() {
	for i := range g.vertices {
		v := &g.vertices[i]
		v.g = -1
		v.visited = false
		v.edges = v.edges[:0]
	}
}

// connect adds a single directed edge u->v labeled with the key's
// assigned index.
func (g *graph) connect(u, v, label int) {
	ev := &g.vertices[u]
	if ev.edges == nil {
		ev.edges = make([]edge, 0, _EdgePrealloc)
		g.stats.edgesPreallocated(_EdgePrealloc)
	}
	oldCap := cap(ev.edges)
	ev.edges = append(ev.edges, edge{to: v, label: label})
	g.stats.edgesGrew(oldCap, cap(ev.edges))
}

// biconnect adds an undirected edge between u and v, both labeled with
// the key's assigned index. Parallel edges and self-loops (u == v) are
// allowed; resolve treats either as a cycle.
func (g *graph) biconnect(u, v, label int) {
	g.connect(u, v, label)
	g.connect(v, u, label)
}

type stackItem struct {
	v, parent int
}

// resolve walks every vertex, assigning values so that for every edge
// (u, v, label): g[v] = (label - g[u]) mod m. It returns false the
// instant it finds a cycle, leaving vertex values only partially
// assigned (the caller is expected to discard this trial and retry).
//
// The walk is iterative (an explicit stack), not recursive, so it
// doesn't consume host stack space proportional to m.
func (g *graph) resolve() bool {
	m := int64(g.m)
	stack := make([]stackItem, 0, 64)

	for r := range g.vertices {
		if g.vertices[r].visited {
			continue
		}
		g.vertices[r].g = 0
		stack = append(stack, stackItem{v: r, parent: -1})

		for len(stack) > 0 {
			it := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			u := &g.vertices[it.v]
			u.visited = true
			g.stats.nodeExplored()

			skippedParent := false
			for _, e := range u.edges {
				if e.to == it.parent && !skippedParent {
					skippedParent = true
					continue
				}
				w := &g.vertices[e.to]
				if w.visited {
					return false
				}
				d := int64(e.label) - u.g
				d %= m
				if d < 0 {
					d += m
				}
				w.g = d

				oldCap := cap(stack)
				stack = append(stack, stackItem{v: e.to, parent: it.v})
				g.stats.stackGrew(oldCap, cap(stack))
			}
		}
	}
	return true
}

package tess

// cleanupMaxPasses bounds the neighbor-splitting fixpoint loop so a
// pathological input (near-parallel edges that keep re-splitting just
// above the tolerance floor) cannot spin forever; real inputs converge in
// a handful of passes since every split shortens the edges involved.
const cleanupMaxPasses = 64

// Simplify performs the Bentley-Ottmann-style left-to-right sweep that
// removes edge crossings from the mesh: afterward, edges touch only at
// shared vertices, which is the precondition the monotone-polygon pass
// needs. For each vertex in sweep order it first merges any duplicate
// edges that now share both endpoints (mergeCollinearEdges), then removes
// the edges ending there from the active-edge list, locates the AEL
// neighbors left (L) and right (R) of the vertex, inserts the vertex's
// edges-below between them, repeatedly checks newly adjacent edge
// pairs for crossings, splitting both edges at the intersection point
// whenever one is found, and finally marks the vertex processed.
//
// When aa is set, a vertex whose alpha is still zero, whose L neighbor
// has negative winding and whose R neighbor has positive winding gets
// the larger (more opaque) of L and R's edge alphas, matching the
// reference algorithm's coverage rule.
func Simplify(arena *Arena, cmp Comparator, head VertexID, aa bool) VertexID {
	ael := NewAEL(arena)
	cur := head

	for cur != NilVertex {
		var left, right EdgeID

		if arena.Vertex(cur).FirstEdgeAbove != NilEdge {
			mergeCollinearEdges(arena, ael, cur, false)
		}
		if arena.Vertex(cur).FirstEdgeBelow != NilEdge {
			mergeCollinearEdges(arena, nil, cur, true)
		}

		firstAbove := arena.Vertex(cur).FirstEdgeAbove
		if firstAbove != NilEdge {
			lastAbove := arena.Vertex(cur).LastEdgeAbove
			left = arena.Edge(firstAbove).Left
			right = arena.Edge(lastAbove).Right
			for e := firstAbove; e != NilEdge; e = arena.Edge(e).NextAbove {
				ael.Remove(e)
			}
		} else {
			left, right = ael.FindEnclosing(arena.Vertex(cur).Point)
		}

		if aa {
			applyCoverageAlpha(arena, cur, left, right)
		}

		insertEdgesBelowIntoAEL(arena, ael, cur, left)

		cleanupActiveEdges(arena, ael, cmp, cur, left, right)

		arena.Vertex(cur).Processed = true

		cur = arena.Vertex(cur).Next
	}

	return head
}

// applyCoverageAlpha implements the AA-mode alpha-assignment rule: when v
// still has zero alpha and sits between a negative-winding left neighbor
// and a positive-winding right neighbor, its alpha takes the more opaque
// of the two neighbors' edge alphas. A vertex with nonzero alpha is left
// unchanged.
func applyCoverageAlpha(arena *Arena, v VertexID, left, right EdgeID) {
	if left == NilEdge || right == NilEdge {
		return
	}
	if arena.Vertex(v).Alpha != 0 {
		return
	}
	if arena.Edge(left).Winding >= 0 || arena.Edge(right).Winding <= 0 {
		return
	}
	arena.Vertex(v).Alpha = maxEdgeAlpha(arena, left, right)
}

// maxEdgeAlpha returns the larger of two edges' alpha, each taken from
// the edge's top vertex (already fixed by the time the edge is active).
func maxEdgeAlpha(arena *Arena, a, b EdgeID) uint8 {
	av := arena.Vertex(arena.Edge(a).Top).Alpha
	bv := arena.Vertex(arena.Edge(b).Top).Alpha
	if av > bv {
		return av
	}
	return bv
}

// mergeCollinearEdges coalesces duplicate edges incident to v — two edges
// that share both endpoints, which arise when a shared contour boundary or
// an inverse-fill clip rect's side lies exactly along a path edge, since
// mergeCoincidentVertices has already unified their endpoints into the
// same VertexID pair by the time the sweep reaches them. Matches the
// reference algorithm's merge_collinear_edges: windings add onto one
// edge and the other is erased; if the combined winding is zero neither
// copy contributes any fill on either side, so both are removed. below
// selects whether v's edges-above or edges-below list is scanned; ael is
// only needed (non-nil) for edges-above, which are already threaded into
// the active-edge list and must be unlinked there too — edges-below are
// merged before insertEdgesBelowIntoAEL ever threads them in.
func mergeCollinearEdges(arena *Arena, ael *AEL, v VertexID, below bool) {
	next := func(e EdgeID) EdgeID {
		if below {
			return arena.Edge(e).NextBelow
		}
		return arena.Edge(e).NextAbove
	}
	first := func() EdgeID {
		if below {
			return arena.Vertex(v).FirstEdgeBelow
		}
		return arena.Vertex(v).FirstEdgeAbove
	}

	for {
		merged := false
		for a := first(); a != NilEdge && !merged; a = next(a) {
			for b := next(a); b != NilEdge; b = next(b) {
				ae, be := arena.Edge(a), arena.Edge(b)
				if ae.Top == be.Top && ae.Bottom == be.Bottom {
					mergeEdgePair(arena, ael, a, b, below)
					merged = true
					break
				}
			}
		}
		if !merged {
			return
		}
	}
}

// mergeEdgePair merges b's winding into a and removes b from the mesh
// entirely — unlinked from both endpoints' edges-above/edges-below lists,
// and from the active-edge list too when the pair came from v's
// edges-above (edges-below are merged before they ever reach the AEL). If
// a's winding comes out to zero, it is removed the same way: a span with
// no net winding fills neither side and has nothing left to represent.
func mergeEdgePair(arena *Arena, ael *AEL, a, b EdgeID, below bool) {
	ae, be := arena.Edge(a), arena.Edge(b)
	ae.Winding += be.Winding

	removeEdge := func(e EdgeID) {
		ee := arena.Edge(e)
		arena.RemoveEdgeBelow(ee.Top, e)
		arena.RemoveEdgeAbove(ee.Bottom, e)
		if !below && ael != nil {
			ael.Remove(e)
		}
	}

	removeEdge(b)
	if ae.Winding == 0 {
		removeEdge(a)
	}
}

// insertEdgesBelowIntoAEL threads v's edges-below list into the
// active-edge list in order, immediately to the right of left.
func insertEdgesBelowIntoAEL(arena *Arena, ael *AEL, v VertexID, left EdgeID) {
	prev := left
	for e := arena.Vertex(v).FirstEdgeBelow; e != NilEdge; e = arena.Edge(e).NextBelow {
		ael.InsertAfter(prev, e)
		prev = e
	}
}

// cleanupActiveEdges repeatedly scans the AEL span from left to right
// (inclusive), splitting any adjacent pair of edges that cross below the
// current sweep position, until a full pass makes no change or
// cleanupMaxPasses is reached. v anchors where newly created
// intersection vertices start their search for a sorted insertion point.
func cleanupActiveEdges(arena *Arena, ael *AEL, cmp Comparator, v VertexID, left, right EdgeID) {
	for pass := 0; pass < cleanupMaxPasses; pass++ {
		start := left
		if start == NilEdge {
			start = ael.Head()
		}

		changed := false
		a := start
		for a != NilEdge {
			b := arena.Edge(a).Right
			if b == NilEdge {
				break
			}
			if splitIfIntersecting(arena, cmp, v, a, b) {
				changed = true
				break
			}
			if a == right {
				break
			}
			a = b
		}

		if !changed {
			return
		}
	}
}

// splitIfIntersecting tests edges a and b (assumed adjacent in the AEL)
// for a true interior crossing and, if found, creates a vertex at the
// intersection point and splits both edges there.
func splitIfIntersecting(arena *Arena, cmp Comparator, v VertexID, a, b EdgeID) bool {
	p, ok := checkIntersection(arena, a, b)
	if !ok {
		return false
	}

	alpha := blendedAlpha(arena, a, b)
	m := arena.NewVertex(p, alpha)
	insertVertexSorted(arena, cmp, v, m)

	splitEdge(arena, a, m)
	splitEdge(arena, b, m)
	return true
}

// checkIntersection reports the interior crossing point of edges a and b,
// rejecting intersections that fall at or within epsilon of either edge's
// existing endpoint (those are coincidences the sweep already handles via
// shared vertices, not new splits).
func checkIntersection(arena *Arena, a, b EdgeID) (Point, bool) {
	const eps = 1e-9

	ae, be := arena.Edge(a), arena.Edge(b)
	aTop, aBot := arena.Vertex(ae.Top).Point, arena.Vertex(ae.Bottom).Point
	bTop, bBot := arena.Vertex(be.Top).Point, arena.Vertex(be.Bottom).Point

	p, s, t, ok := Intersect(aTop, aBot, bTop, bBot)
	if !ok {
		return Point{}, false
	}
	if s <= eps || s >= 1-eps || t <= eps || t >= 1-eps {
		return Point{}, false
	}
	return p, true
}

// blendedAlpha derives the alpha for a newly split intersection vertex:
// if either incident edge is a Connector, the result interpolates their
// top-vertex alphas; two Outer edges crossing produce zero coverage;
// anything else (Inner involved) is fully covered.
func blendedAlpha(arena *Arena, a, b EdgeID) uint8 {
	ae, be := arena.Edge(a), arena.Edge(b)
	if ae.Type == Connector || be.Type == Connector {
		av := int(arena.Vertex(ae.Top).Alpha)
		bv := int(arena.Vertex(be.Top).Alpha)
		return uint8((av + bv) / 2)
	}
	if ae.Type == Outer && be.Type == Outer {
		return 0
	}
	return 255
}

// splitEdge splits e at vertex m, which lies on e's line strictly between
// Top and Bottom: e is shortened to end at m (re-threaded into m's
// edges-above list so it is removed from the active-edge list in the
// ordinary way once the sweep reaches m), and a new edge from m to e's
// original Bottom is created, inheriting e's winding and type, and
// threaded into m's edges-below list and the original Bottom's
// edges-above list so it enters and leaves the active-edge list in the
// ordinary way too.
func splitEdge(arena *Arena, e EdgeID, m VertexID) EdgeID {
	ee := arena.Edge(e)
	origBottom := ee.Bottom
	winding, typ := ee.Winding, ee.Type

	arena.RemoveEdgeAbove(origBottom, e)
	ee.Bottom = m
	arena.RecomputeLine(e)
	arena.AddEdgeAbove(m, e)

	e2 := arena.NewEdge(m, origBottom, winding, typ)
	arena.AddEdgeBelow(m, e2)
	arena.AddEdgeAbove(origBottom, e2)
	return e2
}

// insertVertexSorted splices v into the sweep list at its correct sorted
// position under cmp, searching forward from "from" — a vertex already
// known to sort no later than v, such as the vertex currently being
// processed by Simplify.
func insertVertexSorted(arena *Arena, cmp Comparator, from, v VertexID) {
	p := arena.Vertex(v).Point
	cur := from
	for {
		next := arena.Vertex(cur).Next
		if next == NilVertex || cmp.Less(p, arena.Vertex(next).Point) {
			arena.Vertex(cur).Next = v
			arena.Vertex(v).Prev = cur
			arena.Vertex(v).Next = next
			if next != NilVertex {
				arena.Vertex(next).Prev = v
			}
			return
		}
		cur = next
	}
}

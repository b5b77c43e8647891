package tess

// This file implements the four doubly-linked list kinds the pipeline
// needs, each with its own insert_after/remove pair instead of one
// templated/generic list: the global sweep-ordered vertex list, a
// vertex's edges-above and edges-below lists, and a monotone polygon's
// edge chain. The active-edge list has its own implementation in ael.go
// because its ordering rule (isLeftOf/isRightOf against a query point,
// not a fixed neighbor comparison) differs from the other three.

// InsertVertexAfter splices v into the global sweep list immediately
// after prev. If prev is NilVertex, v becomes the new head (the caller
// is responsible for updating its head variable).
func (a *Arena) InsertVertexAfter(prev, v VertexID) {
	vv := a.Vertex(v)
	if prev == NilVertex {
		vv.Prev, vv.Next = NilVertex, NilVertex
		return
	}
	pv := a.Vertex(prev)
	next := pv.Next
	vv.Prev, vv.Next = prev, next
	pv.Next = v
	if next != NilVertex {
		a.Vertex(next).Prev = v
	}
}

// RemoveVertex unlinks v from the global sweep list. Returns the new
// neighbors so the caller can fix up a head/tail reference if needed.
func (a *Arena) RemoveVertex(v VertexID) (prev, next VertexID) {
	vv := a.Vertex(v)
	prev, next = vv.Prev, vv.Next
	if prev != NilVertex {
		a.Vertex(prev).Next = next
	}
	if next != NilVertex {
		a.Vertex(next).Prev = prev
	}
	vv.Prev, vv.Next = NilVertex, NilVertex
	return prev, next
}

// edgeAboveKey orders edges sharing a common bottom vertex left to right:
// it returns the edge's Top point, and AddEdgeAbove compares the X
// coordinate of that point, with no projection to the shared vertex's Y.
// This approximates the reference's "sorted by isRightOf on the bottom
// endpoint" rule.
func (a *Arena) edgeAboveKey(e EdgeID) Point {
	return a.Vertex(a.Edge(e).Top).Point
}

// AddEdgeAbove threads e into bottom vertex v's edges-above list, kept
// ordered left to right by edgeAboveKey.
func (a *Arena) AddEdgeAbove(v VertexID, e EdgeID) {
	vv := a.Vertex(v)
	ee := a.Edge(e)
	key := a.edgeAboveKey(e)

	if vv.FirstEdgeAbove == NilEdge {
		vv.FirstEdgeAbove, vv.LastEdgeAbove = e, e
		ee.PrevAbove, ee.NextAbove = NilEdge, NilEdge
		return
	}

	cur := vv.FirstEdgeAbove
	for cur != NilEdge && a.edgeAboveKey(cur).X <= key.X {
		cur = a.Edge(cur).NextAbove
	}
	if cur == NilEdge {
		// Append at tail.
		tail := vv.LastEdgeAbove
		a.Edge(tail).NextAbove = e
		ee.PrevAbove = tail
		ee.NextAbove = NilEdge
		vv.LastEdgeAbove = e
		return
	}
	prev := a.Edge(cur).PrevAbove
	ee.PrevAbove, ee.NextAbove = prev, cur
	a.Edge(cur).PrevAbove = e
	if prev != NilEdge {
		a.Edge(prev).NextAbove = e
	} else {
		vv.FirstEdgeAbove = e
	}
}

// RemoveEdgeAbove unlinks e from its bottom vertex's edges-above list.
func (a *Arena) RemoveEdgeAbove(v VertexID, e EdgeID) {
	vv := a.Vertex(v)
	ee := a.Edge(e)
	prev, next := ee.PrevAbove, ee.NextAbove
	if prev != NilEdge {
		a.Edge(prev).NextAbove = next
	} else {
		vv.FirstEdgeAbove = next
	}
	if next != NilEdge {
		a.Edge(next).PrevAbove = prev
	} else {
		vv.LastEdgeAbove = prev
	}
	ee.PrevAbove, ee.NextAbove = NilEdge, NilEdge
}

// AddEdgeBelow threads e into top vertex v's edges-below list, ordered
// left to right by the X coordinate of e's Bottom point.
func (a *Arena) AddEdgeBelow(v VertexID, e EdgeID) {
	vv := a.Vertex(v)
	ee := a.Edge(e)
	key := a.Vertex(ee.Bottom).Point

	if vv.FirstEdgeBelow == NilEdge {
		vv.FirstEdgeBelow, vv.LastEdgeBelow = e, e
		ee.PrevBelow, ee.NextBelow = NilEdge, NilEdge
		return
	}

	cur := vv.FirstEdgeBelow
	for cur != NilEdge && a.Vertex(a.Edge(cur).Bottom).Point.X <= key.X {
		cur = a.Edge(cur).NextBelow
	}
	if cur == NilEdge {
		tail := vv.LastEdgeBelow
		a.Edge(tail).NextBelow = e
		ee.PrevBelow = tail
		ee.NextBelow = NilEdge
		vv.LastEdgeBelow = e
		return
	}
	prev := a.Edge(cur).PrevBelow
	ee.PrevBelow, ee.NextBelow = prev, cur
	a.Edge(cur).PrevBelow = e
	if prev != NilEdge {
		a.Edge(prev).NextBelow = e
	} else {
		vv.FirstEdgeBelow = e
	}
}

// RemoveEdgeBelow unlinks e from its top vertex's edges-below list.
func (a *Arena) RemoveEdgeBelow(v VertexID, e EdgeID) {
	vv := a.Vertex(v)
	ee := a.Edge(e)
	prev, next := ee.PrevBelow, ee.NextBelow
	if prev != NilEdge {
		a.Edge(prev).NextBelow = next
	} else {
		vv.FirstEdgeBelow = next
	}
	if next != NilEdge {
		a.Edge(next).PrevBelow = prev
	} else {
		vv.LastEdgeBelow = prev
	}
	ee.PrevBelow, ee.NextBelow = NilEdge, NilEdge
}

// AppendMonoEdge appends e to the tail of a monotone polygon's edge
// chain, on the given side, and marks e used on that side so a later
// sweep step never threads it onto a chain twice.
func (a *Arena) AppendMonoEdge(m MonoID, e EdgeID, side Side) {
	mm := a.Mono(m)
	ee := a.Edge(e)
	if side == LeftSide {
		ee.UsedInLeftPoly = true
		if mm.LastEdge == NilEdge {
			mm.FirstEdge, mm.LastEdge = e, e
			ee.LeftPolyPrev, ee.LeftPolyNext = NilEdge, NilEdge
			return
		}
		tail := mm.LastEdge
		a.Edge(tail).LeftPolyNext = e
		ee.LeftPolyPrev = tail
		ee.LeftPolyNext = NilEdge
		mm.LastEdge = e
		return
	}
	ee.UsedInRightPoly = true
	if mm.LastEdge == NilEdge {
		mm.FirstEdge, mm.LastEdge = e, e
		ee.RightPolyPrev, ee.RightPolyNext = NilEdge, NilEdge
		return
	}
	tail := mm.LastEdge
	a.Edge(tail).RightPolyNext = e
	ee.RightPolyPrev = tail
	ee.RightPolyNext = NilEdge
	mm.LastEdge = e
}

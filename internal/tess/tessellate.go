package tess

// Tessellate performs the second active-edge-list sweep, now crossing
// free, that assigns every edge to the monotone polygon piece(s) it
// borders. Unlike Simplify's sweep, this pass never splits an edge: it
// only tracks, as it walks the sorted vertex list, which Poly is active
// to the left and right of each edge and threads edges into MonoPoly
// chains accordingly.
//
// A new Poly begins whenever the running winding number transitions
// through a boundary that fillRule accepts (i.e. a maximal run of edges
// whose accumulated winding satisfies fillRule starts a polygon and its
// end closes one). A vertex with edges above but none below may leave
// two Polys meeting at that vertex with nothing left to continue either
// one; those are recorded as each other's Partner so that a later
// side-switch on one resumes tracing the other's boundary through a
// shared join edge, rather than starting a disconnected piece.
func Tessellate(arena *Arena, head VertexID, fillRule func(winding int32) bool) PolyID {
	ael := NewAEL(arena)
	cur := head
	var polyHead, polyTail PolyID

	for cur != NilVertex {
		v := arena.Vertex(cur)
		if v.FirstEdgeAbove == NilEdge && v.FirstEdgeBelow == NilEdge {
			cur = v.Next
			continue
		}

		left, right := ael.FindEnclosing(v.Point)

		var leftPoly, rightPoly PolyID
		if v.FirstEdgeAbove != NilEdge {
			leftPoly = arena.Edge(v.FirstEdgeAbove).LeftPoly
			rightPoly = arena.Edge(v.LastEdgeAbove).RightPoly
		} else {
			if left != NilEdge {
				leftPoly = arena.Edge(left).RightPoly
			}
			if right != NilEdge {
				rightPoly = arena.Edge(right).LeftPoly
			}
		}

		if v.FirstEdgeAbove != NilEdge {
			leftPoly, rightPoly = closeEdgesAbove(arena, ael, cur, leftPoly, rightPoly)
		}
		if v.FirstEdgeBelow != NilEdge {
			leftPoly, rightPoly = openEdgesBelow(arena, ael, cur, left, right, leftPoly, rightPoly, fillRule, &polyHead, &polyTail)
		}

		cur = arena.Vertex(cur).Next
	}

	return polyHead
}

// closeEdgesAbove finishes the Poly(s) bordered by v's terminating
// edges-above. The outermost two (first and last) are appended to their
// bordering Poly on the matching side; every interior edge-above, which
// borders two Polys that both end at v, is folded into whichever one of
// those it still belongs to before being dropped from the active edge
// list (its far side, if different, gets the same edge too, closing the
// gap between the two Polys it used to separate).
func closeEdgesAbove(arena *Arena, ael *AEL, v VertexID, leftPoly, rightPoly PolyID) (PolyID, PolyID) {
	vv := arena.Vertex(v)
	firstAbove, lastAbove := vv.FirstEdgeAbove, vv.LastEdgeAbove

	if leftPoly != NilPoly {
		leftPoly = appendEdgeToPoly(arena, leftPoly, firstAbove, RightSide)
	}
	if rightPoly != NilPoly {
		rightPoly = appendEdgeToPoly(arena, rightPoly, lastAbove, LeftSide)
	}

	for e := firstAbove; e != lastAbove; {
		next := arena.Edge(e).NextAbove
		ael.Remove(e)

		eRightPoly := arena.Edge(e).RightPoly
		if eRightPoly != NilPoly {
			appendEdgeToPoly(arena, eRightPoly, e, LeftSide)
		}
		nextLeftPoly := arena.Edge(next).LeftPoly
		if nextLeftPoly != NilPoly && nextLeftPoly != eRightPoly {
			appendEdgeToPoly(arena, nextLeftPoly, e, RightSide)
		}
		e = next
	}
	ael.Remove(lastAbove)

	if arena.Vertex(v).FirstEdgeBelow == NilEdge {
		if leftPoly != NilPoly && rightPoly != NilPoly && leftPoly != rightPoly {
			arena.Poly(rightPoly).Partner = leftPoly
			arena.Poly(leftPoly).Partner = rightPoly
		}
	}

	return leftPoly, rightPoly
}

// openEdgesBelow threads v's edges-below into the active edge list and
// assigns each the Poly bordering it on the left and right.
//
// When v has no edge above (a local minimum), leftPoly/rightPoly were
// inherited from v's AEL neighbors rather than from any edge that
// terminated at v, so nothing has recorded v itself as part of either
// Poly's boundary yet. If both exist they are bridged here with a
// synthetic join edge (splitting one of them into a fresh Poly first, if
// a single Poly was on both sides — it cannot border itself across a
// shared vertex without first being cut in two).
//
// Below that, a running winding number is recomputed at each edge-below
// from the Poly bordering it on the left (or 0, at the sweep's outer
// edge) plus the edge's own contribution; a new Poly starts wherever
// that crosses into a fillRule-accepted region.
func openEdgesBelow(arena *Arena, ael *AEL, v VertexID, left, right EdgeID, leftPoly, rightPoly PolyID, fillRule func(int32) bool, polyHead, polyTail *PolyID) (PolyID, PolyID) {
	if arena.Vertex(v).FirstEdgeAbove == NilEdge {
		if leftPoly != NilPoly && rightPoly != NilPoly {
			if leftPoly == rightPoly {
				tail := arena.Poly(leftPoly).Tail
				if tail != NilMono && arena.Mono(tail).Side == LeftSide {
					leftPoly = newPoly(arena, lastVertex(arena, leftPoly), arena.Poly(leftPoly).Winding, polyHead, polyTail)
					if left != NilEdge {
						arena.Edge(left).RightPoly = leftPoly
					}
				} else {
					rightPoly = newPoly(arena, lastVertex(arena, rightPoly), arena.Poly(rightPoly).Winding, polyHead, polyTail)
					if right != NilEdge {
						arena.Edge(right).LeftPoly = rightPoly
					}
				}
			}
			join := arena.NewEdge(lastVertex(arena, leftPoly), v, 1, Inner)
			leftPoly = appendEdgeToPoly(arena, leftPoly, join, RightSide)
			rightPoly = appendEdgeToPoly(arena, rightPoly, join, LeftSide)
		}
	}

	leftEdge := arena.Vertex(v).FirstEdgeBelow
	arena.Edge(leftEdge).LeftPoly = leftPoly
	ael.InsertAfter(left, leftEdge)

	for {
		rightEdge := arena.Edge(leftEdge).NextBelow
		if rightEdge == NilEdge {
			break
		}
		ael.InsertAfter(leftEdge, rightEdge)

		winding := int32(0)
		if lp := arena.Edge(leftEdge).LeftPoly; lp != NilPoly {
			winding = arena.Poly(lp).Winding
		}
		winding += arena.Edge(leftEdge).Winding

		if fillRule(winding) {
			p := newPoly(arena, v, winding, polyHead, polyTail)
			arena.Edge(leftEdge).RightPoly = p
			arena.Edge(rightEdge).LeftPoly = p
		}
		leftEdge = rightEdge
	}
	arena.Edge(arena.Vertex(v).LastEdgeBelow).RightPoly = rightPoly

	return leftPoly, rightPoly
}

// lastVertex returns the bottom-most vertex reached so far by poly's
// boundary: the bottom of its last chained edge, or its starting vertex
// if no edge has been chained onto it yet.
func lastVertex(arena *Arena, poly PolyID) VertexID {
	p := arena.Poly(poly)
	if p.Tail == NilMono {
		return p.FirstVertex
	}
	return arena.Edge(arena.Mono(p.Tail).LastEdge).Bottom
}

// newPoly allocates a fresh Poly and appends it to the Tessellate call's
// output linked list.
func newPoly(arena *Arena, first VertexID, winding int32, polyHead, polyTail *PolyID) PolyID {
	p := arena.NewPoly(first, winding)
	if *polyHead == NilPoly {
		*polyHead = p
	} else {
		arena.Poly(*polyTail).Next = p
	}
	*polyTail = p
	return p
}

// appendEdgeToPoly threads e onto poly's boundary on the given side. A
// poly with no chain yet starts one; an edge that already reaches the
// chain's current tail vertex is a no-op (the chain already closes
// there); an edge on the chain's current side simply extends it.
//
// An edge on the OTHER side means the sweep has turned a corner: the
// chain so far is sealed off with a synthetic join edge from its last
// vertex to e's bottom, and either handed to poly's Partner (the two
// Polys merge into one boundary, continuing as whichever Poly the
// Partner is) or given a fresh chain piece on the new side. Returns the
// Poly the edge actually ended up on (itself, unless a Partner merge
// redirected it).
func appendEdgeToPoly(arena *Arena, poly PolyID, e EdgeID, side Side) PolyID {
	ee := arena.Edge(e)
	if side == RightSide {
		if ee.UsedInRightPoly {
			return poly
		}
	} else if ee.UsedInLeftPoly {
		return poly
	}

	result := poly
	partner := arena.Poly(poly).Partner
	if partner != NilPoly {
		arena.Poly(poly).Partner = NilPoly
		arena.Poly(partner).Partner = NilPoly
	}

	tail := arena.Poly(poly).Tail
	switch {
	case tail == NilMono:
		m := arena.NewMono(side, poly)
		p := arena.Poly(poly)
		p.Head, p.Tail = m, m
		arena.AppendMonoEdge(m, e, side)
		p.Count += 2

	case arena.Edge(e).Bottom == arena.Edge(arena.Mono(tail).LastEdge).Bottom:
		// Already reached this vertex on this chain.

	case side == arena.Mono(tail).Side:
		arena.AppendMonoEdge(tail, e, side)
		arena.Poly(poly).Count++

	default:
		joinTop := arena.Edge(arena.Mono(tail).LastEdge).Bottom
		joinBottom := arena.Edge(e).Bottom
		join := arena.NewEdge(joinTop, joinBottom, 1, Inner)
		tailSide := arena.Mono(tail).Side
		arena.AppendMonoEdge(tail, join, tailSide)
		arena.Poly(poly).Count++

		if partner != NilPoly {
			result = appendEdgeToPoly(arena, partner, join, side)
		} else {
			m := arena.NewMono(side, poly)
			arena.Mono(m).Prev = tail
			arena.Mono(tail).Next = m
			arena.Poly(poly).Tail = m
			arena.AppendMonoEdge(m, join, side)
		}
	}

	return result
}

package tess

// EmittedVertex is one triangle-strip-free output vertex: position plus
// the coverage alpha carried through from the mesh, ready for a caller to
// fold into a color (tweak-alpha AA) or write to a separate coverage
// channel (linear AA), per the emitter's two output modes.
type EmittedVertex struct {
	Point Point
	Alpha uint8
}

// EmitTriangles walks every monotone polygon reachable from the Poly
// linked list starting at head and appends its triangulation to out,
// returning the extended slice.
func EmitTriangles(arena *Arena, head PolyID, out []EmittedVertex) []EmittedVertex {
	for pid := head; pid != NilPoly; pid = arena.Poly(pid).Next {
		p := arena.Poly(pid)
		if p.Count < 3 {
			continue
		}
		for m := p.Head; m != NilMono; m = arena.Mono(m).Next {
			out = emitMonotone(arena, m, out)
		}
	}
	return out
}

// monoVertices collects a MonoPoly's boundary in true polygon order: the
// chain's first edge contributes its Top vertex once, and every edge's
// Bottom vertex is then added on the side the chain grows toward. A
// RightSide chain only ever grows downward along fRightPolyNext, so its
// bottoms simply append; a LeftSide chain grows the same way along
// fLeftPolyNext, but the left boundary of a monotone region runs in the
// opposite direction (bottom to top) from its right boundary, so its
// bottoms are prepended instead of appended.
func monoVertices(arena *Arena, mm *MonoPoly) []VertexID {
	first := mm.FirstEdge
	top := arena.Edge(first).Top

	if mm.Side == RightSide {
		verts := []VertexID{top}
		for e := first; e != NilEdge; e = arena.Edge(e).RightPolyNext {
			verts = append(verts, arena.Edge(e).Bottom)
		}
		return verts
	}

	var bottoms []VertexID
	for e := first; e != NilEdge; e = arena.Edge(e).LeftPolyNext {
		bottoms = append(bottoms, arena.Edge(e).Bottom)
	}
	verts := make([]VertexID, 0, len(bottoms)+1)
	for i := len(bottoms) - 1; i >= 0; i-- {
		verts = append(verts, bottoms[i])
	}
	return append(verts, top)
}

// emitMonotone triangulates one monotone-polygon chain with the
// classic O(n) ear-walk: a three-vertex window (prev, curr, next) slides
// along the boundary; whenever the turn at curr is non-reflex (the
// signed area of prev-curr-next is non-negative) curr is an ear, so it
// is emitted as a triangle and spliced out of the chain, and the window
// backs up to prev (unless prev is the anchor, in which case it
// advances past the vertex just removed); otherwise the window simply
// advances. Because the chain is x/y-monotone this single left-to-right
// pass removes every interior vertex without ever needing a general
// diagonal search.
//
// The boundary is modeled as an index-based doubly linked list (prev/next
// arrays over the collected vertex slice) so vertices can be spliced out
// in place, mirroring the reference's pointer-linked vertex list.
func emitMonotone(arena *Arena, m MonoID, out []EmittedVertex) []EmittedVertex {
	mm := arena.Mono(m)
	if mm.FirstEdge == NilEdge {
		return out
	}

	verts := monoVertices(arena, mm)
	n := len(verts)
	if n < 3 {
		return out
	}

	prev := make([]int, n)
	next := make([]int, n)
	for i := range verts {
		prev[i] = i - 1
		next[i] = i + 1
	}
	next[n-1] = -1

	const first = 0
	tail := n - 1

	v := next[first]
	for v != tail {
		p, c, nx := prev[v], v, next[v]

		ax := arena.Vertex(verts[c]).Point.X - arena.Vertex(verts[p]).Point.X
		ay := arena.Vertex(verts[c]).Point.Y - arena.Vertex(verts[p]).Point.Y
		bx := arena.Vertex(verts[nx]).Point.X - arena.Vertex(verts[c]).Point.X
		by := arena.Vertex(verts[nx]).Point.Y - arena.Vertex(verts[c]).Point.Y

		if ax*by-ay*bx >= 0.0 {
			out = append(out, toEmitted(arena, verts[p]), toEmitted(arena, verts[c]), toEmitted(arena, verts[nx]))
			next[p] = nx
			prev[nx] = p
			if p == first {
				v = nx
			} else {
				v = p
			}
		} else {
			v = nx
		}
	}

	return out
}

func toEmitted(arena *Arena, v VertexID) EmittedVertex {
	vv := arena.Vertex(v)
	return EmittedVertex{Point: vv.Point, Alpha: vv.Alpha}
}

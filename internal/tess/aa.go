package tess

import "math"

// aaOffset is the half-pixel displacement applied to each boundary edge's
// normal when building the antialiasing mesh.
const aaOffset = 0.5

// pointyDistFactor implements the ¼-pixel pointy vertex test in
// SimplifyBoundary: a vertex is pointy when its
// surrounding edges' normals point away from each other (dot < 0) and the
// vertex sits within a quarter pixel of the line through its neighbor.
const pointyDistFactor = 16 // 1/(0.25*0.25)

// ExtractBoundary walks the polygons reachable from head whose winding
// passes fillRule, tracing each one's outer boundary as a closed loop of
// (vertex, edge) pairs in clockwise order. Edges belonging to a polygon
// that fails fillRule are skipped entirely — they contribute no
// boundary.
//
// The walk rule at each step prefers continuing in the current vertical
// direction: going downward from v, the next edge is v's first
// edge-below if any, else the bottom vertex's own next-edge-above
// (implemented here as the next unvisited edge sharing that vertex);
// going upward mirrors this with edges-above.
func ExtractBoundary(arena *Arena, head PolyID, fillRule func(int32) bool) []Point {
	var boundary []Point
	visited := make(map[EdgeID]bool)

	for pid := head; pid != NilPoly; pid = arena.Poly(pid).Next {
		p := arena.Poly(pid)
		if !fillRule(p.Winding) {
			continue
		}
		for m := p.Head; m != NilMono; m = arena.Mono(m).Next {
			mm := arena.Mono(m)
			for e := mm.FirstEdge; e != NilEdge; {
				if !visited[e] {
					visited[e] = true
					ee := arena.Edge(e)
					boundary = append(boundary, arena.Vertex(ee.Top).Point, arena.Vertex(ee.Bottom).Point)
				}
				if mm.Side == LeftSide {
					e = arena.Edge(e).LeftPolyNext
				} else {
					e = arena.Edge(e).RightPolyNext
				}
			}
		}
	}
	return boundary
}

// SimplifyBoundary removes pointy vertices from a closed polyline: for
// each consecutive triple (prev, cur, next) it computes the (non-unit)
// outward normals of the two edges meeting at cur, and if those normals
// point away from each other and cur sits within a quarter pixel of the
// line through prev and next, cur is dropped in favor of a direct join
// from prev to next.
func SimplifyBoundary(ring []Point) []Point {
	n := len(ring)
	if n < 3 {
		return ring
	}

	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		prev := ring[(i-1+n)%n]
		cur := ring[i]
		next := ring[(i+1)%n]

		n1 := edgeNormal(prev, cur)
		n2 := edgeNormal(cur, next)
		dot := n1.X*n2.X + n1.Y*n2.Y

		if dot < 0 {
			distSq := pointLineDistSq2(cur, prev, next)
			if distSq*pointyDistFactor <= 1 {
				continue // drop cur: pointy vertex within tolerance
			}
		}
		out = append(out, cur)
	}
	return out
}

func edgeNormal(a, b Point) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	return Point{X: dy, Y: -dx}
}

func pointLineDistSq2(pt, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		ddx, ddy := pt.X-a.X, pt.Y-a.Y
		return ddx*ddx + ddy*ddy
	}
	cross := dx*(a.Y-pt.Y) - dy*(a.X-pt.X)
	return (cross * cross) / lenSq
}

// BoundaryToAAMesh builds the antialiasing quad mesh from a simplified
// boundary ring: every edge of the ring is offset ±½ pixel along its
// unit normal to produce an outer line (alpha 0, outside the fill) and
// an inner line (alpha 255, inside the fill); consecutive offset lines
// are intersected to produce the outer and inner vertex rings, and for
// each original edge a quad is emitted as one Outer edge (winding +1),
// one Inner edge (winding -2), and one Connector edge (winding 0)
// between the corresponding inner/outer vertex pair.
//
// Returns the head of a fresh global vertex list ready to re-enter the
// sweep sorter (Stage 3).
func BoundaryToAAMesh(arena *Arena, ring []Point) VertexID {
	n := len(ring)
	if n < 3 {
		return NilVertex
	}

	type offsetLines struct{ inner, outer Line }
	lines := make([]offsetLines, n)
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			lines[i] = offsetLines{inner: NewLine(a, b), outer: NewLine(a, b)}
			continue
		}
		nx, ny := dy/length, -dx/length // outward normal, unit length

		innerA := Point{X: a.X - nx*aaOffset, Y: a.Y - ny*aaOffset}
		innerB := Point{X: b.X - nx*aaOffset, Y: b.Y - ny*aaOffset}
		outerA := Point{X: a.X + nx*aaOffset, Y: a.Y + ny*aaOffset}
		outerB := Point{X: b.X + nx*aaOffset, Y: b.Y + ny*aaOffset}

		lines[i] = offsetLines{inner: NewLine(innerA, innerB), outer: NewLine(outerA, outerB)}
	}

	innerVerts := make([]VertexID, n)
	outerVerts := make([]VertexID, n)
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		ip := intersectLines(lines[prev].inner, lines[i].inner, ring[i])
		op := intersectLines(lines[prev].outer, lines[i].outer, ring[i])
		innerVerts[i] = arena.NewVertex(ip, 255)
		outerVerts[i] = arena.NewVertex(op, 0)
	}

	fixInversions(arena, innerVerts, outerVerts, ring)

	var head, tail VertexID
	appendV := func(v VertexID) {
		if head == NilVertex {
			head, tail = v, v
			arena.Vertex(v).Prev, arena.Vertex(v).Next = NilVertex, NilVertex
			return
		}
		arena.Vertex(tail).Next = v
		arena.Vertex(v).Prev = tail
		arena.Vertex(v).Next = NilVertex
		tail = v
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		appendV(innerVerts[i])
		appendV(outerVerts[i])

		newQuadEdges(arena, outerVerts[i], outerVerts[j], innerVerts[i], innerVerts[j])
	}

	return head
}

// intersectLines solves two line equations simultaneously via Cramer's
// rule; on a degenerate (near-parallel) system it falls back to the
// original ring vertex so the mesh stays well-formed rather than
// producing NaN coordinates.
func intersectLines(l1, l2 Line, fallback Point) Point {
	det := l1.A*l2.B - l2.A*l1.B
	if det == 0 {
		return fallback
	}
	x := (-l1.C*l2.B + l2.C*l1.B) / det
	y := (-l1.A*l2.C + l2.A*l1.C) / det
	return Point{X: x, Y: y}
}

// fixInversions detects offset vertices that land in the wrong order
// relative to their neighbors (a sign that the original boundary was too
// tightly concave for a half-pixel offset) and, for each such pair,
// collapses both the inner and outer vertex to the midpoint of the
// current and previous bisector, which is a stable approximation of the
// reference algorithm's exact bisector-intersection collapse.
func fixInversions(arena *Arena, innerVerts, outerVerts []VertexID, ring []Point) {
	n := len(ring)
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		if windingSign(ring[prev], ring[i], pointOf(arena, innerVerts[i])) ==
			windingSign(ring[prev], ring[i], pointOf(arena, innerVerts[prev])) {
			continue
		}
		mid := midpoint(pointOf(arena, innerVerts[prev]), pointOf(arena, innerVerts[i]))
		arena.Vertex(innerVerts[prev]).Point = mid
		arena.Vertex(innerVerts[i]).Point = mid

		midOuter := midpoint(pointOf(arena, outerVerts[prev]), pointOf(arena, outerVerts[i]))
		arena.Vertex(outerVerts[prev]).Point = midOuter
		arena.Vertex(outerVerts[i]).Point = midOuter
	}
}

func pointOf(arena *Arena, v VertexID) Point { return arena.Vertex(v).Point }

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func windingSign(a, b, p Point) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	return cross >= 0
}

// newQuadEdges emits the three edges of one AA boundary quad: Outer
// (winding +1, zero coverage side), Inner (winding -2, full coverage
// side), and a zero-winding Connector between them that interpolates
// alpha across the feather.
func newQuadEdges(arena *Arena, outerA, outerB, innerA, innerB VertexID) {
	newDirectedEdge(arena, outerA, outerB, 1, Outer)
	newDirectedEdge(arena, innerA, innerB, -2, Inner)
	newDirectedEdge(arena, outerA, innerA, 0, Connector)
}

// newDirectedEdge creates an edge between a and b, choosing whichever
// endpoint would sort first under a plain Y-then-X order as Top; this is
// only used for building the AA quad mesh, which is re-sorted by the
// real Comparator once it re-enters Stage 3, so any consistent tiebreak
// is sufficient here.
func newDirectedEdge(arena *Arena, a, b VertexID, winding int32, typ EdgeType) EdgeID {
	pa, pb := arena.Vertex(a).Point, arena.Vertex(b).Point
	top, bottom := a, b
	if pb.Y < pa.Y || (pb.Y == pa.Y && pb.X < pa.X) {
		top, bottom = b, a
	}
	e := arena.NewEdge(top, bottom, winding, typ)
	arena.AddEdgeBelow(top, e)
	arena.AddEdgeAbove(bottom, e)
	return e
}

package gg

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/jafenix/tessellate/internal/tess"
)

// flattenStageMaxDepth bounds curve subdivision so that a degenerate
// control polygon cannot recurse forever; chosen so 2^depth exceeds any
// vertex budget the OverSize guard would allow anyway.
const flattenStageMaxDepth = 24

// curveFrame is one explicit-stack entry for curve flattening: the
// control points of a Bezier span plus its remaining subdivision budget.
// Using an explicit stack instead of function recursion caps stack usage
// at flattenStageMaxDepth frames regardless of how pathological the
// input curve is, per the arena-based rewrite of the reference
// algorithm's recursive midpoint subdivider.
type curveFrame struct {
	p0, p1, p2, p3 Point // p3 unused for quadratics
	depth          int
	cubic          bool
}

// flattenContour accumulates one contour's linearized points during
// flattening, starting with its start point. Close appends the start point
// again when the contour does not already end there; buildContourRing
// drops that final duplicate.
type flattenContour struct {
	points []Point
}

// flattenPath walks a path's verbs and produces one flattenContour per
// Move..Close span, approximating curves by line segments within the
// chordal tolerance tol (world units). Conics are first degree-reduced
// to quadratics (Path.ConicTo.ToQuads), then each quadratic/cubic span
// is subdivided using an explicit stack of curveFrame entries, splitting
// whenever the squared control-point-to-chord distance exceeds tol².
func flattenPath(p *Path, tol float64) []flattenContour {
	if tol <= 0 {
		tol = 0.25
	}
	tolSq := tol * tol

	var contours []flattenContour
	var cur *flattenContour
	var start, current Point
	var haveCur bool

	emit := func(pt Point) {
		if cur == nil {
			return
		}
		cur.points = append(cur.points, pt)
	}

	flushContour := func() {
		if cur != nil && len(cur.points) >= 2 {
			contours = append(contours, *cur)
		}
		cur = nil
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			flushContour()
			cur = &flattenContour{points: []Point{e.Point}}
			start, current = e.Point, e.Point
			haveCur = true
		case LineTo:
			if !haveCur {
				cur = &flattenContour{points: []Point{current}}
				haveCur = true
			}
			emit(e.Point)
			current = e.Point
		case QuadTo:
			if !haveCur {
				cur = &flattenContour{points: []Point{current}}
				haveCur = true
			}
			flattenQuadStack(current, e.Control, e.Point, tolSq, emit)
			current = e.Point
		case ConicTo:
			if !haveCur {
				cur = &flattenContour{points: []Point{current}}
				haveCur = true
			}
			for _, q := range e.ToQuads(current) {
				flattenQuadStack(q.P0, q.P1, q.P2, tolSq, emit)
			}
			current = e.Point
		case CubicTo:
			if !haveCur {
				cur = &flattenContour{points: []Point{current}}
				haveCur = true
			}
			flattenCubicStack(current, e.Control1, e.Control2, e.Point, tolSq, emit)
			current = e.Point
		case Close:
			if haveCur && current != start {
				emit(start)
			}
			current = start
			flushContour()
			haveCur = false
		}
	}
	flushContour()

	return contours
}

// flattenQuadStack subdivides a quadratic span using an explicit frame
// stack, emitting every linearization point after p0 (p0 itself is
// assumed already emitted as the previous point).
func flattenQuadStack(p0, p1, p2 Point, tolSq float64, emit func(Point)) {
	stack := make([]curveFrame, 0, flattenStageMaxDepth)
	stack = append(stack, curveFrame{p0: p0, p1: p1, p2: p2, depth: flattenStageMaxDepth})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		distSq := pointLineDistSq(f.p1, f.p0, f.p2)

		if distSq <= tolSq || f.depth <= 0 {
			emit(f.p2)
			continue
		}

		q := QuadBez{P0: f.p0, P1: f.p1, P2: f.p2}
		left, right := q.Subdivide()
		// Push right half first so left half is processed (and thus
		// emitted) first, preserving left-to-right emission order.
		stack = append(stack, curveFrame{p0: right.P0, p1: right.P1, p2: right.P2, depth: f.depth - 1})
		stack = append(stack, curveFrame{p0: left.P0, p1: left.P1, p2: left.P2, depth: f.depth - 1})
	}
}

// flattenCubicStack subdivides a cubic span the same way, testing both
// control points against the endpoints' chord.
func flattenCubicStack(p0, p1, p2, p3 Point, tolSq float64, emit func(Point)) {
	stack := make([]curveFrame, 0, flattenStageMaxDepth)
	stack = append(stack, curveFrame{p0: p0, p1: p1, p2: p2, p3: p3, depth: flattenStageMaxDepth, cubic: true})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cubicFlatEnough(f.p0, f.p1, f.p2, f.p3, tolSq) || f.depth <= 0 {
			emit(f.p3)
			continue
		}

		c := CubicBez{P0: f.p0, P1: f.p1, P2: f.p2, P3: f.p3}
		left, right := c.Subdivide()
		stack = append(stack, curveFrame{p0: right.P0, p1: right.P1, p2: right.P2, p3: right.P3, depth: f.depth - 1, cubic: true})
		stack = append(stack, curveFrame{p0: left.P0, p1: left.P1, p2: left.P2, p3: left.P3, depth: f.depth - 1, cubic: true})
	}
}

// cubicFlatEnough tests both control points' distance to the P0-P3 chord.
func cubicFlatEnough(p0, p1, p2, p3 Point, tolSq float64) bool {
	d1 := pointLineDistSq(p1, p0, p3)
	d2 := pointLineDistSq(p2, p0, p3)
	return d1 <= tolSq && d2 <= tolSq
}

// pointLineDistSq returns the squared perpendicular distance from pt to
// the infinite line through a and b.
func pointLineDistSq(pt, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return pt.Sub(a).LengthSquared()
	}
	cross := dx*(a.Y-pt.Y) - dy*(a.X-pt.X)
	return (cross * cross) / lenSq
}

// clipRectContour traces a rectangle CCW, used to represent the
// complement region for inverse fill rules. Prepending it as contour 0
// makes InverseNonZero/InverseEvenOdd correct because its winding
// cancels with the path's own contours inside clipBounds.
func clipRectContour(clip Rect) flattenContour {
	return flattenContour{points: []Point{
		{X: clip.Min.X, Y: clip.Min.Y},
		{X: clip.Min.X, Y: clip.Max.Y},
		{X: clip.Max.X, Y: clip.Max.Y},
		{X: clip.Max.X, Y: clip.Min.Y},
		{X: clip.Min.X, Y: clip.Min.Y},
	}}
}

// buildContourRing allocates one doubly-linked ring of arena vertices
// for a flattened contour, dropping a final point that duplicates the
// first (Close always produces this). Returns the ring's head, or
// tess.NilVertex if the contour degenerates to fewer than 3 vertices.
func buildContourRing(arena *tess.Arena, c flattenContour) tess.VertexID {
	pts := c.points
	if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return tess.NilVertex
	}

	var head, prev tess.VertexID
	for _, p := range pts {
		id := arena.NewVertex(tess.Point{X: p.X, Y: p.Y}, 255)
		if prev == tess.NilVertex {
			head = id
		} else {
			v := arena.Vertex(prev)
			v.Next = id
			arena.Vertex(id).Prev = prev
		}
		prev = id
	}
	// Close the ring.
	arena.Vertex(prev).Next = head
	arena.Vertex(head).Prev = prev
	return head
}

// snapQuarterPixel rounds a coordinate to the nearest quarter-pixel,
// used in screen-space (AA) mode so that subsequent coincidence checks
// on re-entrant boundary meshes terminate. Quantization goes through
// fixed.Int26_6 (64 subpixel units per pixel) so a quarter-pixel grid is
// just every 16th subpixel unit; this is the same fixed-point
// representation golang.org/x/image's font rasterizer uses to quantize
// glyph outline coordinates, repurposed here to quantize path vertices.
func snapQuarterPixel(p Point) Point {
	const subpixelsPerQuarter = fixed.Int26_6(16) // 64/4
	snap := func(v float64) float64 {
		f := fixed.Int26_6(math.Round(v * 64))
		f = ((f + subpixelsPerQuarter/2) / subpixelsPerQuarter) * subpixelsPerQuarter
		return float64(f) / 64
	}
	return Point{X: snap(p.X), Y: snap(p.Y)}
}

package tess

import "math"

// Line is the implicit form a*x + b*y + c = 0 of the segment from an
// edge's top vertex to its bottom vertex. Coefficients are carried in f64
// so that isLeftOf/isRightOf — degree-2 polynomials in the query point's
// coordinates — evaluate with an exact sign for any pair of points whose
// coordinates are themselves f32-representable.
//
// Adapted from raster.Edge's XAtY scanline predicate: that edge type
// answers "what is X at this Y" for a fixed-direction scanline, which is
// sufficient for a Y-ascending rasterizer but not for a sweep whose
// direction is chosen per path (Comparator). The implicit line form
// generalizes the same idea — "which side of this edge is a point on" —
// to an arbitrary sweep direction without ever dividing.
type Line struct {
	A, B, C float64
}

// NewLine builds the implicit line through two points, oriented so that
// SignAt is positive for points to the left of the directed segment
// top->bottom (in a Y-down, X-right coordinate system).
func NewLine(top, bottom Point) Line {
	dx := bottom.X - top.X
	dy := bottom.Y - top.Y
	// a*x + b*y + c = 0 through (top, bottom): a = dy, b = -dx.
	a := dy
	b := -dx
	c := -(a*top.X + b*top.Y)
	return Line{A: a, B: b, C: c}
}

// SignAt evaluates a*x + b*y + c at p. Its sign determines which side of
// the line p falls on; magnitude has no meaning on its own.
func (l Line) SignAt(p Point) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

// IsLeftOf reports whether p lies strictly to the left of the line's
// directed top->bottom segment. In the sweep's left-to-right order this
// means the edge lies left of p: for a downward edge, p has the larger X.
func (l Line) IsLeftOf(p Point) bool {
	return l.SignAt(p) > 0
}

// IsRightOf reports whether p lies strictly to the right of the line's
// directed top->bottom segment, i.e. the edge lies right of p in the
// sweep's left-to-right order.
func (l Line) IsRightOf(p Point) bool {
	return l.SignAt(p) < 0
}

// XAtY solves the line equation for X at a given Y. Used only for
// constructing a point to feed back into a sign test or for rendering
// debug output; the sweep itself never compares edges by X coordinate.
func (l Line) XAtY(y float64) (x float64, ok bool) {
	if l.A == 0 {
		return 0, false
	}
	return -(l.B*y + l.C) / l.A, true
}

// Intersect computes the intersection of two edges given as (top, bottom)
// endpoint pairs, following the reference algorithm's parametric method:
// convert both segments to parametric form, compute the cross-product
// denominator, and reject early (without ever dividing) whenever a
// parameter would fall outside [0, 1].
//
// Returns ok=false when the segments are parallel or do not cross within
// both segments' parameter ranges.
func Intersect(eTop, eBottom, oTop, oBottom Point) (p Point, sParam, tParam float64, ok bool) {
	ex, ey := eBottom.X-eTop.X, eBottom.Y-eTop.Y
	ox, oy := oBottom.X-oTop.X, oBottom.Y-oTop.Y

	denom := ex*oy - ey*ox
	if denom == 0 {
		return Point{}, 0, 0, false
	}

	dx, dy := oTop.X-eTop.X, oTop.Y-eTop.Y
	sNumer := dx*oy - dy*ox
	tNumer := dx*ey - dy*ex

	if denom > 0 {
		if sNumer < 0 || sNumer > denom || tNumer < 0 || tNumer > denom {
			return Point{}, 0, 0, false
		}
	} else {
		if sNumer > 0 || sNumer < denom || tNumer > 0 || tNumer < denom {
			return Point{}, 0, 0, false
		}
	}

	s := sNumer / denom
	t := tNumer / denom

	return Point{
		X: eTop.X + s*ex,
		Y: eTop.Y + s*ey,
	}, s, t, true
}

// approxEqual reports whether two floats are within an absolute epsilon,
// used for collinearity and coincidence checks where an exact compare
// would be too brittle against flattening error.
func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

package gg

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// ConicTo draws a conic (rational quadratic Bezier) section, used to
// represent circular and elliptical arcs exactly. Weight must be > 0;
// weight == 1 degenerates to an ordinary quadratic.
type ConicTo struct {
	Control Point
	Point   Point
	Weight  float64
}

func (ConicTo) isPathElement() {}

// ToQuads converts the conic into one or more quadratic Beziers via
// recursive subdivision at the midpoint of the arc, splitting until the
// weight of each half is close enough to 1 that a quadratic approximation
// introduces negligible error. This mirrors the standard conic-to-quad
// chopping used by scan converters that only understand quadratics.
func (c ConicTo) ToQuads(start Point) []QuadBez {
	return subdivideConic(start, c.Control, c.Point, c.Weight, conicToQuadMaxDepth)
}

// conicToQuadMaxDepth bounds the recursive subdivision so a degenerate
// or extreme weight cannot recurse unboundedly.
const conicToQuadMaxDepth = 5

// conicTolerance is the maximum allowed deviation, in weight-space, of a
// subdivided conic from w=1 before another split is attempted.
const conicTolerance = 0.25

func subdivideConic(p0, p1, p2 Point, w float64, depth int) []QuadBez {
	if depth <= 0 || math.Abs(w-1) <= conicTolerance {
		// The weight is close enough to 1 (or the depth budget is spent):
		// approximate the span by a quadratic with the same three points,
		// the control point taken unchanged and the weight dropped.
		return []QuadBez{{P0: p0, P1: p1, P2: p2}}
	}

	// de Casteljau subdivision of the rational (weighted) control polygon.
	wMid := math.Sqrt((1 + w) / 2)
	p01 := p0.Add(p1.Mul(w)).Div(1 + w)
	p12 := p1.Mul(w).Add(p2).Div(1 + w)
	mid := p01.Add(p12.Mul(wMid)).Div(1 + wMid)

	left := subdivideConic(p0, p01, mid, wMid, depth-1)
	right := subdivideConic(mid, p12, p2, wMid, depth-1)
	return append(left, right...)
}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// FillRule selects which winding numbers are considered "inside" a path
// when it is tessellated or hit-tested.
type FillRule uint8

const (
	// NonZero fills wherever the winding number is nonzero.
	NonZero FillRule = iota
	// EvenOdd fills wherever the winding number is odd.
	EvenOdd
	// InverseNonZero fills the complement of the NonZero region. The
	// predicate is the literal "winding == 1" rather than "winding != 0",
	// which only produces the expected complement once a clip-bounds
	// contour has been prepended ahead of the path's own contours.
	InverseNonZero
	// InverseEvenOdd fills the complement of the EvenOdd region. Its
	// parity predicate is unchanged from EvenOdd; the inversion is
	// carried entirely by the prepended clip-bounds contour.
	InverseEvenOdd
)

// IsInverse reports whether the fill rule fills the complement of its
// base region, requiring a clip-bounds contour to be well-defined.
func (f FillRule) IsInverse() bool {
	return f == InverseNonZero || f == InverseEvenOdd
}

// Fills reports whether a region with the given winding number is
// considered filled under this rule.
func (f FillRule) Fills(winding int) bool {
	switch f {
	case NonZero:
		return winding != 0
	case EvenOdd:
		return mod2(winding) != 0
	case InverseNonZero:
		return winding == 1
	case InverseEvenOdd:
		return mod2(winding) != 0
	default:
		return winding != 0
	}
}

func mod2(w int) int {
	m := w % 2
	if m < 0 {
		m = -m
	}
	return m
}

// String returns a human-readable name for the fill rule.
func (f FillRule) String() string {
	switch f {
	case NonZero:
		return "non-zero"
	case EvenOdd:
		return "even-odd"
	case InverseNonZero:
		return "inverse-non-zero"
	case InverseEvenOdd:
		return "inverse-even-odd"
	default:
		return "unknown"
	}
}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
	fillRule FillRule
}

// NewPath creates a new empty path using the NonZero fill rule.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// FillRule returns the path's fill rule.
func (p *Path) FillRule() FillRule {
	return p.fillRule
}

// SetFillRule sets the path's fill rule.
func (p *Path) SetFillRule(rule FillRule) {
	p.fillRule = rule
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// ConicTo draws a conic (weighted quadratic) section to a position.
func (p *Path) ConicTo(cx, cy, x, y, weight float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, ConicTo{Control: ctrl, Point: pt, Weight: weight})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
// A path has a current point after MoveTo, LineTo, or any curve operation.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case ConicTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.ConicTo(ctrl.X, ctrl.Y, pt.X, pt.Y, e.Weight)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	result.fillRule = p.fillRule
	return result
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Ellipse adds an ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Arc adds a circular arc to the path.
// The arc is drawn from angle1 to angle2 (in radians) around center (cx, cy).
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	// Normalize angles
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	// Split into multiple cubic Bezier curves
	// Maximum 90 degrees per segment
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		a2 := a1 + angleStep
		p.arcSegment(cx, cy, r, a1, a2)
	}
}

// arcSegment adds a single arc segment (â‰¤90 degrees).
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	// Calculate control points for cubic Bezier approximation
	// Using the formula from "Drawing an elliptical arc using polylines, quadratic or cubic Bezier curves"
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	if len(p.elements) == 0 {
		p.MoveTo(x1, y1)
	}
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// RoundedRectangle adds a rectangle with rounded corners.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	// Clamp radius to half of the smaller dimension
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	p.Close()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	result.fillRule = p.fillRule
	return result
}

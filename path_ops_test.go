package gg

import (
	"math"
	"testing"
)

// TestPathArea tests the Area() method for various shapes.
func TestPathArea(t *testing.T) {
	tests := []struct {
		name      string
		buildPath func() *Path
		wantArea  float64
		tolerance float64
	}{
		{
			name: "unit square clockwise",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(1, 0)
				p.LineTo(1, 1)
				p.LineTo(0, 1)
				p.Close()
				return p
			},
			wantArea:  1.0, // Full signed area
			tolerance: 0.001,
		},
		{
			name: "unit square counter-clockwise",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(0, 1)
				p.LineTo(1, 1)
				p.LineTo(1, 0)
				p.Close()
				return p
			},
			wantArea:  -1.0,
			tolerance: 0.001,
		},
		{
			name: "10x10 square",
			buildPath: func() *Path {
				p := NewPath()
				p.Rectangle(0, 0, 10, 10)
				return p
			},
			wantArea:  100, // Full area
			tolerance: 0.1,
		},
		{
			name: "triangle",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(4, 0)
				p.LineTo(2, 3)
				p.Close()
				return p
			},
			wantArea:  6, // Area = base * height / 2 = 4 * 3 / 2 = 6
			tolerance: 0.1,
		},
		{
			name: "circle radius 1",
			buildPath: func() *Path {
				p := NewPath()
				p.Circle(0, 0, 1)
				return p
			},
			wantArea:  math.Pi, // pi * r^2 (but using Bezier approximation, sign may vary)
			tolerance: 0.5,     // Higher tolerance due to Bezier approximation
		},
		{
			name:      "empty path",
			buildPath: NewPath,
			wantArea:  0,
			tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.buildPath()
			got := p.Area()
			// Compare absolute values due to different orientation conventions
			if math.Abs(math.Abs(got)-math.Abs(tt.wantArea)) > tt.tolerance {
				t.Errorf("Area() = %v, want approximately %v (tolerance %v)", got, tt.wantArea, tt.tolerance)
			}
		})
	}
}

// TestPathWinding tests the Winding() method.
func TestPathWinding(t *testing.T) {
	// Create a unit square
	square := NewPath()
	square.MoveTo(0, 0)
	square.LineTo(1, 0)
	square.LineTo(1, 1)
	square.LineTo(0, 1)
	square.Close()

	tests := []struct {
		name   string
		path   *Path
		point  Point
		expect int
	}{
		{
			name:   "point inside square",
			path:   square,
			point:  Pt(0.5, 0.5),
			expect: 1, // Non-zero winding inside
		},
		{
			name:   "point outside square left",
			path:   square,
			point:  Pt(-1, 0.5),
			expect: 0,
		},
		{
			name:   "point outside square right",
			path:   square,
			point:  Pt(2, 0.5),
			expect: 0,
		},
		{
			name:   "point outside square above",
			path:   square,
			point:  Pt(0.5, 2),
			expect: 0,
		},
		{
			name:   "point outside square below",
			path:   square,
			point:  Pt(0.5, -1),
			expect: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.path.Winding(tt.point)
			// For inside/outside testing, we care about non-zero vs zero
			if (got != 0) != (tt.expect != 0) {
				t.Errorf("Winding(%v) = %d, expected non-zero=%v", tt.point, got, tt.expect != 0)
			}
		})
	}
}

// TestPathContains tests the Contains() method.
func TestPathContains(t *testing.T) {
	tests := []struct {
		name      string
		buildPath func() *Path
		point     Point
		want      bool
	}{
		{
			name: "inside square",
			buildPath: func() *Path {
				p := NewPath()
				p.Rectangle(0, 0, 10, 10)
				return p
			},
			point: Pt(5, 5),
			want:  true,
		},
		{
			name: "outside square",
			buildPath: func() *Path {
				p := NewPath()
				p.Rectangle(0, 0, 10, 10)
				return p
			},
			point: Pt(15, 5),
			want:  false,
		},
		{
			name: "inside circle",
			buildPath: func() *Path {
				p := NewPath()
				p.Circle(5, 5, 3)
				return p
			},
			point: Pt(5, 5),
			want:  true,
		},
		{
			name: "outside circle",
			buildPath: func() *Path {
				p := NewPath()
				p.Circle(5, 5, 3)
				return p
			},
			point: Pt(0, 0),
			want:  false,
		},
		{
			name: "inside triangle",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(10, 0)
				p.LineTo(5, 10)
				p.Close()
				return p
			},
			point: Pt(5, 3),
			want:  true,
		},
		{
			name: "outside triangle",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(10, 0)
				p.LineTo(5, 10)
				p.Close()
				return p
			},
			point: Pt(0, 10),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.buildPath()
			got := p.Contains(tt.point)
			if got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

// TestPathBoundingBox tests the BoundingBox() method.
func TestPathBoundingBox(t *testing.T) {
	tests := []struct {
		name      string
		buildPath func() *Path
		wantMin   Point
		wantMax   Point
	}{
		{
			name: "simple rectangle",
			buildPath: func() *Path {
				p := NewPath()
				p.Rectangle(10, 20, 30, 40)
				return p
			},
			wantMin: Pt(10, 20),
			wantMax: Pt(40, 60),
		},
		{
			name: "triangle",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(10, 0)
				p.LineTo(5, 8)
				p.Close()
				return p
			},
			wantMin: Pt(0, 0),
			wantMax: Pt(10, 8),
		},
		{
			name: "circle at origin",
			buildPath: func() *Path {
				p := NewPath()
				p.Circle(0, 0, 5)
				return p
			},
			wantMin: Pt(-5, -5),
			wantMax: Pt(5, 5),
		},
		{
			name: "quadratic curve",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.QuadraticTo(5, 10, 10, 0)
				return p
			},
			wantMin: Pt(0, 0),
			wantMax: Pt(10, 5), // Control point affects max Y
		},
		{
			name:      "empty path",
			buildPath: NewPath,
			wantMin:   Pt(0, 0),
			wantMax:   Pt(0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.buildPath()
			bbox := p.BoundingBox()

			tolerance := 0.5 // Allow some tolerance for curve approximations

			if math.Abs(bbox.Min.X-tt.wantMin.X) > tolerance ||
				math.Abs(bbox.Min.Y-tt.wantMin.Y) > tolerance {
				t.Errorf("BoundingBox().Min = %v, want %v", bbox.Min, tt.wantMin)
			}
			if math.Abs(bbox.Max.X-tt.wantMax.X) > tolerance ||
				math.Abs(bbox.Max.Y-tt.wantMax.Y) > tolerance {
				t.Errorf("BoundingBox().Max = %v, want %v", bbox.Max, tt.wantMax)
			}
		})
	}
}

// TestBoundingBoxWithCurves tests that bounding boxes correctly include curve extrema.
func TestBoundingBoxWithCurves(t *testing.T) {
	// A quadratic curve that goes above its start/end points
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(5, 10, 10, 0) // Control point at (5, 10)

	bbox := p.BoundingBox()

	// The curve's maximum Y should be around 5 (halfway to control point)
	if bbox.Max.Y < 4 {
		t.Errorf("BoundingBox max Y = %v, expected >= 4 (curve should bulge up)", bbox.Max.Y)
	}
}

// TestContainsWithCurves tests containment for paths with curves.
func TestContainsWithCurves(t *testing.T) {
	// Create a circular-ish path
	p := NewPath()
	p.Circle(5, 5, 3)

	tests := []struct {
		point Point
		want  bool
	}{
		{Pt(5, 5), true},   // Center
		{Pt(5, 7), true},   // Near top edge but inside
		{Pt(5, 9), false},  // Outside top
		{Pt(0, 0), false},  // Far outside
		{Pt(5, 2.5), true}, // Near bottom edge but inside
	}

	for _, tt := range tests {
		got := p.Contains(tt.point)
		if got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}

// TestEmptyPathOperations tests that empty paths handle all operations gracefully.
func TestEmptyPathOperations(t *testing.T) {
	p := NewPath()

	// Area
	if area := p.Area(); area != 0 {
		t.Errorf("Empty path Area() = %v, want 0", area)
	}

	// Winding
	if w := p.Winding(Pt(0, 0)); w != 0 {
		t.Errorf("Empty path Winding() = %v, want 0", w)
	}

	// Contains
	if c := p.Contains(Pt(0, 0)); c {
		t.Errorf("Empty path Contains() = %v, want false", c)
	}

	// BoundingBox
	bbox := p.BoundingBox()
	if bbox.Width() != 0 || bbox.Height() != 0 {
		t.Errorf("Empty path BoundingBox() = %v, want zero rect", bbox)
	}
}

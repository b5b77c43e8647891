package gg

import "testing"

func TestFillRule_Fills(t *testing.T) {
	tests := []struct {
		name    string
		rule    FillRule
		winding int
		want    bool
	}{
		{"nonzero: zero", NonZero, 0, false},
		{"nonzero: positive", NonZero, 1, true},
		{"nonzero: negative", NonZero, -3, true},
		{"evenodd: even", EvenOdd, 2, false},
		{"evenodd: odd", EvenOdd, 3, true},
		{"evenodd: negative odd", EvenOdd, -3, true},
		{"inverse-nonzero: exactly one", InverseNonZero, 1, true},
		{"inverse-nonzero: zero", InverseNonZero, 0, false},
		{"inverse-nonzero: two", InverseNonZero, 2, false},
		{"inverse-evenodd: odd", InverseEvenOdd, 1, true},
		{"inverse-evenodd: even", InverseEvenOdd, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Fills(tt.winding); got != tt.want {
				t.Errorf("%v.Fills(%d) = %v, want %v", tt.rule, tt.winding, got, tt.want)
			}
		})
	}
}

func TestFillRule_IsInverse(t *testing.T) {
	if NonZero.IsInverse() || EvenOdd.IsInverse() {
		t.Errorf("NonZero/EvenOdd should not be inverse")
	}
	if !InverseNonZero.IsInverse() || !InverseEvenOdd.IsInverse() {
		t.Errorf("InverseNonZero/InverseEvenOdd should be inverse")
	}
}

func TestPath_SetFillRule(t *testing.T) {
	p := NewPath()
	if p.FillRule() != NonZero {
		t.Errorf("NewPath() default fill rule = %v, want NonZero", p.FillRule())
	}
	p.SetFillRule(EvenOdd)
	if p.FillRule() != EvenOdd {
		t.Errorf("SetFillRule(EvenOdd) then FillRule() = %v, want EvenOdd", p.FillRule())
	}
}

func TestConicTo_ToQuads_WeightOneIsNearlyLinearQuad(t *testing.T) {
	start := Pt(0, 0)
	c := ConicTo{Control: Pt(5, 10), Point: Pt(10, 0), Weight: 1}
	quads := c.ToQuads(start)
	if len(quads) == 0 {
		t.Fatalf("ToQuads() returned no segments")
	}
	first, last := quads[0], quads[len(quads)-1]
	if first.P0 != start {
		t.Errorf("first quad P0 = %v, want %v", first.P0, start)
	}
	if last.P2 != c.Point {
		t.Errorf("last quad P2 = %v, want %v", last.P2, c.Point)
	}
}

func TestPath_Clone_PreservesFillRule(t *testing.T) {
	p := NewPath()
	p.SetFillRule(InverseEvenOdd)
	p.MoveTo(0, 0)
	p.LineTo(10, 0)

	clone := p.Clone()
	if clone.FillRule() != InverseEvenOdd {
		t.Errorf("Clone().FillRule() = %v, want InverseEvenOdd", clone.FillRule())
	}
}

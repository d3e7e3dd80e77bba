package geom

import (
	"errors"
	"math"
	"testing"
)

func TestLineThrough(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Point
		slope     float64
		intercept float64
	}{
		{"rising", Pt(-2, -2), Pt(2, 2), 1, 0},
		{"falling", Pt(-1, 5), Pt(2, -1), -2, 3},
		{"flat", Pt(-3, 4), Pt(5, 4), 0, 4},
		{"fractional", Pt(-3, 0), Pt(3, 2), 1.0 / 3, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := LineThrough(tc.a, tc.b)
			if err != nil {
				t.Fatalf("LineThrough() failed: %v", err)
			}
			if math.Abs(l.Slope-tc.slope) > 1e-9 || math.Abs(l.Intercept-tc.intercept) > 1e-9 {
				t.Errorf("LineThrough(%v, %v) = %+v, expected m=%v c=%v", tc.a, tc.b, l, tc.slope, tc.intercept)
			}
		})
	}
}

func TestLineThroughVertical(t *testing.T) {
	_, err := LineThrough(Pt(2, -1), Pt(2, 4))
	if !errors.Is(err, ErrVertical) {
		t.Errorf("LineThrough() error = %v, expected ErrVertical", err)
	}
}

func TestLineString(t *testing.T) {
	tests := []struct {
		line     Line
		expected string
	}{
		{NewLine(2, -3), "y = 2x - 3"},
		{NewLine(2, 3), "y = 2x + 3"},
		{NewLine(1, 0), "y = x"},
		{NewLine(-1, 2), "y = -x + 2"},
		{NewLine(0, -4), "y = -4"},
		{NewLine(0, 0), "y = 0"},
		{NewLine(0.5, 1.25), "y = 0.5x + 1.25"},
		{NewLine(-1.8, -7), "y = -1.8x - 7"},
	}
	for _, tc := range tests {
		if got := tc.line.String(); got != tc.expected {
			t.Errorf("%+v.String() = %q, expected %q", tc.line, got, tc.expected)
		}
	}
}

func TestLineClip(t *testing.T) {
	b := Bounds{MinX: -10, MaxX: 10, MinY: -5, MaxY: 5}

	t.Run("fully inside on x", func(t *testing.T) {
		seg, ok := NewLine(0.25, 0).Clip(b)
		if !ok {
			t.Fatal("Clip() ok = false")
		}
		if seg.X1 != -10 || seg.X2 != 10 || seg.Y1 != -2.5 || seg.Y2 != 2.5 {
			t.Errorf("Clip() = %+v", seg)
		}
	})

	t.Run("steep line cut on y", func(t *testing.T) {
		seg, ok := NewLine(2, -3).Clip(b)
		if !ok {
			t.Fatal("Clip() ok = false")
		}
		if seg.X1 != -1 || seg.Y1 != -5 || seg.X2 != 4 || seg.Y2 != 5 {
			t.Errorf("Clip() = %+v, expected (-1,-5)-(4,5)", seg)
		}
	})

	t.Run("falling line", func(t *testing.T) {
		seg, ok := NewLine(-1, 0).Clip(b)
		if !ok {
			t.Fatal("Clip() ok = false")
		}
		if seg.X1 != -5 || seg.Y1 != 5 || seg.X2 != 5 || seg.Y2 != -5 {
			t.Errorf("Clip() = %+v, expected (-5,5)-(5,-5)", seg)
		}
	})

	t.Run("flat line off screen", func(t *testing.T) {
		if _, ok := NewLine(0, 8).Clip(b); ok {
			t.Error("Clip() ok = true for a line above the view")
		}
	})

	t.Run("line missing the view", func(t *testing.T) {
		if _, ok := NewLine(1, 40).Clip(b); ok {
			t.Error("Clip() ok = true for a line that never enters the view")
		}
	})
}

func TestExtendThrough(t *testing.T) {
	b := Bounds{MinX: -10, MaxX: 10, MinY: -10, MaxY: 10}

	seg, ok := ExtendThrough(Pt(1, 1), Pt(-1, -1), b)
	if !ok {
		t.Fatal("ExtendThrough() ok = false")
	}
	// oriented from a toward b
	if seg.X1 != 10 || seg.Y1 != 10 || seg.X2 != -10 || seg.Y2 != -10 {
		t.Errorf("ExtendThrough() = %+v, expected (10,10)-(-10,-10)", seg)
	}

	vert, ok := ExtendThrough(Pt(3, -1), Pt(3, 2), b)
	if !ok {
		t.Fatal("ExtendThrough() vertical ok = false")
	}
	if vert.X1 != 3 || vert.X2 != 3 || vert.Y1 != -10 || vert.Y2 != 10 {
		t.Errorf("ExtendThrough() vertical = %+v", vert)
	}
	for _, v := range []float64{vert.X1, vert.Y1, vert.X2, vert.Y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("vertical segment leaked %v", v)
		}
	}

	if _, ok := ExtendThrough(Pt(1, 1), Pt(1, 1), b); ok {
		t.Error("ExtendThrough() ok = true for coincident points")
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Pt(3, 4), Pt(3, 5)); d != 1 {
		t.Errorf("Distance() = %v, expected 1", d)
	}
	if d := Distance(Pt(0, 0), Pt(3, 4)); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
}

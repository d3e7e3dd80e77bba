package geom

import (
	"errors"
	"testing"
)

func TestTransformRoundTrip(t *testing.T) {
	transforms := []struct {
		name string
		w, h int
		s, a float64
	}{
		{"canvas 40px", 800, 600, 40, 1},
		{"terminal cells", 56, 20, 4, 0.5},
		{"zoomed out terminal", 56, 20, 2, 0.5},
		{"fractional zoom", 56, 20, 3, 0.5},
	}

	for _, tc := range transforms {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := Centered(tc.w, tc.h, tc.s, tc.a)
			if err != nil {
				t.Fatalf("Centered() failed: %v", err)
			}
			b := tr.Visible(tc.w, tc.h)
			loX, hiX := IntRange(b.MinX, b.MaxX)
			loY, hiY := IntRange(b.MinY, b.MaxY)
			for x := loX; x <= hiX; x++ {
				for y := loY; y <= hiY; y++ {
					p := Pt(x, y)
					px, py := tr.ToPixel(p)
					if got := tr.ToGrid(px, py); got != p {
						t.Errorf("ToGrid(ToPixel(%v)) = %v", p, got)
					}
				}
			}
		})
	}
}

func TestToPixel(t *testing.T) {
	tr, err := NewTransform(800, 600, 400, 300, 40, 1)
	if err != nil {
		t.Fatalf("NewTransform() failed: %v", err)
	}

	tests := []struct {
		p      Point
		px, py float64
	}{
		{Pt(0, 0), 400, 300},
		{Pt(1, 0), 440, 300},
		{Pt(0, 1), 400, 260},
		{Pt(-2, -3), 320, 420},
	}
	for _, tc := range tests {
		px, py := tr.ToPixel(tc.p)
		if px != tc.px || py != tc.py {
			t.Errorf("ToPixel(%v) = (%v, %v), expected (%v, %v)", tc.p, px, py, tc.px, tc.py)
		}
	}
}

func TestToGridSnapsToNearest(t *testing.T) {
	tr, _ := NewTransform(800, 600, 400, 300, 40, 1)

	// 15px right of (1,0) is still closest to x=1
	if got := tr.ToGrid(455, 300); got != Pt(1, 0) {
		t.Errorf("ToGrid(455, 300) = %v, expected (1, 0)", got)
	}
	// 25px right of (1,0) snaps to x=2
	if got := tr.ToGrid(465, 300); got != Pt(2, 0) {
		t.Errorf("ToGrid(465, 300) = %v, expected (2, 0)", got)
	}
	// above the origin is positive y
	if got := tr.ToGrid(400, 221); got != Pt(0, 2) {
		t.Errorf("ToGrid(400, 221) = %v, expected (0, 2)", got)
	}
}

func TestTransformTerminalAspect(t *testing.T) {
	tr, _ := Centered(56, 20, 4, 0.5)

	px, py := tr.ToPixel(Pt(1, 1))
	if px != 32 || py != 8 {
		t.Errorf("ToPixel(1,1) = (%v, %v), expected (32, 8)", px, py)
	}
}

func TestNewTransformRejectsInvalid(t *testing.T) {
	tests := []struct {
		name           string
		ox, oy, scale  float64
	}{
		{"zero scale", 10, 10, 0},
		{"negative scale", 10, 10, -1},
		{"origin left of canvas", -1, 10, 4},
		{"origin below canvas", 10, 20, 4},
		{"origin right of canvas", 20, 10, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTransform(20, 20, tc.ox, tc.oy, tc.scale, 1)
			if !errors.Is(err, ErrBadTransform) {
				t.Errorf("NewTransform() error = %v, expected ErrBadTransform", err)
			}
		})
	}
}

func TestVisible(t *testing.T) {
	tr, _ := NewTransform(801, 601, 400, 300, 40, 1)
	b := tr.Visible(801, 601)

	if b.MinX != -10 || b.MaxX != 10 || b.MinY != -7.5 || b.MaxY != 7.5 {
		t.Errorf("Visible() = %+v, expected x[-10,10] y[-7.5,7.5]", b)
	}
	if !b.Contains(Pt(10, -7)) || b.Contains(Pt(0, 8)) {
		t.Errorf("Contains() disagrees with bounds %+v", b)
	}
}

package graphmaster

import (
	"math"

	"github.com/vovakirdan/graph-master/internal/config"
	"github.com/vovakirdan/graph-master/internal/core"
	"github.com/vovakirdan/graph-master/internal/geom"
)

// Screen layout constants
const (
	MinWidth   = 60 // Narrowest screen the trainer draws on
	MinHeight  = 16 // Shortest screen the trainer draws on
	PanelWidth = 30 // Question panel on the right
)

// layout splits the screen into the HUD row, the grid box, the question
// panel and the feedback row, and holds the grid transform for the box.
type layout struct {
	width, height int
	tooSmall      bool
	graph         core.Rect // grid box including its border
	plot          core.Rect // drawable area inside the grid box
	panel         core.Rect
	transform     geom.Transform
}

func newLayout(width, height int, view config.ViewConfig, zoom float64) layout {
	l := layout{width: width, height: height}
	if width < MinWidth || height < MinHeight {
		l.tooSmall = true
		return l
	}

	body := height - 2
	l.graph = core.NewRect(0, 1, width-PanelWidth, body)
	l.panel = core.NewRect(width-PanelWidth, 1, PanelWidth, body)
	l.plot = l.graph.Inset(1)

	t, err := geom.Centered(l.plot.W, l.plot.H, view.CellsPerUnit*zoom, view.Aspect)
	if err != nil {
		l.tooSmall = true
		return l
	}
	l.transform = t
	return l
}

// visible returns the grid area shown in the plot box.
func (l layout) visible() geom.Bounds {
	return l.transform.Visible(l.plot.W, l.plot.H)
}

// reach returns the largest whole x and y distances from the origin that
// are on screen in every direction.
func (l layout) reach() (int, int) {
	v := l.visible()
	return int(math.Min(-v.MinX, v.MaxX)), int(math.Min(-v.MinY, v.MaxY))
}

// cellToGrid snaps a screen cell inside the plot box to a grid point.
func (l layout) cellToGrid(x, y int) (geom.Point, bool) {
	if l.tooSmall || !l.plot.Contains(x, y) {
		return geom.Point{}, false
	}
	return l.transform.ToGrid(float64(x-l.plot.X), float64(y-l.plot.Y)), true
}

// clampPoint keeps p on the visible integer grid.
func (l layout) clampPoint(p geom.Point) geom.Point {
	if l.tooSmall {
		return p
	}
	v := l.visible()
	loX, hiX := geom.IntRange(v.MinX, v.MaxX)
	loY, hiY := geom.IntRange(v.MinY, v.MaxY)
	return geom.Pt(core.Clamp(p.X, loX, hiX), core.Clamp(p.Y, loY, hiY))
}

package graphmaster

import (
	"github.com/vovakirdan/graph-master/internal/core"
	"github.com/vovakirdan/graph-master/internal/geom"
	"github.com/vovakirdan/graph-master/internal/quiz"
)

// Slider steps per key press
const (
	SlopeStep     = 0.1
	InterceptStep = 1.0
)

func (g *Game) handleInput(in core.InputFrame) {
	for _, r := range in.Typed {
		g.handleRune(r)
		if g.gameOver {
			return
		}
	}
	if in.Click != nil {
		g.handleClick(in.Click.X, in.Click.Y)
	}

	desc := quiz.Describe(g.level.Question.Kind)
	switch {
	case desc.Slider:
		g.handleSlider(in)
	case desc.Points > 0:
		g.handleCursor(in)
	default:
		g.handleFields(in)
	}

	if in.Has(core.ActionSubmit) {
		g.submit()
	}
}

// handleRune routes a typed character. Number characters go to the focused
// field on questions with fields; everything else is a command key.
func (g *Game) handleRune(r rune) {
	if len(g.level.Answer.Fields) > 0 && !g.level.Done() && quiz.IsNumberRune(r) {
		g.level = g.level.Type(g.field, r)
		return
	}

	switch r {
	case 'h', 'H':
		g.hint = quiz.Hint(g.level)
	case 'g', 'G':
		g.showGrid = !g.showGrid
	case '+', '=', ']':
		g.setZoom(g.zoom + g.cfg.View.ZoomStep)
	case '-', '_', '[':
		g.setZoom(g.zoom - g.cfg.View.ZoomStep)
	case 'n', 'N':
		g.advance()
	case 'r', 'R':
		if !g.level.Done() {
			g.level = g.level.ResetAnswer()
			g.field = 0
			g.say("Answer cleared.", core.ColorGray)
		}
	}
}

// setZoom changes the grid scale within the configured range.
func (g *Game) setZoom(z float64) {
	v := g.cfg.View
	z = core.ClampF(z, v.MinZoom, v.MaxZoom)
	if z == g.zoom {
		return
	}
	g.zoom = z
	g.layout = newLayout(g.runtime.ScreenW, g.runtime.ScreenH, v, z)
	g.cursor = g.layout.clampPoint(g.cursor)
}

// handleClick places a point where the player clicked on the grid.
func (g *Game) handleClick(x, y int) {
	if quiz.Describe(g.level.Question.Kind).Points == 0 {
		return
	}
	p, ok := g.layout.cellToGrid(x, y)
	if !ok {
		return
	}
	g.cursor = g.layout.clampPoint(p)
	g.level = g.level.Place(g.cursor)
}

func (g *Game) handleCursor(in core.InputFrame) {
	c := g.cursor
	if in.Has(core.ActionUp) {
		c = c.Add(0, 1)
	}
	if in.Has(core.ActionDown) {
		c = c.Add(0, -1)
	}
	if in.Has(core.ActionLeft) {
		c = c.Add(-1, 0)
	}
	if in.Has(core.ActionRight) {
		c = c.Add(1, 0)
	}
	g.cursor = g.layout.clampPoint(c)

	if in.Has(core.ActionPlace) {
		g.level = g.level.Place(g.cursor)
	}
	if in.Has(core.ActionErase) {
		g.level = g.level.Unplace()
	}
}

func (g *Game) handleSlider(in core.InputFrame) {
	var dm, dc float64
	if in.Has(core.ActionLeft) {
		dm -= SlopeStep
	}
	if in.Has(core.ActionRight) {
		dm += SlopeStep
	}
	if in.Has(core.ActionUp) {
		dc += InterceptStep
	}
	if in.Has(core.ActionDown) {
		dc -= InterceptStep
	}
	if dm != 0 || dc != 0 {
		g.level = g.level.Nudge(dm, dc)
	}
}

func (g *Game) handleFields(in core.InputFrame) {
	n := len(g.level.Answer.Fields)
	if n == 0 {
		return
	}
	if in.Has(core.ActionUp) {
		g.field = (g.field + n - 1) % n
	}
	if in.Has(core.ActionDown) || in.Has(core.ActionNextField) {
		g.field = (g.field + 1) % n
	}
	if in.Has(core.ActionErase) {
		g.level = g.level.Erase(g.field)
	}
}

// Cursor returns the hover position on the grid.
func (g *Game) Cursor() geom.Point {
	return g.cursor
}

package graphmaster

import (
	"fmt"

	"github.com/vovakirdan/graph-master/internal/config"
	"github.com/vovakirdan/graph-master/internal/geom"
	"github.com/vovakirdan/graph-master/internal/plot"
	"github.com/vovakirdan/graph-master/internal/quiz"
)

// DrawLevel draws the grid and everything the level shows on it.
// Coordinate labels appear only once the level has a counted verdict.
func DrawLevel(r *plot.Renderer, l quiz.LevelState, showGrid bool) {
	r.Grid(showGrid)

	q := l.Question
	reveal := l.Reveal()

	switch q.Kind {
	case quiz.KindPlot:
		if reveal {
			r.Point(q.Target, plot.PointStyle{Ink: plot.InkTarget, Reveal: true})
		}
		drawAnswerPoints(r, l.Answer.Points, reveal)

	case quiz.KindGradient, quiz.KindEquation:
		r.Through(q.A, q.B, plot.InkTarget)
		r.Point(q.A, plot.PointStyle{Ink: plot.InkTarget, Name: "A", Reveal: reveal})
		r.Point(q.B, plot.PointStyle{Ink: plot.InkTarget, Name: "B", Reveal: reveal})
		if reveal {
			r.SlopeGuide(q.Line, 1)
		}

	case quiz.KindTable:
		if !reveal {
			return
		}
		r.Equation(q.Line, plot.InkTarget)
		for i, y := range q.Expected() {
			r.Point(geom.Pt(q.Xs[i], y), plot.PointStyle{Ink: plot.InkTarget, Reveal: true})
		}

	case quiz.KindGraph:
		if reveal {
			r.Equation(q.Line, plot.InkTarget)
		}
		pts := l.Answer.Points
		if len(pts) == 2 && pts[0] != pts[1] {
			r.Through(pts[0], pts[1], plot.InkAnswer)
		}
		drawAnswerPoints(r, pts, reveal)

	case quiz.KindMatch:
		slider := l.Answer.Slider
		r.Equation(q.Line, plot.InkTarget)
		r.Equation(slider, plot.InkLine)
		if !r.SlopeGuide(slider, 3) {
			r.SlopeGuide(slider, 1)
		}
		r.Point(geom.Pt(0, int(slider.Intercept)), plot.PointStyle{Ink: plot.InkAnswer, Reveal: reveal})
	}
}

func drawAnswerPoints(r *plot.Renderer, pts []geom.Point, reveal bool) {
	for _, p := range pts {
		r.Point(p, plot.PointStyle{Ink: plot.InkAnswer, Reveal: reveal})
	}
}

// exportTransform is the square PNG's grid transform.
func exportTransform(view config.ViewConfig) (geom.Transform, error) {
	return geom.Centered(view.ExportSize, view.ExportSize, view.ExportScale, 1)
}

// SampleLevel generates the first level of kind k for the given seed,
// bounded to what a PNG export shows.
func SampleLevel(k quiz.Kind, seed int64, cfg config.GraphMasterConfig) (quiz.LevelState, error) {
	t, err := exportTransform(cfg.View)
	if err != nil {
		return quiz.LevelState{}, fmt.Errorf("graphmaster: export view: %w", err)
	}
	view := t.Visible(cfg.View.ExportSize, cfg.View.ExportSize)
	b := cfg.Bounds
	lim := quiz.Limits{
		MaxX:         min(b.MaxX, int(view.MaxX)),
		MaxY:         min(b.MaxY, int(view.MaxY)),
		MaxIntercept: min(b.MaxIntercept, int(view.MaxY)),
		MaxSlope:     b.MaxSlope,
		View:         view,
	}
	return quiz.NewLevel(1, quiz.NewGenerator(seed, lim).Next(k)), nil
}

// ExportPNG draws level l into a PNG file at path.
func ExportPNG(path string, l quiz.LevelState, view config.ViewConfig, showGrid bool) (err error) {
	t, err := exportTransform(view)
	if err != nil {
		return fmt.Errorf("graphmaster: export view: %w", err)
	}
	c, err := plot.NewImageCanvas(view.ExportSize, view.ExportSize)
	if err != nil {
		return fmt.Errorf("graphmaster: export: %w", err)
	}
	defer func() {
		if cerr := c.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("graphmaster: export: %w", cerr)
		}
	}()

	DrawLevel(plot.NewRenderer(c, t, plot.ImageMetrics), l, showGrid)
	if err := c.SavePNG(path); err != nil {
		return fmt.Errorf("graphmaster: export %s: %w", path, err)
	}
	return nil
}

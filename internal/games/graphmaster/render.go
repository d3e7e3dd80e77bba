package graphmaster

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/graph-master/internal/core"
	"github.com/vovakirdan/graph-master/internal/plot"
	"github.com/vovakirdan/graph-master/internal/quiz"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight), core.ColorGray)
		return
	}

	g.drawHUD(dst)

	dst.DrawBox(g.layout.graph, core.ColorGray)
	canvas := plot.NewScreenCanvas(dst, g.layout.plot)
	r := plot.NewRenderer(canvas, g.layout.transform, plot.TerminalMetrics)
	DrawLevel(r, g.level, g.showGrid)
	if quiz.Describe(g.level.Question.Kind).Points > 0 && !g.level.Done() && !g.gameOver {
		r.Cursor(g.cursor)
	}

	g.drawPanel(dst)
	g.drawFeedback(dst)

	switch {
	case g.gameOver:
		g.drawSummary(dst)
	case g.paused:
		g.drawBanner(dst, "PAUSED", "Press Esc to resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.progress
	left := fmt.Sprintf(" GRAPH MASTER · %s   Level %d/%d", g.variant.Title, g.level.Number, g.cfg.Session.Levels)
	dst.DrawTextColored(0, 0, left, core.ColorBrightCyan)

	right := fmt.Sprintf("Score %d  Streak %d  x%d", p.Score, p.Streak, p.Combo)
	if g.deadline > 0 {
		right += fmt.Sprintf("  Time %ds", g.secondsLeft())
	}
	right += " "
	x := g.layout.width - ansi.StringWidth(right)
	if x < ansi.StringWidth(left)+1 {
		return
	}
	color := core.ColorWhite
	if g.deadline > 0 && g.secondsLeft() <= 10 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(x, 0, right, color)
}

// panelWriter writes wrapped lines down the inside of the question panel.
type panelWriter struct {
	dst   *core.Screen
	x, y  int
	width int
	last  int // last usable row
}

func (w *panelWriter) line(text string, c core.Color) {
	if w.y > w.last {
		return
	}
	w.dst.DrawTextColored(w.x, w.y, ansi.Truncate(text, w.width, "…"), c)
	w.y++
}

func (w *panelWriter) wrap(text string, c core.Color) {
	for _, l := range strings.Split(ansi.Wordwrap(text, w.width, " "), "\n") {
		w.line(l, c)
	}
}

func (w *panelWriter) gap() {
	w.y++
}

func (g *Game) drawPanel(dst *core.Screen) {
	box := g.layout.panel
	dst.DrawBox(box, core.ColorGray)
	inner := box.Inset(1)
	w := &panelWriter{dst: dst, x: inner.X + 1, y: inner.Y, width: inner.W - 2, last: inner.Bottom() - 1}

	l := g.level
	q := l.Question
	desc := quiz.Describe(q.Kind)

	w.line(desc.Title, core.ColorBrightCyan)
	w.gap()
	w.wrap(q.Prompt(), core.ColorWhite)
	w.gap()

	switch {
	case desc.Slider:
		w.line("Your line: "+l.Answer.Slider.String(), core.ColorBrightMagenta)
		w.line(fmt.Sprintf("Accuracy: %d%%", quiz.SliderAccuracy(l.Answer.Slider, q.Line)), core.ColorWhite)
		w.line("←/→ slope  ↑/↓ intercept", core.ColorGray)
	case desc.Points > 0:
		w.line(fmt.Sprintf("Points placed: %d/%d", len(l.Answer.Points), desc.Points), core.ColorWhite)
		w.line("Move with arrows, Space to place", core.ColorGray)
	default:
		labels := q.FieldLabels()
		for i, label := range labels {
			marker, color := "  ", core.ColorWhite
			value := l.Answer.Fields[i]
			if i == g.field && !l.Done() {
				marker, color = "▸ ", core.ColorBrightYellow
				value += "_"
			}
			w.line(fmt.Sprintf("%s%s: %s", marker, label, value), color)
		}
	}

	if g.hint != "" {
		w.gap()
		w.wrap("Hint: "+g.hint, core.ColorYellow)
	}

	p := g.progress
	stats := []string{
		fmt.Sprintf("Solved %d  Missed %d", p.Solved, p.Missed),
		fmt.Sprintf("Accuracy %d%%  Avg %.1fs", p.Accuracy(), p.AverageSeconds()),
		fmt.Sprintf("Rank %d  XP %d/%d", p.Level, p.XP, p.Threshold),
	}
	if w.last-len(stats)+1 > w.y {
		w.y = w.last - len(stats) + 1
		for _, s := range stats {
			w.line(s, core.ColorGray)
		}
	}
}

func (g *Game) drawFeedback(dst *core.Screen) {
	text := g.feedback.text
	color := g.feedback.color
	if text == "" {
		text, color = g.idleHelp(), core.ColorGray
	}
	dst.DrawTextColored(1, g.layout.height-1, ansi.Truncate(text, g.layout.width-2, "…"), color)
}

// idleHelp is shown on the feedback row until there is feedback.
func (g *Game) idleHelp() string {
	switch desc := quiz.Describe(g.level.Question.Kind); {
	case desc.Slider:
		return "Line up the slider with the target, then press Enter."
	case desc.Points > 0:
		return "Click or press Space to place, Enter to check."
	}
	return "Type your answer, Tab for the next box, Enter to check."
}

func (g *Game) drawBanner(dst *core.Screen, title, subtitle string) {
	width := max(len(subtitle), len(title)) + 6
	box := core.NewRect((dst.Width()-width)/2, dst.Height()/2-2, width, 5)
	dst.ClearRect(box)
	dst.DrawBox(box, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorGray)
}

func (g *Game) drawSummary(dst *core.Screen) {
	p := g.progress
	lines := []string{
		fmt.Sprintf("Final score: %d", p.Score),
		fmt.Sprintf("Solved %d of %d", p.Solved, g.cfg.Session.Levels),
		fmt.Sprintf("Accuracy %d%%  Avg %.1fs", p.Accuracy(), p.AverageSeconds()),
		fmt.Sprintf("Rank %d", p.Level),
	}

	box := core.NewRect((dst.Width()-36)/2, dst.Height()/2-5, 36, len(lines)+6)
	dst.ClearRect(box)
	dst.DrawBox(box, core.ColorBrightCyan)
	dst.DrawTextCentered(box.Y+1, "SESSION COMPLETE", core.ColorBrightCyan)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
	dst.DrawTextCentered(box.Bottom()-2, "R to play again, Q to quit", core.ColorGray)
}

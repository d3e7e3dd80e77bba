// Package graphmaster implements the coordinate geometry trainer.
//
// A session is a fixed number of levels. Each level asks one question of a
// kind chosen by the session's variant: plot a point, read a gradient,
// write or tabulate an equation, graph a line or match one with a slider.
// Timers run on a core.Scheduler that is invalidated on every level load,
// so a countdown or delayed advance from an old level never fires.
package graphmaster

import (
	"fmt"
	"time"

	"github.com/vovakirdan/graph-master/internal/config"
	"github.com/vovakirdan/graph-master/internal/core"
	"github.com/vovakirdan/graph-master/internal/geom"
	"github.com/vovakirdan/graph-master/internal/quiz"
	"github.com/vovakirdan/graph-master/internal/registry"
)

// Game implements one trainer session.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.GraphMasterConfig
	preset  config.DifficultyPreset // overrides the CLI preset when set

	difficulty *config.DifficultyManager
	tolerances quiz.Tolerances
	gen        *quiz.Generator
	sched      core.Scheduler
	progress   quiz.Progress
	level      quiz.LevelState

	levelStart uint64 // scheduler tick the level was loaded on
	deadline   uint64 // scheduler tick the countdown ends; 0 when no countdown runs
	ticks      int    // ticks played, for time-based difficulty

	cursor   geom.Point
	field    int
	zoom     float64
	showGrid bool
	hint     string
	feedback feedback

	paused   bool
	gameOver bool

	layout   layout
	attempts []core.Attempt
}

type feedback struct {
	text  string
	color core.Color
}

// New creates a session of the given variant.
func New(v Variant) *Game {
	return &Game{variant: v, zoom: 1}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// SetDifficulty picks the difficulty preset for this session's next Reset.
// Unknown names are ignored.
func (g *Game) SetDifficulty(name string) {
	if p, err := config.ParsePreset(name); err == nil && name != "" {
		g.preset = p
	}
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	cfg := loadConfig(g.preset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.tolerances = tolerances(cfg.Tolerances)
	g.progress = quiz.NewProgress(scoring(cfg.Scoring))
	g.sched = core.Scheduler{}
	g.ticks = 0
	g.zoom = 1
	g.showGrid = cfg.View.ShowGrid
	g.paused = false
	g.gameOver = false
	g.attempts = nil

	g.layout = newLayout(runtime.ScreenW, runtime.ScreenH, cfg.View, g.zoom)
	g.gen = quiz.NewGenerator(runtime.Seed, g.limits())
	g.loadLevel(1)
}

// Resize adapts the layout to a new screen size. The session, the current
// question and the player's answer are kept.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.layout = newLayout(width, height, g.cfg.View, g.zoom)
	g.cursor = g.layout.clampPoint(g.cursor)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.layout.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	if !g.gameOver {
		g.ticks++
		g.sched.Advance()
	}

	res := core.StepResult{State: g.State(), Attempts: g.attempts}
	g.attempts = nil
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.progress.Score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Level returns the current level.
func (g *Game) Level() quiz.LevelState {
	return g.level
}

// Progress returns the session's results so far.
func (g *Game) Progress() quiz.Progress {
	return g.progress
}

// limits bounds the next question by difficulty and by what fits on screen.
func (g *Game) limits() quiz.Limits {
	b := g.cfg.Bounds
	score := g.progress.Score
	lim := quiz.Limits{
		MaxX:         g.difficulty.Bound(b.MaxX, score, g.ticks),
		MaxY:         g.difficulty.Bound(b.MaxY, score, g.ticks),
		MaxIntercept: g.difficulty.Bound(b.MaxIntercept, score, g.ticks),
		MaxSlope:     g.difficulty.BoundF(b.MaxSlope, score, g.ticks),
	}
	if g.layout.tooSmall {
		return lim
	}

	rx, ry := g.layout.reach()
	lim.View = g.layout.visible()
	lim.MaxX = min(lim.MaxX, rx)
	lim.MaxY = min(lim.MaxY, ry)
	lim.MaxIntercept = min(lim.MaxIntercept, ry)
	return lim
}

// loadLevel starts level n, cancelling every timer of the previous level.
func (g *Game) loadLevel(n int) {
	g.sched.Invalidate()
	g.gen.SetLimits(g.limits())

	g.level = quiz.NewLevel(n, g.gen.Next(g.variant.KindFor(n)))
	g.levelStart = g.sched.Now()
	g.cursor = geom.Point{}
	g.field = 0
	g.hint = ""
	g.feedback = feedback{}

	g.deadline = 0
	seconds := g.difficulty.TimerSeconds(g.cfg.Timer.Seconds, g.progress.Score, g.ticks)
	if seconds > 0 {
		ticks := g.runtime.TicksFor(float64(seconds))
		g.deadline = g.levelStart + ticks
		g.sched.After(ticks, g.expire)
	}
}

// expire ends the level when its countdown runs out.
func (g *Game) expire() {
	if g.level.Done() {
		return
	}
	g.level = g.level.Expire()
	g.deadline = 0
	g.progress = g.progress.RecordMiss()
	g.record("timeout")
	g.say(g.level.Last.Message, core.ColorRed)
	g.sched.After(g.runtime.TicksFor(g.cfg.Timer.TimeoutDelay), g.advance)
}

// advance moves to the next level, or ends the session after the last one.
func (g *Game) advance() {
	if !g.level.CanAdvance() {
		return
	}
	if g.level.Number >= g.cfg.Session.Levels {
		g.finish()
		return
	}
	g.loadLevel(g.level.Number + 1)
}

func (g *Game) finish() {
	g.sched.Invalidate()
	g.deadline = 0
	g.gameOver = true
	g.say(fmt.Sprintf("Session complete! Final score: %d", g.progress.Score), core.ColorBrightCyan)
}

// submit checks the answer and scores counted verdicts.
func (g *Game) submit() {
	if g.level.Done() {
		return
	}
	before := g.level.Attempts
	g.level = g.level.Submit(g.tolerances)
	r := g.level.Last

	if g.level.Attempts == before {
		g.say(r.Message, core.ColorYellow)
		return
	}
	g.record(r.Verdict.String())

	if r.Verdict == quiz.Correct {
		var award quiz.Award
		g.progress, award = g.progress.RecordCorrect(
			g.progress.Scoring().TimeBonus(g.secondsLeft()),
			g.elapsed().Seconds(),
		)
		msg := fmt.Sprintf("%s +%d points", r.Message, award.Points)
		if award.LevelUp {
			msg += fmt.Sprintf(" Level up! You're now level %d.", g.progress.Level)
		}
		g.say(msg, core.ColorBrightGreen)

		g.sched.Invalidate()
		g.deadline = 0
		g.sched.After(g.runtime.TicksFor(g.cfg.Session.AdvanceDelay), g.advance)
		return
	}

	g.progress = g.progress.RecordMiss()
	color := core.ColorRed
	if r.Verdict == quiz.PartialSlope || r.Verdict == quiz.PartialIntercept {
		color = core.ColorOrange
	}
	msg := r.Message
	if g.level.Done() {
		g.sched.Invalidate()
		g.deadline = 0
		msg += " Press N to continue."
	}
	g.say(msg, color)
}

// record queues a counted answer for the platform to persist.
func (g *Game) record(verdict string) {
	g.attempts = append(g.attempts, core.Attempt{
		Kind:    g.level.Question.Kind.String(),
		Level:   g.level.Number,
		Verdict: verdict,
		Elapsed: g.elapsed(),
	})
}

// elapsed is the time spent on the current level.
func (g *Game) elapsed() time.Duration {
	ticks := g.sched.Now() - g.levelStart
	return time.Duration(ticks) * time.Second / time.Duration(g.runtime.TickRate)
}

// secondsLeft is the countdown rounded up, or 0 without a countdown.
func (g *Game) secondsLeft() int {
	now := g.sched.Now()
	if g.deadline == 0 || now >= g.deadline {
		return 0
	}
	rate := uint64(g.runtime.TickRate)
	return int((g.deadline - now + rate - 1) / rate)
}

func (g *Game) say(text string, c core.Color) {
	g.feedback = feedback{text: text, color: c}
}

func init() {
	for _, v := range variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

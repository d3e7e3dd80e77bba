package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/graph-master/internal/core"
)

func TestRenderScreenPlainRows(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "y=2x")
	s.DrawText(1, 1, "+3")

	if got, expected := RenderScreen(s), "y=2x\n +3 "; got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestRenderScreenKeepsColoredText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "m=")
	s.DrawTextColored(2, 0, "-1/2", core.ColorBrightCyan)

	out := RenderScreen(s)
	if !strings.Contains(out, "m=") || !strings.Contains(out, "-1/2") {
		t.Errorf("RenderScreen() = %q, expected both runs", out)
	}
	if strings.Count(out, "\n") != 0 {
		t.Errorf("RenderScreen() of one row contains a newline")
	}
}

func TestStyleForInvalidColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("styleFor(invalid).Render() = %q, expected plain text", got)
	}
}

package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cactus-run/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawStyledText(1, 0, "Score: 1", core.ColorBrightWhite, core.ColorBlack)
	s.FillCells(0, 1, 12, 1, core.Cell{Rune: ' ', Bg: core.ColorPink})
	s.DrawText(0, 2, "ground")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Score: 1") {
		t.Errorf("first line lost its text: %q", lines[0])
	}
	if !strings.Contains(lines[2], "ground") {
		t.Errorf("last line lost its text: %q", lines[2])
	}
}

func TestStyleForCaches(t *testing.T) {
	a := styleFor(core.ColorRed, core.ColorBlack)
	b := styleFor(core.ColorRed, core.ColorBlack)
	if a.GetForeground() != b.GetForeground() || a.GetBackground() != b.GetBackground() {
		t.Error("cached style differs")
	}
	if _, ok := styleCache[colorPair{core.ColorRed, core.ColorBlack}]; !ok {
		t.Error("style was not cached")
	}
}

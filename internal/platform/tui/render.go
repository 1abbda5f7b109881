package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cactus-run/internal/core"
)

// ansiColors maps core.Color to ANSI 256-color codes.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:         lipgloss.Color("0"),
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorPink:          lipgloss.Color("218"),
	core.ColorBrown:         lipgloss.Color("94"),
	core.ColorSky:           lipgloss.Color("117"),
}

// colorPair keys the style cache.
type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per color pair. Only the Bubble Tea
// goroutine renders, so no locking.
var styleCache = map[colorPair]lipgloss.Style{}

// styleFor returns the style for a foreground and background pair.
// ColorDefault leaves the terminal's own color in place.
func styleFor(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if st, ok := styleCache[key]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if c, ok := ansiColors[fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := ansiColors[bg]; ok {
		st = st.Background(c)
	}
	styleCache[key] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

package tui

import (
	"math"

	"github.com/vovakirdan/cactus-run/internal/assets"
	"github.com/vovakirdan/cactus-run/internal/core"
	"github.com/vovakirdan/cactus-run/internal/runner"
)

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2.0

// Surface draws the logical scene into a character grid. The logical screen is
// scaled uniformly, accounting for tall cells, and centered in the grid.
type Surface struct {
	screen  *core.Screen
	atlas   *assets.Atlas
	logical core.Rect // Logical screen, origin at 0,0

	kx, ky     float64 // Cells per logical pixel
	offX, offY int     // Grid position of the logical origin
	viewW      int     // Scaled logical width in cells
	viewH      int     // Scaled logical height in cells
}

// NewSurface creates a surface for a logical screen of w x h pixels drawing into screen.
func NewSurface(screen *core.Screen, atlas *assets.Atlas, w, h float64) *Surface {
	s := &Surface{
		screen:  screen,
		atlas:   atlas,
		logical: core.NewRect(0, 0, w, h),
	}
	s.Layout()
	return s
}

// SetAtlas replaces the sprite source.
func (s *Surface) SetAtlas(a *assets.Atlas) {
	s.atlas = a
}

// Layout recomputes the scale after the underlying screen was resized.
func (s *Surface) Layout() {
	cols, rows := float64(s.screen.Width()), float64(s.screen.Height())
	if cols <= 0 || rows <= 0 || s.logical.W <= 0 || s.logical.H <= 0 {
		s.kx, s.ky, s.viewW, s.viewH = 0, 0, 0, 0
		return
	}
	s.kx = math.Min(cols/s.logical.W, rows*cellAspect/s.logical.H)
	s.ky = s.kx / cellAspect
	s.viewW = int(s.logical.W * s.kx)
	s.viewH = int(s.logical.H * s.ky)
	s.offX = (s.screen.Width() - s.viewW) / 2
	s.offY = (s.screen.Height() - s.viewH) / 2
}

// Viewport returns the grid area the logical screen occupies.
func (s *Surface) Viewport() (x, y, w, h int) {
	return s.offX, s.offY, s.viewW, s.viewH
}

// Clear implements runner.Surface.
func (s *Surface) Clear() {
	s.screen.Clear()
}

// ImageSize implements runner.Surface.
func (s *Surface) ImageSize(id assets.ID) (float64, float64) {
	sp, ok := s.atlas.Sprite(id)
	if !ok {
		return 0, 0
	}
	return sp.Width, sp.Height
}

// DrawImage implements runner.Surface. Transparent glyphs leave the cell as is.
func (s *Surface) DrawImage(id assets.ID, dst core.Rect) {
	sp, ok := s.atlas.Sprite(id)
	if !ok || dst.W <= 0 || dst.H <= 0 {
		return
	}
	s.eachCell(dst, func(cx, cy int, lx, ly float64) {
		c, ok := sp.Sample((lx-dst.X)/dst.W, (ly-dst.Y)/dst.H)
		if !ok {
			return
		}
		s.paint(cx, cy, c)
	})
}

// FillRect implements runner.Surface.
func (s *Surface) FillRect(dst core.Rect, c core.Color) {
	if c == core.ColorDefault {
		return
	}
	s.eachCell(dst, func(cx, cy int, _, _ float64) {
		s.paint(cx, cy, c)
	})
}

// DrawText implements runner.Surface. The text occupies the row holding the
// middle of its line; the outline color becomes the cell background.
func (s *Surface) DrawText(x, y float64, text string, style runner.TextStyle) {
	if s.viewW == 0 || s.viewH == 0 {
		return
	}
	cx := s.offX + int(x*s.kx)
	cy := s.offY + int((y-style.Size/2)*s.ky)
	cy = core.Clamp(cy, s.offY, s.offY+s.viewH-1)
	s.screen.DrawStyledText(cx, cy, text, style.Fill, style.Outline)
}

// paint sets a solid cell of color c.
func (s *Surface) paint(cx, cy int, c core.Color) {
	s.screen.SetCell(cx, cy, core.Cell{Rune: ' ', Bg: c})
}

// eachCell calls fn for every viewport cell whose center lies inside dst,
// passing the center in logical coordinates.
func (s *Surface) eachCell(dst core.Rect, fn func(cx, cy int, lx, ly float64)) {
	if s.viewW == 0 || s.viewH == 0 {
		return
	}
	clip := dst.Intersection(s.logical)
	if clip.W <= 0 || clip.H <= 0 {
		return
	}
	x0 := core.Max(int(math.Floor(clip.X*s.kx)), 0)
	x1 := core.Min(int(math.Ceil(clip.Right()*s.kx)), s.viewW)
	y0 := core.Max(int(math.Floor(clip.Y*s.ky)), 0)
	y1 := core.Min(int(math.Ceil(clip.Bottom()*s.ky)), s.viewH)

	for gy := y0; gy < y1; gy++ {
		ly := (float64(gy) + 0.5) / s.ky
		for gx := x0; gx < x1; gx++ {
			lx := (float64(gx) + 0.5) / s.kx
			if dst.Contains(lx, ly) {
				fn(s.offX+gx, s.offY+gy, lx, ly)
			}
		}
	}
}

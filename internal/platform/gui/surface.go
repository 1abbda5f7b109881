// Package gui provides the ebiten window frontend for Cactus Run.
// The window draws the logical screen at its native size and lets ebiten scale
// it into the window with the aspect ratio kept.
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/cactus-run/internal/assets"
	"github.com/vovakirdan/cactus-run/internal/core"
	"github.com/vovakirdan/cactus-run/internal/runner"
)

// outlineOffsets are the pixel shifts used to stroke text outlines.
var outlineOffsets = [][2]float64{
	{-2, 0}, {2, 0}, {0, -2}, {0, 2},
	{-2, -2}, {2, -2}, {-2, 2}, {2, 2},
}

// Surface draws into an ebiten image in logical pixels.
type Surface struct {
	atlas  *assets.Atlas
	images map[assets.ID]*ebiten.Image
	face   *text.GoXFace
	target *ebiten.Image
}

// NewSurface uploads every sprite of the atlas as a GPU image.
func NewSurface(atlas *assets.Atlas) *Surface {
	s := &Surface{
		atlas:  atlas,
		images: make(map[assets.ID]*ebiten.Image),
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
	for _, id := range atlas.IDs() {
		sp, _ := atlas.Sprite(id)
		s.images[id] = ebiten.NewImageFromImage(sp.Image())
	}
	return s
}

// Target sets the image drawn into during the current frame.
func (s *Surface) Target(dst *ebiten.Image) {
	s.target = dst
}

// Clear implements runner.Surface.
func (s *Surface) Clear() {
	s.target.Clear()
}

// ImageSize implements runner.Surface.
func (s *Surface) ImageSize(id assets.ID) (float64, float64) {
	sp, ok := s.atlas.Sprite(id)
	if !ok {
		return 0, 0
	}
	return sp.Width, sp.Height
}

// DrawImage implements runner.Surface with nearest-neighbour scaling.
func (s *Surface) DrawImage(id assets.ID, dst core.Rect) {
	img, ok := s.images[id]
	if !ok {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(b.Dx()), dst.H/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterNearest
	s.target.DrawImage(img, op)
}

// FillRect implements runner.Surface.
func (s *Surface) FillRect(dst core.Rect, c core.Color) {
	vector.DrawFilledRect(s.target,
		float32(dst.X), float32(dst.Y), float32(dst.W), float32(dst.H),
		c.RGBA(), false)
}

// DrawText implements runner.Surface. The bitmap face is scaled to the
// requested line height.
func (s *Surface) DrawText(x, y float64, str string, style runner.TextStyle) {
	s.drawText(x, y, str, style, text.AlignStart)
}

// DrawTextCentered draws outlined text centered on x.
func (s *Surface) DrawTextCentered(x, y float64, str string, style runner.TextStyle) {
	s.drawText(x, y, str, style, text.AlignCenter)
}

func (s *Surface) drawText(x, y float64, str string, style runner.TextStyle, align text.Align) {
	m := s.face.Metrics()
	lineH := m.HAscent + m.HDescent
	scale := 1.0
	if style.Size > 0 && lineH > 0 {
		scale = style.Size / lineH
	}
	top := y - m.HAscent*scale

	draw := func(dx, dy float64, c core.Color) {
		op := &text.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+dx, top+dy)
		op.ColorScale.ScaleWithColor(c.RGBA())
		op.PrimaryAlign = align
		text.Draw(s.target, str, s.face, op)
	}

	if style.Outline != core.ColorDefault {
		for _, off := range outlineOffsets {
			draw(off[0], off[1], style.Outline)
		}
	}
	draw(0, 0, style.Fill)
}

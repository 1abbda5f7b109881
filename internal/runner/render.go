package runner

import (
	"fmt"

	"github.com/vovakirdan/cactus-run/internal/assets"
	"github.com/vovakirdan/cactus-run/internal/core"
)

// TextStyle describes outlined text.
type TextStyle struct {
	Fill    core.Color
	Outline core.Color
	Size    float64 // Line height in logical pixels
}

// Surface is the render target. Coordinates are logical pixels of the fixed
// screen size; implementations scale to their device.
type Surface interface {
	// Clear erases the whole target.
	Clear()
	// ImageSize returns the natural size of a loaded image.
	ImageSize(id assets.ID) (w, h float64)
	// DrawImage stretches an image over dst.
	DrawImage(id assets.ID, dst core.Rect)
	// FillRect fills dst with a solid color.
	FillRect(dst core.Rect, c core.Color)
	// DrawText draws text whose baseline starts at (x, y).
	DrawText(x, y float64, text string, style TextStyle)
}

// ScoreStyle is the outline-plus-fill style of the score counter.
var ScoreStyle = TextStyle{Fill: core.ColorBrightWhite, Outline: core.ColorBlack, Size: 30}

// Render draws the current frame back to front. It draws in every state, so a
// halted game keeps showing its last frame.
func (g *Game) Render(dst Surface) {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height

	dst.Clear()

	dst.DrawImage(assets.Background, core.NewRect(0, 0, w, h))
	g.drawClouds(dst, w)

	dst.FillRect(core.NewRect(0, g.groundLine, w, g.cfg.Screen.GroundHeight), g.groundColor)

	for _, o := range g.spawner.Obstacles() {
		dst.DrawImage(assets.Obstacle, o.Rect())
	}
	dst.DrawImage(assets.Player, g.player.Rect())

	dst.DrawText(10, 30, fmt.Sprintf("Score: %d", g.score), ScoreStyle)
}

// drawClouds tiles the cloud layer across the screen, shifted by its offset.
func (g *Game) drawClouds(dst Surface, screenW float64) {
	tileW, tileH := dst.ImageSize(g.clouds.Sprite)
	if tileW <= 0 {
		return
	}
	offset := g.clouds.Offset(tileW)
	for i := 0; i < g.clouds.Repeat(tileW, screenW); i++ {
		dst.DrawImage(g.clouds.Sprite, core.NewRect(float64(i)*tileW-offset, 0, tileW, tileH))
	}
}

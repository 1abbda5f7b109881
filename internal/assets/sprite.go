// Package assets loads the sprites drawn by the scene renderer. Sprites are small
// YAML glyph grids so the same files serve both terminal cells and window pixels.
package assets

import (
	"embed"
	"fmt"
	"image"
	"io/fs"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cactus-run/internal/core"
)

//go:embed sprites/*.yaml
var embedded embed.FS

// Embedded returns the built-in sprite files rooted at the sprites directory.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "sprites")
	if err != nil {
		panic(err) // The directory is compiled in
	}
	return sub
}

// ID names a sprite role in the scene.
type ID string

const (
	Background ID = "background"
	Clouds     ID = "clouds"
	Player     ID = "player"
	Obstacle   ID = "obstacle"
)

// Sprite is a decoded glyph grid. Width and Height are the natural size in
// logical pixels; the grid is stretched over whatever rectangle it is drawn into.
type Sprite struct {
	ID      ID
	Width   float64
	Height  float64
	palette map[rune]core.Color
	rows    [][]rune
	cols    int
}

// spriteFile is the on-disk YAML layout.
type spriteFile struct {
	ID      ID                `yaml:"id"`
	Width   float64           `yaml:"width"`
	Height  float64           `yaml:"height"`
	Palette map[string]string `yaml:"palette"`
	Rows    []string          `yaml:"rows"`
}

// ParseSprite decodes and validates a sprite file.
// Spaces are transparent; every other glyph must appear in the palette.
func ParseSprite(data []byte) (*Sprite, error) {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode sprite: %w", err)
	}
	if f.ID == "" {
		return nil, fmt.Errorf("sprite has no id")
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("sprite %s: size must be positive, got %vx%v", f.ID, f.Width, f.Height)
	}
	if len(f.Rows) == 0 {
		return nil, fmt.Errorf("sprite %s: no rows", f.ID)
	}

	s := &Sprite{
		ID:      f.ID,
		Width:   f.Width,
		Height:  f.Height,
		palette: make(map[rune]core.Color, len(f.Palette)),
		rows:    make([][]rune, len(f.Rows)),
	}

	for key, name := range f.Palette {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("sprite %s: palette key %q must be a single glyph", f.ID, key)
		}
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("sprite %s: unknown color %q", f.ID, name)
		}
		r, _ := utf8.DecodeRuneInString(key)
		s.palette[r] = c
	}

	s.cols = utf8.RuneCountInString(f.Rows[0])
	for i, row := range f.Rows {
		runes := []rune(row)
		if len(runes) != s.cols {
			return nil, fmt.Errorf("sprite %s: row %d has %d glyphs, expected %d", f.ID, i, len(runes), s.cols)
		}
		for _, r := range runes {
			if _, ok := s.palette[r]; r != ' ' && !ok {
				return nil, fmt.Errorf("sprite %s: glyph %q in row %d is not in the palette", f.ID, r, i)
			}
		}
		s.rows[i] = runes
	}
	return s, nil
}

// Placeholder returns a solid magenta block standing in for a sprite that failed to load.
func Placeholder(id ID, width, height float64) *Sprite {
	return &Sprite{
		ID:      id,
		Width:   width,
		Height:  height,
		palette: map[rune]core.Color{'#': core.ColorBrightMagenta},
		rows:    [][]rune{{'#'}},
		cols:    1,
	}
}

// Cols returns the grid width in glyphs.
func (s *Sprite) Cols() int {
	return s.cols
}

// Lines returns the grid height in glyphs.
func (s *Sprite) Lines() int {
	return len(s.rows)
}

// At returns the color of a grid position. ok is false for transparent or
// out-of-range positions.
func (s *Sprite) At(col, row int) (c core.Color, ok bool) {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= s.cols {
		return core.ColorDefault, false
	}
	c, ok = s.palette[s.rows[row][col]]
	return c, ok
}

// Sample maps normalized coordinates u, v in [0, 1) onto the grid using
// nearest-neighbour lookup.
func (s *Sprite) Sample(u, v float64) (core.Color, bool) {
	col := core.Clamp(int(u*float64(s.cols)), 0, s.cols-1)
	row := core.Clamp(int(v*float64(len(s.rows))), 0, len(s.rows)-1)
	return s.At(col, row)
}

// Image rasterizes the grid at one pixel per glyph. Transparent glyphs stay
// fully transparent; callers scale the result to Width x Height.
func (s *Sprite) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.cols, len(s.rows)))
	for row := range s.rows {
		for col := 0; col < s.cols; col++ {
			if c, ok := s.At(col, row); ok {
				img.SetRGBA(col, row, c.RGBA())
			}
		}
	}
	return img
}

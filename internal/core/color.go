package core

import (
	"image/color"
	"strings"
)

// Color represents a named palette entry used by sprites and draw commands.
// Terminal adapters map it to ANSI 256-color codes, window adapters to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorBrown
	ColorSky
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"black":          ColorBlack,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
	"pink":           ColorPink,
	"brown":          ColorBrown,
	"sky":            ColorSky,
}

var colorRGBA = map[Color]color.RGBA{
	ColorDefault:       {0x00, 0x00, 0x00, 0x00},
	ColorBlack:         {0x00, 0x00, 0x00, 0xff},
	ColorRed:           {0xcd, 0x31, 0x31, 0xff},
	ColorGreen:         {0x3c, 0x9a, 0x3c, 0xff},
	ColorYellow:        {0xe5, 0xe5, 0x10, 0xff},
	ColorBlue:          {0x24, 0x72, 0xc8, 0xff},
	ColorMagenta:       {0xbc, 0x3f, 0xbc, 0xff},
	ColorCyan:          {0x11, 0xa8, 0xcd, 0xff},
	ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	ColorBrightRed:     {0xf1, 0x4c, 0x4c, 0xff},
	ColorBrightGreen:   {0x23, 0xd1, 0x8b, 0xff},
	ColorBrightYellow:  {0xf5, 0xf5, 0x43, 0xff},
	ColorBrightBlue:    {0x3b, 0x8e, 0xea, 0xff},
	ColorBrightMagenta: {0xd6, 0x70, 0xd6, 0xff},
	ColorBrightCyan:    {0x29, 0xb8, 0xdb, 0xff},
	ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
	ColorPink:          {0xf0, 0xac, 0xeb, 0xff},
	ColorBrown:         {0x8b, 0x5a, 0x2b, 0xff},
	ColorSky:           {0x87, 0xce, 0xeb, 0xff},
}

// ParseColor resolves a palette name such as "bright_green" (case-insensitive).
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// RGBA returns the color's display value for pixel-based render targets.
// ColorDefault is fully transparent.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := colorRGBA[c]; ok {
		return rgba
	}
	return colorRGBA[ColorDefault]
}

package graphics

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type Color struct {
	R, G, B uint8
}

type Point struct {
	X, Y float64
}

var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

// Lighten blends c toward white by factor, rounding each channel down.
func (c Color) Lighten(factor float64) Color {
	return Color{
		R: lightenChannel(c.R, factor),
		G: lightenChannel(c.G, factor),
		B: lightenChannel(c.B, factor),
	}
}

func lightenChannel(c uint8, factor float64) uint8 {
	v := float64(c) + (255-float64(c))*factor
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the color as #RRGGBB
func (c Color) Hex() string {
	return strings.ToUpper(c.colorful().Hex())
}

func (c Color) Luminance() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// Contrast picks a readable text color to put on top of c.
func (c Color) Contrast() Color {
	if c.Luminance() > 150 {
		return Black
	}
	return White
}

// Blend interpolates linearly in RGB space, t = 0 is c and t = 1 is o.
func (c Color) Blend(o Color, t float64) Color {
	r, g, b := c.colorful().BlendRgb(o.colorful(), t).Clamped().RGB255()
	return Color{r, g, b}
}

// NRGBA returns c with the given opacity in [0, 1].
func (c Color) NRGBA(opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(opacity*255 + 0.5)}
}

func (c Color) Opaque() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// ParseHex reads a #RRGGBB string.
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if nil != err {
		return Color{}, err
	}
	r, g, b := cf.RGB255()
	return Color{r, g, b}, nil
}

package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex parses a #rrggbb color, falling back to fallback when s is malformed.
func Hex(s string, fallback color.Color) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	return c
}

// WithAlpha returns c as non-premultiplied RGBA with the given opacity.
func WithAlpha(c color.Color, opacity float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(clamp01(opacity) * 255))
	return n
}

// Blend mixes a toward b by t in RGB space.
func Blend(a, b color.Color, t float64) color.Color {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	return ca.BlendRgb(cb, clamp01(t)).Clamped()
}

// Hue returns a fully opaque color at hue h (degrees) with saturation s and value v.
func Hue(h, s, v float64) color.Color {
	return colorful.Hsv(math.Mod(h, 360), s, v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

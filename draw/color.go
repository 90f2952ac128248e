package draw

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight alpha RGBA colour with components in 0..1
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

// RGB creates an opaque colour
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA8 creates a colour from 8 bit components
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: float32(r) / 255.0, G: float32(g) / 255.0, B: float32(b) / 255.0, A: float32(a) / 255.0}
}

// HSV creates an opaque colour from hue (0..1), saturation and value
func HSV(h, s, v float32) Color {
	return fromColorful(colorful.Hsv(float64(h)*360.0, float64(s), float64(v)), 1)
}

// ParseHex parses "#rrggbb" or "#rrggbbaa"
func ParseHex(s string) (Color, error) {
	alpha := float32(1)
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return Transparent, fmt.Errorf("invalid alpha in colour '%v': %w", s, err)
		}
		alpha = float32(a) / 255.0
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Transparent, fmt.Errorf("invalid colour '%v': %w", s, err)
	}
	return fromColorful(c, alpha), nil
}

// MustParseHex is ParseHex for colour literals known to be valid
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns "#rrggbb", or "#rrggbbaa" when the colour is not opaque
func (c Color) Hex() string {
	hex := c.colorful().Clamped().Hex()
	if c.A < 1 {
		return fmt.Sprintf("%s%02x", hex, uint8(clamp01(c.A)*255.0+0.5))
	}
	return hex
}

// Blend mixes c towards other by t (0..1) in CIE-L*a*b* space
func (c Color) Blend(other Color, t float32) Color {
	mixed := c.colorful().BlendLab(other.colorful(), float64(t)).Clamped()
	return fromColorful(mixed, c.A+(other.A-c.A)*t)
}

// WithAlpha returns c with its alpha replaced
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// RGBA8 returns the colour as 8 bit components
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

func fromColorful(c colorful.Color, alpha float32) Color {
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: alpha}
}

func to8(v float32) uint8 {
	return uint8(clamp01(v)*255.0 + 0.5)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package hmath

import (
	"encoding/hex"
	"fmt"
	"math"
)

// HSVToRGBComponents converts hue, saturation and value (all in [0,1]) to RGB.
func HSVToRGBComponents(h, s, v, a float32) Color {
	return HSVToRGB(Vector4{h, s, v, a})
}

// HSVToRGB converts hsv (X=hue, Y=saturation, Z=value, W=alpha) to RGB using the
// six-sector decomposition. Alpha passes through.
func HSVToRGB(hsv Vector4) Color {
	h := float64(hsv.X)
	s := float64(hsv.Y)
	v := float64(hsv.Z)

	c := s * v
	hp := h * 6
	x := c * (1 - math.Abs(mod(hp, 2)-1))
	m := v - c

	var r, g, b float64
	switch int(mod(math.Floor(hp), 6)) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{float32(r + m), float32(g + m), float32(b + m), hsv.W}
}

// RGBToHSV returns X=hue, Y=saturation, Z=value, W=alpha with hue normalized to [0,1).
func RGBToHSV(c Color) Vector4 {
	h, xmax, xmin := hue(c)
	return Vector4{float32(h), float32(saturation(xmax, xmin)), float32(xmax), c.A}
}

// RGBToHSL returns X=hue, Y=saturation, Z=lightness, W=alpha. Lightness is
// computed as (max-min)/2.
func RGBToHSL(c Color) Vector4 {
	h, xmax, xmin := hue(c)
	return Vector4{float32(h), float32(saturation(xmax, xmin)), float32((xmax - xmin) / 2), c.A}
}

// HexToRGB parses a 6 digit RRGGBB string into an opaque color.
func HexToRGB(s string) (Color, error) {
	if len(s) != 6 {
		return Color{}, fmt.Errorf("hex color %q must have 6 characters: %w", s, ErrInvalidFormat)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Color{}, fmt.Errorf("hex color %q: %v: %w", s, err, ErrInvalidFormat)
	}
	return Color{
		R: float32(raw[0]) / 255,
		G: float32(raw[1]) / 255,
		B: float32(raw[2]) / 255,
		A: 1,
	}, nil
}

// Hex formats the RGB channels as an uppercase RRGGBB string. Channels are
// clamped to [0,1] first.
func (c Color) Hex() string {
	cc := c.Clamp01()
	return fmt.Sprintf("%02X%02X%02X", toByte(cc.R), toByte(cc.G), toByte(cc.B))
}

func toByte(v float32) uint8 {
	return uint8(math.Round(float64(v) * 255))
}

func hue(c Color) (h, xmax, xmin float64) {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	xmax = math.Max(math.Max(r, g), b)
	xmin = math.Min(math.Min(r, g), b)
	chroma := xmax - xmin

	switch {
	case isNearlyZero64(chroma):
		h = 0
	case isNearlyEqual64(xmax, r):
		h = mod(60*((g-b)/chroma)+360, 360)
	case isNearlyEqual64(xmax, g):
		h = mod(60*((b-r)/chroma)+120, 360)
	default:
		h = mod(60*((r-g)/chroma)+240, 360)
	}
	return h / 360, xmax, xmin
}

func saturation(xmax, xmin float64) float64 {
	if isNearlyZero64(xmax) {
		return 0
	}
	return (xmax - xmin) / xmax
}

// mod is a floored modulo: the result has the sign of n.
func mod(v, n float64) float64 {
	r := math.Mod(v, n)
	if r < 0 {
		r += n
	}
	return r
}

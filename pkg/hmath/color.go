package hmath

import (
	"fmt"
	"math/rand/v2"
)

// Color is an RGBA color. Channels are nominally in [0,1] but are not clamped on
// construction; only Clamp01 and Lerp enforce the range.
type Color struct {
	R, G, B, A float32
}

// Named colors.
var (
	Black     = Color{0, 0, 0, 1}
	White     = Color{1, 1, 1, 1}
	Clear     = Color{0, 0, 0, 0}
	Red       = Color{1, 0, 0, 1}
	Green     = Color{0, 1, 0, 1}
	Blue      = Color{0, 0, 1, 1}
	Cyan      = Color{0, 1, 1, 1}
	Gray      = Color{0.5, 0.5, 0.5, 1}
	Grey      = Gray
	Magenta   = Color{1, 0, 1, 1}
	Turquoise = Color{0.251, 0.878, 0.816, 1}
	Yellow    = Color{1, 0.92, 0.016, 1}
	Orange    = Color{1, 0.5, 0, 1}
)

// RandomColor draws every channel, alpha included, uniformly from [0,1).
func RandomColor() Color {
	return Color{rand.Float32(), rand.Float32(), rand.Float32(), rand.Float32()}
}

// NewColor builds an opaque color.
func NewColor(r, g, b float32) Color { return Color{r, g, b, 1} }

func NewColorRGBA(r, g, b, a float32) Color { return Color{r, g, b, a} }

// ColorScalar broadcasts v to all four channels, alpha included.
func ColorScalar(v float32) Color { return Color{v, v, v, v} }

// ColorFromVector4 maps X,Y,Z,W to R,G,B,A.
func ColorFromVector4(v Vector4) Color { return Color{v.X, v.Y, v.Z, v.W} }

func (c Color) ToVector4() Vector4 { return Vector4{c.R, c.G, c.B, c.A} }

// Add returns the channel-wise sum.
func (c Color) Add(o Color) Color { return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A} }

// Sub returns the channel-wise difference.
func (c Color) Sub(o Color) Color { return Color{c.R - o.R, c.G - o.G, c.B - o.B, c.A - o.A} }

// Mul returns the channel-wise product.
func (c Color) Mul(o Color) Color { return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A} }

// Div divides channel-wise. Any channel whose divisor is near zero becomes 0.
func (c Color) Div(o Color) Color {
	return Color{safeDiv(c.R, o.R), safeDiv(c.G, o.G), safeDiv(c.B, o.B), safeDiv(c.A, o.A)}
}

// AddScalar adds s to every channel.
func (c Color) AddScalar(s float32) Color { return Color{c.R + s, c.G + s, c.B + s, c.A + s} }

// SubScalar subtracts s from every channel.
func (c Color) SubScalar(s float32) Color { return Color{c.R - s, c.G - s, c.B - s, c.A - s} }

// Scale multiplies every channel by s.
func (c Color) Scale(s float32) Color { return Color{c.R * s, c.G * s, c.B * s, c.A * s} }

// DivScalar returns Clear when s is near zero.
func (c Color) DivScalar(s float32) Color {
	if IsNearlyZero(s) {
		return Clear
	}
	return Color{c.R / s, c.G / s, c.B / s, c.A / s}
}

// Neg subtracts every channel from zero, alpha included.
func (c Color) Neg() Color { return Clear.Sub(c) }

// Clamp01 clamps every channel to [0,1].
func (c Color) Clamp01() Color {
	return Color{Clamp(c.R, 0, 1), Clamp(c.G, 0, 1), Clamp(c.B, 0, 1), Clamp(c.A, 0, 1)}
}

// LerpUnclamped interpolates every channel without clamping t or the result.
func (c Color) LerpUnclamped(o Color, t float32) Color {
	return Color{
		o.R*t + c.R*(1-t),
		o.G*t + c.G*(1-t),
		o.B*t + c.B*(1-t),
		o.A*t + c.A*(1-t),
	}
}

// Lerp interpolates and then clamps every channel to [0,1].
func (c Color) Lerp(o Color, t float32) Color {
	return c.LerpUnclamped(o, t).Clamp01()
}

// GrayscaleValue is the ITU-R BT.601 luma of c.
func (c Color) GrayscaleValue() float32 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Grayscale replicates the luma into R, G and B, keeping alpha.
func (c Color) Grayscale() Color {
	v := c.GrayscaleValue()
	return Color{v, v, v, c.A}
}

// NearlyEqual compares channels within Epsilon.
func (c Color) NearlyEqual(o Color) bool {
	return IsNearlyEqual(c.R, o.R) && IsNearlyEqual(c.G, o.G) &&
		IsNearlyEqual(c.B, o.B) && IsNearlyEqual(c.A, o.A)
}

// Index returns channel i (0=R, 1=G, 2=B, 3=A).
func (c Color) Index(i int) (float32, error) {
	switch i {
	case 0:
		return c.R, nil
	case 1:
		return c.G, nil
	case 2:
		return c.B, nil
	case 3:
		return c.A, nil
	}
	return 0, indexError("Color", i)
}

func (c *Color) SetIndex(i int, value float32) error {
	switch i {
	case 0:
		c.R = value
	case 1:
		c.G = value
	case 2:
		c.B = value
	case 3:
		c.A = value
	default:
		return indexError("Color", i)
	}
	return nil
}

func (c Color) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f, %.3f)", c.R, c.G, c.B, c.A)
}

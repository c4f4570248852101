package hmath

import "fmt"

// Vector2 is a 2D single-precision vector.
type Vector2 struct {
	X, Y float32
}

var (
	Vector2Zero  = Vector2{}
	Vector2One   = Vector2{1, 1}
	Vector2Up    = Vector2{0, 1}
	Vector2Right = Vector2{1, 0}
)

// NewVector2 builds a vector from explicit components.
func NewVector2(x, y float32) Vector2 { return Vector2{X: x, Y: y} }

// Vector2Scalar broadcasts s to every component.
func Vector2Scalar(s float32) Vector2 { return Vector2{s, s} }

// ToVector3 appends z.
func (v Vector2) ToVector3(z float32) Vector3 { return Vector3{v.X, v.Y, z} }

// ToVector4 appends z and w.
func (v Vector2) ToVector4(z, w float32) Vector4 { return Vector4{v.X, v.Y, z, w} }

// Add returns the component-wise sum.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product.
func (v Vector2) Mul(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }

// Div divides component-wise. Any component whose divisor is near zero becomes 0.
func (v Vector2) Div(o Vector2) Vector2 {
	return Vector2{safeDiv(v.X, o.X), safeDiv(v.Y, o.Y)}
}

// AddScalar adds s to every component.
func (v Vector2) AddScalar(s float32) Vector2 { return Vector2{v.X + s, v.Y + s} }

// SubScalar subtracts s from every component.
func (v Vector2) SubScalar(s float32) Vector2 { return Vector2{v.X - s, v.Y - s} }

// Scale multiplies every component by s.
func (v Vector2) Scale(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }

// DivScalar returns the zero vector when s is near zero.
func (v Vector2) DivScalar(s float32) Vector2 {
	if IsNearlyZero(s) {
		return Vector2Zero
	}
	return Vector2{v.X / s, v.Y / s}
}

// Neg flips the sign of every component.
func (v Vector2) Neg() Vector2 { return Vector2Zero.Sub(v) }

// Dot returns the dot product.
func (v Vector2) Dot(o Vector2) float32 { return v.X*o.X + v.Y*o.Y }

// Length returns the Euclidean length.
func (v Vector2) Length() float32 { return sqrt32(v.Dot(v)) }

// LengthSquared returns the dot product of v with itself.
func (v Vector2) LengthSquared() float32 { return v.Dot(v) }

// Normalize returns v scaled to unit length, or zero when |v| is near zero.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if IsNearlyZero(l) {
		return Vector2Zero
	}
	return v.DivScalar(l)
}

// Distance returns the length of v - o.
func (v Vector2) Distance(o Vector2) float32 { return v.Sub(o).Length() }

// Lerp interpolates without clamping t.
func (v Vector2) Lerp(o Vector2, t float32) Vector2 {
	return v.Scale(1 - t).Add(o.Scale(t))
}

// Clamp clamps each component to [lo, hi].
func (v Vector2) Clamp(lo, hi Vector2) Vector2 {
	return Vector2{Clamp(v.X, lo.X, hi.X), Clamp(v.Y, lo.Y, hi.Y)}
}

// ClampLength rescales v to maxLen when it is shorter than maxLen and returns it
// unchanged otherwise.
func (v Vector2) ClampLength(maxLen float32) Vector2 {
	if v.LengthSquared() < maxLen*maxLen {
		return v.Normalize().Scale(maxLen)
	}
	return v
}

// Reflect mirrors v about the line with the given normal.
func (v Vector2) Reflect(normal Vector2) Vector2 {
	return v.Sub(normal.Scale(v.Dot(normal) * 2))
}

// NearlyEqual compares components within Epsilon.
func (v Vector2) NearlyEqual(o Vector2) bool {
	return IsNearlyEqual(v.X, o.X) && IsNearlyEqual(v.Y, o.Y)
}

// Index returns component i (0=X, 1=Y).
func (v Vector2) Index(i int) (float32, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, indexError("Vector2", i)
}

func (v *Vector2) SetIndex(i int, value float32) error {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		return indexError("Vector2", i)
	}
	return nil
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

package hmath

import "fmt"

// Vector4 is a 4D single-precision vector.
type Vector4 struct {
	X, Y, Z, W float32
}

var (
	Vector4Zero = Vector4{}
	Vector4One  = Vector4{1, 1, 1, 1}
)

// NewVector4 builds a vector from its components.
func NewVector4(x, y, z, w float32) Vector4 { return Vector4{X: x, Y: y, Z: z, W: w} }

// Vector4Scalar broadcasts s to every component.
func Vector4Scalar(s float32) Vector4 { return Vector4{s, s, s, s} }

// ToVector2 drops Z and W.
func (v Vector4) ToVector2() Vector2 { return Vector2{v.X, v.Y} }

// ToVector3 drops W.
func (v Vector4) ToVector3() Vector3 { return Vector3{v.X, v.Y, v.Z} }

// Add returns the component-wise sum.
func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns the component-wise difference.
func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Mul returns the component-wise product.
func (v Vector4) Mul(o Vector4) Vector4 {
	return Vector4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Div divides component-wise. Any component whose divisor is near zero becomes 0.
func (v Vector4) Div(o Vector4) Vector4 {
	return Vector4{safeDiv(v.X, o.X), safeDiv(v.Y, o.Y), safeDiv(v.Z, o.Z), safeDiv(v.W, o.W)}
}

// AddScalar adds s to every component.
func (v Vector4) AddScalar(s float32) Vector4 { return Vector4{v.X + s, v.Y + s, v.Z + s, v.W + s} }

// SubScalar subtracts s from every component.
func (v Vector4) SubScalar(s float32) Vector4 { return Vector4{v.X - s, v.Y - s, v.Z - s, v.W - s} }

// Scale multiplies every component by s.
func (v Vector4) Scale(s float32) Vector4 { return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// DivScalar returns the zero vector when s is near zero.
func (v Vector4) DivScalar(s float32) Vector4 {
	if IsNearlyZero(s) {
		return Vector4Zero
	}
	return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Neg flips the sign of every component.
func (v Vector4) Neg() Vector4 { return Vector4Zero.Sub(v) }

// Dot returns the dot product.
func (v Vector4) Dot(o Vector4) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }

// Length returns the Euclidean length.
func (v Vector4) Length() float32 { return sqrt32(v.Dot(v)) }

// LengthSquared returns the dot product of v with itself.
func (v Vector4) LengthSquared() float32 { return v.Dot(v) }

// Normalize returns v scaled to unit length, or zero when |v| is near zero.
func (v Vector4) Normalize() Vector4 {
	l := v.Length()
	if IsNearlyZero(l) {
		return Vector4Zero
	}
	return v.DivScalar(l)
}

// Distance returns the length of v - o.
func (v Vector4) Distance(o Vector4) float32 { return v.Sub(o).Length() }

// Lerp interpolates without clamping t.
func (v Vector4) Lerp(o Vector4, t float32) Vector4 {
	return v.Scale(1 - t).Add(o.Scale(t))
}

// Clamp clamps each component to [lo, hi].
func (v Vector4) Clamp(lo, hi Vector4) Vector4 {
	return Vector4{
		Clamp(v.X, lo.X, hi.X),
		Clamp(v.Y, lo.Y, hi.Y),
		Clamp(v.Z, lo.Z, hi.Z),
		Clamp(v.W, lo.W, hi.W),
	}
}

// ClampLength rescales v to maxLen when it is shorter than maxLen and returns it
// unchanged otherwise.
func (v Vector4) ClampLength(maxLen float32) Vector4 {
	if v.LengthSquared() < maxLen*maxLen {
		return v.Normalize().Scale(maxLen)
	}
	return v
}

func (v Vector4) Reflect(normal Vector4) Vector4 {
	return v.Sub(normal.Scale(v.Dot(normal) * 2))
}

// NearlyEqual compares components within Epsilon.
func (v Vector4) NearlyEqual(o Vector4) bool {
	return IsNearlyEqual(v.X, o.X) && IsNearlyEqual(v.Y, o.Y) &&
		IsNearlyEqual(v.Z, o.Z) && IsNearlyEqual(v.W, o.W)
}

// Index returns component i (0=X, 1=Y, 2=Z, 3=W).
func (v Vector4) Index(i int) (float32, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	}
	return 0, indexError("Vector4", i)
}

func (v *Vector4) SetIndex(i int, value float32) error {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	case 3:
		v.W = value
	default:
		return indexError("Vector4", i)
	}
	return nil
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f, %.2f)", v.X, v.Y, v.Z, v.W)
}

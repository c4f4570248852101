package hmath

import "fmt"

// Vector3 is a 3D single-precision vector.
type Vector3 struct {
	X, Y, Z float32
}

var (
	Vector3Zero  = Vector3{}
	Vector3One   = Vector3{1, 1, 1}
	Vector3Up    = Vector3{0, 1, 0}
	Vector3Right = Vector3{1, 0, 0}
)

// NewVector3 builds a vector from its components.
func NewVector3(x, y, z float32) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// Vector3Scalar broadcasts s to every component.
func Vector3Scalar(s float32) Vector3 { return Vector3{s, s, s} }

// ToVector2 drops Z.
func (v Vector3) ToVector2() Vector2 { return Vector2{v.X, v.Y} }

// ToVector4 appends w.
func (v Vector3) ToVector4(w float32) Vector4 { return Vector4{v.X, v.Y, v.Z, w} }

// Add returns the component-wise sum.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns the component-wise product.
func (v Vector3) Mul(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Div divides component-wise. Any component whose divisor is near zero becomes 0.
func (v Vector3) Div(o Vector3) Vector3 {
	return Vector3{safeDiv(v.X, o.X), safeDiv(v.Y, o.Y), safeDiv(v.Z, o.Z)}
}

// AddScalar adds s to every component.
func (v Vector3) AddScalar(s float32) Vector3 { return Vector3{v.X + s, v.Y + s, v.Z + s} }

// SubScalar subtracts s from every component.
func (v Vector3) SubScalar(s float32) Vector3 { return Vector3{v.X - s, v.Y - s, v.Z - s} }

// Scale multiplies every component by s.
func (v Vector3) Scale(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// DivScalar returns the zero vector when s is near zero.
func (v Vector3) DivScalar(s float32) Vector3 {
	if IsNearlyZero(s) {
		return Vector3Zero
	}
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// Neg flips the sign of every component.
func (v Vector3) Neg() Vector3 { return Vector3Zero.Sub(v) }

// Dot returns the dot product.
func (v Vector3) Dot(o Vector3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length.
func (v Vector3) Length() float32 { return sqrt32(v.Dot(v)) }

// LengthSquared returns the dot product of v with itself.
func (v Vector3) LengthSquared() float32 { return v.Dot(v) }

// Normalize returns v scaled to unit length, or zero when |v| is near zero.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if IsNearlyZero(l) {
		return Vector3Zero
	}
	return v.DivScalar(l)
}

// Distance returns the length of v - o.
func (v Vector3) Distance(o Vector3) float32 { return v.Sub(o).Length() }

// Lerp interpolates without clamping t.
func (v Vector3) Lerp(o Vector3, t float32) Vector3 {
	return v.Scale(1 - t).Add(o.Scale(t))
}

// Clamp clamps each component to [lo, hi].
func (v Vector3) Clamp(lo, hi Vector3) Vector3 {
	return Vector3{Clamp(v.X, lo.X, hi.X), Clamp(v.Y, lo.Y, hi.Y), Clamp(v.Z, lo.Z, hi.Z)}
}

// ClampLength rescales v to maxLen when it is shorter than maxLen and returns it
// unchanged otherwise.
func (v Vector3) ClampLength(maxLen float32) Vector3 {
	if v.LengthSquared() < maxLen*maxLen {
		return v.Normalize().Scale(maxLen)
	}
	return v
}

// Reflect mirrors v about the plane with the given normal.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.Scale(v.Dot(normal) * 2))
}

// NearlyEqual compares components within Epsilon.
func (v Vector3) NearlyEqual(o Vector3) bool {
	return IsNearlyEqual(v.X, o.X) && IsNearlyEqual(v.Y, o.Y) && IsNearlyEqual(v.Z, o.Z)
}

// Index returns component i (0=X, 1=Y, 2=Z).
func (v Vector3) Index(i int) (float32, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, indexError("Vector3", i)
}

func (v *Vector3) SetIndex(i int, value float32) error {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		return indexError("Vector3", i)
	}
	return nil
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

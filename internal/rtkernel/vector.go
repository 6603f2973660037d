package rtkernel

import (
	"fmt"
	"math"
)

// Vec4 is a homogeneous 4-component tuple.
// W == 1 marks a point, W == 0 marks a free vector, so the same arithmetic
// serves both: point-point is a vector, point+vector is a point.
type Vec4 struct {
	X, Y, Z, W Real
}

func NewVec4(x, y, z, w Real) Vec4 { return Vec4{x, y, z, w} }

// Point returns a position (w = 1).
func Point(x, y, z Real) Vec4 { return Vec4{x, y, z, 1} }

// Vector returns a direction (w = 0).
func Vector(x, y, z Real) Vec4 { return Vec4{x, y, z, 0} }

func (a Vec4) IsPoint() bool  { return a.W == 1 }
func (a Vec4) IsVector() bool { return a.W == 0 }

// Vector functions
func (a Vec4) Add(b Vec4) Vec4 { return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Vec4) Sub(b Vec4) Vec4 { return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (a Vec4) Mul(s Real) Vec4 { return Vec4{a.X * s, a.Y * s, a.Z * s, a.W * s} }
func (a Vec4) Div(s Real) Vec4 { return Vec4{a.X / s, a.Y / s, a.Z / s, a.W / s} }
func (a Vec4) Neg() Vec4       { return Vec4{-a.X, -a.Y, -a.Z, -a.W} }

// Dot returns the dot product over all four components.
func (a Vec4) Dot(b Vec4) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns the 3D cross product of the xyz parts; the result is always a vector.
func (a Vec4) Cross(b Vec4) Vec4 {
	return Vector(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Magnitude returns the Euclidean length including w.
func (a Vec4) Magnitude() Real { return math.Sqrt(a.Dot(a)) }

// Normalize returns a unit-length copy of a.
// Division alone can leave the magnitude an ulp or two off 1.0, so the first
// non-zero axis is nudged by normalizeNudge toward 1.0, then single-ulp steps
// cycle over the non-zero axes until the magnitude is exactly 1.
// A zero vector is returned unchanged.
func (a Vec4) Normalize() Vec4 {
	l := a.Magnitude()
	if l == 0 {
		return a
	}
	n := a.Div(l)
	m := n.Magnitude()
	if m == 1 {
		return n
	}
	axes := make([]*Real, 0, 3)
	for _, c := range []*Real{&n.X, &n.Y, &n.Z} {
		if *c != 0 {
			axes = append(axes, c)
		}
	}
	if len(axes) == 0 {
		return n
	}
	toward := func(m Real) Real {
		if m < 1 {
			return 1
		}
		return -1
	}
	first := axes[0]
	*first += toward(m) * normalizeNudge * math.Copysign(1, *first)
	for i := 0; i < normalizeSteps; i++ {
		m = n.Magnitude()
		if m == 1 {
			break
		}
		c := axes[i%len(axes)]
		*c = math.Nextafter(*c, math.Copysign(math.Inf(1), *c*toward(m)))
	}
	return n
}

// Equal reports approximate equality of all four components.
func (a Vec4) Equal(b Vec4) bool {
	return EqualApprox(a.X, b.X) &&
		EqualApprox(a.Y, b.Y) &&
		EqualApprox(a.Z, b.Z) &&
		EqualApprox(a.W, b.W)
}

func (a Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", a.X, a.Y, a.Z, a.W)
}

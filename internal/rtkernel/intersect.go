package rtkernel

import (
	"fmt"
	"math"
)

// Intersections holds ray parameters in ascending order: none, or two
// (equal for a tangent hit).
type Intersections []Real

// Hit returns the smallest non-negative t.
func (xs Intersections) Hit() (Real, bool) {
	for _, t := range xs {
		if t >= 0 {
			return t, true
		}
	}
	return 0, false
}

// Intersect returns the parameters at which r meets the surface of s.
// The ray is taken into object space with the inverse of s.Transform;
// a non-invertible transform yields an error wrapping ErrDegenerateMatrix.
// Roots are returned as computed, without any epsilon bias.
func Intersect(s Sphere, r Ray) (Intersections, error) {
	inv, err := s.Transform.Inverse()
	if err != nil {
		return nil, fmt.Errorf("sphere #%d: %w", s.ID, err)
	}
	local := r.Transform(inv)

	sphereToRay := local.Origin.Sub(Point(0, 0, 0))
	a := local.Direction.Dot(local.Direction)
	b := 2 * local.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1
	disc := b*b - 4*a*c
	if disc < 0 {
		return Intersections{}, nil
	}
	sqrtD := math.Sqrt(disc)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	return Intersections{t0, t1}, nil
}

// Intersector runs Intersect and optionally records each outcome under Name.
// It is safe for concurrent use when Log is shared.
type Intersector struct {
	Name string
	Log  *RayLogCache
}

func (in Intersector) Intersect(s Sphere, r Ray) (Intersections, error) {
	xs, err := Intersect(s, r)
	if in.Log == nil {
		return xs, err
	}
	category := Miss
	switch {
	case err != nil:
		category = Degenerate
	case len(xs) == 2 && xs[0] == xs[1]:
		category = Tangent
	case len(xs) == 2:
		category = Hit
	}
	in.Log.logRay(in.Name, category, r, s.ID, xs)
	return xs, err
}

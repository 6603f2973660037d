package rtkernel

// Ray starts at a point and travels along a direction.
// Direction is not required to be unit length.
type Ray struct {
	Origin    Vec4
	Direction Vec4
}

func NewRay(origin, direction Vec4) Ray { return Ray{Origin: origin, Direction: direction} }

// Position returns origin + t·direction.
func (r Ray) Position(t Real) Vec4 { return r.Origin.Add(r.Direction.Mul(t)) }

// Transform applies M to both origin and direction.
func (r Ray) Transform(M Mat4) Ray {
	return Ray{Origin: M.MulVec(r.Origin), Direction: M.MulVec(r.Direction)}
}

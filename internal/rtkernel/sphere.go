package rtkernel

// Sphere is a unit sphere centered at its local origin.
// Size and position come only from Transform (object -> world).
type Sphere struct {
	ID        int
	Transform Mat4
}

func NewSphere(id int) Sphere {
	s := Sphere{ID: id, Transform: I4()}
	DebugLog("Created sphere #%d", id)
	return s
}

func (s *Sphere) SetTransform(M Mat4) { s.Transform = M }

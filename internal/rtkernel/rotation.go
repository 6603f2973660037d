package rtkernel

import "math"

// Angles in radians for rotations about the X, Y and Z axes.
type Rot3 struct {
	X, Y, Z Real
}

func Translation(x, y, z Real) Mat4 {
	M := I4()
	M.M[0][3], M.M[1][3], M.M[2][3] = x, y, z
	return M
}

func Scaling(x, y, z Real) Mat4 {
	M := I4()
	M.M[0][0], M.M[1][1], M.M[2][2] = x, y, z
	return M
}

// RotationX rotates in the YZ plane.
func RotationX(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}

// RotationY rotates in the ZX plane.
func RotationY(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][2] = c, s
	M.M[2][0], M.M[2][2] = -s, c
	return M
}

// RotationZ rotates in the XY plane.
func RotationZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}

// Shearing moves each axis in proportion to the other two
// (xy: x in proportion to y, and so on).
func Shearing(xy, xz, yx, yz, zx, zy Real) Mat4 {
	M := I4()
	M.M[0][1], M.M[0][2] = xy, xz
	M.M[1][0], M.M[1][2] = yx, yz
	M.M[2][0], M.M[2][1] = zx, zy
	return M
}

// Fluent builders post-multiply: A.Scale(...).Translate(...) == A * S * T,
// so when applied to a vector the translation happens first and the scale last.
func (A Mat4) Translate(x, y, z Real) Mat4 { return A.Mul(Translation(x, y, z)) }
func (A Mat4) Scale(x, y, z Real) Mat4     { return A.Mul(Scaling(x, y, z)) }
func (A Mat4) RotateX(a Real) Mat4         { return A.Mul(RotationX(a)) }
func (A Mat4) RotateY(a Real) Mat4         { return A.Mul(RotationY(a)) }
func (A Mat4) RotateZ(a Real) Mat4         { return A.Mul(RotationZ(a)) }
func (A Mat4) Shear(xy, xz, yx, yz, zx, zy Real) Mat4 {
	return A.Mul(Shearing(xy, xz, yx, yz, zx, zy))
}

// Compose rotation from angles: X is applied first, then Y, then Z.
func rotFromAngles(r Rot3) Mat4 {
	R := I4()
	R = RotationX(r.X).Mul(R)
	R = RotationY(r.Y).Mul(R)
	R = RotationZ(r.Z).Mul(R)
	return R
}

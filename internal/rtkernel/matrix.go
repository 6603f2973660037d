package rtkernel

import (
	"errors"
	"fmt"
)

// ErrDegenerateMatrix is returned when inverting a matrix whose determinant is 0.
var ErrDegenerateMatrix = errors.New("matrix has a determinant of 0 and cannot be inverted")

// 2×2 matrix (row-major)
type Mat2 struct {
	M [2][2]Real
}

// 3×3 matrix (row-major)
type Mat3 struct {
	M [3][3]Real
}

// 4×4 matrix (row-major)
type Mat4 struct {
	M [4][4]Real
}

func NewMat2(m [2][2]Real) Mat2 { return Mat2{M: m} }
func NewMat3(m [3][3]Real) Mat3 { return Mat3{M: m} }
func NewMat4(m [4][4]Real) Mat4 { return Mat4{M: m} }

func ZeroMat2() Mat2 { return Mat2{} }
func ZeroMat3() Mat3 { return Mat3{} }
func ZeroMat4() Mat4 { return Mat4{} }

func I4() Mat4 {
	return Mat4{M: [4][4]Real{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

func (A Mat2) Transpose() Mat2 {
	var R Mat2
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

func (A Mat3) Transpose() Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

func (A Mat4) Transpose() Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

// EqualApprox compares entries with Epsilon tolerance; == stays exact.
func (A Mat2) EqualApprox(B Mat2) bool {
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if !EqualApprox(A.M[r][c], B.M[r][c]) {
				return false
			}
		}
	}
	return true
}

func (A Mat3) EqualApprox(B Mat3) bool {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if !EqualApprox(A.M[r][c], B.M[r][c]) {
				return false
			}
		}
	}
	return true
}

func (A Mat4) EqualApprox(B Mat4) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !EqualApprox(A.M[r][c], B.M[r][c]) {
				return false
			}
		}
	}
	return true
}

func (A Mat2) Determinant() Real {
	return A.M[0][0]*A.M[1][1] - A.M[0][1]*A.M[1][0]
}

// Submatrix drops row and col. Indices outside [0,3) panic.
func (A Mat3) Submatrix(row, col int) Mat2 {
	checkSubmatrix(3, row, col)
	var R Mat2
	i := 0
	for r := 0; r < 3; r++ {
		if r == row {
			continue
		}
		j := 0
		for c := 0; c < 3; c++ {
			if c == col {
				continue
			}
			R.M[i][j] = A.M[r][c]
			j++
		}
		i++
	}
	return R
}

func (A Mat3) Minor(row, col int) Real { return A.Submatrix(row, col).Determinant() }

func (A Mat3) Cofactor(row, col int) Real {
	if (row+col)%2 == 0 {
		return A.Minor(row, col)
	}
	return -A.Minor(row, col)
}

// Determinant expands along row 0.
func (A Mat3) Determinant() Real {
	det := 0.0
	for c := 0; c < 3; c++ {
		det += A.M[0][c] * A.Cofactor(0, c)
	}
	return det
}

// Submatrix drops row and col. Indices outside [0,4) panic.
func (A Mat4) Submatrix(row, col int) Mat3 {
	checkSubmatrix(4, row, col)
	var R Mat3
	i := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		j := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			R.M[i][j] = A.M[r][c]
			j++
		}
		i++
	}
	return R
}

func (A Mat4) Minor(row, col int) Real { return A.Submatrix(row, col).Determinant() }

func (A Mat4) Cofactor(row, col int) Real {
	if (row+col)%2 == 0 {
		return A.Minor(row, col)
	}
	return -A.Minor(row, col)
}

// Determinant expands along row 0.
func (A Mat4) Determinant() Real {
	det := 0.0
	for c := 0; c < 4; c++ {
		det += A.M[0][c] * A.Cofactor(0, c)
	}
	return det
}

// Inverse returns A⁻¹ built from cofactors, written transposed:
// inv[c][r] = cofactor(r, c) / det.
func (A Mat4) Inverse() (Mat4, error) {
	det := A.Determinant()
	if det == 0 {
		return Mat4{}, ErrDegenerateMatrix
	}
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[c][r] = A.Cofactor(r, c) / det
		}
	}
	return R, nil
}

func (A Mat4) Mul(B Mat4) Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[r][0]*B.M[0][c] +
				A.M[r][1]*B.M[1][c] +
				A.M[r][2]*B.M[2][c] +
				A.M[r][3]*B.M[3][c]
		}
	}
	return R
}

func (A Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		A.M[0][0]*v.X + A.M[0][1]*v.Y + A.M[0][2]*v.Z + A.M[0][3]*v.W,
		A.M[1][0]*v.X + A.M[1][1]*v.Y + A.M[1][2]*v.Z + A.M[1][3]*v.W,
		A.M[2][0]*v.X + A.M[2][1]*v.Y + A.M[2][2]*v.Z + A.M[2][3]*v.W,
		A.M[3][0]*v.X + A.M[3][1]*v.Y + A.M[3][2]*v.Z + A.M[3][3]*v.W,
	}
}

func checkSubmatrix(n, row, col int) {
	if row < 0 || row >= n || col < 0 || col >= n {
		panic(fmt.Sprintf("submatrix index out of range: row=%d col=%d for %dx%d matrix", row, col, n, n))
	}
}

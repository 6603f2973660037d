package rtkernel

import "math"

type Real = float64

// EqualApprox reports whether a and b differ by less than Epsilon.
func EqualApprox(a, b Real) bool { return math.Abs(a-b) < Epsilon }

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

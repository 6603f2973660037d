package rtkernel

import "testing"

func TestEqualApprox(t *testing.T) {
	if !EqualApprox(1.0, 1.0000005) {
		t.Fatal("1.0 vs 1.0000005 should be equal")
	}
	if EqualApprox(1.0, 1.005) {
		t.Fatal("1.0 vs 1.005 should differ")
	}
	if !EqualApprox(-3, -3) {
		t.Fatal("identical values should be equal")
	}
}

func TestIMax(t *testing.T) {
	if imax(3, 5) != 5 || imax(5, 3) != 5 {
		t.Fatal("imax failed")
	}
}

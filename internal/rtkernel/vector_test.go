package rtkernel

import (
	"math"
	"testing"
)

func TestPointAndVector(t *testing.T) {
	p := Point(4, -4, 3)
	if p != (Vec4{4, -4, 3, 1}) || !p.IsPoint() || p.IsVector() {
		t.Fatalf("point mismatch: %+v", p)
	}
	v := Vector(4, -4, 3)
	if v != (Vec4{4, -4, 3, 0}) || !v.IsVector() || v.IsPoint() {
		t.Fatalf("vector mismatch: %+v", v)
	}
	if !Vector(0, 0, 0).Equal(Vector(0, 0, 0)) || !Point(2, 4, 6).Equal(Point(2, 4, 6)) {
		t.Fatal("equal tuples compare unequal")
	}
	if Point(1, 2, 3).Equal(Vector(1, 2, 3)) {
		t.Fatal("point equals vector")
	}
	if !Vector(1, 2, 3).Equal(Vector(1.000001, 2, 3)) {
		t.Fatal("approximate equality failed")
	}
}

func TestPointVectorArithmetic(t *testing.T) {
	p := Point(4, -4, 3)
	v := Vector(1, -8, 2)
	if got := p.Add(v); !got.Equal(Point(5, -12, 5)) {
		t.Fatalf("point+vector: %v", got)
	}
	if p.X != 4 || v.X != 1 {
		t.Fatal("Add mutated operands")
	}
	if got := Vector(10, 10, 5).Add(Vector(-10, -10, -5)); !got.Equal(Vector(0, 0, 0)) {
		t.Fatalf("vector+vector: %v", got)
	}
	if got := Point(3, 2, 1).Sub(Point(5, 6, 7)); !got.Equal(Vector(-2, -4, -6)) {
		t.Fatalf("point-point: %v", got)
	}
	if got := Point(3, 2, 1).Sub(Vector(5, 6, 7)); !got.Equal(Point(-2, -4, -6)) {
		t.Fatalf("point-vector: %v", got)
	}
	if got := Vector(3, 2, 1).Sub(Vector(5, 6, 7)); !got.Equal(Vector(-2, -4, -6)) {
		t.Fatalf("vector-vector: %v", got)
	}
}

func TestNegMulDiv(t *testing.T) {
	v := Vector(1, 2, 3)
	if got := v.Neg(); !got.Equal(NewVec4(-1, -2, -3, 0)) {
		t.Fatalf("Neg vector: %v", got)
	}
	p := Point(5, 6, 7)
	if got := p.Neg(); !got.Equal(NewVec4(-5, -6, -7, -1)) {
		t.Fatalf("Neg point: %v", got)
	}
	if v.X != 1 || p.X != 5 {
		t.Fatal("Neg mutated receiver")
	}
	if got := v.Mul(2); !got.Equal(NewVec4(2, 4, 6, 0)) {
		t.Fatalf("Mul: %v", got)
	}
	if got := p.Mul(2.5); !got.Equal(NewVec4(12.5, 15, 17.5, 2.5)) {
		t.Fatalf("Mul point: %v", got)
	}
	if got := v.Div(2); !got.Equal(NewVec4(0.5, 1, 1.5, 0)) {
		t.Fatalf("Div: %v", got)
	}
	if got := p.Div(2.5); !got.Equal(NewVec4(2, 2.4, 2.8, 0.4)) {
		t.Fatalf("Div point: %v", got)
	}
}

func TestMagnitudeAndNormalize(t *testing.T) {
	if m := Vector(2, 2, 2).Magnitude(); m != math.Sqrt(12) {
		t.Fatalf("Magnitude: %.17g", m)
	}
	v := Vector(4, 0, 0)
	if n := v.Normalize(); !n.Equal(Vector(1, 0, 0)) {
		t.Fatalf("Normalize: %v", n)
	}
	if v.X != 4 {
		t.Fatal("Normalize mutated receiver")
	}
	for _, v := range []Vec4{
		Vector(1, 2, 3),
		Vector(10, 12, 5),
		Vector(1, 1, 1),
		Vector(3, -4, 0),
		Vector(0, 0, -7),
		Vector(-0.3, 17.25, 1e-3),
		Vector(123.456, -0.001, 98765.4321),
	} {
		n := v.Normalize()
		if m := n.Magnitude(); m != 1 {
			t.Fatalf("Normalize(%v) magnitude %.17g != 1", v, m)
		}
		if !n.Equal(v.Div(v.Magnitude())) {
			t.Fatalf("Normalize(%v) drifted: %v", v, n)
		}
	}
	z := Vector(0, 0, 0)
	if z.Normalize() != z {
		t.Fatal("zero vector should normalize to itself")
	}
}

func TestDotCross(t *testing.T) {
	a := Vector(1, 2, 3)
	b := Vector(2, 3, 4)
	if d := a.Dot(b); d != 20 {
		t.Fatalf("Dot: %g", d)
	}
	if got := a.Cross(b); !got.Equal(Vector(-1, 2, -1)) {
		t.Fatalf("a×b: %v", got)
	}
	if got := b.Cross(a); !got.Equal(Vector(1, -2, 1)) {
		t.Fatalf("b×a: %v", got)
	}
	vs := []Vec4{a, b, Vector(-7, 0.5, 3), Vector(0, 0, 1), Point(1, 1, 1)}
	for _, x := range vs {
		for _, y := range vs {
			if !x.Cross(y).Equal(y.Cross(x).Neg()) {
				t.Fatalf("cross not anti-commutative for %v, %v", x, y)
			}
		}
	}
	if c := Point(1, 0, 0).Cross(Point(0, 1, 0)); c.W != 0 {
		t.Fatalf("cross of points must be a vector: %v", c)
	}
}

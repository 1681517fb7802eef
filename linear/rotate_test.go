// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func nearV3(v, w V3, tol float64) bool {
	for i := range v {
		if math.Abs(v[i]-w[i]) > tol {
			return false
		}
	}
	return true
}

func TestFromAxisAngle(t *testing.T) {
	q, err := FromAxisAngle(V3{1, 1, 1}, math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	if n := q.Norm(); math.Abs(n-1) > 1e-15 {
		t.Fatalf("Q.Norm\nhave %v\nwant 1", n)
	}

	q, err = FromAxisAngle(V3{0, 2, 0}, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	if want := New(math.Sqrt2/2, 0, math.Sqrt2/2, 0); !q.EqualWithin(want, 1e-15) {
		t.Fatalf("FromAxisAngle\nhave %v\nwant %v", q, want)
	}

	if _, err := FromAxisAngle(V3{}, 1); !errors.Is(err, ErrDegenerate) {
		t.Fatalf("FromAxisAngle(0)\nhave %v\nwant %v", err, ErrDegenerate)
	}
	if _, err := FromAxisAngle(V3{1}, math.NaN()); !errors.Is(err, ErrMalformed) {
		t.Fatalf("FromAxisAngle(NaN)\nhave %v\nwant %v", err, ErrMalformed)
	}
}

func TestRotate(t *testing.T) {
	v := V3{1, 1, 1}
	q, _ := FromAxisAngle(v, rand.Float64())
	if u := q.Rotate(v); !nearV3(u, v, 1e-13) {
		t.Fatalf("Q.Rotate (parallel axis)\nhave %v\nwant %v", u, v)
	}

	q, _ = FromAxisAngle(V3{1, 1, 1}, 2*math.Pi/3)
	if u := q.Rotate(V3{3, 4, 5}); !nearV3(u, V3{5, 3, 4}, 1e-14) {
		t.Fatalf("Q.Rotate\nhave %v\nwant [5 3 4]", u)
	}

	q, _ = FromAxisAngle(V3{0, 1, 0}, math.Pi)
	if u := q.Rotate(V3{1, 1, 1}); !nearV3(u, V3{-1, 1, -1}, 1e-15) {
		t.Fatalf("Q.Rotate\nhave %v\nwant [-1 1 -1]", u)
	}

	q, _ = FromAxisAngle(V3{0, 0, 1}, math.Pi/2)
	if u := q.Rotate(V3{1, 0, 0}); !nearV3(u, V3{0, 1, 0}, 1e-15) {
		t.Fatalf("Q.Rotate\nhave %v\nwant [0 1 0]", u)
	}
}

func TestRotateSandwich(t *testing.T) {
	v := V3{1, 2, 3}
	q, err := Parse("1+2i+3j+4k")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		want := q.Mul(FromV3(v)).Mul(q.Conj())
		if u := q.Rotate(v); !nearV3(u, want.V, 1e-12) {
			t.Fatalf("Q.Rotate\nhave %v\nwant %v", u, want.V)
		}
		if q, err = q.Normalize(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFromEuler(t *testing.T) {
	if n := FromEuler(math.Pi, math.Pi, math.Pi).Norm(); math.Abs(n-1) > 1e-15 {
		t.Fatalf("FromEuler.Norm\nhave %v\nwant 1", n)
	}

	u := FromEuler(0, math.Pi, 0).Rotate(V3{1, 1, 1})
	if !nearV3(u, V3{1, -1, -1}, 1e-15) {
		t.Fatalf("FromEuler(0, π, 0).Rotate\nhave %v\nwant [1 -1 -1]", u)
	}

	phi, theta, psi := 0.3, -1.1, 2.4
	z, _ := FromAxisAngle(V3{0, 0, 1}, phi)
	x, _ := FromAxisAngle(V3{1, 0, 0}, theta)
	y, _ := FromAxisAngle(V3{0, 1, 0}, psi)
	q := FromEuler(phi, theta, psi)
	if want := z.Mul(x).Mul(y); !q.EqualWithin(want, 1e-15) {
		t.Fatalf("FromEuler\nhave %v\nwant %v", q, want)
	}
	// Intrinsic composition: psi about Y is applied to the
	// vector first.
	v := V3{0.5, -2, 1}
	if u, w := q.Rotate(v), z.Rotate(x.Rotate(y.Rotate(v))); !nearV3(u, w, 1e-14) {
		t.Fatalf("FromEuler.Rotate\nhave %v\nwant %v", u, w)
	}
}

func TestAxisAngle(t *testing.T) {
	axis, angle := V3{0.6, 0, -0.8}, 1.25
	q, _ := FromAxisAngle(axis, angle)
	a, b := q.AxisAngle()
	if !nearV3(a, axis, 1e-14) || math.Abs(b-angle) > 1e-14 {
		t.Fatalf("Q.AxisAngle\nhave %v, %v\nwant %v, %v", a, b, axis, angle)
	}
	if a, b := One.AxisAngle(); a != (V3{1}) || b != 0 {
		t.Fatalf("One.AxisAngle\nhave %v, %v\nwant [1 0 0], 0", a, b)
	}
}

func TestFromBetween(t *testing.T) {
	for _, x := range [...][2]V3{
		{{1, 0, 0}, {0, 1, 0}},
		{{1, 2, 3}, {-3, 0.5, 2}},
		{{0, 0, 5}, {0, 0, 1}},
		{{1, 0, 0}, {-2, 0, 0}},
		{{0, 1, 1}, {0, -1, -1}},
	} {
		q, err := FromBetween(x[0], x[1])
		if err != nil {
			t.Fatal(err)
		}
		if n := q.Norm(); math.Abs(n-1) > 1e-14 {
			t.Fatalf("FromBetween(%v, %v).Norm\nhave %v\nwant 1", x[0], x[1], n)
		}
		u, v := NormV3(x[0]), NormV3(x[1])
		if w := q.Rotate(u); !nearV3(w, v, 1e-14) {
			t.Fatalf("FromBetween(%v, %v).Rotate\nhave %v\nwant %v", x[0], x[1], w, v)
		}
	}
	if _, err := FromBetween(V3{}, V3{1}); !errors.Is(err, ErrDegenerate) {
		t.Fatalf("FromBetween(0, v)\nhave %v\nwant %v", err, ErrDegenerate)
	}
}

func TestRotationExtremeMagnitudes(t *testing.T) {
	s, c := math.Sincos(0.5)
	for _, x := range [...]struct {
		axis V3
		want Q
	}{
		{V3{1e200}, New(c, s, 0, 0)},
		{V3{1: -1e-200}, New(c, 0, -s, 0)},
		{V3{2: 5e-324}, New(c, 0, 0, s)},
		{V3{1e300, 1e300, 1e300}, FromVec(c, ScaleV3(s/math.Sqrt(3), V3{1, 1, 1}))},
	} {
		q, err := FromAxisAngle(x.axis, 1)
		if err != nil {
			t.Fatalf("FromAxisAngle(%v, 1)\nhave %v\nwant nil", x.axis, err)
		}
		if !q.EqualWithin(x.want, 1e-15) {
			t.Fatalf("FromAxisAngle(%v, 1)\nhave %v\nwant %v", x.axis, q, x.want)
		}
		if n := q.Norm(); math.Abs(n-1) > 1e-15 {
			t.Fatalf("FromAxisAngle(%v, 1).Norm\nhave %v\nwant 1", x.axis, n)
		}
	}

	q, err := FromBetween(V3{1e200}, V3{1: 1e-200})
	if err != nil {
		t.Fatal(err)
	}
	if want := New(math.Sqrt2/2, 0, 0, math.Sqrt2/2); !q.EqualWithin(want, 1e-15) {
		t.Fatalf("FromBetween(1e200x, 1e-200y)\nhave %v\nwant %v", q, want)
	}
	if q, err = FromBetween(V3{2: 1e-300}, V3{2: -1e300}); err != nil {
		t.Fatal(err)
	}
	if w := q.Rotate(V3{2: 1}); !nearV3(w, V3{2: -1}, 1e-15) {
		t.Fatalf("FromBetween(1e-300z, -1e300z).Rotate\nhave %v\nwant [0 0 -1]", w)
	}

	axis, angle := New(1, 1e-200, 0, 0).AxisAngle()
	if axis != (V3{1}) || math.Abs(angle-2e-200) > 1e-215 {
		t.Fatalf("Q.AxisAngle\nhave %v, %v\nwant [1 0 0], 2e-200", axis, angle)
	}
}

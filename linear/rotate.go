// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"

	errorsmod "cosmossdk.io/errors"
)

// FromAxisAngle returns the unit quaternion that rotates
// angle radians about axis.
// axis need not be normalized, but it must not be zero.
func FromAxisAngle(axis V3, angle float64) (Q, error) {
	if axis == (V3{}) {
		return Zero, errorsmod.Wrap(ErrDegenerate, "zero rotation axis")
	}
	s, c := math.Sincos(angle / 2)
	return Q{V: ScaleV3(s, NormV3(axis)), R: c}.check()
}

// FromEuler returns the unit quaternion that rotates phi
// radians about Z, then theta radians about the rotated X
// and then psi radians about the rotated Y.
// It is the product Rz(phi) ⋅ Rx(theta) ⋅ Ry(psi).
func FromEuler(phi, theta, psi float64) Q {
	var z, x, y Q
	z.V[2], z.R = math.Sincos(phi / 2)
	x.V[0], x.R = math.Sincos(theta / 2)
	y.V[1], y.R = math.Sincos(psi / 2)
	return z.Mul(x).Mul(y)
}

// Rotate returns the vector part of q ⋅ v ⋅ q*, which for
// a unit q is v rotated by q.
// It expands the product as
//
//	(w² - u⋅u)v + 2(u⋅v)u + 2w(u × v)
//
// where w is q.R and u is q.V.
func (q Q) Rotate(v V3) V3 {
	a := ScaleV3(q.R*q.R-DotV3(q.V, q.V), v)
	b := ScaleV3(2*DotV3(q.V, v), q.V)
	c := ScaleV3(2*q.R, Cross(q.V, v))
	return AddV3(AddV3(a, b), c)
}

// AxisAngle returns the axis and angle of the rotation
// described by the unit quaternion q.
// The angle is in [0, 2π]. The identity rotation reports
// the X axis.
func (q Q) AxisAngle() (axis V3, angle float64) {
	s := LenV3(q.V)
	if s == 0 {
		return V3{1}, 0
	}
	return NormV3(q.V), 2 * math.Atan2(s, q.R)
}

// FromBetween returns the unit quaternion of the shortest
// rotation that takes the direction of u onto the direction
// of v.
// It fails with ErrDegenerate if either vector is zero.
func FromBetween(u, v V3) (Q, error) {
	if u == (V3{}) || v == (V3{}) {
		return Zero, errorsmod.Wrap(ErrDegenerate, "zero direction")
	}
	u, v = NormV3(u), NormV3(v)
	d := DotV3(u, v)
	if 1+d < 1e-12 {
		// Opposite directions: any axis orthogonal to u will do.
		a := Cross(V3{1}, u)
		if LenV3(a) < 1e-6 {
			a = Cross(V3{1: 1}, u)
		}
		return FromAxisAngle(a, math.Pi)
	}
	return Q{V: Cross(u, v), R: 1 + d}.Normalize()
}

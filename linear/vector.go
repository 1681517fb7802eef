// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements quaternion algebra for 3D rotation
// and orientation math.
package linear

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// V3 is a 3-component vector of float64.
type V3 [3]float64

// AddV3 returns v + w.
func AddV3(v, w V3) (u V3) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// SubV3 returns v - w.
func SubV3(v, w V3) (u V3) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// ScaleV3 returns s ⋅ v.
func ScaleV3(s float64, v V3) (u V3) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DotV3 returns v ⋅ w.
func DotV3(v, w V3) (d float64) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenV3 returns the length of v.
// It does not overflow or underflow for finite v.
func LenV3(v V3) float64 {
	if d := DotV3(v, v); d >= minSq && d <= maxSq {
		return math.Sqrt(d)
	}
	return quat.Abs(quat.Number{Imag: v[0], Jmag: v[1], Kmag: v[2]})
}

// NormV3 returns v normalized.
// The result is not finite if v is the zero vector.
func NormV3(v V3) (u V3) {
	l := LenV3(v)
	for i := range u {
		u[i] = v[i] / l
	}
	return
}

// Cross returns v × w.
func Cross(v, w V3) (u V3) {
	u[0] = v[1]*w[2] - v[2]*w[1]
	u[1] = v[2]*w[0] - v[0]*w[2]
	u[2] = v[0]*w[1] - v[1]*w[0]
	return
}

// Squared lengths in [minSq, maxSq] can be computed and
// inverted without rescaling.
const (
	minSq = 0x1p-1000
	maxSq = 0x1p1000
)

// V4 is a 4-component vector of float64.
// Quaternions use it as the ordered [w x y z] sequence.
type V4 [4]float64

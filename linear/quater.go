// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"

	errorsmod "cosmossdk.io/errors"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// Q is a quaternion of float64.
// V is the vector (imaginary) part and R is the real part,
// so that Q{V: V3{x, y, z}, R: w} is w + xi + yj + zk.
//
// Methods never modify the receiver; each returns a new Q.
type Q struct {
	V V3
	R float64
}

// Pre-built quaternions.
var (
	Zero = Q{}
	One  = Q{R: 1}
	I    = Q{V: V3{1}}
	J    = Q{V: V3{1: 1}}
	K    = Q{V: V3{2: 1}}
)

// Epsilon is the tolerance used by Near.
const Epsilon = 1e-5

// Ident returns the multiplicative identity.
// This is what a quaternion constructed from nothing is.
func Ident() Q { return One }

// Scalar returns the real quaternion w.
func Scalar(w float64) Q { return Q{R: w} }

// Complex returns w + xi.
func Complex(w, x float64) Q { return Q{V: V3{x}, R: w} }

// Pure returns the pure quaternion xi + yj + zk.
func Pure(x, y, z float64) Q { return Q{V: V3{x, y, z}} }

// New returns w + xi + yj + zk.
func New(w, x, y, z float64) Q { return Q{V: V3{x, y, z}, R: w} }

// FromVec returns the quaternion whose real part is w
// and whose vector part is v.
func FromVec(w float64, v V3) Q { return Q{V: v, R: w} }

// FromV3 returns the pure quaternion whose vector part is v.
func FromV3(v V3) Q { return Q{V: v} }

// FromV4 returns the quaternion described by the sequence
// [w x y z].
func FromV4(v V4) Q { return New(v[0], v[1], v[2], v[3]) }

// FromSlice returns the quaternion described by s.
// A slice of length 4 is [w x y z] and one of length 3 is
// the pure quaternion [x y z]. Shorter slices fill w first
// and leave the remaining components at zero.
// It fails with ErrMalformed if s has more than 4 elements
// or if any element is not finite.
func FromSlice(s []float64) (Q, error) {
	var q Q
	switch len(s) {
	case 0:
	case 1:
		q.R = s[0]
	case 2:
		q.R, q.V[0] = s[0], s[1]
	case 3:
		q.V = V3{s[0], s[1], s[2]}
	case 4:
		q = New(s[0], s[1], s[2], s[3])
	default:
		return Zero, errorsmod.Wrapf(ErrMalformed, "slice of length %d", len(s))
	}
	return q.check()
}

// Componenter is the interface of quaternion-shaped values.
type Componenter interface {
	Components() (w, x, y, z float64)
}

// FromComponents copies the components of c.
// It fails with ErrMalformed if any component is not finite.
func FromComponents(c Componenter) (Q, error) {
	return New(c.Components()).check()
}

// FromNumber converts a gonum quaternion.
func FromNumber(n quat.Number) Q { return New(n.Real, n.Imag, n.Jmag, n.Kmag) }

// Number converts q to a gonum quaternion.
func (q Q) Number() quat.Number {
	return quat.Number{Real: q.R, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

// Components returns the components of q.
func (q Q) Components() (w, x, y, z float64) { return q.R, q.V[0], q.V[1], q.V[2] }

// Vector returns q as the sequence [w x y z].
func (q Q) Vector() V4 { return V4{q.R, q.V[0], q.V[1], q.V[2]} }

// Real returns the real part of q.
func (q Q) Real() float64 { return q.R }

// Imag returns the vector part of q as a pure quaternion.
func (q Q) Imag() Q { return Q{V: q.V} }

// IsFinite reports whether every component of q is
// neither infinite nor NaN.
func (q Q) IsFinite() bool {
	for _, f := range q.Vector() {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func (q Q) check() (Q, error) {
	if !q.IsFinite() {
		return Zero, errorsmod.Wrapf(ErrMalformed, "non-finite component in %v", q)
	}
	return q, nil
}

// Add returns q + p.
func (q Q) Add(p Q) Q { return Q{V: AddV3(q.V, p.V), R: q.R + p.R} }

// Sub returns q - p.
func (q Q) Sub(p Q) Q { return Q{V: SubV3(q.V, p.V), R: q.R - p.R} }

// Scale returns s ⋅ q.
func (q Q) Scale(s float64) Q { return Q{V: ScaleV3(s, q.V), R: s * q.R} }

// Neg returns -q.
func (q Q) Neg() Q { return q.Scale(-1) }

// Dot returns the sum of the products of the components
// of q and p.
func (q Q) Dot(p Q) float64 { return q.R*p.R + DotV3(q.V, p.V) }

// Mul returns the Hamilton product q ⋅ p.
func (q Q) Mul(p Q) Q {
	v := AddV3(ScaleV3(p.R, q.V), ScaleV3(q.R, p.V))
	return Q{
		V: AddV3(v, Cross(q.V, p.V)),
		R: q.R*p.R - DotV3(q.V, p.V),
	}
}

// Div returns q ⋅ p⁻¹.
// It fails with ErrDivByZero if p is zero.
func (q Q) Div(p Q) (Q, error) {
	if p == Zero {
		return Zero, errorsmod.Wrapf(ErrDivByZero, "%v / 0", q)
	}
	if p.scaling() != 1 {
		inv, err := p.Inverse()
		if err != nil {
			return Zero, err
		}
		return q.Mul(inv), nil
	}
	return q.Mul(p.Conj()).Scale(1 / p.NormSq()), nil
}

// Pow returns q raised to n.
// Integer exponents are computed by repeated multiplication,
// using the inverse of q when n is negative. Other exponents
// are computed as exp(n ⋅ log(q)).
// It fails with ErrDivByZero if n is negative and q is zero,
// and with ErrMalformed if n is not finite.
func (q Q) Pow(n float64) (Q, error) {
	switch {
	case math.IsNaN(n) || math.IsInf(n, 0):
		return Zero, errorsmod.Wrapf(ErrMalformed, "exponent %v", n)
	case n == 0:
		return One, nil
	}
	if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
		b := q
		if n < 0 {
			var err error
			if b, err = q.Inverse(); err != nil {
				return Zero, err
			}
			n = -n
		}
		r := One
		for k := uint64(n); k > 0; k >>= 1 {
			if k&1 == 1 {
				r = r.Mul(b)
			}
			b = b.Mul(b)
		}
		return r, nil
	}
	if q == Zero {
		if n > 0 {
			return Zero, nil
		}
		return Zero, errorsmod.Wrapf(ErrDivByZero, "0 ^ %v", n)
	}
	return q.Log().Scale(n).Exp(), nil
}

// NormSq returns the squared norm of q.
// It overflows to +Inf or underflows to zero when the
// components are large or small enough.
func (q Q) NormSq() float64 { return q.Dot(q) }

// Norm returns the norm of q.
// It does not overflow or underflow for finite q.
func (q Q) Norm() float64 {
	if q.scaling() != 1 {
		return quat.Abs(q.Number())
	}
	return math.Sqrt(q.NormSq())
}

// scaling returns a power of two f such that the squared
// norm of f ⋅ q is in [minSq, maxSq], or 1 if it already is.
// Zero and non-finite quaternions report 2⁶⁰⁰ and 1.
func (q Q) scaling() float64 {
	if !q.IsFinite() {
		return 1
	}
	switch n := q.NormSq(); {
	case n > maxSq:
		return 0x1p-600
	case n < minSq:
		return 0x1p600
	}
	return 1
}

// Conj returns the conjugate of q.
func (q Q) Conj() Q { return Q{V: ScaleV3(-1, q.V), R: q.R} }

// Inverse returns q⁻¹.
// It fails with ErrDivByZero if q is zero or so small
// that its inverse overflows.
func (q Q) Inverse() (Q, error) {
	if q == Zero {
		return Zero, errorsmod.Wrap(ErrDivByZero, "inverse of 0")
	}
	// (f ⋅ q)⁻¹ = q⁻¹ / f
	f := q.scaling()
	p := q.Scale(f)
	s := 1 / p.NormSq()
	inv := Q{V: ScaleV3(-s, p.V), R: s * p.R}.Scale(f)
	if !inv.IsFinite() && q.IsFinite() {
		return Zero, errorsmod.Wrapf(ErrDivByZero, "inverse of %v overflows", q)
	}
	return inv, nil
}

// Normalize returns q scaled to unit norm.
// It fails with ErrDegenerate if q is zero.
func (q Q) Normalize() (Q, error) {
	if q == Zero {
		return Zero, errorsmod.Wrap(ErrDegenerate, "normalize 0")
	}
	q = q.Scale(q.scaling())
	return q.Scale(1 / q.Norm()), nil
}

// Exp returns e raised to q.
func (q Q) Exp() Q {
	e := math.Exp(q.R)
	r := LenV3(q.V)
	if r == 0 {
		return Q{R: e}
	}
	s, c := math.Sincos(r)
	return Q{V: ScaleV3(e*s/r, q.V), R: e * c}
}

// Log returns the natural logarithm of q.
// A negative real q yields the principal value ln|q| + πi.
// Log(Zero) has a real part of -Inf, as math.Log(0) does.
func (q Q) Log() Q {
	r := LenV3(q.V)
	if r == 0 {
		if q.R < 0 {
			return Q{V: V3{math.Pi}, R: math.Log(-q.R)}
		}
		return Q{R: math.Log(q.R)}
	}
	// atan2(r, w) is acos(w/|q|) without the loss of
	// precision near ±1.
	return Q{V: ScaleV3(math.Atan2(r, q.R)/r, q.V), R: math.Log(q.Norm())}
}

// Equals reports whether q is exactly w + xi + yj + zk.
func (q Q) Equals(w, x, y, z float64) bool {
	return q.R == w && q.V == V3{x, y, z}
}

// Equal reports whether q and p are exactly equal.
func (q Q) Equal(p Q) bool { return q == p }

// EqualWithin reports whether every component of q is
// within tol of the respective component of p.
func (q Q) EqualWithin(p Q, tol float64) bool {
	a, b := q.Vector(), p.Vector()
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// Near is EqualWithin(p, Epsilon).
func (q Q) Near(p Q) bool { return q.EqualWithin(p, Epsilon) }

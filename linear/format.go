// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
	"strconv"
	"strings"
)

// FormatReal formats f the way quaternion terms are
// formatted: the shortest decimal that parses back to f,
// switching to exponent notation below 1e-7 and from 1e21.
// Non-finite values are "NaN", "+Inf" and "-Inf".
func FormatReal(f float64) string {
	switch a := math.Abs(f); {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return strconv.FormatFloat(f, 'g', -1, 64)
	case f == 0:
		return "0"
	case a < 1e-7 || a >= 1e21:
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String returns q in the form accepted by Parse,
// e.g. "2 + 3i - j + 0.5k".
// Zero terms are omitted and unit coefficients of the
// imaginary terms are not written.
// Non-finite quaternions are written for display only:
// "NaN" if any component is NaN, and infinite terms as
// fmt writes complex numbers, e.g. "1 + Infi". Parse
// rejects both.
func (q Q) String() string { return q.format(FormatReal) }

// Text is like String, but writes coefficients with prec
// significant digits. A negative prec behaves as String.
func (q Q) Text(prec int) string {
	if prec < 0 {
		return q.String()
	}
	return q.format(func(f float64) string {
		return strconv.FormatFloat(f, 'g', prec, 64)
	})
}

func (q Q) format(num func(float64) string) string {
	const sfx = " ijk"
	var b strings.Builder
	for i, f := range q.Vector() {
		switch {
		case math.IsNaN(f):
			return "NaN"
		case f == 0:
			continue
		case b.Len() > 0 && f < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		case f < 0:
			b.WriteByte('-')
		}
		switch a := math.Abs(f); {
		case math.IsInf(a, 1):
			b.WriteString("Inf")
		case a != 1 || i == 0:
			b.WriteString(num(a))
		}
		if i > 0 {
			b.WriteByte(sfx[i])
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
)

// Parse parses a quaternion written as a sum of signed
// terms, such as "1 + 2i - j + 0.5k".
//
// A term is a number, a number immediately followed by
// one of the axis letters i, j or k, or an axis letter
// optionally followed by a number. A bare axis letter has
// a coefficient of 1. Terms without an axis letter add to
// the real part and repeated axes add up. Every term but
// the first must be preceded by a sign; runs of signs are
// combined. Blanks may appear between signs and terms.
//
// It fails with ErrMalformed on anything else.
func Parse(s string) (Q, error) {
	var (
		c     [4]float64
		signs = 1
		neg   bool
		terms int
	)
	for i := 0; i < len(s); {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			i++
		case '+':
			signs++
			i++
		case '-':
			signs++
			neg = !neg
			i++
		default:
			if signs == 0 {
				return Zero, malformed(s, i, "missing sign")
			}
			axis, f, n, err := term(s[i:])
			if err != nil {
				return Zero, malformed(s, i, err.Error())
			}
			if neg {
				f = -f
			}
			c[axis] += f
			i += n
			signs, neg = 0, false
			terms++
		}
	}
	switch {
	case terms == 0:
		return Zero, malformed(s, len(s), "no terms")
	case signs > 0:
		return Zero, malformed(s, len(s), "dangling sign")
	}
	return FromV4(V4(c)).check()
}

func malformed(s string, off int, reason string) error {
	return errorsmod.Wrapf(ErrMalformed, "%q at offset %d: %s", s, off, reason)
}

// term scans the term at the start of s.
// It returns the axis of the term (0 for real), its
// coefficient and the number of bytes consumed.
func term(s string) (axis int, f float64, n int, err error) {
	if axis = axisOf(s[0]); axis > 0 {
		m := number(s[1:])
		if m == 0 {
			return axis, 1, 1, nil
		}
		f, err = parseNumber(s[1 : 1+m])
		return axis, f, 1 + m, err
	}
	m := number(s)
	if m == 0 {
		return 0, 0, 0, strconv.ErrSyntax
	}
	f, err = parseNumber(s[:m])
	if m < len(s) {
		if axis = axisOf(s[m]); axis > 0 {
			return axis, f, m + 1, err
		}
	}
	return 0, f, m, err
}

func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err.(*strconv.NumError).Err
	}
	return f, nil
}

func axisOf(c byte) int {
	switch c {
	case 'i':
		return 1
	case 'j':
		return 2
	case 'k':
		return 3
	}
	return 0
}

// number returns the length of the unsigned decimal at the
// start of s, or 0 if there is none.
func number(s string) int {
	i := digits(s)
	if i < len(s) && s[i] == '.' {
		j := digits(s[i+1:])
		if i == 0 && j == 0 {
			return 0
		}
		i += 1 + j
	}
	if i == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := digits(s[j:]); k > 0 {
			i = j + k
		}
	}
	return i
}

func digits(s string) (n int) {
	for n < len(s) && '0' <= s[n] && s[n] <= '9' {
		n++
	}
	return
}

// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package linear

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the codespace of the errors registered by
// this package.
const Codespace = "quater"

var (
	// ErrMalformed is returned when input cannot be turned
	// into a quaternion with finite components.
	ErrMalformed = errorsmod.Register(Codespace, 2, "malformed quaternion")

	// ErrDivByZero is returned when an operation would
	// need the inverse of a zero quaternion, or of one so
	// small that the inverse overflows.
	ErrDivByZero = errorsmod.Register(Codespace, 3, "division by zero")

	// ErrDegenerate is returned when a zero quaternion or
	// a zero vector would have to be normalized.
	ErrDegenerate = errorsmod.Register(Codespace, 4, "degenerate quaternion")
)

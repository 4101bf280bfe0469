//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpi

import (
	"errors"
)

// Errors returned by the arithmetic operations. Failed operations
// leave their destination in a valid, reusable state.
var (
	// ErrAllocation means a value would have grown past MaxLimbs.
	ErrAllocation = errors.New("mpi: allocation limit exceeded")

	// ErrBadInputData means an argument was malformed, for example
	// a negative shift count or a negative exponent.
	ErrBadInputData = errors.New("mpi: bad input data")

	// ErrBufferTooSmall means the output buffer passed to Export
	// cannot hold the encoded value.
	ErrBufferTooSmall = errors.New("mpi: output buffer too small")

	// ErrNegativeValue means an unsigned subtraction would have
	// underflowed, or a modulus that must be positive was negative.
	ErrNegativeValue = errors.New("mpi: negative value")

	// ErrDivisionByZero means the divisor was zero.
	ErrDivisionByZero = errors.New("mpi: division by zero")

	// ErrNotAcceptable means the modular-exponentiation modulus was
	// even or not positive.
	ErrNotAcceptable = errors.New("mpi: input not acceptable")
)

//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package mpi implements multi-precision integer arithmetic for
// public-key computations, most importantly the sliding-window
// modular exponentiation used in Diffie-Hellman key agreement.
//
// Values are sign-magnitude integers with 32-bit limbs, stored
// least-significant limb first. The zero value of Int is the integer
// 0 and is ready to use. Operations write their result into the
// receiver (or an explicit destination), which may alias any of the
// source operands.
//
// Every fallible operation reports failure with one of the sentinel
// errors defined in errors.go; no operation panics on bad arguments.
// The total limb count of any value is capped by MaxLimbs so that
// malformed or hostile inputs turn into ErrAllocation instead of
// unbounded memory growth.
//
// The package makes no constant-time guarantees: comparison exits
// early and the exponentiation table lookups are data-dependent.
package mpi

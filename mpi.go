//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpi

// MaxLimbs caps the number of 32-bit limbs any single value may
// occupy (about 320000 bits with the default). Every growth path
// checks the cap and fails with ErrAllocation instead of truncating
// or growing without bound. Embedders may tune it before creating
// values.
var MaxLimbs = 10000

// Int is a signed multi-precision integer. The magnitude is a slice
// of 32-bit limbs, least-significant first; the sign is kept
// separately and zero is canonically non-negative. The zero value is
// the integer 0, ready to use.
//
// An Int exclusively owns its limb slice: Set makes a deep copy and
// no operation ever shares limb storage between two values. Trailing
// zero limbs may exist transiently; they are never significant.
type Int struct {
	neg   bool
	limbs []uint32
}

// Grow ensures that x has room for at least n limbs, preserving its
// current value. It never shrinks. Grow fails with ErrAllocation if
// n exceeds MaxLimbs and with ErrBadInputData if n is negative; in
// both cases x is unchanged.
func (x *Int) Grow(n int) error {
	if n < 0 {
		return ErrBadInputData
	}
	if n > MaxLimbs {
		return ErrAllocation
	}
	if n <= len(x.limbs) {
		return nil
	}
	if n <= cap(x.limbs) {
		// Reclaimed capacity may hold limbs from an earlier, larger
		// value.
		tail := x.limbs[len(x.limbs):n]
		for i := range tail {
			tail[i] = 0
		}
		x.limbs = x.limbs[:n]
		return nil
	}
	limbs := make([]uint32, n)
	copy(limbs, x.limbs)
	x.limbs = limbs
	return nil
}

// SetInt sets x to the single-limb signed integer z.
func (x *Int) SetInt(z int32) error {
	if err := x.Grow(1); err != nil {
		return err
	}
	for i := range x.limbs {
		x.limbs[i] = 0
	}
	if z < 0 {
		x.limbs[0] = uint32(-int64(z))
		x.neg = true
	} else {
		x.limbs[0] = uint32(z)
		x.neg = false
	}
	x.trim()
	return nil
}

// Set copies the value of y into x. The copy owns its own limb
// storage; later mutations of y do not affect x.
func (x *Int) Set(y *Int) error {
	if x == y {
		return nil
	}
	n := y.used()
	if err := x.Grow(n); err != nil {
		return err
	}
	copy(x.limbs[:n], y.limbs[:n])
	for i := n; i < len(x.limbs); i++ {
		x.limbs[i] = 0
	}
	x.neg = y.neg && n > 0
	x.trim()
	return nil
}

// Reset releases x's limb storage and sets it to zero. It is safe to
// call repeatedly and the value can be reused afterwards.
func (x *Int) Reset() {
	x.limbs = nil
	x.neg = false
}

// Sign returns -1, 0, or 1 depending on whether x is negative, zero,
// or positive.
func (x *Int) Sign() int {
	if x.used() == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// used returns the number of significant limbs, ignoring trailing
// zeros.
func (x *Int) used() int {
	n := len(x.limbs)
	for n > 0 && x.limbs[n-1] == 0 {
		n--
	}
	return n
}

// trim drops trailing zero limbs and restores the canonical
// non-negative zero.
func (x *Int) trim() {
	x.limbs = x.limbs[:x.used()]
	if len(x.limbs) == 0 {
		x.neg = false
	}
}

// limb returns limb i of the magnitude, or 0 beyond the significant
// limbs.
func (x *Int) limb(i int) uint32 {
	if i < 0 || i >= len(x.limbs) {
		return 0
	}
	return x.limbs[i]
}

// bit returns bit i of the magnitude.
func (x *Int) bit(i int) uint32 {
	return (x.limb(i/32) >> (uint(i) % 32)) & 1
}

// setZero sets x to zero without releasing storage.
func (x *Int) setZero() {
	x.limbs = x.limbs[:0]
	x.neg = false
}

//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpi

// Lsh shifts the magnitude of x left by count bits, growing the
// value as needed. The sign is unchanged. A negative count fails
// with ErrBadInputData, growth past MaxLimbs with ErrAllocation.
func (x *Int) Lsh(count int) error {
	if count < 0 {
		return ErrBadInputData
	}
	n := x.used()
	if count == 0 || n == 0 {
		return nil
	}
	limbShift := count / 32
	bitShift := uint(count) % 32

	need := (x.BitLen() + count + 31) / 32
	if err := x.Grow(need); err != nil {
		return err
	}
	// Whole-limb moves first, high to low so the source is read
	// before it is overwritten.
	if limbShift > 0 {
		for i := need - 1; i >= limbShift; i-- {
			x.limbs[i] = x.limb(i - limbShift)
		}
		for i := 0; i < limbShift; i++ {
			x.limbs[i] = 0
		}
	}
	if bitShift > 0 {
		var carry uint32
		for i := limbShift; i < need; i++ {
			v := x.limbs[i]
			x.limbs[i] = v<<bitShift | carry
			carry = v >> (32 - bitShift)
		}
	}
	x.trim()
	return nil
}

// Rsh shifts the magnitude of x right by count bits, discarding the
// low bits. The sign is unchanged unless the result is zero, which
// is canonically non-negative. Negative counts are treated as zero.
func (x *Int) Rsh(count int) {
	n := x.used()
	if count <= 0 || n == 0 {
		return
	}
	limbShift := count / 32
	bitShift := uint(count) % 32

	if limbShift >= n {
		x.setZero()
		return
	}
	if limbShift > 0 {
		copy(x.limbs, x.limbs[limbShift:n])
		for i := n - limbShift; i < n; i++ {
			x.limbs[i] = 0
		}
		n -= limbShift
	}
	if bitShift > 0 {
		for i := 0; i < n; i++ {
			x.limbs[i] >>= bitShift
			if i+1 < n {
				x.limbs[i] |= x.limbs[i+1] << (32 - bitShift)
			}
		}
	}
	x.trim()
}

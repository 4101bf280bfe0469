//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpi

// Mul sets x to the signed product a * b using schoolbook
// multiplication. The result sign is the XOR of the operand signs;
// a zero product is canonically non-negative. The partial products
// accumulate into a scratch buffer that replaces the destination at
// the end, so x may alias either operand.
func (x *Int) Mul(a, b *Int) error {
	an, bn := a.used(), b.used()
	if an == 0 || bn == 0 {
		x.setZero()
		return nil
	}
	if an+bn > MaxLimbs {
		return ErrAllocation
	}
	prod := make([]uint32, an+bn)
	for i := 0; i < bn; i++ {
		bi := uint64(b.limbs[i])
		var carry uint64
		for j := 0; j < an; j++ {
			t := uint64(prod[i+j]) + uint64(a.limbs[j])*bi + carry
			prod[i+j] = uint32(t)
			carry = t >> 32
		}
		prod[i+an] = uint32(carry)
	}
	neg := a.neg != b.neg
	x.limbs = prod
	x.neg = neg
	x.trim()
	return nil
}

// MulInt sets x to a times the non-negative single-limb scalar b.
// The sign follows a unless the product is zero. x may alias a.
func (x *Int) MulInt(a *Int, b uint32) error {
	an := a.used()
	if an == 0 || b == 0 {
		x.setZero()
		return nil
	}
	neg := a.neg
	if err := x.Grow(an + 1); err != nil {
		return err
	}
	var carry uint64
	for i := 0; i < an; i++ {
		t := uint64(a.limbs[i])*uint64(b) + carry
		x.limbs[i] = uint32(t)
		carry = t >> 32
	}
	x.limbs[an] = uint32(carry)
	for i := an + 1; i < len(x.limbs); i++ {
		x.limbs[i] = 0
	}
	x.neg = neg
	x.trim()
	return nil
}

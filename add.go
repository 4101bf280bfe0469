//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpi

import (
	"math/bits"
)

// AddAbs sets x to |a| + |b| (HAC 14.7). The result is always
// non-negative. The destination may alias either operand: the limbs
// are combined low to high, reading each source limb before its slot
// is written.
func (x *Int) AddAbs(a, b *Int) error {
	if x == b {
		a, b = b, a
	}
	if x != a {
		n := a.used()
		if err := x.Grow(n); err != nil {
			return err
		}
		copy(x.limbs[:n], a.limbs[:n])
		for i := n; i < len(x.limbs); i++ {
			x.limbs[i] = 0
		}
	}
	x.neg = false

	bn := b.used()
	if err := x.Grow(bn); err != nil {
		return err
	}
	var carry uint32
	for i := 0; i < bn; i++ {
		x.limbs[i], carry = bits.Add32(x.limbs[i], b.limbs[i], carry)
	}
	for i := bn; carry != 0 && i < len(x.limbs); i++ {
		x.limbs[i], carry = bits.Add32(x.limbs[i], 0, carry)
	}
	if carry != 0 {
		if err := x.Grow(len(x.limbs) + 1); err != nil {
			return err
		}
		x.limbs[len(x.limbs)-1] = carry
	}
	x.trim()
	return nil
}

// SubAbs sets x to |a| - |b| (HAC 14.9). It fails with
// ErrNegativeValue if |b| is greater than |a|; callers wanting a
// magnitude difference must order the operands first. The
// destination may alias either operand.
func (x *Int) SubAbs(a, b *Int) error {
	if a.CmpAbs(b) < 0 {
		return ErrNegativeValue
	}
	tb := b
	if x == b {
		tb = new(Int)
		if err := tb.Set(b); err != nil {
			return err
		}
	}
	if x != a {
		n := a.used()
		if err := x.Grow(n); err != nil {
			return err
		}
		copy(x.limbs[:n], a.limbs[:n])
		for i := n; i < len(x.limbs); i++ {
			x.limbs[i] = 0
		}
	}
	x.neg = false

	var borrow uint32
	bn := tb.used()
	for i := 0; i < bn; i++ {
		x.limbs[i], borrow = bits.Sub32(x.limbs[i], tb.limbs[i], borrow)
	}
	// |a| >= |b| so the borrow always resolves.
	for i := bn; borrow != 0; i++ {
		x.limbs[i], borrow = bits.Sub32(x.limbs[i], 0, borrow)
	}
	x.trim()
	return nil
}

// Add sets x to the signed sum a + b. Operands of equal sign add
// magnitudes and keep the sign; operands of opposite sign subtract
// the smaller magnitude from the larger and take the sign of the
// larger, with ties producing canonical zero.
func (x *Int) Add(a, b *Int) error {
	return x.addSigned(a, b, false)
}

// Sub sets x to the signed difference a - b.
func (x *Int) Sub(a, b *Int) error {
	return x.addSigned(a, b, true)
}

func (x *Int) addSigned(a, b *Int, flip bool) error {
	// Operand signs are captured up front: x may alias a or b and
	// the magnitude operations reset the destination sign.
	aneg := a.neg
	bneg := b.neg
	if flip {
		bneg = !bneg
	}
	if aneg == bneg {
		if err := x.AddAbs(a, b); err != nil {
			return err
		}
		x.neg = aneg && x.used() > 0
		return nil
	}
	if a.CmpAbs(b) >= 0 {
		if err := x.SubAbs(a, b); err != nil {
			return err
		}
		x.neg = aneg && x.used() > 0
		return nil
	}
	if err := x.SubAbs(b, a); err != nil {
		return err
	}
	x.neg = bneg && x.used() > 0
	return nil
}

//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpi

// DivMod computes q and r such that a = q*b + r and |r| < |b|, using
// normalized long division: the divisor is shifted so the high bit
// of its leading limb is set, each quotient limb is estimated from
// the top limbs and corrected, and the scaled divisor is subtracted
// off. The division truncates toward zero: the quotient sign is the
// XOR of the operand signs and the remainder sign follows a.
//
// Either q or r may be nil when only the other result is wanted.
// Both may alias the operands; all operand limbs are copied into
// working values before the destinations are written. DivMod fails
// with ErrDivisionByZero if b is zero.
func DivMod(q, r *Int, a, b *Int) error {
	if b.used() == 0 {
		return ErrDivisionByZero
	}
	aneg, bneg := a.neg, b.neg

	if a.CmpAbs(b) < 0 {
		if r != nil && r != a {
			if err := r.Set(a); err != nil {
				return err
			}
		}
		if q != nil && q != r {
			if err := q.SetInt(0); err != nil {
				return err
			}
		}
		return nil
	}

	var x, y, z, t Int
	if err := x.Set(a); err != nil {
		return err
	}
	if err := y.Set(b); err != nil {
		return err
	}
	x.neg = false
	y.neg = false

	// Normalize so the divisor's top limb has its high bit set; the
	// quotient-limb estimates are then off by at most two.
	var norm int
	if k := y.BitLen() % 32; k != 0 {
		norm = 32 - k
		if err := x.Lsh(norm); err != nil {
			return err
		}
		if err := y.Lsh(norm); err != nil {
			return err
		}
	}

	n := x.used() - 1
	t1 := y.used() - 1
	if err := z.Grow(n - t1 + 1); err != nil {
		return err
	}

	// Align the divisor under the dividend's top limb and take off
	// the leading multiple.
	if err := y.Lsh(32 * (n - t1)); err != nil {
		return err
	}
	for x.CmpAbs(&y) >= 0 {
		z.limbs[n-t1]++
		if err := x.SubAbs(&x, &y); err != nil {
			return err
		}
	}
	y.Rsh(32 * (n - t1))

	yt := y.limb(t1)
	yt1 := y.limb(t1 - 1)
	for i := n; i > t1; i-- {
		// Estimate the quotient limb from the top limbs (Knuth
		// step D3), then fix the rare overestimate below.
		var qhat uint32
		if x.limb(i) >= yt {
			qhat = 0xffffffff
		} else {
			num := uint64(x.limb(i))<<32 | uint64(x.limb(i-1))
			qh := num / uint64(yt)
			rh := num % uint64(yt)
			for qh*uint64(yt1) > rh<<32|uint64(x.limb(i-2)) {
				qh--
				rh += uint64(yt)
				if rh > 0xffffffff {
					break
				}
			}
			qhat = uint32(qh)
		}
		for {
			if err := t.MulInt(&y, qhat); err != nil {
				return err
			}
			if err := t.Lsh(32 * (i - t1 - 1)); err != nil {
				return err
			}
			if x.CmpAbs(&t) >= 0 {
				break
			}
			qhat--
		}
		if err := x.SubAbs(&x, &t); err != nil {
			return err
		}
		z.limbs[i-t1-1] = qhat
	}

	if q != nil {
		z.trim()
		z.neg = (aneg != bneg) && z.used() > 0
		if err := q.Set(&z); err != nil {
			return err
		}
	}
	if r != nil {
		x.Rsh(norm)
		x.neg = aneg && x.used() > 0
		if err := r.Set(&x); err != nil {
			return err
		}
	}
	return nil
}

// DivModInt is DivMod specialized for a single-limb divisor: one
// pass over the dividend, high limb to low, carrying the partial
// remainder. Either q or r may be nil. It fails with
// ErrDivisionByZero if b is zero.
func DivModInt(q, r *Int, a *Int, b int32) error {
	if b == 0 {
		return ErrDivisionByZero
	}
	mag := uint32(b)
	if b < 0 {
		mag = uint32(-int64(b))
	}
	an := a.used()
	aneg := a.neg

	var quo []uint32
	if q != nil {
		quo = make([]uint32, an)
	}
	var rem uint64
	for i := an - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(a.limbs[i])
		if quo != nil {
			quo[i] = uint32(cur / uint64(mag))
		}
		rem = cur % uint64(mag)
	}
	if q != nil {
		q.limbs = quo
		q.neg = aneg != (b < 0)
		q.trim()
	}
	if r != nil {
		if err := r.Grow(1); err != nil {
			return err
		}
		for i := range r.limbs {
			r.limbs[i] = 0
		}
		r.limbs[0] = uint32(rem)
		r.neg = aneg
		r.trim()
	}
	return nil
}

// Mod sets r to a mod b, normalized into the range [0, |b|): when
// the truncated remainder is negative, |b| is added once. The
// modulus must be positive; Mod fails with ErrNegativeValue for a
// negative b and ErrDivisionByZero for a zero b.
func (r *Int) Mod(a, b *Int) error {
	if b.neg {
		return ErrNegativeValue
	}
	m := b
	if r == b {
		m = new(Int)
		if err := m.Set(b); err != nil {
			return err
		}
	}
	if err := DivMod(nil, r, a, m); err != nil {
		return err
	}
	if r.Sign() < 0 {
		return r.Add(r, m)
	}
	return nil
}

// ModInt returns a mod b for a positive single-limb modulus,
// normalized into [0, b). It fails with ErrDivisionByZero for a zero
// b and ErrNegativeValue for a negative b.
func ModInt(a *Int, b int32) (uint32, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if b < 0 {
		return 0, ErrNegativeValue
	}
	mag := uint64(b)
	var rem uint64
	for i := a.used() - 1; i >= 0; i-- {
		rem = (rem<<32 | uint64(a.limbs[i])) % mag
	}
	if a.neg && rem != 0 {
		rem = mag - rem
	}
	return uint32(rem), nil
}

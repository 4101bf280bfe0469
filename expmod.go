//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpi

import (
	"time"
)

// Mont caches the Montgomery setup constant (R^2 mod N) for one odd
// modulus so that repeated ExpMod calls with the same modulus skip
// the setup division. The zero value is ready to use; the constant
// is computed on first use.
//
// The cache does not record which modulus it was initialized for.
// Reusing it with a different modulus produces an undefined
// numerical result; call Invalidate (or use a fresh Mont) when the
// modulus changes.
type Mont struct {
	rr    Int
	valid bool

	// Stats describes the work done by the most recent ExpMod call
	// that used this cache.
	Stats Stats
}

// Invalidate drops the cached constant so the next ExpMod call
// recomputes it.
func (m *Mont) Invalidate() {
	m.rr.Reset()
	m.valid = false
}

// ExpMod sets x to a^e mod n using left-to-right sliding-window
// exponentiation (HAC 14.85) with Montgomery reduction. The modulus
// n must be positive and odd, otherwise ExpMod fails with
// ErrNotAcceptable; a negative exponent fails with ErrBadInputData.
// The base is reduced into [0, n) first, so the result is always in
// [0, n).
//
// mont is an optional reduction cache for repeated exponentiations
// modulo the same n; pass nil to compute and discard the setup
// constant. x may alias any of the operands: the accumulator is a
// scratch value that replaces x only at the end.
//
// The window width grows with the exponent size, trading table
// memory for fewer multiplications. Table indexing and the bit scan
// are not constant time.
func (x *Int) ExpMod(a, e, n *Int, mont *Mont) error {
	if n.Sign() <= 0 || n.limbs[0]&1 == 0 {
		return ErrNotAcceptable
	}
	if e.neg {
		return ErrBadInputData
	}
	start := time.Now()

	nn := n.used()
	mm := montInit(n.limbs[0])

	// Montgomery setup constant, cached or fresh.
	var rr *Int
	if mont != nil {
		if !mont.valid {
			if err := montRR(&mont.rr, n); err != nil {
				return err
			}
			mont.valid = true
		}
		rr = &mont.rr
	} else {
		rr = new(Int)
		if err := montRR(rr, n); err != nil {
			return err
		}
	}

	// Window width by exponent size.
	ebits := e.BitLen()
	var wsize int
	switch {
	case ebits > 671:
		wsize = 6
	case ebits > 239:
		wsize = 5
	case ebits > 79:
		wsize = 4
	case ebits > 23:
		wsize = 3
	default:
		wsize = 1
	}

	var t Int
	if err := t.Grow(2*nn + 1); err != nil {
		return err
	}
	one := Int{limbs: []uint32{1}}
	stats := Stats{
		ExpBits: ebits,
		ModBits: n.BitLen(),
		Window:  wsize,
	}

	// Precomputed odd powers of the base, in the Montgomery domain:
	// w[j] = a^j * R for every odd j below 2^wsize. The window scan
	// ends each window at a set bit, so all odd indices are
	// reachable, including the ones a truncated window produces.
	w := make([]Int, 1<<uint(wsize))
	if err := w[1].Mod(a, n); err != nil {
		return err
	}
	if err := w[1].Grow(nn); err != nil {
		return err
	}
	montMul(&w[1], rr, n, mm, &t)
	stats.Multiplies++

	if wsize > 1 {
		var sq Int
		if err := sq.Set(&w[1]); err != nil {
			return err
		}
		if err := sq.Grow(nn); err != nil {
			return err
		}
		montMul(&sq, &sq, n, mm, &t)
		stats.Squarings++
		for j := 3; j < 1<<uint(wsize); j += 2 {
			if err := w[j].Set(&w[j-2]); err != nil {
				return err
			}
			if err := w[j].Grow(nn); err != nil {
				return err
			}
			montMul(&w[j], &sq, n, mm, &t)
			stats.Multiplies++
		}
		stats.TableSize = 1 << uint(wsize-1)
	} else {
		stats.TableSize = 1
	}

	// Accumulator starts as R mod N, the Montgomery image of 1.
	var acc Int
	if err := acc.Set(rr); err != nil {
		return err
	}
	if err := acc.Grow(nn); err != nil {
		return err
	}
	montMul(&acc, &one, n, mm, &t)

	// Scan the exponent from the most significant bit: square once
	// per bit, and multiply in the matching table entry at the end
	// of each window of bits starting and ending in a one.
	i := ebits - 1
	for i >= 0 {
		if e.bit(i) == 0 {
			montMul(&acc, &acc, n, mm, &t)
			stats.Squarings++
			i--
			continue
		}
		low := i - wsize + 1
		if low < 0 {
			low = 0
		}
		for e.bit(low) == 0 {
			low++
		}
		var win uint32
		for j := i; j >= low; j-- {
			montMul(&acc, &acc, n, mm, &t)
			stats.Squarings++
			win = win<<1 | e.bit(j)
		}
		montMul(&acc, &w[win], n, mm, &t)
		stats.Multiplies++
		i = low - 1
	}

	// Back out of the Montgomery domain.
	montMul(&acc, &one, n, mm, &t)
	acc.trim()

	stats.Elapsed = time.Since(start)
	if mont != nil {
		mont.Stats = stats
	}
	x.limbs = acc.limbs
	x.neg = false
	return nil
}

// montInit computes -N^-1 mod 2^32 from the low limb of an odd
// modulus, doubling the precision of the inverse on every step.
func montInit(n0 uint32) uint32 {
	x := n0
	x += ((n0 + 2) & 4) << 1
	for i := 8; i <= 32; i *= 2 {
		x *= 2 - n0*x
	}
	return ^x + 1
}

// montRR computes the Montgomery setup constant R^2 mod N where
// R = 2^(32*limbs(N)).
func montRR(rr *Int, n *Int) error {
	if err := rr.SetInt(1); err != nil {
		return err
	}
	if err := rr.Lsh(n.used() * 64); err != nil {
		return err
	}
	return rr.Mod(rr, n)
}

// montMul computes a = a * b * R^-1 mod N (Montgomery
// multiplication). Both inputs must be below N in magnitude and a
// must have room for used(N) limbs; t is scratch space of at least
// 2*used(N)+1 limbs. a and b may be the same value.
func montMul(a, b, n *Int, mm uint32, t *Int) {
	nn := n.used()
	d := t.limbs[:2*nn+1]
	for i := range d {
		d[i] = 0
	}
	m := b.used()
	if m > nn {
		m = nn
	}
	b0 := b.limb(0)

	for i := 0; i < nn; i++ {
		dd := d[i:]
		u0 := a.limb(i)
		u1 := (dd[0] + u0*b0) * mm
		if m > 0 {
			mulAddVec(dd, b.limbs[:m], u0)
		}
		mulAddVec(dd, n.limbs[:nn], u1)
	}

	// The low nn limbs are now zero; the result is the high part,
	// below 2N, so a single conditional subtraction reduces it.
	res := d[nn : 2*nn+1]
	if res[nn] != 0 || cmpVec(res[:nn], n.limbs[:nn]) >= 0 {
		subVec(res[:nn], n.limbs[:nn])
	}

	a.limbs = a.limbs[:nn]
	copy(a.limbs, res[:nn])
	a.neg = false
}

// mulAddVec adds w*v into d with carry propagation past the end of
// v. d must be long enough to absorb the carry.
func mulAddVec(d, v []uint32, w uint32) {
	var carry uint64
	for i := 0; i < len(v); i++ {
		t := uint64(d[i]) + uint64(w)*uint64(v[i]) + carry
		d[i] = uint32(t)
		carry = t >> 32
	}
	for i := len(v); carry != 0; i++ {
		t := uint64(d[i]) + carry
		d[i] = uint32(t)
		carry = t >> 32
	}
}

// cmpVec compares equal-length limb vectors, most significant limb
// first.
func cmpVec(a, b []uint32) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// subVec subtracts b from a in place and returns the final borrow.
func subVec(a, b []uint32) uint32 {
	var borrow uint64
	for i := 0; i < len(a); i++ {
		t := uint64(a[i]) - uint64(b[i]) - borrow
		a[i] = uint32(t)
		borrow = (t >> 32) & 1
	}
	return uint32(borrow)
}

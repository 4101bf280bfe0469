//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpi

// CmpAbs compares the magnitudes of x and y and returns 1, -1, or 0
// for |x| greater than, less than, or equal to |y|. Trailing zero
// limbs are not significant.
func (x *Int) CmpAbs(y *Int) int {
	xn, yn := x.used(), y.used()
	if xn != yn {
		if xn > yn {
			return 1
		}
		return -1
	}
	for i := xn - 1; i >= 0; i-- {
		if x.limbs[i] != y.limbs[i] {
			if x.limbs[i] > y.limbs[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Cmp compares the signed values of x and y and returns 1, -1, or 0
// for x greater than, less than, or equal to y. The comparison is
// not constant time.
func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := x.CmpAbs(y)
	if x.neg {
		return -c
	}
	return c
}

// CmpInt compares x against the single-limb signed integer z.
func (x *Int) CmpInt(z int32) int {
	t := Int{neg: z < 0}
	if z != 0 {
		mag := uint32(z)
		if z < 0 {
			mag = uint32(-int64(z))
		}
		t.limbs = []uint32{mag}
	}
	return x.Cmp(&t)
}

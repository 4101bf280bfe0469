//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpi

import (
	"math/big"
	"testing"
)

var shiftCounts = []int{0, 1, 7, 31, 32, 33, 63, 64, 65, 100, 200}

func TestLsh(t *testing.T) {
	rng := newPRG("lsh")
	for i := 0; i < 50; i++ {
		for _, count := range shiftCounts {
			x := rng.mpi(t, 200, true)
			expected := new(big.Int).Lsh(toBig(t, x), uint(count))
			if err := x.Lsh(count); err != nil {
				t.Fatalf("Lsh(%d): %v", count, err)
			}
			eqBig(t, x, expected, "Lsh(%d)", count)
		}
	}
}

func TestRsh(t *testing.T) {
	rng := newPRG("rsh")
	for i := 0; i < 50; i++ {
		for _, count := range shiftCounts {
			x := rng.mpi(t, 200, true)
			mag := new(big.Int).Abs(toBig(t, x))
			mag.Rsh(mag, uint(count))
			if x.Sign() < 0 && mag.Sign() != 0 {
				mag.Neg(mag)
			}
			x.Rsh(count)
			eqBig(t, x, mag, "Rsh(%d)", count)
		}
	}
}

func TestLshRshRoundTrip(t *testing.T) {
	rng := newPRG("lshrsh")
	for i := 0; i < 50; i++ {
		x := rng.mpi(t, 300, true)
		expected := toBig(t, x)
		if err := x.Lsh(77); err != nil {
			t.Fatalf("Lsh: %v", err)
		}
		x.Rsh(77)
		eqBig(t, x, expected, "Lsh/Rsh round trip")
	}
}

func TestLshNegativeCount(t *testing.T) {
	x := fromInt64(t, 1)
	if err := x.Lsh(-1); err != ErrBadInputData {
		t.Errorf("Lsh(-1): %v, expected ErrBadInputData", err)
	}
}

func TestLshLimit(t *testing.T) {
	x := fromInt64(t, 1)
	if err := x.Lsh(32 * MaxLimbs); err != ErrAllocation {
		t.Errorf("Lsh past MaxLimbs: %v, expected ErrAllocation", err)
	}
}

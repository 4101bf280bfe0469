//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpi

import (
	"math/bits"
)

// BitLen returns the number of bits in the magnitude of x: the index
// of the most significant set bit plus one, or 0 for a zero value.
func (x *Int) BitLen() int {
	n := x.used()
	if n == 0 {
		return 0
	}
	return (n-1)*32 + bits.Len32(x.limbs[n-1])
}

// Size returns the length of the magnitude of x in bytes, 0 for a
// zero value.
func (x *Int) Size() int {
	return (x.BitLen() + 7) / 8
}

// SetBytes sets x to the big-endian unsigned magnitude in buf. The
// result is never negative; an empty buffer sets x to zero. Leading
// zero bytes are accepted and ignored.
func (x *Int) SetBytes(buf []byte) error {
	var skip int
	for skip < len(buf) && buf[skip] == 0 {
		skip++
	}
	buf = buf[skip:]

	n := (len(buf) + 3) / 4
	if err := x.Grow(n); err != nil {
		return err
	}
	for i := range x.limbs {
		x.limbs[i] = 0
	}
	for i := 0; i < len(buf); i++ {
		b := buf[len(buf)-1-i]
		x.limbs[i/4] |= uint32(b) << (8 * (uint(i) % 4))
	}
	x.neg = false
	x.trim()
	return nil
}

// Export writes the magnitude of x into buf as big-endian bytes of
// minimal length: no leading zero bytes, except that the value 0
// encodes as a single zero byte. It returns the number of bytes
// written.
//
// Calling Export with an empty buf is a sizing query: it returns the
// required byte count without writing anything. A non-empty buf that
// is too small fails with ErrBufferTooSmall and nothing is written.
func (x *Int) Export(buf []byte) (int, error) {
	need := x.Size()
	if need == 0 {
		need = 1
	}
	if len(buf) == 0 {
		return need, nil
	}
	if len(buf) < need {
		return 0, ErrBufferTooSmall
	}
	if x.used() == 0 {
		buf[0] = 0
		return 1, nil
	}
	for i := 0; i < need; i++ {
		buf[need-1-i] = byte(x.limbs[i/4] >> (8 * (uint(i) % 4)))
	}
	return need, nil
}

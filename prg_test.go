//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpi

import (
	"fmt"
	"math/big"
	"testing"

	"golang.org/x/crypto/chacha20"
)

// prg is a deterministic random stream for test operands so that
// randomized tests are reproducible. The label gives each test its
// own stream.
type prg struct {
	stream *chacha20.Cipher
}

func newPRG(label string) *prg {
	key := make([]byte, 32)
	for i := 0; i < len(key); i++ {
		key[i] = label[i%len(label)]
	}
	nonce := make([]byte, chacha20.NonceSize)
	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic(err)
	}
	return &prg{
		stream: stream,
	}
}

func (p *prg) bytes(n int) []byte {
	buf := make([]byte, n)
	p.stream.XORKeyStream(buf, buf)
	return buf
}

// mpi returns a value of at most bits bits. With neg the sign is
// drawn from the stream too.
func (p *prg) mpi(t *testing.T, bits int, neg bool) *Int {
	t.Helper()

	buf := p.bytes((bits + 7) / 8)
	if len(buf) > 0 && bits%8 != 0 {
		buf[0] &= byte(1<<(uint(bits)%8)) - 1
	}
	x := new(Int)
	if err := x.SetBytes(buf); err != nil {
		t.Fatalf("SetBytes: %v", err)
	}
	if neg && x.Sign() != 0 && p.bytes(1)[0]&1 != 0 {
		x.neg = true
	}
	return x
}

// nonzero returns a nonzero value of at most bits bits.
func (p *prg) nonzero(t *testing.T, bits int, neg bool) *Int {
	t.Helper()

	for {
		x := p.mpi(t, bits, neg)
		if x.Sign() != 0 {
			return x
		}
	}
}

// toBig converts x to a math/big integer for cross-checking.
func toBig(t *testing.T, x *Int) *big.Int {
	t.Helper()

	buf := make([]byte, x.Size()+1)
	n, err := x.Export(buf)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	b := new(big.Int).SetBytes(buf[:n])
	if x.Sign() < 0 {
		b.Neg(b)
	}
	return b
}

// fromBig converts a math/big integer to an Int.
func fromBig(t *testing.T, b *big.Int) *Int {
	t.Helper()

	x := new(Int)
	if err := x.SetBytes(b.Bytes()); err != nil {
		t.Fatalf("SetBytes: %v", err)
	}
	if b.Sign() < 0 {
		x.neg = true
	}
	return x
}

// eqBig checks x against the expected math/big value.
func eqBig(t *testing.T, x *Int, expected *big.Int, format string,
	args ...interface{}) {
	t.Helper()

	got := toBig(t, x)
	if got.Cmp(expected) != 0 {
		t.Errorf("%s: got %s, expected %s",
			fmt.Sprintf(format, args...), got, expected)
	}
}

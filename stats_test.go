//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpi

import (
	"bytes"
	"strings"
	"testing"
)

func TestStats(t *testing.T) {
	rng := newPRG("stats")
	a := rng.mpi(t, 512, false)
	e := rng.nonzero(t, 300, false)
	n := oddModulus(t, rng, 512)

	var mont Mont
	var x Int
	if err := x.ExpMod(a, e, n, &mont); err != nil {
		t.Fatalf("ExpMod: %v", err)
	}

	stats := mont.Stats
	if stats.ExpBits != e.BitLen() {
		t.Errorf("ExpBits %d, expected %d", stats.ExpBits, e.BitLen())
	}
	if stats.ModBits != n.BitLen() {
		t.Errorf("ModBits %d, expected %d", stats.ModBits, n.BitLen())
	}
	// A 300-bit exponent selects a 5-bit window.
	if stats.Window != 5 {
		t.Errorf("Window %d, expected 5", stats.Window)
	}
	if stats.TableSize != 16 {
		t.Errorf("TableSize %d, expected 16", stats.TableSize)
	}
	// One squaring per exponent bit plus the table setup.
	if stats.Squarings < stats.ExpBits {
		t.Errorf("Squarings %d < ExpBits %d",
			stats.Squarings, stats.ExpBits)
	}
	if stats.Multiplies < 1 {
		t.Errorf("Multiplies %d", stats.Multiplies)
	}
}

func TestStatsPrint(t *testing.T) {
	rng := newPRG("statsprint")
	a := rng.mpi(t, 256, false)
	e := rng.nonzero(t, 100, false)
	n := oddModulus(t, rng, 256)

	var mont Mont
	var x Int
	if err := x.ExpMod(a, e, n, &mont); err != nil {
		t.Fatalf("ExpMod: %v", err)
	}

	var buf bytes.Buffer
	mont.Stats.Print(&buf)
	out := buf.String()
	if !strings.Contains(out, "Squarings") {
		t.Errorf("report missing squarings row:\n%s", out)
	}
	if !strings.Contains(out, "Window") {
		t.Errorf("report missing window row:\n%s", out)
	}

	if len(mont.Stats.String()) == 0 {
		t.Errorf("empty Stats string")
	}
}

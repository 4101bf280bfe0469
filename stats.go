//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpi

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// Stats describes the work performed by one ExpMod call: the chosen
// window width, the size of the precomputed table of odd powers, and
// the number of Montgomery squarings and multiplications spent on
// the exponent scan and table setup.
type Stats struct {
	ExpBits    int
	ModBits    int
	Window     int
	TableSize  int
	Squarings  int
	Multiplies int
	Elapsed    time.Duration
}

// Print renders a report of the exponentiation profile.
func (s Stats) Print(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("ExpMod").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.MR)

	row := tab.Row()
	row.Column("Modulus bits")
	row.Column(fmt.Sprintf("%d", s.ModBits))

	row = tab.Row()
	row.Column("Exponent bits")
	row.Column(fmt.Sprintf("%d", s.ExpBits))

	row = tab.Row()
	row.Column("Window")
	row.Column(fmt.Sprintf("%d bits", s.Window))

	row = tab.Row()
	row.Column("Table")
	if s.Window > 1 {
		row.Column(fmt.Sprintf("2%s entries",
			superscript.Itoa(s.Window-1)))
	} else {
		row.Column("1 entry")
	}

	row = tab.Row()
	row.Column("Squarings")
	row.Column(fmt.Sprintf("%d", s.Squarings))

	row = tab.Row()
	row.Column("Multiplications")
	row.Column(fmt.Sprintf("%d", s.Multiplies))

	row = tab.Row()
	row.Column("Time").SetFormat(tabulate.FmtBold)
	row.Column(s.Elapsed.String()).SetFormat(tabulate.FmtBold)

	tab.Print(w)
}

func (s Stats) String() string {
	return fmt.Sprintf("w=%d: %d squarings, %d multiplications in %s",
		s.Window, s.Squarings, s.Multiplies, s.Elapsed)
}

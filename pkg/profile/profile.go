// 2 Apr 2024

// Package profile turns the final alignment into a per-column residue
// frequency table. The predictor wants these as fractions, not
// counts, so the table is normalised per column.
package profile

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/matrix"
	"github.com/ashora/jpred-standalone/pkg/seq"
	. "github.com/ashora/jpred-standalone/pkg/seq/common"
)

const maxSym = 127 // ascii only, same as the rest of the pipeline

// A Profile holds, for each alignment column, the fraction of
// records showing each symbol. Gaps are left out of the tallies, so
// the fractions in a column are of its non-gap total.
type Profile struct {
	syms    []byte // symbols in use, in ascii order
	mapping [maxSym]uint8
	freq    *matrix.FMatrix2d // indexed [symbol][column]
}

// FromAln tallies symbol usage per column over the whole collection.
// We store float32, since the counts are normalised straight away and
// the predictor does not care about the last bit of precision.
func FromAln(a *seq.Alignment) *Profile {
	var used [maxSym]bool
	slc := a.SeqSlc()
	for i := range slc {
		for _, c := range slc[i].Align() {
			if c != GapChar {
				used[c] = true
			}
		}
	}

	p := new(Profile)
	for i := range used {
		if used[i] {
			p.mapping[i] = uint8(len(p.syms))
			p.syms = append(p.syms, byte(i))
		}
	}

	ncol := slc[0].Len()
	p.freq = matrix.NewFMatrix2d(len(p.syms), ncol)
	for i := range slc {
		for icol, c := range slc[i].Align() {
			if c != GapChar {
				p.freq.Mat[p.mapping[c]][icol]++
			}
		}
	}

	nrow := len(p.syms)
	for icol := 0; icol < ncol; icol++ {
		var total float32
		for irow := 0; irow < nrow; irow++ {
			total += p.freq.Mat[irow][icol]
		}
		if total == 0 {
			continue // a column of nothing but gaps
		}
		for irow := 0; irow < nrow; irow++ {
			p.freq.Mat[irow][icol] /= total
		}
	}
	return p
}

// NSym returns the number of symbols seen in the alignment.
func (p *Profile) NSym() int { return len(p.syms) }

// Freq returns the fraction for one symbol at one column.
func (p *Profile) Freq(c byte, col int) float32 {
	if c >= maxSym || p.syms == nil {
		return 0
	}
	i := p.mapping[c]
	if int(i) >= len(p.syms) || p.syms[i] != c {
		return 0 // symbol never seen
	}
	return p.freq.Mat[i][col]
}

// WriteTo writes the table as text, one line per alignment column,
// after a header line naming the symbols.
func (p *Profile) WriteTo(w io.Writer) error {
	fmt.Fprint(w, "# col")
	for _, c := range p.syms {
		fmt.Fprintf(w, " %6c", c)
	}
	fmt.Fprintln(w)
	_, ncol := p.freq.Size()
	for icol := 0; icol < ncol; icol++ {
		fmt.Fprintf(w, "%5d", icol+1)
		for irow := range p.syms {
			fmt.Fprintf(w, " %6.4f", p.freq.Mat[irow][icol])
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// Write writes the table to a named file.
func (p *Profile) Write(fname string) error {
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("creating profile file: %w", err)
	}
	if err := p.WriteTo(fp); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

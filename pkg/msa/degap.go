// 27 Mar 2024

package msa

import (
	"github.com/ashora/jpred-standalone/pkg/seq"
	. "github.com/ashora/jpred-standalone/pkg/seq/common"
)

// Degap throws away the alignment columns in which the query has a
// gap, from every record alike. The query keeps the coordinate
// system, so after this the columns map one to one onto query
// residues. The query has no gaps left afterwards, which makes the
// operation idempotent. The projection happens in place.
func Degap(a *seq.Alignment) {
	qrow := a.Query().Align()
	mask := make([]bool, len(qrow))
	ngap := 0
	for i, c := range qrow {
		if c != GapChar {
			mask[i] = true
		} else {
			ngap++
		}
	}
	if ngap == 0 {
		return
	}

	slc := a.SeqSlc()
	for k := range slc {
		row := slc[k].Align()
		b := row[:0]
		for i, c := range row {
			if mask[i] {
				b = append(b, c)
			}
		}
		slc[k].SetAlign(b)
	}
}

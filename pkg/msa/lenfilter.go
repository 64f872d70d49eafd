// 25 Mar 2024

package msa

import "github.com/ashora/jpred-standalone/pkg/seq"

// DelLongSeqs drops every record whose ungapped length strays more
// than factor per cent from the query's own ungapped length. Both
// bounds are inclusive and the query always stays, whatever its
// length. Order is otherwise preserved.
func DelLongSeqs(a *seq.Alignment, factor int) *seq.Alignment {
	slc := a.SeqSlc()
	qlen := float64(slc[0].UngappedLen())
	margin := qlen * float64(factor) / 100
	lo, hi := qlen-margin, qlen+margin

	kept := []seq.Seq{slc[0]}
	for i := 1; i < len(slc); i++ {
		if l := float64(slc[i].UngappedLen()); lo <= l && l <= hi {
			kept = append(kept, slc[i])
		}
	}
	return seq.NewAlignment(kept)
}

// 25 Mar 2024

package msa

import "github.com/ashora/jpred-standalone/pkg/seq"

// Reduce caps the number of records by even subsampling, always
// keeping the query. The cap is approximate. With n non-query records
// we keep every record at a stride of n/max, which comes to
// n/stride + 1 records and can land a little over max. The historical
// behaviour is kept as is; the predictor does not care about a few
// records more.
func Reduce(a *seq.Alignment, max int) *seq.Alignment {
	slc := a.SeqSlc()
	n := len(slc) - 1
	if max < 1 || n < max {
		return a
	}
	stride := n / max
	if stride == 0 {
		return a
	}
	kept := []seq.Seq{slc[0]}
	for i, s := range slc[1:] {
		if i%stride == 0 {
			kept = append(kept, s)
		}
	}
	return seq.NewAlignment(kept)
}

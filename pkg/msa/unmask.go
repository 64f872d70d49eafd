// 22 Mar 2024

package msa

import (
	"bytes"
	"fmt"

	"github.com/ashora/jpred-standalone/pkg/seq"
	. "github.com/ashora/jpred-standalone/pkg/seq/common"
)

// A SeqIndex looks up the full, unfiltered reference sequence for an
// identifier. It is bound to its database when it is built, so the
// pipeline does not care whether it shells out to a formatted
// database or scans a plain file.
type SeqIndex interface {
	Lookup(id string) ([][]byte, error)
}

// Unmask puts the real residues back wherever the search engine's
// filtering left a masking symbol. The record's start offset says
// where its first aligned residue sits in the reference sequence, so
// we walk the columns counting non-gaps and read the residue straight
// out of the reference. Records without a mask symbol are skipped,
// which is the common case and costs no lookups.
// Exactly one reference sequence must exist per identifier. None
// means the reference database does not match the search database,
// more than one means the accession is ambiguous. Either way we
// cannot trust the result, so both are fatal, as is a reference
// shorter than the alignment needs.
func Unmask(a *seq.Alignment, ndx SeqIndex) error {
	slc := a.SeqSlc()
	for k := 1; k < len(slc); k++ {
		s := &slc[k]
		if bytes.IndexByte(s.Align(), MaskChar) == -1 {
			continue
		}
		refs, err := ndx.Lookup(s.Id())
		if err != nil {
			return fmt.Errorf("unmasking %s: %w", s.Id(), err)
		}
		if len(refs) == 0 {
			return fmt.Errorf("no reference sequence for %s: %w", s.Id(), ErrLookup)
		}
		if len(refs) > 1 {
			return fmt.Errorf("%d reference sequences for %s: %w",
				len(refs), s.Id(), ErrLookup)
		}
		ref := refs[0]
		offset := s.Start() - 1
		align := s.Align()
		i := 0 // non-gap columns walked so far
		for col, c := range align {
			if c == GapChar {
				continue
			}
			if c == MaskChar {
				if i+offset < 0 || i+offset >= len(ref) {
					return fmt.Errorf(
						"reference for %s is %d long but residue %d is needed: %w",
						s.Id(), len(ref), i+offset+1, ErrInconsistent)
				}
				align[col] = ref[i+offset]
			}
			i++
		}
	}
	return nil
}

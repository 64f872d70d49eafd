// 21 Mar 2024

package msa

import (
	"bytes"
	"fmt"

	"github.com/ashora/jpred-standalone/pkg/seq"
	. "github.com/ashora/jpred-standalone/pkg/seq/common"
)

// noGaps copies s without its gap characters.
func noGaps(s []byte) []byte {
	t := make([]byte, 0, len(s))
	for _, c := range s {
		if c != GapChar {
			t = append(t, c)
		}
	}
	return t
}

// upper uppercases a copy. Only bytes, which is all a sequence may hold.
func upper(s []byte) []byte {
	const diff = 'a' - 'A'
	t := make([]byte, len(s))
	for i, c := range s {
		if 'a' <= c && c <= 'z' {
			c -= diff
		}
		t[i] = c
	}
	return t
}

// Extend reconciles a possibly truncated search alignment with the
// full query. The search engine's own copy of the query, element 0,
// must be a contiguous piece of the full query; whatever the copy is
// missing at either end becomes gap padding on every hit, and the
// query row itself is rebuilt with the missing residues put back.
// If the copy cannot be found in the full query, the two inputs do
// not belong together and we return ErrInconsistent.
func Extend(a *seq.Alignment, fullQuery []byte) error {
	qfull := noGaps(fullQuery)
	qrec := a.Query()
	qcopy := noGaps(qrec.Align())

	lead := bytes.Index(upper(qfull), upper(qcopy))
	if lead == -1 {
		return fmt.Errorf("aligned query %q is not part of the full query: %w",
			trim40(qcopy), ErrInconsistent)
	}
	trail := len(qfull) - len(qcopy) - lead

	gapsLead := bytes.Repeat([]byte{GapChar}, lead)
	gapsTrail := bytes.Repeat([]byte{GapChar}, trail)
	slc := a.SeqSlc()
	for i := 1; i < len(slc); i++ {
		t := make([]byte, 0, lead+slc[i].Len()+trail)
		t = append(t, gapsLead...)
		t = append(t, slc[i].Align()...)
		t = append(t, gapsTrail...)
		slc[i].SetAlign(t)
	}

	t := make([]byte, 0, lead+qrec.Len()+trail)
	t = append(t, qfull[:lead]...)
	t = append(t, qrec.Align()...)
	t = append(t, qfull[len(qfull)-trail:]...)
	qrec.SetAlign(t)
	return nil
}

func trim40(s []byte) []byte {
	if len(s) > 40 {
		return s[:40]
	}
	return s
}

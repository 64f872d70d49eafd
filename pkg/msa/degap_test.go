// 27 Mar 2024

package msa_test

import (
	"testing"

	"github.com/ashora/jpred-standalone/pkg/msa"
	"github.com/ashora/jpred-standalone/pkg/seq"
)

func checkRows(a *seq.Alignment, want []string, t *testing.T) {
	t.Helper()
	for i, w := range want {
		if got := string(a.SeqSlc()[i].Align()); got != w {
			t.Fatalf("record %d got %q wanted %q", i, got, w)
		}
	}
}

// TestDegap projects everything onto the query's non-gap columns.
func TestDegap(t *testing.T) {
	a := seq.Str2Aln([]string{"MK-VL", "ABCDE", "-W-XZ"})
	msa.Degap(a)
	want := []string{"MKVL", "ABDE", "-WXZ"} // columns 0 1 3 4
	checkRows(a, want, t)

	msa.Degap(a) // doing it again changes nothing
	checkRows(a, want, t)
}

// TestDegapNoGaps: a gap-free query means nothing to do.
func TestDegapNoGaps(t *testing.T) {
	a := seq.Str2Aln([]string{"MKVL", "ABCD"})
	msa.Degap(a)
	checkRows(a, []string{"MKVL", "ABCD"}, t)
}

// TestDegapColumnCount: the result has as many columns as the query
// had residues.
func TestDegapColumnCount(t *testing.T) {
	a := seq.Str2Aln([]string{"--M-K--V-L--", "ABCDEFGHIJKL"})
	nres := a.Query().UngappedLen()
	msa.Degap(a)
	for i := range a.SeqSlc() {
		if l := a.SeqSlc()[i].Len(); l != nres {
			t.Fatalf("record %d has %d columns, wanted %d", i, l, nres)
		}
	}
}

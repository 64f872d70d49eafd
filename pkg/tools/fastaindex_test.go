// 9 Apr 2024

package tools_test

import (
	"os"
	"testing"

	"github.com/ashora/jpred-standalone/pkg/seq/common"
	"github.com/ashora/jpred-standalone/pkg/tools"
)

const refFasta = `>sp|P1 first one
MKVLW
AALLV
>sp|P2 another
AAAA
>sp|P1 same accession again
CCCC
`

func tmpIndex(t *testing.T) *tools.FastaIndex {
	t.Helper()
	fname, err := common.WrtTemp(refFasta)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(fname) })
	return &tools.FastaIndex{Path: fname}
}

func TestFastaIndexLookup(t *testing.T) {
	ndx := tmpIndex(t)
	refs, err := ndx.Lookup("sp|P2")
	if err != nil {
		t.Fatal("lookup", err)
	}
	if len(refs) != 1 || string(refs[0]) != "AAAA" {
		t.Fatalf("lookup got %q", refs)
	}
}

// TestFastaIndexMultiline: wrapped records come back in one piece.
func TestFastaIndexMultiline(t *testing.T) {
	ndx := tmpIndex(t)
	refs, err := ndx.Lookup("sp|P1")
	if err != nil {
		t.Fatal("lookup", err)
	}
	if len(refs) != 2 {
		t.Fatalf("duplicate accession: got %d records wanted 2", len(refs))
	}
	if string(refs[0]) != "MKVLWAALLV" {
		t.Fatalf("wrapped record got %q", refs[0])
	}
}

func TestFastaIndexMiss(t *testing.T) {
	ndx := tmpIndex(t)
	refs, err := ndx.Lookup("sp|P9")
	if err != nil {
		t.Fatal("lookup", err)
	}
	if len(refs) != 0 {
		t.Fatalf("missing id found %q", refs)
	}
}

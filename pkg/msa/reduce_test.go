// 25 Mar 2024

package msa_test

import (
	"testing"

	"github.com/ashora/jpred-standalone/pkg/msa"
	"github.com/ashora/jpred-standalone/pkg/seq"
)

func ids(a *seq.Alignment) []string {
	t := make([]string, a.NSeq())
	for i := range a.SeqSlc() {
		t[i] = a.SeqSlc()[i].Id()
	}
	return t
}

func sameIds(got, want []string, t *testing.T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v wanted %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v wanted %v", got, want)
		}
	}
}

// TestReduce checks the stride sampling, including the odd property
// that the result may overshoot the cap. Five records, a cap of two:
// the stride is 2, so the query plus non-query records 0 and 2 stay.
// That makes three, one more than the cap asked for.
func TestReduce(t *testing.T) {
	a := seq.Str2Aln([]string{"AAAA", "CCCC", "DDDD", "EEEE", "FFFF"})
	b := msa.Reduce(a, 2)
	sameIds(ids(b), []string{"s0", "s1", "s3"}, t)
}

// TestReduceUnderCap: fewer non-query records than the cap, nothing
// happens.
func TestReduceUnderCap(t *testing.T) {
	a := seq.Str2Aln([]string{"AAAA", "CCCC", "DDDD"})
	b := msa.Reduce(a, 10)
	sameIds(ids(b), []string{"s0", "s1", "s2"}, t)
}

func TestReduceExactStride(t *testing.T) {
	rows := make([]string, 9) // query + 8, cap 4, stride 2
	for i := range rows {
		rows[i] = "AAAA"
	}
	a := seq.Str2Aln(rows)
	b := msa.Reduce(a, 4)
	sameIds(ids(b), []string{"s0", "s1", "s3", "s5", "s7"}, t)
}

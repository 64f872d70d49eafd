// 19 Mar 2024

package seq_test

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/ashora/jpred-standalone/pkg/brokenio"
	"github.com/ashora/jpred-standalone/pkg/seq"
	"github.com/ashora/jpred-standalone/pkg/seq/common"
)

func ExampleWriteFasta() {
	a := seq.Str2Aln([]string{"MKVL", "MK-L"})
	seq.WriteFasta(os.Stdout, a)
	// Output:
	// >s0
	// MKVL
	// >s1
	// MK-L
}

// TestIds checks that identifiers are the first word of the header
// and do not keep the ">".
func TestIds(t *testing.T) {
	s := `>q1 some description here
MKVL
> sp|P12345|TRIVIAL more words
MK-L`
	var aln seq.Alignment
	if err := seq.ReadFasta(strings.NewReader(s), &aln); err != nil {
		t.Fatal("reading simple records", err)
	}
	want := []string{"q1", "sp|P12345|TRIVIAL"}
	for i, w := range want {
		if got := aln.SeqSlc()[i].Id(); got != w {
			t.Fatalf("id %d got %q wanted %q", i, got, w)
		}
	}
}

// TestWrapped makes sure line-wrapped sequences come back in one piece.
func TestWrapped(t *testing.T) {
	long := strings.Repeat("MKVLW", 40) // 200 residues
	s := ">s1\n"
	for i := 0; i < len(long); i += 72 {
		end := i + 72
		if end > len(long) {
			end = len(long)
		}
		s += long[i:end] + "\n"
	}
	var aln seq.Alignment
	if err := seq.ReadFasta(strings.NewReader(s), &aln); err != nil {
		t.Fatal("reading wrapped record", err)
	}
	if got := string(aln.SeqSlc()[0].Align()); got != long {
		t.Fatalf("wrapped read got %d chars wanted %d", len(got), len(long))
	}
}

// roundtrip writes an alignment to fname and reads it back, comparing
// ids and rows.
func roundtrip(a *seq.Alignment, fname string, t *testing.T) {
	if err := seq.WriteAlnFile(a, fname); err != nil {
		t.Fatal("writing", fname, err)
	}
	b, err := seq.ReadAlnFile(fname)
	if err != nil {
		t.Fatal("reading back", fname, err)
	}
	if a.NSeq() != b.NSeq() {
		t.Fatalf("roundtrip got %d records wanted %d", b.NSeq(), a.NSeq())
	}
	for i := range a.SeqSlc() {
		sa, sb := &a.SeqSlc()[i], &b.SeqSlc()[i]
		if sa.Id() != sb.Id() {
			t.Fatalf("record %d id got %q wanted %q", i, sb.Id(), sa.Id())
		}
		if string(sa.Align()) != string(sb.Align()) {
			t.Fatalf("record %d row got %q wanted %q", i, sb.Align(), sa.Align())
		}
	}
}

func TestRoundTrip(t *testing.T) {
	long := strings.Repeat("ACDEFGHIKL", 20)
	dir := t.TempDir()
	roundtrip(seq.Str2Aln([]string{"MKV-L", "MK--L"}), dir+"/plain.fa", t)
	roundtrip(seq.NewAlignment([]seq.Seq{
		seq.NewSeq("q", 0, []byte(long)),
		seq.NewSeq("h1", 17, []byte(long)),
	}), dir+"/packed.fa.gz", t)
}

// TestStartNotPersisted: start offsets come from the search engine
// and are not part of the file format.
func TestStartNotPersisted(t *testing.T) {
	a := seq.NewAlignment([]seq.Seq{
		seq.NewSeq("q", 0, []byte("MKVL")),
		seq.NewSeq("h1", 42, []byte("MK-L")),
	})
	dir := t.TempDir()
	fname := dir + "/chk.fa"
	if err := seq.WriteAlnFile(a, fname); err != nil {
		t.Fatal(err)
	}
	b, err := seq.ReadAlnFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.SeqSlc()[1].Start(); got != 0 {
		t.Fatalf("start came back as %d, should not be persisted", got)
	}
}

func TestUpper(t *testing.T) {
	a := seq.Str2Aln([]string{"mKv-l", "MK--L"})
	if err := a.Upper(); err != nil {
		t.Fatal("upper", err)
	}
	if got := string(a.SeqSlc()[0].Align()); got != "MKV-L" {
		t.Fatalf("upper got %q", got)
	}
}

func TestUngapped(t *testing.T) {
	s := seq.NewSeq("s", 0, []byte("-MK--VL-"))
	if n := s.UngappedLen(); n != 4 {
		t.Fatalf("ungapped len got %d wanted 4", n)
	}
	if got := string(s.Ungapped()); got != "MKVL" {
		t.Fatalf("ungapped got %q wanted MKVL", got)
	}
}

// TestReadShortReads: a reader may return fewer bytes than asked for
// without being anywhere near the end of its data. The parse must not
// mistake that for end of input, however the reads happen to fall.
func TestReadShortReads(t *testing.T) {
	long := strings.Repeat("ACDEFGHIKL", 40)
	inputs := []string{
		">a\nMKVL\n>b\nMKWL\n",
		">a\n" + long + "\n>b\n" + long + "\n", // records span buffers
	}
	wraps := []func(io.Reader) io.Reader{iotest.OneByteReader, iotest.HalfReader}
	for i, in := range inputs {
		var plain seq.Alignment
		if err := seq.ReadFasta(strings.NewReader(in), &plain); err != nil {
			t.Fatal("input", i, err)
		}
		for j, wrap := range wraps {
			var aln seq.Alignment
			if err := seq.ReadFasta(wrap(strings.NewReader(in)), &aln); err != nil {
				t.Fatalf("input %d wrap %d: %v", i, j, err)
			}
			if aln.NSeq() != plain.NSeq() {
				t.Fatalf("input %d wrap %d: got %d records wanted %d",
					i, j, aln.NSeq(), plain.NSeq())
			}
			for k := range plain.SeqSlc() {
				pk, ak := &plain.SeqSlc()[k], &aln.SeqSlc()[k]
				if pk.Id() != ak.Id() || string(pk.Align()) != string(ak.Align()) {
					t.Fatalf("input %d wrap %d record %d: got %q %q wanted %q %q",
						i, j, k, ak.Id(), ak.Align(), pk.Id(), pk.Align())
				}
			}
		}
	}
}

// TestReadBadRecordLongTail: a bad record near the front stops the
// parse, however much input follows it.
func TestReadBadRecordLongTail(t *testing.T) {
	in := ">a\n>b\n" + strings.Repeat("ACDEFGHIKL", 500) + "\n"
	var aln seq.Alignment
	if err := seq.ReadFasta(strings.NewReader(in), &aln); err == nil {
		t.Fatal("zero length record should not parse")
	}
}

// TestReadBroken: a reader dying mid-record must surface its error,
// not a half-parsed alignment.
func TestReadBroken(t *testing.T) {
	in := strings.NewReader(">a\nMKVL\n>b\nMKVL\n")
	var aln seq.Alignment
	err := seq.ReadFasta(brokenio.NewRdr(in, 5), &aln)
	if !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("wanted the injected failure, got", err)
	}
}

// TestCheckLengths provokes a length mismatch.
func TestCheckLengths(t *testing.T) {
	ragged := `>s1
ABCD
>s2
ABC`
	fname, err := common.WrtTemp(ragged)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if _, err := seq.ReadAlnFile(fname); err == nil {
		t.Fatal("ragged alignment should not read as an alignment")
	}
}

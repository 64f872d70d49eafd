// 14 Mar 2024

// Package seq holds the record that travels through the alignment
// pipeline and reads and writes collections of records in fasta
// format. A record begins its life either as a search hit, which
// carries an offset into its unfiltered reference sequence, or as a
// line in a stored alignment file, which does not.
package seq

import (
	"fmt"

	. "github.com/ashora/jpred-standalone/pkg/seq/common"
)

// We only handle ascii characters, so anything bigger than this is
// not valid.
const MaxSym uint8 = 127

// A Seq is one aligned record. id is whatever the search engine or
// fasta header called it. start is the 1-based offset of the first
// aligned residue within the unfiltered reference sequence for this
// id. It only means something for records built from search hits.
// align holds one byte per column: residue letters, MaskChar or
// GapChar.
type Seq struct {
	id    string
	start int
	align []byte
}

func NewSeq(id string, start int, align []byte) Seq {
	return Seq{id: id, start: start, align: align}
}

func (s *Seq) Id() string        { return s.id }
func (s *Seq) Start() int        { return s.start }
func (s *Seq) Align() []byte     { return s.align }
func (s *Seq) SetAlign(t []byte) { s.align = t }
func (s *Seq) Len() int          { return len(s.align) }

// UngappedLen counts the residues, that is the columns which are not
// gaps.
func (s *Seq) UngappedLen() int {
	n := 0
	for _, c := range s.align {
		if c != GapChar {
			n++
		}
	}
	return n
}

// Ungapped returns a fresh copy of the row with the gaps removed.
func (s *Seq) Ungapped() []byte {
	t := make([]byte, 0, len(s.align))
	for _, c := range s.align {
		if c != GapChar {
			t = append(t, c)
		}
	}
	return t
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a record to upper case, in place. It only works with
// bytes, not runes. It can return an error if it meets a symbol it
// does not like (value at MaxSym or higher).
func (s *Seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d in sequence \"%s\""
	for i, c := range s.align {
		if c >= MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(s.id, 40))
		}
		if 'a' <= c && c <= 'z' {
			s.align[i] -= diff
		}
	}
	return nil
}

// Copy gives a deep copy, so a checkpoint cannot be changed behind
// our back by a later stage.
func (s *Seq) Copy() Seq {
	t := make([]byte, len(s.align))
	copy(t, s.align)
	return Seq{id: s.id, start: s.start, align: t}
}

// An Alignment is an ordered set of records. By convention the query
// is element 0 and stays there through the whole pipeline.
type Alignment struct {
	seqs []Seq
}

// NewAlignment wraps a slice of records. The caller promises the
// query comes first.
func NewAlignment(seqs []Seq) *Alignment { return &Alignment{seqs: seqs} }

// SeqSlc returns the slice of records. Elements can be changed in
// place through it.
func (a *Alignment) SeqSlc() []Seq { return a.seqs }

// NSeq returns the number of records.
func (a *Alignment) NSeq() int { return len(a.seqs) }

// Query returns the query's own record, element 0.
func (a *Alignment) Query() *Seq { return &a.seqs[0] }

// Append adds a record at the end.
func (a *Alignment) Append(s Seq) { a.seqs = append(a.seqs, s) }

// Upper uppercases every record.
func (a *Alignment) Upper() error {
	for i := range a.seqs {
		if err := a.seqs[i].Upper(); err != nil {
			return err
		}
	}
	return nil
}

// Copy deep-copies the whole collection.
func (a *Alignment) Copy() *Alignment {
	t := make([]Seq, len(a.seqs))
	for i := range a.seqs {
		t[i] = a.seqs[i].Copy()
	}
	return &Alignment{seqs: t}
}

// CheckLengths makes sure we really have an alignment. Between
// pipeline stages every record must have the same number of columns.
func (a *Alignment) CheckLengths() error {
	const msg = "lengths not the same. First record %d cols, record %d (%s) has %d"
	if len(a.seqs) == 0 {
		return nil
	}
	iwant := len(a.seqs[0].align)
	for i := 1; i < len(a.seqs); i++ {
		if ilen := len(a.seqs[i].align); ilen != iwant {
			return fmt.Errorf(msg, iwant, i, trimStr(a.seqs[i].id, 40), ilen)
		}
	}
	return nil
}

// Str2Aln takes some strings and returns them as an alignment.
// Records need names, so if prefix is not given they will be called
// "s0", "s1", ...
func Str2Aln(sIn []string, prefix ...string) *Alignment {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	a := new(Alignment)
	for i, s := range sIn {
		a.seqs = append(a.seqs, Seq{id: fmt.Sprint(base, i), align: []byte(s)})
	}
	return a
}

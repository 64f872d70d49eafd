// 9 Apr 2024

package tools

import (
	"bytes"

	"github.com/ashora/jpred-standalone/pkg/seq"
)

// Fastacmd fetches full reference sequences from a formatted database
// by identifier.
type Fastacmd struct {
	Path string
	Db   string
}

// Lookup returns every sequence the database holds under id. The
// unmasking stage insists on exactly one, but that is its policy,
// not ours.
func (f *Fastacmd) Lookup(id string) ([][]byte, error) {
	out, err := run(f.Path, nil, "-d", f.Db, "-s", id)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(out)) == 0 {
		return nil, nil // identifier not in the database
	}
	aln := new(seq.Alignment)
	if err := seq.ReadFasta(bytes.NewReader(out), aln); err != nil {
		return nil, err
	}
	refs := make([][]byte, 0, aln.NSeq())
	for i := range aln.SeqSlc() {
		refs = append(refs, aln.SeqSlc()[i].Align())
	}
	return refs, nil
}

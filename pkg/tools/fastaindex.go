// 9 Apr 2024

package tools

import (
	"bytes"
	"os"

	"github.com/ashora/jpred-standalone/pkg/white"
	"github.com/edsrzf/mmap-go"
)

// FastaIndex is a sequence index over a plain fasta file, for
// reference sets that were never formatted into a database. A lookup
// is a linear scan, but the file is mapped rather than read, so a
// reference set of a few gigabytes does not get copied through a
// buffer just to find one record.
type FastaIndex struct {
	Path string
}

// Lookup returns every record in the file whose identifier, the
// first word of its header, matches id.
func (f *FastaIndex) Lookup(id string) ([][]byte, error) {
	fp, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer mm.Unmap()

	var refs [][]byte
	data := []byte(mm)
	for len(data) > 0 {
		if data[0] != '>' { // skip to the next header line
			j := bytes.Index(data, []byte("\n>"))
			if j == -1 {
				break
			}
			data = data[j+1:]
		}
		eol := bytes.IndexByte(data, '\n')
		if eol == -1 {
			break // header at end of file, no sequence to take
		}
		header := data[1:eol]
		body := data[eol+1:]
		next := bytes.Index(body, []byte("\n>"))
		end := len(body)
		if next != -1 {
			end = next + 1
		}
		if w := bytes.Fields(header); len(w) > 0 && string(w[0]) == id {
			s := append([]byte(nil), body[:end]...) // copy, mm goes away
			white.Remove(&s)
			refs = append(refs, s)
		}
		if next == -1 {
			break
		}
		data = body[next+1:]
	}
	return refs, nil
}

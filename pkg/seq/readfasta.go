// Reader for fasta format alignment and checkpoint files.

package seq

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ashora/jpred-standalone/pkg/white"
	"github.com/ashora/jpred-standalone/pkg/zwrap"
)

// An item is terminated by a newline if we are in a header or a
// header character ">" if we are in a sequence.
const (
	NL       = '\n'
	cmmtChar = '>'
)

type item struct {
	data     []byte
	complete bool
}

type lexer struct {
	input    []byte
	ichan    chan *item
	aln      *Alignment
	rdr      io.Reader
	itempool sync.Pool
	cmmt     string // partial header
	seq      []byte // partial sequence
	term     byte
	err      error
}

const rdsize = 512

func newItem() interface{} { return new(item) }

// next reads from the input and sends items down ichan. An item is
// terminated by l.term, the end of the buffer or end of input.
func (l *lexer) next() {
	l.itempool.New = newItem
	for {
		item := l.itempool.Get().(*item)
		if len(l.input) == 0 {
			// Readers may return less than we asked for without being
			// anywhere near the end of their data, so fill the buffer
			// and trust only ReadFull to say the input is finished.
			buf := make([]byte, rdsize+1) // a spare byte for the terminator
			n, err := io.ReadFull(l.rdr, buf[:rdsize])
			if n == 0 || (err != nil && err != io.ErrUnexpectedEOF) {
				if err != nil && err != io.EOF {
					l.err = err // a real error, not just end of input
				}
				item.data = []byte("")
				item.complete = true
				l.ichan <- item // we have to flush
				close(l.ichan)
				return
			}
			l.input = buf[:n]
			if err == io.ErrUnexpectedEOF { // end of input, close the last item
				buf[n] = l.term
				l.input = buf[:n+1]
			}
		}

		if ndx := bytes.IndexByte(l.input, l.term); ndx == -1 {
			item.data = l.input // no terminator found, so just send
			l.input = nil       // back whatever is in the buffer
			item.complete = false
		} else { //                we did find a terminator
			item.data = l.input[:ndx]
			item.complete = true
			l.input = l.input[ndx+1:] // set up for the next loop
			if l.term == NL {
				l.term = cmmtChar
			} else {
				l.term = NL
			}
		}
		l.ichan <- item
	}
}

type stateFn func(*lexer) stateFn

// We are reading a sequence
func gseq(l *lexer) stateFn {
	item := <-l.ichan
	defer l.itempool.Put(item)
	if item == nil || l.err != nil {
		return nil
	}

	white.Remove(&item.data)
	l.seq = append(l.seq, item.data...)
	if item.complete {
		if len(l.seq) == 0 {
			l.err = errors.New("zero length sequence after " + l.cmmt)
			return nil
		}
		id := strings.TrimLeft(l.cmmt, "> \t")
		if f := strings.Fields(id); len(f) > 0 {
			id = f[0] // the identifier is the first word of the header
		}
		l.aln.seqs = append(l.aln.seqs, Seq{id: id, align: l.seq})
		l.cmmt = ""
		l.seq = nil
		return gcmmt
	}
	return gseq
}

// We are reading a header
func gcmmt(l *lexer) stateFn {
	item := <-l.ichan
	defer l.itempool.Put(item)
	if item == nil || l.err != nil {
		return nil
	}

	l.cmmt = l.cmmt + string(item.data)
	if item.complete {
		item.complete = false
		return gseq
	}
	return gcmmt
}

// ReadFasta reads fasta formatted records into aln. Records read this
// way carry no start offset, which is fine, since nothing after the
// unmasking stage ever looks at one.
func ReadFasta(rdr io.Reader, aln *Alignment) error {
	l := lexer{rdr: rdr, ichan: make(chan *item, 2), aln: aln, term: NL}

	go l.next()
	for state := gcmmt; state != nil; {
		state = state(&l)
	}
	for range l.ichan {
		// drain, so the reading goroutine finishes after an early stop
	}
	if l.err == nil && aln.NSeq() == 0 {
		l.err = errors.New("no sequences found")
	}
	return l.err
}

// ReadAlnFile opens a file, plain or gzipped, reads the records and
// checks they form a true alignment.
func ReadAlnFile(fname string) (*Alignment, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	rdr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		rdr.Close()
		return nil, err
	}
	defer rdr.Close()

	aln := new(Alignment)
	if err := ReadFasta(rdr, aln); err != nil {
		return nil, err
	}
	if err := aln.CheckLengths(); err != nil {
		return nil, err
	}
	return aln, nil
}

// 18 Mar 2024

package seq

import (
	"fmt"
	"io"
	"os"

	"github.com/ashora/jpred-standalone/pkg/zwrap"
)

// The predictor's tool chain wants alignments wrapped at 72 columns.
const cPerLine = 72

// WriteFasta writes every record to w, a ">" header line followed by
// the sequence wrapped at cPerLine columns.
func WriteFasta(w io.Writer, a *Alignment) error {
	for i := range a.seqs {
		if _, err := fmt.Fprintf(w, "%c%s\n", cmmtChar, a.seqs[i].id); err != nil {
			return err
		}
		s := a.seqs[i].align
		for ; len(s) > cPerLine; s = s[cPerLine:] {
			if _, err := fmt.Fprintln(w, string(s[:cPerLine])); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, string(s)); err != nil {
			return err
		}
	}
	return nil
}

// WriteAlnFile writes the collection to fname, compressing if the
// name ends in ".gz". An empty name or "-" writes to standard output.
// Checkpoints between pipeline stages go through here too.
func WriteAlnFile(a *Alignment, fname string) error {
	if fname == "" || fname == "-" {
		return WriteFasta(os.Stdout, a)
	}
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("creating alignment file: %w", err)
	}
	w := zwrap.WrapW(fname, fp)
	if err := WriteFasta(w, a); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

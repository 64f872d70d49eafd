// 15 Apr 2024

package jpred

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ashora/jpred-standalone/pkg/msa"
	"github.com/ashora/jpred-standalone/pkg/profile"
	"github.com/ashora/jpred-standalone/pkg/seq"
	"github.com/ashora/jpred-standalone/pkg/tools"
)

// CmdFlag carries the command line choices.
type CmdFlag struct {
	Db        string  // database name, looked up in the config tables
	Cutoff    float64 // redundancy cutoff, per cent identity
	MaxHits   int     // rough cap on records after the search
	LenFactor int     // length tolerance, per cent of the query length
	Pure      bool    // predict from the query alone if nothing is found
	Keep      bool    // keep a checkpoint after every stage
	Output    string  // final alignment file
	Freq      string  // frequency profile file, empty to skip
	Pred      string  // prediction file, empty to stop after the alignment
}

// chkpt writes a diagnostic checkpoint when asked to.
func (f *CmdFlag) chkpt(a *seq.Alignment, workdir, stage string) error {
	if !f.Keep {
		return nil
	}
	return seq.WriteAlnFile(a, filepath.Join(workdir, stage+".fa.gz"))
}

// hitsToAln lays the search output out as our collection: the
// engine's copy of the query first, under the query's own name, then
// one record per hit.
func hitsToAln(query *seq.Seq, res *tools.SearchResult) *seq.Alignment {
	seqs := make([]seq.Seq, 0, len(res.Hits)+1)
	seqs = append(seqs, seq.NewSeq(query.Id(), 0, res.Query.Align))
	for _, h := range res.Hits {
		seqs = append(seqs, seq.NewSeq(h.Id, h.Start, h.Align))
	}
	return seq.NewAlignment(seqs)
}

// cleanAln walks the hits through every stage in order. Each stage
// swallows the one before it whole; nothing runs in parallel and
// every external call blocks until its program exits.
func cleanAln(flags *CmdFlag, conf *Config, caps *Caps,
	query *seq.Seq, res *tools.SearchResult) (*seq.Alignment, error) {

	a := hitsToAln(query, res)
	if err := msa.Extend(a, query.Align()); err != nil {
		return nil, err
	}
	if err := flags.chkpt(a, conf.WorkDir, "extend"); err != nil {
		return nil, err
	}
	if err := msa.Unmask(a, caps.Index); err != nil {
		return nil, err
	}
	if err := a.Upper(); err != nil {
		return nil, err
	}
	if err := flags.chkpt(a, conf.WorkDir, "unmask"); err != nil {
		return nil, err
	}
	a = msa.Reduce(a, flags.MaxHits)
	a = msa.DelLongSeqs(a, flags.LenFactor)

	// The redundancy filter can be too keen, so its input is always
	// checkpointed, not just under -k.
	chk := filepath.Join(conf.WorkDir, "prefilter.fa.gz")
	if err := seq.WriteAlnFile(a, chk); err != nil {
		return nil, err
	}
	b, err := msa.NonRed(a, caps.Ident, caps.Clust, flags.Cutoff)
	if err == nil && b.NSeq() < 2 {
		err = fmt.Errorf("%d records after redundancy filtering: %w",
			b.NSeq(), msa.ErrTooFew)
	}
	if err != nil {
		if !errors.Is(err, msa.ErrTooFew) {
			return nil, err
		}
		fmt.Fprintln(os.Stderr, err, "- falling back to the checkpoint")
		if b, err = seq.ReadAlnFile(chk); err != nil {
			return nil, fmt.Errorf("reading checkpoint back: %w", err)
		}
	}
	if !flags.Keep {
		os.Remove(chk)
	}
	return b, nil
}

// MyMain is the top level, after flag parsing. Every failure past
// this point ends the run; the one exception, a redundancy filter
// that eats nearly everything, is handled inside cleanAln by going
// back to the checkpoint.
func MyMain(flags *CmdFlag, conf *Config, caps *Caps, queryFile string) error {
	if flags.Pred != "" && flags.Freq == "" {
		return errors.New("a prediction needs the frequency profile; give -f as well as -p")
	}
	qaln, err := seq.ReadAlnFile(queryFile)
	if err != nil {
		return fmt.Errorf("reading query: %w", err)
	}
	if qaln.NSeq() != 1 {
		return fmt.Errorf("query file %s holds %d sequences, want exactly 1",
			queryFile, qaln.NSeq())
	}
	query := qaln.Query()

	res, err := caps.Search.Search(queryFile)
	if err != nil {
		return fmt.Errorf("similarity search: %w", err)
	}

	var a *seq.Alignment
	if len(res.Hits) == 0 {
		if !flags.Pure {
			return errors.New(
				"search found nothing; rerun with -pure to predict from the query alone")
		}
		fmt.Fprintln(os.Stderr, "no hits, predicting from the query alone")
		a = qaln
		if err := a.Upper(); err != nil {
			return err
		}
	} else {
		if a, err = cleanAln(flags, conf, caps, query, res); err != nil {
			return err
		}
	}

	msa.Degap(a)
	if err := seq.WriteAlnFile(a, flags.Output); err != nil {
		return fmt.Errorf("writing final alignment: %w", err)
	}
	if flags.Freq != "" {
		if err := profile.FromAln(a).Write(flags.Freq); err != nil {
			return err
		}
	}
	if flags.Pred != "" {
		hmmFile := filepath.Join(conf.WorkDir, "query.hmm")
		if err := caps.Prof.BuildProfile(flags.Output, hmmFile); err != nil {
			return fmt.Errorf("building profile: %w", err)
		}
		if err := caps.Pred.Predict(flags.Output, hmmFile, flags.Freq, flags.Pred); err != nil {
			return fmt.Errorf("predictor: %w", err)
		}
	}
	return nil
}

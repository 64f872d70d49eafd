// 18 Apr 2024
// Predict secondary structure for one protein sequence: run the
// similarity search, clean the alignment up and hand the result to
// the profile builder and the predictor.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/ashora/jpred-standalone/pkg/jpred"
	. "github.com/ashora/jpred-standalone/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] query.fasta")
	flag.PrintDefaults()
}

func main() {
	var flags jpred.CmdFlag

	flag.StringVar(&flags.Db, "d", "uniref90", "name of the database to search")
	flag.Float64Var(&flags.Cutoff, "n", 75, "redundancy cutoff, per cent identity")
	flag.IntVar(&flags.MaxHits, "m", 10000, "rough cap on the number of hits kept")
	flag.IntVar(&flags.LenFactor, "l", 50, "length tolerance, per cent of the query length")
	flag.BoolVar(&flags.Pure, "pure", false, "predict from the query alone if the search finds nothing")
	flag.BoolVar(&flags.Keep, "k", false, "keep a checkpoint after each stage")
	flag.StringVar(&flags.Output, "o", "jpred.fa", "final alignment file, .gz to compress")
	flag.StringVar(&flags.Freq, "f", "jpred.freq", "column frequency profile file, empty to skip")
	flag.StringVar(&flags.Pred, "p", "jpred.pred", "prediction file, empty to stop after the alignment")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(ExitUsageError)
	}

	conf := jpred.DefaultConfig()
	caps, err := jpred.NewCaps(conf, flags.Db)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	if err := jpred.MyMain(&flags, conf, caps, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}

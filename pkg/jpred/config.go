// 15 Apr 2024

// Package jpred drives the pipeline from one query sequence to a
// prediction: run the similarity search, clean the alignment up
// stage by stage, then hand the result to the profile builder and
// the predictor.
package jpred

import (
	"fmt"
	"strings"

	"github.com/ashora/jpred-standalone/pkg/msa"
	"github.com/ashora/jpred-standalone/pkg/tools"
)

// Config gathers the tool paths and database locations the pipeline
// needs. It is built once in main and handed in, so nothing below
// this point reads ambient state.
type Config struct {
	Psiblast   string
	Fastacmd   string
	Pairwise   string
	Oc         string
	Hmmbuild   string
	Hmmconvert string
	Jnet       string
	SearchDb   map[string]string // database name to search database
	RefDb      map[string]string // database name to unfiltered reference
	WorkDir    string            // where checkpoints and profiles go
}

// DefaultConfig relies on $PATH for the programs and knows the
// database layout of a standard install.
func DefaultConfig() *Config {
	return &Config{
		Psiblast:   "psiblast",
		Fastacmd:   "fastacmd",
		Pairwise:   "pairwise",
		Oc:         "oc",
		Hmmbuild:   "hmmbuild",
		Hmmconvert: "hmmconvert",
		Jnet:       "jnet",
		SearchDb: map[string]string{
			"uniref90": "/db/uniref90/uniref90.filt",
			"swall":    "/db/swall/swall.filt",
		},
		RefDb: map[string]string{
			"uniref90": "/db/uniref90/uniref90",
			"swall":    "/db/swall/swall.fasta",
		},
		WorkDir: ".",
	}
}

// A Searcher finds sequences similar to the query. No hits is not an
// error; what to do with a lonely query is decided here, not there.
type Searcher interface {
	Search(queryFile string) (*tools.SearchResult, error)
}

// A ProfileBuilder turns the final alignment into the profile file
// the predictor reads.
type ProfileBuilder interface {
	BuildProfile(alnFile, outFile string) error
}

// A Predictor consumes the alignment and its profiles and writes the
// prediction.
type Predictor interface {
	Predict(alnFile, hmmFile, freqFile, outFile string) error
}

// Caps holds the external collaborators, injected so the pipeline
// can run in tests without a single real program installed.
type Caps struct {
	Search Searcher
	Index  msa.SeqIndex
	Ident  msa.IdentCalc
	Clust  msa.Clusterer
	Prof   ProfileBuilder
	Pred   Predictor
}

// NewCaps wires up the real programs from a config and the database
// name picked on the command line. A reference database that is a
// plain fasta file gets the mmap scanner; anything else goes through
// fastacmd.
func NewCaps(conf *Config, db string) (*Caps, error) {
	sdb, ok := conf.SearchDb[db]
	if !ok {
		return nil, fmt.Errorf("no search database called %q", db)
	}
	rdb, ok := conf.RefDb[db]
	if !ok {
		return nil, fmt.Errorf("no reference database called %q", db)
	}
	var index msa.SeqIndex
	if strings.HasSuffix(rdb, ".fasta") || strings.HasSuffix(rdb, ".fa") {
		index = &tools.FastaIndex{Path: rdb}
	} else {
		index = &tools.Fastacmd{Path: conf.Fastacmd, Db: rdb}
	}
	return &Caps{
		Search: &tools.Psiblast{Path: conf.Psiblast, Db: sdb, NIter: 3},
		Index:  index,
		Ident:  &tools.Pairwise{Path: conf.Pairwise},
		Clust:  &tools.Oc{Path: conf.Oc},
		Prof:   &tools.Hmmer{Build: conf.Hmmbuild, Convert: conf.Hmmconvert},
		Pred:   &tools.Jnet{Path: conf.Jnet},
	}, nil
}

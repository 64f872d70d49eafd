// 26 Mar 2024

package msa

import (
	"bytes"
	"fmt"

	"github.com/ashora/jpred-standalone/pkg/seq"
)

// An IdentCalc turns an alignment, in fasta form, into a pairwise
// identity report. The report is opaque here. Only the clustering
// engine reads it.
type IdentCalc interface {
	Identities(aln []byte) ([]byte, error)
}

// A Cluster is one group of mutually similar records.
type Cluster struct {
	Label   string
	Score   float64
	Size    int
	Members []string
}

// A ClusterSet is what the clustering engine hands back: the groups,
// plus the identifiers that did not cluster with anything.
type ClusterSet struct {
	Clusters    []Cluster
	Unclustered []string
}

// A Clusterer groups records by pairwise identity with complete
// linkage at a given cutoff.
type Clusterer interface {
	Cluster(report []byte, cutoff float64) (*ClusterSet, error)
}

// NonRed removes near-duplicate records. Each cluster keeps exactly
// one representative: the query if it is a member, otherwise the
// first member listed. Everything unclustered stays. The result is
// the subset of the input, in the input's order, not the report's.
func NonRed(a *seq.Alignment, ic IdentCalc, cl Clusterer, cutoff float64) (*seq.Alignment, error) {
	var payload bytes.Buffer
	if err := seq.WriteFasta(&payload, a); err != nil {
		return nil, err
	}
	report, err := ic.Identities(payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("identity calculation: %w", err)
	}
	cs, err := cl.Cluster(report, cutoff)
	if err != nil {
		return nil, fmt.Errorf("clustering: %w", err)
	}

	qid := a.Query().Id()
	kept := make(map[string]bool)
	for _, c := range cs.Clusters {
		rep := ""
		for _, m := range c.Members {
			if m == qid {
				rep = qid
				break
			}
		}
		if rep == "" && len(c.Members) > 0 {
			rep = c.Members[0]
		}
		if rep != "" {
			kept[rep] = true
		}
	}
	for _, id := range cs.Unclustered {
		kept[id] = true
	}

	out := make([]seq.Seq, 0, len(kept))
	for _, s := range a.SeqSlc() {
		if kept[s.Id()] {
			out = append(out, s)
		}
	}
	return seq.NewAlignment(out), nil
}

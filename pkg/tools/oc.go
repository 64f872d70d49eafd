// 10 Apr 2024

package tools

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/ashora/jpred-standalone/pkg/msa"
)

// Oc drives the clustering engine. We always ask for complete
// linkage. A redundancy cluster is only trustworthy if every pair in
// it is close, not just a chain of neighbours.
type Oc struct {
	Path string
}

func (o *Oc) Cluster(report []byte, cutoff float64) (*msa.ClusterSet, error) {
	out, err := run(o.Path, report, "sim", "complete", "cut",
		strconv.FormatFloat(cutoff, 'f', -1, 64))
	if err != nil {
		return nil, err
	}
	return ParseOc(out)
}

// ParseOc reads the clustering engine's report. A cluster is a "##"
// line with a label, a score and a size, followed by its members:
//
//	## 0 90.000 2
//	 seqA seqB
//
// After a line saying UNCLUSTERED ENTITIES, every remaining word is
// an identifier that joined no cluster. Other "##" lines are chatter
// and are skipped.
func ParseOc(out []byte) (*msa.ClusterSet, error) {
	cs := new(msa.ClusterSet)
	sc := bufio.NewScanner(bytes.NewReader(out))
	uncl := false
	var cur *msa.Cluster
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "##") {
			cur = nil
			if strings.Contains(line, "UNCLUSTERED") {
				uncl = true
				continue
			}
			f := strings.Fields(line)
			if len(f) != 4 {
				continue
			}
			score, serr := strconv.ParseFloat(f[2], 64)
			size, nerr := strconv.Atoi(f[3])
			if serr != nil || nerr != nil {
				continue // chatter that happened to have four words
			}
			cs.Clusters = append(cs.Clusters,
				msa.Cluster{Label: f[1], Score: score, Size: size})
			cur = &cs.Clusters[len(cs.Clusters)-1]
			continue
		}
		if uncl {
			cs.Unclustered = append(cs.Unclustered, strings.Fields(line)...)
		} else if cur != nil {
			cur.Members = append(cur.Members, strings.Fields(line)...)
		}
	}
	return cs, sc.Err()
}

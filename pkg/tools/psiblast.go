// 8 Apr 2024

package tools

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// A Hit is one aligned search result: the subject identifier, the
// 1-based offset of the first aligned residue in the subject's
// unfiltered reference sequence, and the aligned row itself.
type Hit struct {
	Id    string
	Start int
	Align []byte
}

// A SearchResult carries the search engine's own aligned copy of the
// query, plus the hits, all on one set of columns.
type SearchResult struct {
	Query Hit
	Hits  []Hit
}

// Psiblast runs the iterated similarity search.
type Psiblast struct {
	Path  string
	Db    string // database file, already resolved from its name
	NIter int    // search iterations; 0 means the program's default
}

func (p *Psiblast) Search(queryFile string) (*SearchResult, error) {
	args := []string{"-d", p.Db, "-i", queryFile, "-m", "flat"}
	if p.NIter > 0 {
		args = append(args, "-j", strconv.Itoa(p.NIter))
	}
	out, err := run(p.Path, nil, args...)
	if err != nil {
		return nil, err
	}
	return ParseHits(out)
}

// ParseHits reads the flat query-anchored table the search wrapper
// writes: one line per record with the identifier, the start of the
// aligned region in the reference numbering, and the aligned row.
// The query's own copy comes first. An empty table means the search
// found nothing, which is not an error here; the caller decides what
// a lonely query means.
func ParseHits(out []byte) (*SearchResult, error) {
	res := new(SearchResult)
	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 1024*1024), 1024*1024) // rows can be long
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 3 {
			return nil, fmt.Errorf("search output line %q: want id, start, sequence", line)
		}
		start, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("search output start in %q: %w", line, err)
		}
		h := Hit{Id: f[0], Start: start, Align: []byte(f[2])}
		if first {
			res.Query = h
			first = false
		} else {
			res.Hits = append(res.Hits, h)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

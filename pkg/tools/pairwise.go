// 10 Apr 2024

package tools

// Pairwise runs the pairwise identity calculator over an alignment,
// fed on stdin, and returns the report exactly as written. Nobody
// here reads the report; it goes straight to the clustering engine.
type Pairwise struct {
	Path string
}

func (p *Pairwise) Identities(aln []byte) ([]byte, error) {
	return run(p.Path, aln)
}

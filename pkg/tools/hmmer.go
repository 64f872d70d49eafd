// 11 Apr 2024

package tools

import "os"

// Hmmer builds the profile the predictor wants from the final
// alignment: hmmbuild over the alignment, then hmmconvert to the old
// Sanger format the predictor reads.
type Hmmer struct {
	Build   string
	Convert string
}

func (h *Hmmer) BuildProfile(alnFile, outFile string) error {
	tmp := outFile + ".tmp.hmm"
	if _, err := run(h.Build, nil, "--amino", tmp, alnFile); err != nil {
		return err
	}
	defer os.Remove(tmp)
	out, err := run(h.Convert, nil, "-2", tmp)
	if err != nil {
		return err
	}
	return os.WriteFile(outFile, out, 0644)
}

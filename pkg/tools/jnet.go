// 11 Apr 2024

package tools

import "os"

// Jnet runs the secondary structure predictor over the cleaned
// alignment and its profile files. The prediction arrives on stdout
// and is saved as outFile.
type Jnet struct {
	Path string
}

func (j *Jnet) Predict(alnFile, hmmFile, freqFile, outFile string) error {
	args := []string{"-p", "-h", hmmFile, "-f", freqFile, "-a", alnFile}
	out, err := run(j.Path, nil, args...)
	if err != nil {
		return err
	}
	return os.WriteFile(outFile, out, 0644)
}

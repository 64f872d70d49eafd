// 8 Apr 2024

// Package tools wraps the external programs the pipeline leans on:
// the similarity search, the sequence index, the pairwise identity
// calculator, the clustering engine, the profile builder and the
// predictor. Each wrapper makes one synchronous call and checks the
// exit status. The pipeline itself only sees interfaces, so any of
// these can be swapped for a double in tests.
package tools

import (
	"bytes"
	"fmt"
	"os/exec"
)

// run starts a program, feeds it stdin if given and returns its
// standard output. A nonzero exit is an error, with whatever the
// program said on stderr folded into the message.
func run(path string, stdin []byte, args ...string) ([]byte, error) {
	cmd := exec.Command(path, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", path, err,
			bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}

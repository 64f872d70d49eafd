// 20 Mar 2024

// Package brokenio wraps a reader so it fails on demand. The fasta
// reader has error paths that never fire with healthy files, so the
// tests use this to make them fire.
package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is what a broken reader returns once its quota is spent.
var ErrBroken = errors.New("injected read failure")

// A Rdr passes data through until quota bytes have gone by, then
// fails every call with ErrBroken. A quota of zero fails on the very
// first read, which is what a vanishing network mount looks like.
type Rdr struct {
	in    io.Reader
	quota int
}

// NewRdr wraps a reader so it breaks after quota bytes.
func NewRdr(in io.Reader, quota int) *Rdr { return &Rdr{in: in, quota: quota} }

func (r *Rdr) Read(p []byte) (int, error) {
	if r.quota <= 0 {
		return 0, ErrBroken
	}
	if len(p) > r.quota {
		p = p[:r.quota]
	}
	n, err := r.in.Read(p)
	r.quota -= n
	return n, err
}

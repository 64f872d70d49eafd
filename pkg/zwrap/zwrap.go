// Package zwrap wraps file pointers so compressed sources and targets
// can be read and written transparently. On the read side we sniff the
// stream, so it does not matter what a checkpoint file is called. On
// the write side the caller decides by the name of the target.

package zwrap

import (
	"compress/gzip"
	"errors"
	"io"
	"strings"

	"github.com/klauspost/pgzip"
)

// IsGz says whether a target name asks for compression.
func IsGz(fname string) bool { return strings.HasSuffix(fname, ".gz") }

type Rdr struct {
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (r *Rdr) Read(p []byte) (int, error) {
	if r.zrdr != nil {
		return r.zrdr.Read(p)
	}
	return r.fp.Read(p)
}

// Close closes the decompressor, then the underlying backing readCloser.
func (r *Rdr) Close() error {
	if r.zrdr == nil {
		return r.fp.Close()
	}
	var s string
	if e := r.zrdr.Close(); e != nil {
		s = e.Error()
	}
	if e := r.fp.Close(); e != nil {
		s = s + " " + e.Error()
	}
	if s == "" {
		return nil
	}
	return errors.New(s)
}

// ReadSeekCloser does not seem to be in the standard library
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// WrapMaybe decides if the underlying stream is compressed and wraps
// the file pointer if necessary. You do lose something. If you pass in
// something which can seek, you get back a ReadCloser which cannot.
// This is the price one pays for reading from a compressed reader.
func WrapMaybe(fpIn ReadSeekCloser) (*Rdr, error) {
	if zrdr, err := gzip.NewReader(fpIn); err == nil {
		return &Rdr{fp: fpIn, zrdr: zrdr}, nil
	}
	_, err := fpIn.Seek(0, io.SeekStart)
	return &Rdr{fp: fpIn}, err
}

type Wrtr struct {
	fp   io.WriteCloser
	zwrt *pgzip.Writer
}

func (w *Wrtr) Write(p []byte) (int, error) {
	if w.zwrt != nil {
		return w.zwrt.Write(p)
	}
	return w.fp.Write(p)
}

// Close flushes and closes the compressor, then the backing file.
func (w *Wrtr) Close() error {
	if w.zwrt == nil {
		return w.fp.Close()
	}
	var s string
	if e := w.zwrt.Close(); e != nil {
		s = e.Error()
	}
	if e := w.fp.Close(); e != nil {
		s = s + " " + e.Error()
	}
	if s == "" {
		return nil
	}
	return errors.New(s)
}

// WrapW wraps a writer with a compressor if the target name ends in
// ".gz". Checkpoint files can be big, so we use the parallel gzip
// writer at its fastest setting.
func WrapW(fname string, fp io.WriteCloser) *Wrtr {
	if !IsGz(fname) {
		return &Wrtr{fp: fp}
	}
	zwrt, _ := pgzip.NewWriterLevel(fp, pgzip.BestSpeed)
	return &Wrtr{fp: fp, zwrt: zwrt}
}

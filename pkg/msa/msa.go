// 21 Mar 2024

// Package msa holds the stages that turn a raw set of search hits
// into a clean alignment: widening the alignment to the full query,
// putting masked residues back, thinning the set down and cutting the
// columns back to those the query occupies. Every stage takes and
// returns the same collection shape, so the caller can string them
// together and drop a checkpoint between any two.
package msa

import "errors"

// The pipeline meets a few kinds of trouble and almost all of them
// end the run. The exception is ErrTooFew, which the caller handles
// by falling back to the checkpoint written before the redundancy
// filter.
var (
	ErrInconsistent = errors.New("data inconsistency")
	ErrLookup       = errors.New("sequence lookup failed")
	ErrTooFew       = errors.New("too few sequences left")
)

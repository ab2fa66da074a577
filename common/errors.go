package common

import "errors"

// Failure classes shared by all metric pipelines.
// Callers check them with errors.Is().
var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrEmptyResult     = errors.New("no extractable scores")
	ErrInvalidSample   = errors.New("non-finite sample")
	ErrEmptyInput      = errors.New("empty sample set")
	ErrOutputWrite     = errors.New("cannot write output")
)

package rop

// Outcome is implemented by every Result instantiation. It allows code that
// does not know T and E to tell the variants apart, e.g. for logging.
type Outcome interface {
	IsSuccess() bool
	IsFailure() bool
	String() string
}

var _ Outcome = Result[int, error]{}

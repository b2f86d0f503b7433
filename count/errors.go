package count

import "errors"

// Sentinel errors for programmer-contract violations. Per the engine's
// error-handling design, these are fatal: there is no retry, the caller
// discards the context.
var (
	// ErrInvalidRange reports a non-natural range ordering (lw >= rw).
	ErrInvalidRange = errors.New("lgcount/count: invalid range, lw must be < rw")

	// ErrNegativeLength reports a negative sentence length passed to
	// NewContext.
	ErrNegativeLength = errors.New("lgcount/count: negative sentence length")
)

// InvariantError wraps an assertion failure discovered mid-recursion (a
// split word outside (lw, rw), for instance). It is only ever panicked,
// never returned, matching the spec's "assertion failures are fatal"
// contract.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "lgcount/count: invariant violated: " + e.Msg
}

func assert(cond bool, msg string) {
	if !cond {
		panic(&InvariantError{Msg: msg})
	}
}

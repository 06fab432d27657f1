package sweepline

import "fmt"

// InvariantViolatedError reports a fatal violation of one of the package's
// input invariants: duplicate points, a zero-length or vertical segment,
// or a pair of segments discovered to be collinear and overlapping during
// the sweep. It always names the offending segment(s).
type InvariantViolatedError struct {
	Segments []Segment
	Reason   string
}

func (e *InvariantViolatedError) Error() string {
	if len(e.Segments) == 0 {
		return fmt.Sprintf("invariant violated: %s", e.Reason)
	}
	return fmt.Sprintf("invariant violated: %s (segments: %v)", e.Reason, e.Segments)
}

// InputMalformedError reports a parse failure in an input segment file. It
// is raised by the fileio collaborator, never by the core sweep.
type InputMalformedError struct {
	Line int
	Raw  string
	Err  error
}

func (e *InputMalformedError) Error() string {
	return fmt.Sprintf("malformed input at line %d (%q): %v", e.Line, e.Raw, e.Err)
}

func (e *InputMalformedError) Unwrap() error {
	return e.Err
}

package depend

import "errors"

// ErrInvalidScope indicates a scope value outside the known set. This is a
// configuration defect, not a test-state condition, and is never converted
// into a skip.
var ErrInvalidScope = errors.New("depend: invalid scope")

// SkipError signals that a test must be skipped because one of its declared
// dependencies has not succeeded. The host integration layer is expected to
// turn it into the runner's own skip mechanism.
type SkipError struct {
	// Reason names the requesting test and the unmet dependency.
	Reason string
}

// Error implements the error interface.
func (e *SkipError) Error() string {
	return e.Reason
}

// AsSkip unwraps err into a *SkipError if it is one.
func AsSkip(err error) (*SkipError, bool) {
	var skip *SkipError
	if errors.As(err, &skip) {
		return skip, true
	}
	return nil, false
}

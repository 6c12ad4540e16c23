package runner

import (
	"errors"
	"fmt"
	"io"

	"github.com/testgate/core/pkg/depend"
)

// ErrAssertion is the failure every Errorf/Fatalf/FailNow call carries.
// Expected-failure marks without an explicit Raises match against it.
var ErrAssertion = errors.New("assertion failed")

// control-flow sentinels recovered by the phase executor.
type failNowPanic struct{}
type skipNowPanic struct{}

// T is the execution context handed to test, setup, and teardown functions.
type T struct {
	test    *Test
	tracker *depend.Tracker
	out     io.Writer

	failed     bool
	failure    error
	skipped    bool
	skipReason string
}

// beginPhase clears per-phase state; each phase reports independently.
func (t *T) beginPhase() {
	t.failed = false
	t.failure = nil
	t.skipped = false
	t.skipReason = ""
}

func (t *T) fail(err error) {
	t.failed = true
	if t.failure == nil {
		t.failure = err
	}
}

// Param returns the parameter value bound to this test instance, or nil for
// non-parametrized tests.
func (t *T) Param() any {
	return t.test.param
}

// Logf writes a message to the session output.
func (t *T) Logf(format string, args ...any) {
	fmt.Fprintf(t.out, "    "+format+"\n", args...)
}

// Errorf marks the current phase failed and continues execution.
func (t *T) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	t.Logf("%s", msg)
	t.fail(fmt.Errorf("%s: %w", msg, ErrAssertion))
}

// Fatalf marks the current phase failed and aborts it.
func (t *T) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	t.Logf("%s", msg)
	t.fail(fmt.Errorf("%s: %w", msg, ErrAssertion))
	panic(failNowPanic{})
}

// FailNow marks the current phase failed and aborts it without a message.
func (t *T) FailNow() {
	t.fail(ErrAssertion)
	panic(failNowPanic{})
}

// FailWith marks the current phase failed with the given error and aborts
// it. Expected-failure marks match the error with errors.Is.
func (t *T) FailWith(err error) {
	t.fail(err)
	panic(failNowPanic{})
}

// Skipf skips the remainder of the current phase with a reason.
func (t *T) Skipf(format string, args ...any) {
	t.skipped = true
	t.skipReason = fmt.Sprintf(format, args...)
	panic(skipNowPanic{})
}

// Depends checks at runtime that every named dependency has succeeded,
// exactly like a declared dependency would be checked before the test. An
// unmet dependency skips the test; a configuration defect (such as an
// invalid scope) fails it.
func (t *T) Depends(depends []string, opts ...depend.DependsOption) {
	err := t.tracker.Depends(t.test, depends, opts...)
	if err == nil {
		return
	}
	if skip, ok := depend.AsSkip(err); ok {
		t.Skipf("%s", skip.Reason)
	}
	t.FailWith(err)
}

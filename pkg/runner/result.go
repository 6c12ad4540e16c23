package runner

import (
	"fmt"
	"strings"
)

// TestOutcome is the aggregated verdict for one executed test.
type TestOutcome string

// Test verdicts.
const (
	TestPassed  TestOutcome = "passed"
	TestFailed  TestOutcome = "failed"
	TestSkipped TestOutcome = "skipped"
	// TestXFailed is an expected failure: the test failed the way its
	// xfail mark predicted.
	TestXFailed TestOutcome = "xfailed"
	// TestXPassed is an unexpected pass under a non-strict xfail mark.
	TestXPassed TestOutcome = "xpassed"
)

func (o TestOutcome) label() string {
	switch o {
	case TestPassed:
		return "PASSED"
	case TestFailed:
		return "FAILED"
	case TestSkipped:
		return "SKIPPED"
	case TestXFailed:
		return "XFAIL"
	case TestXPassed:
		return "XPASS"
	default:
		return strings.ToUpper(string(o))
	}
}

// ExitCode is the overall status of a finished run.
type ExitCode int

// Run exit statuses.
const (
	// ExitOK means every test passed (expected failures included).
	ExitOK ExitCode = 0
	// ExitTestsFailed means at least one test failed.
	ExitTestsFailed ExitCode = 1
	// ExitInterrupted means the run was cancelled before finishing.
	ExitInterrupted ExitCode = 2
	// ExitInternalError means the runner itself hit a defect, such as an
	// invalid dependency scope.
	ExitInternalError ExitCode = 3
	// ExitUsageError means the run was misconfigured.
	ExitUsageError ExitCode = 4
	// ExitNoTestsRan means the session collected no tests.
	ExitNoTestsRan ExitCode = 5
)

// Result aggregates the verdicts of one run.
type Result struct {
	Passed  int
	Failed  int
	Skipped int
	XFailed int
	XPassed int

	// Outcomes maps each test path to its verdict.
	Outcomes map[string]TestOutcome
	// Reasons maps test paths to skip or xfail reasons, when present.
	Reasons map[string]string

	exit ExitCode
}

// NewResult creates an empty result.
func NewResult() *Result {
	return &Result{
		Outcomes: make(map[string]TestOutcome),
		Reasons:  make(map[string]string),
	}
}

func (r *Result) record(test *Test, outcome TestOutcome, reason string) {
	switch outcome {
	case TestPassed:
		r.Passed++
	case TestFailed:
		r.Failed++
	case TestSkipped:
		r.Skipped++
	case TestXFailed:
		r.XFailed++
	case TestXPassed:
		r.XPassed++
	}
	r.Outcomes[test.path] = outcome
	if reason != "" {
		r.Reasons[test.path] = reason
	}
}

// Total returns the number of executed tests.
func (r *Result) Total() int {
	return r.Passed + r.Failed + r.Skipped + r.XFailed + r.XPassed
}

// ExitCode derives the run's overall status.
func (r *Result) ExitCode() ExitCode {
	if r.exit != ExitOK {
		return r.exit
	}
	if r.Total() == 0 {
		return ExitNoTestsRan
	}
	if r.Failed > 0 {
		return ExitTestsFailed
	}
	return ExitOK
}

// Summary renders the non-zero counts, like "2 passed, 1 skipped".
func (r *Result) Summary() string {
	parts := []string{}
	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	add(r.Passed, "passed")
	add(r.Failed, "failed")
	add(r.Skipped, "skipped")
	add(r.XFailed, "xfailed")
	add(r.XPassed, "xpassed")
	if len(parts) == 0 {
		return "no tests ran"
	}
	return strings.Join(parts, ", ")
}

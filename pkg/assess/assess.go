// Package assess grades student-submitted test suites by injecting broken
// implementations ("mutants") of an asset and checking that the student's
// tests catch them. It builds on the runner's parametrization and the
// dependency gate; it adds no dependency-resolution logic of its own.
package assess

import (
	"errors"
	"fmt"

	"github.com/testgate/core/pkg/depend"
	"github.com/testgate/core/pkg/runner"
)

// ErrUnknownMutant indicates an expected-failure override that names no
// registered mutant. It is raised eagerly when the parametrization is built,
// not deferred to execution.
var ErrUnknownMutant = errors.New("assess: override names unknown mutant")

// ErrUnexpectedExit indicates that a student suite finished with a status
// other than "tests failed" or "all passed" while a mutant was active, which
// means the suite errored rather than grading either way.
var ErrUnexpectedExit = errors.New("assess: unexpected exit status")

// Mutant is one deliberately broken substitute implementation of the asset
// under assessment.
type Mutant struct {
	// Name identifies the mutant; it becomes the instance suffix of the
	// generated test variant.
	Name string
	// Impl is the broken implementation injected in place of the target.
	Impl any
	// Doc describes the fault; it is used as the hint in grading messages.
	Doc string
	// Raises is the failure the student's tests are expected to produce
	// against this mutant. Nil defaults to a generic assertion failure.
	Raises error
}

// Target is the real implementation the mutants substitute for.
type Target struct {
	Name string
	Impl any
}

// GradingError is the graded-failure case: the student's tests all passed
// while a mutant was active, so the injected fault went undetected.
type GradingError struct {
	// Mutant names the undetected fault.
	Mutant string
	// Hint is the mutant's doc text, shown to the student.
	Hint string
}

// Error implements the error interface.
func (e *GradingError) Error() string {
	return fmt.Sprintf("tests passed while mutant %s was active; hint: %s", e.Mutant, e.Hint)
}

// Params builds the parametrization for a test that exercises the student's
// suite: one expected-to-fail variant per mutant, each registered as a
// dependency, plus a final variant carrying the real target that depends on
// every mutant variant having run as expected. Downstream grading steps hang
// off the target variant, so they only execute once all mutants were
// exercised.
//
// overrides replaces the expected failure for individual mutants by name;
// a key that matches no mutant is a configuration error.
func Params(target Target, mutants []Mutant, testName string, overrides map[string]error) ([]runner.Param, error) {
	known := make(map[string]bool, len(mutants))
	for _, m := range mutants {
		known[m.Name] = true
	}
	for name := range overrides {
		if !known[name] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMutant, name)
		}
	}

	params := make([]runner.Param, 0, len(mutants)+1)
	variantNames := make([]string, 0, len(mutants))

	for _, m := range mutants {
		raises := m.Raises
		if override, ok := overrides[m.Name]; ok {
			raises = override
		}
		if raises == nil {
			raises = runner.ErrAssertion
		}

		params = append(params, runner.Param{
			ID:    m.Name,
			Value: m.Impl,
			Marks: []runner.TestOption{
				runner.WithXFail(runner.XFail{
					Reason: hint(m),
					Raises: raises,
					Strict: true,
				}),
				// bare mark so the variant's result is registered even
				// without automark
				runner.WithDeclaration(&depend.Declaration{}),
			},
		})
		variantNames = append(variantNames, fmt.Sprintf("%s[%s]", testName, m.Name))
	}

	params = append(params, runner.Param{
		ID:    target.Name,
		Value: target.Impl,
		Marks: []runner.TestOption{
			runner.WithDeclaration(depend.Declare(variantNames...)),
		},
	})

	return params, nil
}

// CheckMutantRun translates the exit status of a student suite run against a
// mutant into a grading verdict: "tests failed" grades as a pass (the fault
// was caught), "all passed" is a *GradingError with the mutant's hint, and
// anything else wraps ErrUnexpectedExit with the raw status attached.
func CheckMutantRun(code runner.ExitCode, m Mutant) error {
	switch code {
	case runner.ExitTestsFailed:
		return nil
	case runner.ExitOK:
		return &GradingError{Mutant: m.Name, Hint: hint(m)}
	default:
		return fmt.Errorf("%w: %d while exercising mutant %s", ErrUnexpectedExit, code, m.Name)
	}
}

// AssertCaught fails the current test unless the student suite's exit status
// shows the mutant was caught.
func AssertCaught(t *runner.T, code runner.ExitCode, m Mutant) {
	if err := CheckMutantRun(code, m); err != nil {
		t.FailWith(err)
	}
}

func hint(m Mutant) string {
	if m.Doc != "" {
		return m.Doc
	}
	return fmt.Sprintf("the broken implementation %s should have been detected", m.Name)
}

package runner

import (
	"errors"
	"fmt"

	"github.com/testgate/core/pkg/depend"
	"github.com/testgate/core/pkg/domain"
)

type phaseResult struct {
	outcome    domain.Outcome
	failure    error
	skipReason string
}

// execPhase runs one phase function and classifies its outcome. A nil
// function is an implicit pass, which is how tests without setup or teardown
// still record all three phases.
func execPhase(t *T, fn func(*T)) phaseResult {
	t.beginPhase()
	if fn == nil {
		return phaseResult{outcome: domain.OutcomePassed}
	}

	func() {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			switch v.(type) {
			case failNowPanic, skipNowPanic:
				// already recorded on t
			default:
				if err, ok := v.(error); ok {
					t.fail(err)
				} else {
					t.fail(fmt.Errorf("panic: %v", v))
				}
			}
		}()
		fn(t)
	}()

	switch {
	case t.failed:
		return phaseResult{outcome: domain.OutcomeFailed, failure: t.failure}
	case t.skipped:
		return phaseResult{outcome: domain.OutcomeSkipped, skipReason: t.skipReason}
	default:
		return phaseResult{outcome: domain.OutcomePassed}
	}
}

// applyXFail reinterprets the call phase under an expected-failure mark: an
// expected failure becomes a skip flagged WasXFail, and a strict unexpected
// pass becomes a failure.
func applyXFail(res phaseResult, mark *XFail) (domain.Report, string) {
	rep := domain.Report{Phase: domain.PhaseCall, Outcome: res.outcome}
	if mark == nil {
		return rep, res.skipReason
	}

	switch res.outcome {
	case domain.OutcomeFailed:
		if mark.Raises == nil || errors.Is(res.failure, mark.Raises) {
			rep.Outcome = domain.OutcomeSkipped
			rep.WasXFail = true
			return rep, mark.Reason
		}
	case domain.OutcomePassed:
		if mark.Strict {
			rep.Outcome = domain.OutcomeFailed
			return rep, fmt.Sprintf("XPASS(strict): %s", mark.Reason)
		}
	}
	return rep, res.skipReason
}

func (s *Session) runTest(test *Test, tracker *depend.Tracker, result *Result) error {
	t := &T{test: test, tracker: tracker, out: s.out}

	record := func(rep domain.Report) error {
		return tracker.RecordPhase(test, test.decl, rep)
	}

	gateReason := ""
	gateSkipped := false
	if err := tracker.CheckDeclared(test, test.decl); err != nil {
		skip, ok := depend.AsSkip(err)
		if !ok {
			return err
		}
		gateSkipped = true
		gateReason = skip.Reason
	}

	var (
		setupRep domain.Report
		callRep  *domain.Report
		xpassed  bool
		reason   string
	)

	if gateSkipped {
		setupRep = domain.Report{Phase: domain.PhaseSetup, Outcome: domain.OutcomeSkipped}
		reason = gateReason
	} else {
		res := execPhase(t, test.setup)
		setupRep = domain.Report{Phase: domain.PhaseSetup, Outcome: res.outcome}
		reason = res.skipReason
	}
	if err := record(setupRep); err != nil {
		return err
	}

	if setupRep.Outcome == domain.OutcomePassed {
		res := execPhase(t, test.fn)
		rep, callReason := applyXFail(res, test.xfail)
		if callReason != "" {
			reason = callReason
		}
		xpassed = test.xfail != nil && rep.Outcome == domain.OutcomePassed
		callRep = &rep
		if err := record(rep); err != nil {
			return err
		}
	}

	if !gateSkipped {
		res := execPhase(t, test.teardown)
		teardownRep := domain.Report{Phase: domain.PhaseTeardown, Outcome: res.outcome}
		if err := record(teardownRep); err != nil {
			return err
		}
		if teardownRep.Outcome == domain.OutcomeFailed {
			result.record(test, TestFailed, reason)
			s.report(test, TestFailed, reason)
			return nil
		}
	}

	outcome := classify(setupRep, callRep, xpassed)
	result.record(test, outcome, reason)
	s.report(test, outcome, reason)
	return nil
}

func classify(setup domain.Report, call *domain.Report, xpassed bool) TestOutcome {
	if setup.Outcome == domain.OutcomeFailed {
		return TestFailed
	}
	if call == nil {
		// setup skipped or gate-skipped; the call never ran
		return TestSkipped
	}
	switch call.Outcome {
	case domain.OutcomeFailed:
		return TestFailed
	case domain.OutcomeSkipped:
		if call.WasXFail {
			return TestXFailed
		}
		return TestSkipped
	default:
		if xpassed {
			return TestXPassed
		}
		return TestPassed
	}
}

func (s *Session) report(test *Test, outcome TestOutcome, reason string) {
	line := fmt.Sprintf("%-7s %s", outcome.label(), test.path)
	if reason != "" {
		line += fmt.Sprintf(" (%s)", reason)
	}
	fmt.Fprintln(s.out, line)
}

// ensure Test satisfies the dependency machinery's item contract
var _ depend.Item = (*Test)(nil)

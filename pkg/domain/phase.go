// Package domain defines the core types for test phase outcomes and scopes.
package domain

// Phase represents one sub-step of running a single test.
type Phase string

// Test phases in execution order.
const (
	PhaseSetup    Phase = "setup"
	PhaseCall     Phase = "call"
	PhaseTeardown Phase = "teardown"
)

// Phases lists all phases in execution order.
var Phases = []Phase{PhaseSetup, PhaseCall, PhaseTeardown}

// Outcome represents the result of a single test phase.
type Outcome string

// Phase outcome values.
const (
	// OutcomePassed indicates the phase completed without failure.
	OutcomePassed Outcome = "passed"
	// OutcomeFailed indicates the phase raised a failure.
	OutcomeFailed Outcome = "failed"
	// OutcomeSkipped indicates the phase was skipped, including
	// expected-failure (xfail) skips.
	OutcomeSkipped Outcome = "skipped"
)

// Package depend implements dependency bookkeeping for test runs: per-scope
// registries of phase outcomes, a locator that lazily attaches a registry to
// each scope node, and the gate that decides whether a dependent test may
// execute or must be skipped.
//
// The package is host-agnostic. A host runner feeds phase reports into a
// Tracker after each test phase and consults the gate before a test body
// runs; the gate never aborts anything itself, it returns a *SkipError that
// the host integration layer translates into its own skip signal.
package depend

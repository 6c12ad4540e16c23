package runner

import (
	"github.com/testgate/core/pkg/depend"
	"github.com/testgate/core/pkg/domain"
)

// Test is a single registered test case. It implements depend.Item so the
// dependency machinery can walk its enclosing scopes.
type Test struct {
	parent *group
	name   string
	path   string

	fn       func(*T)
	setup    func(*T)
	teardown func(*T)

	decl  *depend.Declaration
	xfail *XFail
	param any
}

// Scope returns the empty scope; tests are not scope nodes.
func (t *Test) Scope() domain.Scope { return "" }

// Parent returns the enclosing file or class node.
func (t *Test) Parent() depend.Node { return t.parent }

// Name returns the test's own name, including any instance suffix.
func (t *Test) Name() string { return t.name }

// Path returns the test's full hierarchical id, segments joined by "::".
func (t *Test) Path() string { return t.path }

// XFail marks a test as expected to fail. A failing call phase whose failure
// matches Raises is reported as an expected-failure skip; with Strict set, a
// passing call phase becomes a failure.
type XFail struct {
	// Reason explains why the test is expected to fail; it is carried into
	// the progress output.
	Reason string
	// Raises restricts the expected failure to errors matching this one
	// (via errors.Is). Nil accepts any failure.
	Raises error
	// Strict turns an unexpected pass into a failure.
	Strict bool
}

// TestOption is a per-test mark applied at registration.
type TestOption func(*Test)

// WithDeclaration attaches a dependency declaration to the test.
func WithDeclaration(decl *depend.Declaration) TestOption {
	return func(t *Test) {
		t.decl = decl
	}
}

// WithSetup attaches a setup function run as the test's setup phase.
func WithSetup(fn func(*T)) TestOption {
	return func(t *Test) {
		t.setup = fn
	}
}

// WithTeardown attaches a teardown function run as the test's teardown phase.
func WithTeardown(fn func(*T)) TestOption {
	return func(t *Test) {
		t.teardown = fn
	}
}

// WithXFail marks the test as expected to fail.
func WithXFail(x XFail) TestOption {
	return func(t *Test) {
		xfail := x
		t.xfail = &xfail
	}
}

// Param is one instance of a parametrized test.
type Param struct {
	// ID becomes the bracketed instance suffix in the test name.
	ID string
	// Value is delivered to the test body via T.Param.
	Value any
	// Marks are applied to the generated test instance.
	Marks []TestOption
}

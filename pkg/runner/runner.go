// Package runner is a small in-process test runner that hosts the dependency
// gate: it collects tests into a run/package/file/class hierarchy, executes
// each test in three phases, and wires the phase reports and skip decisions
// into a depend.Tracker. The assessment layer runs nested sessions of this
// runner to grade student suites.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/testgate/core/pkg/depend"
	"github.com/testgate/core/pkg/domain"
)

// group is one non-test node of the collection tree.
type group struct {
	scope  domain.Scope
	name   string
	parent *group
}

func (g *group) Scope() domain.Scope { return g.scope }

func (g *group) Parent() depend.Node {
	if g.parent == nil {
		return nil
	}
	return g.parent
}

// Session is the root of one test run. Tests execute in registration order.
type Session struct {
	root  *group
	tests []*Test
	cfg   depend.Config
	out   io.Writer
	log   *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithOutput sets the writer progress lines are written to.
// The default is os.Stdout; use io.Discard for a quiet run.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		if out != nil {
			s.out = out
		}
	}
}

// WithLogger sets the logger threaded into the dependency tracker.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// NewSession creates an empty session with the given run configuration.
func NewSession(cfg depend.Config, opts ...Option) *Session {
	s := &Session{
		root: &group{scope: domain.ScopeRun},
		cfg:  cfg,
		out:  os.Stdout,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Package adds a package node to the session.
func (s *Session) Package(name string) *Package {
	return &Package{
		g: &group{scope: domain.ScopePackage, name: name, parent: s.root},
		s: s,
	}
}

// File adds a file node directly under the session, outside any package.
func (s *Session) File(name string) *File {
	return &File{
		g: &group{scope: domain.ScopeFile, name: name, parent: s.root},
		s: s,
	}
}

// Package is a package node; files hang off it.
type Package struct {
	g *group
	s *Session
}

// File adds a file node to the package. The file's path segment carries the
// package name, like "pkg/things_test.go".
func (p *Package) File(name string) *File {
	segment := p.g.name + "/" + name
	return &File{
		g: &group{scope: domain.ScopeFile, name: segment, parent: p.g},
		s: p.s,
	}
}

// File is a file node; tests and classes hang off it.
type File struct {
	g *group
	s *Session
}

// Class adds a class node to the file.
func (f *File) Class(name string) *Class {
	return &Class{
		g: &group{scope: domain.ScopeClass, name: name, parent: f.g},
		s: f.s,
	}
}

// Test registers a test in the file.
func (f *File) Test(name string, fn func(*T), opts ...TestOption) *Test {
	return f.s.addTest(f.g, f.g.name, name, fn, opts)
}

// TestEach registers one test instance per parameter, named "name[id]".
func (f *File) TestEach(name string, params []Param, fn func(*T), opts ...TestOption) []*Test {
	return f.s.addTestEach(f.g, f.g.name, name, params, fn, opts)
}

// Class is a class node; tests hang off it.
type Class struct {
	g *group
	s *Session
}

// Test registers a test in the class.
func (c *Class) Test(name string, fn func(*T), opts ...TestOption) *Test {
	path := c.g.parent.name + "::" + c.g.name
	return c.s.addTest(c.g, path, name, fn, opts)
}

// TestEach registers one test instance per parameter, named "name[id]".
func (c *Class) TestEach(name string, params []Param, fn func(*T), opts ...TestOption) []*Test {
	path := c.g.parent.name + "::" + c.g.name
	return c.s.addTestEach(c.g, path, name, params, fn, opts)
}

func (s *Session) addTest(parent *group, pathPrefix, name string, fn func(*T), opts []TestOption) *Test {
	test := &Test{
		parent: parent,
		name:   name,
		path:   pathPrefix + "::" + name,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(test)
	}
	s.tests = append(s.tests, test)
	return test
}

func (s *Session) addTestEach(parent *group, pathPrefix, name string, params []Param, fn func(*T), opts []TestOption) []*Test {
	tests := make([]*Test, 0, len(params))
	for _, param := range params {
		instance := fmt.Sprintf("%s[%s]", name, param.ID)
		test := s.addTest(parent, pathPrefix, instance, fn, opts)
		test.param = param.Value
		for _, mark := range param.Marks {
			mark(test)
		}
		tests = append(tests, test)
	}
	return tests
}

// Run executes every registered test in order and returns the aggregated
// result. A cancelled context interrupts the run; a configuration defect in
// the dependency machinery aborts it with an internal error.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	tracker := depend.NewTracker(s.cfg, depend.WithLogger(s.log))
	result := NewResult()

	for _, test := range s.tests {
		if err := ctx.Err(); err != nil {
			result.exit = ExitInterrupted
			return result, fmt.Errorf("run interrupted: %w", err)
		}
		if err := s.runTest(test, tracker, result); err != nil {
			result.exit = ExitInternalError
			return result, err
		}
	}

	fmt.Fprintln(s.out, result.Summary())
	return result, nil
}

package depend

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/testgate/core/pkg/domain"
)

// Tracker owns the dependency state of one test run. It maps each scope node
// to its registry through an explicit side-table, so host nodes are never
// mutated, and the whole table is discarded with the Tracker at run end.
type Tracker struct {
	cfg        Config
	log        *zap.Logger
	registries map[Node]*Registry
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithLogger sets the logger used for registration and skip decisions.
// The default is a no-op logger.
func WithLogger(log *zap.Logger) TrackerOption {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// NewTracker creates a tracker for one run with the given configuration.
func NewTracker(cfg Config, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		cfg:        cfg,
		log:        zap.NewNop(),
		registries: make(map[Node]*Registry),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Config returns the run configuration the tracker was built with.
func (t *Tracker) Config() Config {
	return t.cfg
}

// Registry locates the registry for item's nearest enclosing node at the
// given scope, creating it on first use. It returns nil (and no error) when
// the item has no enclosing node at that scope; callers must treat that as
// "nothing to check or record against". An invalid scope is a fatal
// configuration defect, reported as ErrInvalidScope.
func (t *Tracker) Registry(item Item, scope domain.Scope) (*Registry, error) {
	if !scope.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScope, scope)
	}

	node := enclosing(item, scope)
	if node == nil {
		return nil, nil
	}

	reg, ok := t.registries[node]
	if !ok {
		reg = newRegistry(scope, t.cfg, t.log)
		t.registries[node] = reg
	}
	return reg, nil
}

// RecordPhase is the result-recorder hook, invoked once per completed test
// phase. When the item carries a declaration, or AutoMark is set, the report
// is recorded into every enclosing scope's registry so other tests can
// depend on this item at any scope.
func (t *Tracker) RecordPhase(item Item, decl *Declaration, rep domain.Report) error {
	if decl == nil && !t.cfg.AutoMark {
		return nil
	}

	name := ""
	if decl != nil {
		name = decl.Name
	}

	for _, scope := range domain.Scopes {
		reg, err := t.Registry(item, scope)
		if err != nil {
			return err
		}
		if reg == nil {
			continue
		}
		if err := reg.Record(item, name, rep); err != nil {
			return err
		}
	}
	return nil
}

// CheckDeclared is the dependency gate for declarative use, invoked before
// the test body executes. A missing enclosing scope satisfies the check
// vacuously. It returns a *SkipError when a dependency is unmet and a plain
// error for configuration defects.
func (t *Tracker) CheckDeclared(item Item, decl *Declaration) error {
	if decl == nil || len(decl.Depends) == 0 {
		return nil
	}

	reg, err := t.Registry(item, decl.scope())
	if err != nil {
		return err
	}
	if reg == nil {
		return nil
	}
	return reg.Check(decl.Depends, item, decl.MatchAll)
}

// DependsOption configures a runtime Depends call.
type DependsOption func(*dependsSettings)

type dependsSettings struct {
	scope    domain.Scope
	matchAll bool
}

// AtScope resolves the dependency names at the given scope instead of the
// file-scope default.
func AtScope(scope domain.Scope) DependsOption {
	return func(s *dependsSettings) {
		s.scope = scope
	}
}

// MatchAllInstances treats each dependency name as a prefix covering every
// registered instance of a parametrized test. Runtime calls default to exact
// lookup.
func MatchAllInstances() DependsOption {
	return func(s *dependsSettings) {
		s.matchAll = true
	}
}

// Depends performs the declarative gate's check from within a running test
// body: it verifies that every name in depends has succeeded at the chosen
// scope and returns a *SkipError otherwise.
func (t *Tracker) Depends(item Item, depends []string, opts ...DependsOption) error {
	settings := dependsSettings{scope: domain.ScopeFile}
	for _, opt := range opts {
		opt(&settings)
	}

	reg, err := t.Registry(item, settings.scope)
	if err != nil {
		return err
	}
	if reg == nil {
		return nil
	}
	return reg.Check(depends, item, settings.matchAll)
}

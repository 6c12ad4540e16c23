package depend

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/testgate/core/pkg/domain"
)

// Registry stores the phase outcomes of tests within one scope node and
// answers dependency checks against them. There is exactly one Registry per
// scope node, created lazily by the Tracker.
type Registry struct {
	scope   domain.Scope
	cfg     Config
	log     *zap.Logger
	results map[string]*domain.Status
}

func newRegistry(scope domain.Scope, cfg Config, log *zap.Logger) *Registry {
	return &Registry{
		scope:   scope,
		cfg:     cfg,
		log:     log,
		results: make(map[string]*domain.Status),
	}
}

// Scope returns the scope level this registry covers.
func (r *Registry) Scope() domain.Scope {
	return r.scope
}

// Record stores a phase report for item under the explicit name, or under
// the name derived from the item's path when name is empty. Repeated writes
// for the same name update the same status.
func (r *Registry) Record(item Item, name string, rep domain.Report) error {
	if name == "" {
		derived, err := deriveName(item, r.scope)
		if err != nil {
			return err
		}
		name = derived
	}

	status, ok := r.results[name]
	if !ok {
		status = domain.NewStatus()
		r.results[name] = status
	}

	r.log.Debug("register result",
		zap.String("phase", string(rep.Phase)),
		zap.String("name", name),
		zap.String("outcome", string(rep.Outcome)),
		zap.String("scope", string(r.scope)))

	status.Record(rep, r.cfg.AcceptXFail)
	return nil
}

// Status returns the recorded status for name, or nil when unknown.
func (r *Registry) Status(name string) *domain.Status {
	return r.results[name]
}

// Check verifies that every name in depends has succeeded. Names are checked
// in order and the first unsatisfied one aborts the check with a *SkipError
// naming the requesting item and the unmet dependency.
//
// With matchAll set, each name is treated as a prefix and every registered
// instance under it must have succeeded; with it unset, the name is looked
// up directly. A name with no registered outcome is satisfied only when
// Config.IgnoreUnknown is set.
func (r *Registry) Check(depends []string, item Item, matchAll bool) error {
	r.log.Debug("check dependencies",
		zap.String("item", item.Name()),
		zap.String("scope", string(r.scope)))

	for _, dep := range depends {
		if r.satisfied(dep, matchAll) {
			continue
		}
		r.log.Info("skip test",
			zap.String("item", item.Name()),
			zap.String("dependency", dep))
		return &SkipError{Reason: fmt.Sprintf("%s depends on %s", item.Name(), dep)}
	}
	return nil
}

func (r *Registry) satisfied(dep string, matchAll bool) bool {
	if !matchAll {
		status, ok := r.results[dep]
		if !ok {
			r.log.Debug("dependency is unknown", zap.String("dependency", dep))
			return r.cfg.IgnoreUnknown
		}
		if status.Success() {
			r.log.Debug("dependency succeeded", zap.String("dependency", dep))
			return true
		}
		r.log.Debug("dependency has not succeeded", zap.String("dependency", dep))
		return false
	}

	matched := 0
	for name, status := range r.results {
		if !strings.HasPrefix(name, dep) {
			continue
		}
		matched++
		if !status.Success() {
			r.log.Debug("dependency instance has not succeeded",
				zap.String("dependency", dep),
				zap.String("instance", name))
			return false
		}
	}

	if matched == 0 {
		r.log.Debug("dependency matched no instances", zap.String("dependency", dep))
		return r.cfg.IgnoreUnknown
	}

	r.log.Debug("dependency instances succeeded",
		zap.String("dependency", dep),
		zap.Int("instances", matched))
	return true
}

// deriveName computes the resolution name for item at the given scope: the
// full path for run and package scopes, the path minus the file segment for
// file scope, and minus the file and class segments for class scope.
func deriveName(item Item, scope domain.Scope) (string, error) {
	path := strings.ReplaceAll(item.Path(), legacyInstanceMarker, "::")

	switch scope {
	case domain.ScopeRun, domain.ScopePackage:
		return path, nil
	case domain.ScopeFile:
		return stripSegments(path, scope, 1)
	case domain.ScopeClass:
		return stripSegments(path, scope, 2)
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidScope, scope)
	}
}

func stripSegments(path string, scope domain.Scope, n int) (string, error) {
	parts := strings.SplitN(path, "::", n+1)
	if len(parts) < n+1 {
		return "", fmt.Errorf("depend: cannot derive %s-scoped name from %q", scope, path)
	}
	return parts[n], nil
}

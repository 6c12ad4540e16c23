package depend

import "github.com/testgate/core/pkg/domain"

// Declaration is a static per-test dependency declaration: the name under
// which the test's own result is registered, the names it requires, and the
// scope those names are resolved in.
type Declaration struct {
	// Name registers the test's result under an explicit name. Empty means
	// the name is derived from the test's path per the scope's rule.
	Name string

	// Depends lists the dependency names that must have succeeded before
	// this test may run.
	Depends []string

	// Scope is the level at which Depends is resolved. Empty defaults to
	// file scope.
	Scope domain.Scope

	// MatchAll treats each dependency name as a prefix and requires every
	// registered instance under it to have succeeded. This is what makes a
	// dependency on a parametrized test cover all of its instances.
	MatchAll bool
}

// Declare builds a file-scoped declaration on the given dependency names
// with instance prefix matching enabled, the declarative default.
func Declare(depends ...string) *Declaration {
	return &Declaration{
		Depends:  depends,
		Scope:    domain.ScopeFile,
		MatchAll: true,
	}
}

// scope returns the effective scope, applying the file-scope default.
func (d *Declaration) scope() domain.Scope {
	if d.Scope == "" {
		return domain.ScopeFile
	}
	return d.Scope
}

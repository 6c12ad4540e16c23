package domain

// Scope is the granularity at which dependency names are resolved.
// Each scope level gets its own registry, so names never leak across scopes.
type Scope string

// Dependency scopes, from widest to narrowest.
const (
	// ScopeRun resolves names across the whole test run.
	ScopeRun Scope = "run"
	// ScopePackage resolves names within the enclosing package.
	ScopePackage Scope = "package"
	// ScopeFile resolves names within the enclosing file.
	ScopeFile Scope = "file"
	// ScopeClass resolves names within the enclosing class.
	ScopeClass Scope = "class"
)

// Scopes lists all scopes from widest to narrowest.
var Scopes = []Scope{ScopeRun, ScopePackage, ScopeFile, ScopeClass}

// Valid reports whether s is a known scope value.
func (s Scope) Valid() bool {
	switch s {
	case ScopeRun, ScopePackage, ScopeFile, ScopeClass:
		return true
	default:
		return false
	}
}

package depend

import "github.com/testgate/core/pkg/domain"

// Node is one node of the host runner's collection hierarchy.
//
// Implementations must be comparable (pointer types are fine); the Tracker
// keys its registry side-table by node identity.
type Node interface {
	// Scope returns the scope level this node represents, or the empty
	// Scope for nodes that are not scope levels (individual tests).
	Scope() domain.Scope
	// Parent returns the enclosing node, or nil at the root.
	Parent() Node
}

// Item is a runnable test node.
type Item interface {
	Node
	// Name is the test's own name, including any instance suffix.
	Name() string
	// Path is the test's full hierarchical id, segments joined by "::".
	Path() string
}

// legacyInstanceMarker is the empty-instance marker old runners inserted
// between a class segment and its methods. It is stripped before any name
// derivation.
const legacyInstanceMarker = "::()::"

// enclosing walks up from item to its nearest node at the given scope level,
// including item's own ancestors only. Returns nil when no such node exists.
func enclosing(item Item, scope domain.Scope) Node {
	for node := Node(item); node != nil; node = node.Parent() {
		if node.Scope() == scope {
			return node
		}
	}
	return nil
}

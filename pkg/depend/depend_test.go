package depend

import (
	"github.com/testgate/core/pkg/domain"
)

// fakeNode is a minimal host node for tests.
type fakeNode struct {
	scope  domain.Scope
	parent Node
}

func (n *fakeNode) Scope() domain.Scope { return n.scope }
func (n *fakeNode) Parent() Node        { return n.parent }

// fakeItem is a runnable test node with a fixed path.
type fakeItem struct {
	fakeNode
	name string
	path string
}

func (i *fakeItem) Name() string { return i.name }
func (i *fakeItem) Path() string { return i.path }

// hierarchy is one run > package > file > class chain with items attached to
// the class level.
type hierarchy struct {
	run   *fakeNode
	pkg   *fakeNode
	file  *fakeNode
	class *fakeNode
}

func newHierarchy() *hierarchy {
	run := &fakeNode{scope: domain.ScopeRun}
	pkg := &fakeNode{scope: domain.ScopePackage, parent: run}
	file := &fakeNode{scope: domain.ScopeFile, parent: pkg}
	class := &fakeNode{scope: domain.ScopeClass, parent: file}
	return &hierarchy{run: run, pkg: pkg, file: file, class: class}
}

// item creates a class-level test item with path file::class::name.
func (h *hierarchy) item(name string) *fakeItem {
	return &fakeItem{
		fakeNode: fakeNode{parent: h.class},
		name:     name,
		path:     "pkg_a/things_test.go::TestThings::" + name,
	}
}

// fileItem creates a file-level test item with path file::name.
func (h *hierarchy) fileItem(name string) *fakeItem {
	return &fakeItem{
		fakeNode: fakeNode{parent: h.file},
		name:     name,
		path:     "pkg_a/things_test.go::" + name,
	}
}

// passAll records a fully passed run of item under the given name.
func passAll(r *Registry, item Item, name string) {
	for _, phase := range domain.Phases {
		_ = r.Record(item, name, domain.Report{Phase: phase, Outcome: domain.OutcomePassed})
	}
}

package assess

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, path, content string) {
	t.Helper()
	full := filepath.Join(root, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestScanDir(t *testing.T) {
	t.Parallel()

	// Given a tree with mutants, clean files, and a vendored copy
	root := t.TempDir()
	writeFile(t, root, "mutants/add.go", "package mutants\n\nfunc _TestOffByOne(a, b int) int { return a + b + 1 }\n")
	writeFile(t, root, "mutants/stack.go", "package mutants\n\ntype _TestBrokenStack struct{}\n")
	writeFile(t, root, "pkg/clean.go", "package pkg\n\nfunc Add(a, b int) int { return a + b }\n")
	writeFile(t, root, "vendor/dep/dep.go", "package dep\n\nfunc _TestVendored() {}\n")
	writeFile(t, root, "notes.txt", "not a go file")

	// When
	inventory, err := ScanDir(context.Background(), root, nil, 2)

	// Then files without assets and vendored trees are omitted
	require.NoError(t, err)
	assert.Equal(t, []string{"mutants/add.go", "mutants/stack.go"}, inventory.Paths())
	assert.Equal(t, 2, inventory.CountAssets())
	require.Len(t, inventory["mutants/add.go"], 1)
	assert.Equal(t, "_TestOffByOne", inventory["mutants/add.go"][0].Name)
}

func TestScanDir_Patterns(t *testing.T) {
	t.Parallel()

	// Given
	root := t.TempDir()
	writeFile(t, root, "mutants/add.go", "package mutants\n\nfunc _TestOffByOne(a, b int) int { return a + b + 1 }\n")
	writeFile(t, root, "other/other.go", "package other\n\nfunc _TestOther() {}\n")

	// When only the mutants directory is scanned
	inventory, err := ScanDir(context.Background(), root, []string{"mutants/**"}, 0)

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"mutants/add.go"}, inventory.Paths())
}

func TestScanDir_Cancelled(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "mutants/add.go", "package mutants\n\nfunc _TestOffByOne() {}\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ScanDir(ctx, root, nil, 0)

	assert.Error(t, err)
}

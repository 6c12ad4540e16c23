package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestConfigCmd(t *testing.T) {
	t.Parallel()

	// Given
	path := filepath.Join(t.TempDir(), "testgate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("accept_xfail: true\n"), 0o644))

	// When
	out, err := execute(t, "config", path)

	// Then
	require.NoError(t, err)

	var got map[string]bool
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got["accept_xfail"])
	assert.False(t, got["automark_dependency"])
	assert.False(t, got["ignore_unknown_dependency"])
}

func TestConfigCmd_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "config", filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestMutantsCmd(t *testing.T) {
	t.Parallel()

	// Given
	root := t.TempDir()
	source := "package mutants\n\n// _TestOffByOne adds one too many.\nfunc _TestOffByOne(a, b int) int { return a + b + 1 }\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "add.go"), []byte(source), 0o644))

	// When
	out, err := execute(t, "mutants", root)

	// Then
	require.NoError(t, err)

	var got struct {
		Files  map[string][]map[string]any `json:"files"`
		Assets int                         `json:"assets"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Assets)
	require.Len(t, got.Files["add.go"], 1)
	assert.Equal(t, "_TestOffByOne", got.Files["add.go"][0]["name"])
}

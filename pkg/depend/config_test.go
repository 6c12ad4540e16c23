package depend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("should load all flags", func(t *testing.T) {
		t.Parallel()

		// Given
		path := filepath.Join(t.TempDir(), "testgate.yaml")
		content := "automark_dependency: true\naccept_xfail: true\nignore_unknown_dependency: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		// When
		cfg, err := LoadConfig(path)

		// Then
		require.NoError(t, err)
		assert.Equal(t, Config{AutoMark: true, AcceptXFail: true, IgnoreUnknown: true}, cfg)
	})

	t.Run("missing flags default to false", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "testgate.yaml")
		require.NoError(t, os.WriteFile(path, []byte("accept_xfail: true\n"), 0o644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, Config{AcceptXFail: true}, cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "testgate.yaml")
		require.NoError(t, os.WriteFile(path, []byte("automark_dependency: [\n"), 0o644))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})
}

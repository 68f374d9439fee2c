package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupStoryDir creates a temporary assets directory holding the given
// stories, keyed by slash-separated name. It returns the absolute path to
// the directory and fails the test immediately on error.
func SetupStoryDir(t *testing.T, stories map[string]string) string {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	WriteStories(t, absPath, stories)
	return absPath
}

// WriteStories writes each story under root, creating parent directories.
func WriteStories(t *testing.T, root string, stories map[string]string) {
	t.Helper()
	for name, content := range stories {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "Failed to create %s", filepath.Dir(path))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write %s", name)
	}
}

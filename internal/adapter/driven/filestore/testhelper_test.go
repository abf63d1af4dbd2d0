package filestore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeTestFile writes content to name inside a fresh temp dir and returns
// the full path.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// newTestCache returns a RepoCache at path whose clock is fixed at now.
func newTestCache(path string, now time.Time) *RepoCache {
	c := NewRepoCache(path)
	c.now = func() time.Time { return now }
	return c
}

// writeOver replaces the content of an existing file.
func writeOver(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

package infra

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "TabTip.exe")
	require.NoError(t, os.WriteFile(file, []byte("stub"), 0o644))

	fs := NewFileSystem()

	assert.True(t, fs.ExistsFile(file))
	assert.False(t, fs.ExistsFile(filepath.Join(dir, "missing.exe")))

	// A directory at the expected path counts as missing.
	assert.False(t, fs.ExistsFile(dir))
}

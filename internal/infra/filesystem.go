package infra

import (
	"os"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

// FileSystemImpl implements domain.FileSystem.
type FileSystemImpl struct{}

// NewFileSystem creates a new filesystem checker.
func NewFileSystem() domain.FileSystem {
	return &FileSystemImpl{}
}

// ExistsFile reports whether path exists and is a regular file. A directory
// at the expected executable path counts as missing.
func (fs *FileSystemImpl) ExistsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Ensure FileSystemImpl implements domain.FileSystem.
var _ domain.FileSystem = (*FileSystemImpl)(nil)

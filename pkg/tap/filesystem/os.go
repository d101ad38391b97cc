package filesystem

import (
	"io/fs"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// OSFileSystem implements FileSystem using direct OS calls. Paths are used
// exactly as given, absolute or relative to the process working directory,
// so glob patterns and user-supplied targets behave like they do in a shell.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS-backed filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat implements ReadFS
func (osfs *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile implements ReadFS
func (osfs *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ReadDir implements ReadFS
func (osfs *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Glob implements ReadFS. Patterns support the usual shell wildcards plus
// `**`; a malformed pattern returns doublestar.ErrBadPattern.
func (osfs *OSFileSystem) Glob(pattern string) ([]string, error) {
	return doublestar.FilepathGlob(pattern)
}

// OpenFile implements WriteFS
func (osfs *OSFileSystem) OpenFile(name string, flag int, perm fs.FileMode) (File, error) {
	return os.OpenFile(name, flag, perm)
}

// WriteFile implements WriteFS
func (osfs *OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// MkdirAll implements WriteFS
func (osfs *OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Chmod implements WriteFS
func (osfs *OSFileSystem) Chmod(name string, mode fs.FileMode) error {
	return os.Chmod(name, mode)
}

// Chtimes implements WriteFS. A zero atime or mtime leaves that value
// unchanged, per os.Chtimes.
func (osfs *OSFileSystem) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(name, atime, mtime)
}

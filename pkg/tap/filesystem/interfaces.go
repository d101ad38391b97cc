package filesystem

import (
	"io"
	"io/fs"
	"time"
)

// File is the subset of *os.File the content writer needs.
type File interface {
	io.Writer
	io.Closer
	Stat() (fs.FileInfo, error)
}

// ReadFS defines the read operations tap performs.
type ReadFS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Glob(pattern string) ([]string, error)
}

// WriteFS defines the write operations tap performs.
type WriteFS interface {
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error
}

// FileSystem combines read and write operations.
type FileSystem interface {
	ReadFS
	WriteFS
}

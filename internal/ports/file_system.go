package ports

import (
	"io"
	"io/fs"
	"time"
)

type AccessMode int

const (
	ReadWrite AccessMode = iota
	ReadWriteExecute
	ReadAllWriteOwner
	ReadExecuteAllWriteOwner
)

type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	FileExists(path string) (bool, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	Mkdir(path string, accessMode AccessMode) error
	MkdirAll(path string, accessMode AccessMode) error
	Remove(path string) error
	RemoveAll(path string) error
	Rename(oldPath, newPath string) error
	Open(path string) (io.ReadCloser, error)
	// Create creates or truncates the named file.
	Create(path string) (io.WriteCloser, error)
	// Append opens the named file for appending, creating it if missing.
	Append(path string) (io.WriteCloser, error)
	Chmod(path string, mode fs.FileMode) error
	Chtimes(path string, atime, mtime time.Time) error
	TempDir() string
}

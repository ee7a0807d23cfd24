package testutil

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mylib/internal/ports"
)

// Compile-time interface compliance check
var _ ports.FileSystem = (*TestFileSystem)(nil)

// TestFileSystem provides real file system operations sandboxed within a temporary directory.
// Relative and absolute paths are resolved inside the sandbox; paths already inside it are used as is.
// Use this in tests that need to actually read/write files.
// For unit tests that mock file system calls, use MockFileSystem instead.
type TestFileSystem struct {
	baseDir string
}

// NewTestFileSystem creates a sandboxed file system within a temporary directory.
// The directory is automatically cleaned up when the test completes.
func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	return &TestFileSystem{baseDir: t.TempDir()}
}

// BaseDir returns the sandbox base directory path.
// Use this when you need to construct paths or verify file locations.
func (f *TestFileSystem) BaseDir() string {
	return f.baseDir
}

// Path returns the absolute sandbox location of path.
func (f *TestFileSystem) Path(path string) string {
	return f.resolvePath(path)
}

func (f *TestFileSystem) resolvePath(path string) string {
	cleanPath := filepath.Clean(path)
	if cleanPath == f.baseDir || strings.HasPrefix(cleanPath, f.baseDir+string(filepath.Separator)) {
		return cleanPath
	}
	if filepath.IsAbs(cleanPath) {
		// Remove the volume and root to make it relative (e.g., "/foo/bar" -> "foo/bar")
		cleanPath = strings.TrimLeft(cleanPath[len(filepath.VolumeName(cleanPath)):], `/\`)
	}
	return filepath.Join(f.baseDir, cleanPath)
}

func (f *TestFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(f.resolvePath(path))
}

func (f *TestFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(f.resolvePath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (f *TestFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(f.resolvePath(path))
}

func (f *TestFileSystem) Mkdir(path string, _ ports.AccessMode) error {
	return os.Mkdir(f.resolvePath(path), 0700)
}

func (f *TestFileSystem) MkdirAll(path string, _ ports.AccessMode) error {
	return os.MkdirAll(f.resolvePath(path), 0700)
}

func (f *TestFileSystem) Remove(path string) error {
	return os.Remove(f.resolvePath(path))
}

func (f *TestFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(f.resolvePath(path))
}

func (f *TestFileSystem) Rename(oldPath, newPath string) error {
	return os.Rename(f.resolvePath(oldPath), f.resolvePath(newPath))
}

func (f *TestFileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(f.resolvePath(path))
}

func (f *TestFileSystem) Create(path string) (io.WriteCloser, error) {
	return os.Create(f.resolvePath(path))
}

func (f *TestFileSystem) Append(path string) (io.WriteCloser, error) {
	return os.OpenFile(f.resolvePath(path), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
}

func (f *TestFileSystem) Chmod(path string, mode fs.FileMode) error {
	return os.Chmod(f.resolvePath(path), mode)
}

func (f *TestFileSystem) Chtimes(path string, atime, mtime time.Time) error {
	return os.Chtimes(f.resolvePath(path), atime, mtime)
}

// TempDir returns a "tmp" directory inside the sandbox, creating it on demand.
func (f *TestFileSystem) TempDir() string {
	dir := filepath.Join(f.baseDir, "tmp")
	_ = os.MkdirAll(dir, 0700)
	return dir
}

// WriteFile is a test helper that writes content to path, creating parent directories.
func (f *TestFileSystem) WriteFile(t *testing.T, path, content string) string {
	t.Helper()
	resolved := f.resolvePath(path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0700); err != nil {
		t.Fatalf("failed to create parent directory: %v", err)
	}
	if err := os.WriteFile(resolved, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return resolved
}

// ReadFile is a test helper that returns the content of path.
func (f *TestFileSystem) ReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(f.resolvePath(path))
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	return string(content)
}

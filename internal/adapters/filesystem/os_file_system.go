package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mylib/internal/ports"
)

// Compile-time interface compliance check
var _ ports.FileSystem = (*OsFileSystem)(nil)

type OsFileSystem struct{}

func ProvideOsFileSystem() *OsFileSystem {
	return &OsFileSystem{}
}

func (f *OsFileSystem) Stat(path string) (fs.FileInfo, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	return os.Stat(path)
}

func (f *OsFileSystem) FileExists(path string) (bool, error) {
	_, err := f.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists: %w", err)
}

func (f *OsFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	return os.ReadDir(path)
}

func (f *OsFileSystem) Mkdir(path string, accessMode ports.AccessMode) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}
	return os.Mkdir(path, getOsFileModeForAccessMode(accessMode))
}

func (f *OsFileSystem) MkdirAll(path string, accessMode ports.AccessMode) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}
	return os.MkdirAll(path, getOsFileModeForAccessMode(accessMode))
}

func (f *OsFileSystem) Remove(path string) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func (f *OsFileSystem) RemoveAll(path string) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}
	return os.RemoveAll(path)
}

func (f *OsFileSystem) Rename(oldPath, newPath string) error {
	oldPath, err := expandPath(oldPath)
	if err != nil {
		return err
	}
	newPath, err = expandPath(newPath)
	if err != nil {
		return err
	}
	return os.Rename(oldPath, newPath)
}

func (f *OsFileSystem) Open(path string) (io.ReadCloser, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

func (f *OsFileSystem) Create(path string) (io.WriteCloser, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	return os.Create(path)
}

func (f *OsFileSystem) Append(path string) (io.WriteCloser, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, getOsFileModeForAccessMode(ports.ReadAllWriteOwner))
}

func (f *OsFileSystem) Chmod(path string, mode fs.FileMode) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}
	return os.Chmod(path, mode)
}

func (f *OsFileSystem) Chtimes(path string, atime, mtime time.Time) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}
	return os.Chtimes(path, atime, mtime)
}

func (f *OsFileSystem) TempDir() string {
	return os.TempDir()
}

// expandPath resolves a leading "~" to the user's home directory.
// Both "/" and "\" are accepted after the tilde.
func expandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~\\") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, normalizePathSeparators(path[1:])), nil
}

func normalizePathSeparators(path string) string {
	path = strings.ReplaceAll(path, "/", string(filepath.Separator))
	return strings.ReplaceAll(path, "\\", string(filepath.Separator))
}

func getOsFileModeForAccessMode(accessMode ports.AccessMode) os.FileMode {
	switch accessMode {
	case ports.ReadWrite:
		return 0600
	case ports.ReadWriteExecute:
		return 0700
	case ports.ReadAllWriteOwner:
		return 0644
	case ports.ReadExecuteAllWriteOwner:
		return 0755
	default:
		return 0600
	}
}

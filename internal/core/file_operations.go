package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"mylib/internal/core/domain"
	"mylib/internal/ports"

	"github.com/google/uuid"
)

var (
	ErrAlreadyExists  = fmt.Errorf("path already exists: %w", fs.ErrExist)
	ErrSameFile       = errors.New("source and destination are the same file")
	ErrCopyIntoItself = errors.New("cannot copy a directory into itself")
)

// FileOperations bundles the filesystem helpers. None of them lock anything:
// a concurrent process may claim a path between a check and its use.
type FileOperations struct {
	fileSystem ports.FileSystem
	newStem    func() string
}

func ProvideFileOperations(fileSystem ports.FileSystem) *FileOperations {
	return &FileOperations{
		fileSystem: fileSystem,
		newStem: func() string {
			return "tmp" + strings.ReplaceAll(uuid.NewString(), "-", "")
		},
	}
}

// CreateTempPath returns an unused path in the system temp directory ending
// in ext. Nothing is created.
func (o *FileOperations) CreateTempPath(ext string) (string, error) {
	dir := o.fileSystem.TempDir()
	for {
		path := filepath.Join(dir, o.newStem()+ext)
		exists, err := o.fileSystem.FileExists(path)
		if err != nil {
			return "", err
		}
		if !exists {
			return path, nil
		}
	}
}

// MkdirEmpty ensures path is an empty directory. An existing path is only
// replaced when existOK is set; otherwise ErrAlreadyExists is returned and
// nothing is touched.
func (o *FileOperations) MkdirEmpty(path string, existOK bool) error {
	exists, err := o.fileSystem.FileExists(path)
	if err != nil {
		return err
	}
	if exists {
		if !existOK {
			return fmt.Errorf("cannot create '%s': %w", path, ErrAlreadyExists)
		}
		if err := o.fileSystem.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove '%s': %w", path, err)
		}
	}
	if err := o.fileSystem.MkdirAll(path, ports.ReadExecuteAllWriteOwner); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", path, err)
	}
	return nil
}

// AvoidOverwrite returns path if it is free, otherwise the first free
// "name (n)" variant. For files the counter goes before the extension.
func (o *FileOperations) AvoidOverwrite(path string, isDir bool) (string, error) {
	exists, err := o.fileSystem.FileExists(path)
	if err != nil {
		return "", err
	}
	if !exists {
		return path, nil
	}

	dir, name := filepath.Split(filepath.Clean(path))
	for n := 1; ; n++ {
		var candidate string
		if isDir {
			candidate = fmt.Sprintf("%s (%d)", name, n)
		} else {
			candidate = fmt.Sprintf("%s (%d)%s", domain.Stem(name), n, domain.Suffix(name))
		}
		candidate = filepath.Join(dir, candidate)

		exists, err := o.fileSystem.FileExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

// Move relocates a file or directory. When dst is an existing directory src
// is moved inside it. Moves across devices fall back to copy and delete.
func (o *FileOperations) Move(src, dst string) error {
	if info, err := o.fileSystem.Stat(dst); err == nil && info.IsDir() {
		dst = filepath.Join(dst, filepath.Base(src))
		exists, err := o.fileSystem.FileExists(dst)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("cannot move '%s' to '%s': %w", src, dst, ErrAlreadyExists)
		}
	}

	err := o.fileSystem.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return fmt.Errorf("failed to move '%s' to '%s': %w", src, dst, err)
	}

	if err := o.copyTree(src, dst, true); err != nil {
		return fmt.Errorf("failed to copy '%s' to '%s': %w", src, dst, err)
	}
	if err := o.fileSystem.RemoveAll(src); err != nil {
		return fmt.Errorf("failed to remove '%s' after copy: %w", src, err)
	}
	return nil
}

// Copy duplicates a file or directory tree. When dst is a directory src keeps
// its name inside it. includeMeta additionally carries over permission bits
// and modification time.
func (o *FileOperations) Copy(src, dst string, includeMeta bool) error {
	if info, err := o.fileSystem.Stat(dst); err == nil && info.IsDir() {
		dst = filepath.Join(dst, filepath.Base(src))
	}
	if err := o.checkCopyTarget(src, dst); err != nil {
		return fmt.Errorf("cannot copy '%s' to '%s': %w", src, dst, err)
	}
	if err := o.copyTree(src, dst, includeMeta); err != nil {
		return fmt.Errorf("failed to copy '%s' to '%s': %w", src, dst, err)
	}
	return nil
}

// checkCopyTarget rejects a dst that is src itself or, for directories, lies
// inside src.
func (o *FileOperations) checkCopyTarget(src, dst string) error {
	srcInfo, err := o.fileSystem.Stat(src)
	if err != nil {
		return err
	}
	if dstInfo, err := o.fileSystem.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return ErrSameFile
	}
	if srcInfo.IsDir() && isWithin(dst, src) {
		return ErrCopyIntoItself
	}
	return nil
}

// isWithin reports whether path is dir or lies below it.
func isWithin(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func (o *FileOperations) copyFile(src, dst string, includeMeta bool) error {
	in, err := o.fileSystem.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := o.fileSystem.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if !includeMeta {
		return nil
	}
	info, err := o.fileSystem.Stat(src)
	if err != nil {
		return err
	}
	if err := o.fileSystem.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return o.fileSystem.Chtimes(dst, info.ModTime(), info.ModTime())
}

func (o *FileOperations) copyTree(src, dst string, includeMeta bool) error {
	info, err := o.fileSystem.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return o.copyFile(src, dst, includeMeta)
	}

	if err := o.fileSystem.Mkdir(dst, ports.ReadWriteExecute); err != nil && !errors.Is(err, fs.ErrExist) {
		return err
	}
	entries, err := o.fileSystem.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := o.copyTree(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()), includeMeta); err != nil {
			return err
		}
	}
	if !includeMeta {
		return nil
	}
	if err := o.fileSystem.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return o.fileSystem.Chtimes(dst, info.ModTime(), info.ModTime())
}

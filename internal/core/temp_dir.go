package core

import (
	"errors"
	"fmt"
	"path/filepath"

	"mylib/internal/ports"
)

var ErrTempDirClosed = errors.New("temporary directory already cleaned up")

// TempDir is a directory in the system temp area that exists from creation
// until Cleanup. Callers either defer Cleanup or use WithTempDir.
type TempDir struct {
	fileOperations *FileOperations
	path           string
	closed         bool
}

func (o *FileOperations) NewTempDir() (*TempDir, error) {
	path, err := o.CreateTempPath("")
	if err != nil {
		return nil, err
	}
	if err := o.fileSystem.Mkdir(path, ports.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}
	return &TempDir{fileOperations: o, path: path}, nil
}

// WithTempDir runs fn with a fresh TempDir and removes it on every exit path,
// including panics.
func (o *FileOperations) WithTempDir(fn func(dir *TempDir) error) error {
	dir, err := o.NewTempDir()
	if err != nil {
		return err
	}
	defer dir.Cleanup()
	return fn(dir)
}

func (d *TempDir) Path() string {
	return d.path
}

// Join returns a path inside the directory.
func (d *TempDir) Join(elem ...string) string {
	return filepath.Join(append([]string{d.path}, elem...)...)
}

// MoveContents moves every direct child into dest, replacing entries of the
// same name. A replaced entry is only deleted once its successor is in place.
func (d *TempDir) MoveContents(dest string) error {
	if d.closed {
		return ErrTempDirClosed
	}
	entries, err := d.fileOperations.fileSystem.ReadDir(d.path)
	if err != nil {
		return fmt.Errorf("failed to list temporary directory: %w", err)
	}
	for _, entry := range entries {
		if err := d.replace(d.Join(entry.Name()), filepath.Join(dest, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// replace moves src to target. An existing target is renamed aside first and
// restored if the move fails.
func (d *TempDir) replace(src, target string) error {
	fileSystem := d.fileOperations.fileSystem
	exists, err := fileSystem.FileExists(target)
	if err != nil {
		return err
	}
	if !exists {
		return d.fileOperations.Move(src, target)
	}

	backup, err := d.fileOperations.AvoidOverwrite(target+".replaced", false)
	if err != nil {
		return err
	}
	if err := fileSystem.Rename(target, backup); err != nil {
		return fmt.Errorf("failed to set aside '%s': %w", target, err)
	}
	if err := d.fileOperations.Move(src, target); err != nil {
		if restoreErr := fileSystem.Rename(backup, target); restoreErr != nil {
			return fmt.Errorf("%w (previous content left at '%s')", err, backup)
		}
		return err
	}
	if err := fileSystem.RemoveAll(backup); err != nil {
		return fmt.Errorf("failed to remove replaced '%s': %w", backup, err)
	}
	return nil
}

// Empty deletes the contents and keeps the directory at the same path.
func (d *TempDir) Empty() error {
	if d.closed {
		return ErrTempDirClosed
	}
	fileSystem := d.fileOperations.fileSystem
	if err := fileSystem.RemoveAll(d.path); err != nil {
		return fmt.Errorf("failed to empty temporary directory: %w", err)
	}
	if err := fileSystem.Mkdir(d.path, ports.ReadWriteExecute); err != nil {
		return fmt.Errorf("failed to recreate temporary directory: %w", err)
	}
	return nil
}

// Cleanup removes the directory and everything in it. Failures are ignored
// and repeated calls do nothing.
func (d *TempDir) Cleanup() {
	if d.closed {
		return
	}
	d.closed = true
	_ = d.fileOperations.fileSystem.RemoveAll(d.path)
}

package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"mylib/internal/cli/output"
	"mylib/internal/core"
	"mylib/internal/core/domain"
	"mylib/internal/ports"
)

// ErrUnnamedSource is returned for stage sources such as "." or "/" that have
// no name of their own to stage under.
var ErrUnnamedSource = errors.New("source has no name")

type FileCommandHandler struct {
	fileOperations *core.FileOperations
	fileSystem     ports.FileSystem
}

func ProvideFileCommandHandler(fileOperations *core.FileOperations, fileSystem ports.FileSystem) FileCommandHandler {
	return FileCommandHandler{
		fileOperations: fileOperations,
		fileSystem:     fileSystem,
	}
}

func (h *FileCommandHandler) HandleMkdirEmpty(path string, existOK bool) error {
	exists, err := h.fileSystem.FileExists(path)
	if err != nil {
		return err
	}
	if err := h.fileOperations.MkdirEmpty(path, existOK); err != nil {
		return err
	}
	if exists {
		output.PrintWarning(fmt.Sprintf("Removed previous content of %s", path))
	}
	output.PrintSuccess(fmt.Sprintf("Empty directory ready at %s", path))
	return nil
}

func (h *FileCommandHandler) HandleMove(src, dst string) error {
	if err := h.fileOperations.Move(src, dst); err != nil {
		return err
	}
	output.PrintSuccess(fmt.Sprintf("Moved %s %s %s", src, output.SymbolArrow, dst))
	return nil
}

func (h *FileCommandHandler) HandleCopy(src, dst string, includeMeta bool) error {
	if err := h.fileOperations.Copy(src, dst, includeMeta); err != nil {
		return err
	}
	output.PrintSuccess(fmt.Sprintf("Copied %s %s %s", src, output.SymbolArrow, dst))
	return nil
}

// HandleStage copies sources into a temporary directory under names that are
// legal on this system and free of clashes, then moves them into dest in one
// step. Nothing reaches dest unless every copy succeeded.
func (h *FileCommandHandler) HandleStage(dest string, sources []string, opts domain.FixOptions) error {
	for _, src := range sources {
		if !hasName(src) {
			return fmt.Errorf("%w: '%s'", ErrUnnamedSource, src)
		}
	}

	output.PrintHeader(fmt.Sprintf("Staging %d %s into %s", len(sources), output.Plural(len(sources), "file", "files"), dest))
	exists, err := h.fileSystem.FileExists(dest)
	if err != nil {
		return err
	}
	if !exists {
		if err := h.fileOperations.MkdirEmpty(dest, false); err != nil {
			return err
		}
		output.PrintInfo(fmt.Sprintf("Created %s", dest))
	}

	err = h.fileOperations.WithTempDir(func(dir *core.TempDir) error {
		for _, src := range sources {
			name, err := domain.FixPathForCurrentOS(filepath.Base(src), opts)
			if err != nil {
				return err
			}
			target, err := h.fileOperations.AvoidOverwrite(dir.Join(name), false)
			if err != nil {
				return err
			}
			if err := h.fileOperations.Copy(src, target, true); err != nil {
				return err
			}
			output.PrintStep(fmt.Sprintf("%s %s %s", src, output.SymbolArrow, filepath.Base(target)))
		}
		return dir.MoveContents(dest)
	})
	if err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Staged %d %s into %s", len(sources), output.Plural(len(sources), "file", "files"), dest))
	return nil
}

func hasName(path string) bool {
	name := filepath.Base(filepath.Clean(path))
	return name != "." && name != ".." && !strings.HasSuffix(name, string(filepath.Separator))
}

package handler

import (
	"os"
	"path/filepath"
	"testing"

	"mylib/internal/core"
	"mylib/internal/core/domain"
	"mylib/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileCommandHandler(t *testing.T) (FileCommandHandler, *testutil.TestFileSystem) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	fileSystem := testutil.NewTestFileSystem(t)
	return ProvideFileCommandHandler(core.ProvideFileOperations(fileSystem), fileSystem), fileSystem
}

func TestFileCommandHandler_HandleMkdirEmpty(t *testing.T) {
	sut, fileSystem := newFileCommandHandler(t)
	fileSystem.WriteFile(t, "out/old.txt", "x")

	err := sut.HandleMkdirEmpty(fileSystem.Path("out"), false)
	assert.ErrorIs(t, err, core.ErrAlreadyExists)

	require.NoError(t, sut.HandleMkdirEmpty(fileSystem.Path("out"), true))
	entries, err := os.ReadDir(fileSystem.Path("out"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileCommandHandler_HandleMoveAndCopy(t *testing.T) {
	sut, fileSystem := newFileCommandHandler(t)
	src := fileSystem.WriteFile(t, "a.txt", "content")

	require.NoError(t, sut.HandleCopy(src, fileSystem.Path("b.txt"), true))
	require.NoError(t, sut.HandleMove(src, fileSystem.Path("c.txt")))

	assert.Equal(t, "content", fileSystem.ReadFile(t, "b.txt"))
	assert.Equal(t, "content", fileSystem.ReadFile(t, "c.txt"))
	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err))
}

func TestFileCommandHandler_HandleStage(t *testing.T) {
	sut, fileSystem := newFileCommandHandler(t)
	first := fileSystem.WriteFile(t, "in/one/notes.txt", "first")
	second := fileSystem.WriteFile(t, "in/two/notes.txt", "second")
	colon := fileSystem.WriteFile(t, "in/12_00.log", "log")
	dest := fileSystem.Path("staged")

	require.NoError(t, sut.HandleStage(dest, []string{first, second, colon}, domain.DefaultFixOptions()))

	assert.Equal(t, "first", fileSystem.ReadFile(t, "staged/notes.txt"))
	assert.Equal(t, "second", fileSystem.ReadFile(t, "staged/notes (1).txt"))
	assert.Equal(t, "log", fileSystem.ReadFile(t, "staged/12_00.log"))
	tmpEntries, err := os.ReadDir(fileSystem.TempDir())
	require.NoError(t, err)
	assert.Empty(t, tmpEntries, "staging directory is cleaned up")
}

func TestFileCommandHandler_HandleStage_FailureLeavesDestinationUntouched(t *testing.T) {
	sut, fileSystem := newFileCommandHandler(t)
	good := fileSystem.WriteFile(t, "in/good.txt", "x")
	dest := fileSystem.Path("staged")

	err := sut.HandleStage(dest, []string{good, fileSystem.Path("in/missing.txt")}, domain.DefaultFixOptions())

	assert.ErrorIs(t, err, os.ErrNotExist)
	entries, readErr := os.ReadDir(dest)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
	tmpEntries, readErr := os.ReadDir(fileSystem.TempDir())
	require.NoError(t, readErr)
	assert.Empty(t, tmpEntries)
}

func TestFileCommandHandler_HandleStage_RejectsUnnamedSources(t *testing.T) {
	sut, fileSystem := newFileCommandHandler(t)
	fileSystem.WriteFile(t, "in/good.txt", "x")
	dest := fileSystem.Path("staged")

	for _, src := range []string{".", "..", "in/..", string(filepath.Separator)} {
		err := sut.HandleStage(dest, []string{fileSystem.Path("in/good.txt"), src}, domain.DefaultFixOptions())

		assert.ErrorIs(t, err, ErrUnnamedSource, src)
	}
	_, err := os.Stat(dest)
	assert.True(t, os.IsNotExist(err), "destination is not created")
	tmpEntries, err := os.ReadDir(fileSystem.TempDir())
	require.NoError(t, err)
	assert.Empty(t, tmpEntries)
}

func TestHasName(t *testing.T) {
	assert.True(t, hasName("notes.txt"))
	assert.True(t, hasName("dir/sub/"))
	assert.True(t, hasName("./a"))
	assert.False(t, hasName("."))
	assert.False(t, hasName("a/.."))
	assert.False(t, hasName(string(filepath.Separator)))
}

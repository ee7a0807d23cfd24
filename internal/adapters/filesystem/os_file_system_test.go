package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"mylib/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOsFileSystem_CreateAppendRoundTrip(t *testing.T) {
	fs := ProvideOsFileSystem()
	path := filepath.Join(t.TempDir(), "roundtrip.txt")

	w, err := fs.Create(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, "first")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	w, err = fs.Append(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, " second")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := fs.Open(path)
	require.NoError(t, err)
	defer r.Close()
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "first second", string(content))
}

func TestOsFileSystem_FileExists(t *testing.T) {
	fs := ProvideOsFileSystem()
	dir := t.TempDir()

	exists, err := fs.FileExists(dir)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.FileExists(filepath.Join(dir, "does-not-exist.txt"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOsFileSystem_MkdirAll_CreatesParentDirectories(t *testing.T) {
	fs := ProvideOsFileSystem()
	deepPath := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, fs.MkdirAll(deepPath, ports.ReadWriteExecute))

	info, err := os.Stat(deepPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOsFileSystem_Mkdir_FailsWhenParentMissing(t *testing.T) {
	fs := ProvideOsFileSystem()

	err := fs.Mkdir(filepath.Join(t.TempDir(), "missing", "child"), ports.ReadWriteExecute)

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOsFileSystem_RemoveAll_RemovesDirectory(t *testing.T) {
	fs := ProvideOsFileSystem()
	subdir := filepath.Join(t.TempDir(), "to-remove")
	require.NoError(t, os.MkdirAll(subdir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(subdir, "file.txt"), []byte("test"), 0600))

	require.NoError(t, fs.RemoveAll(subdir))

	_, err := os.Stat(subdir)
	assert.True(t, os.IsNotExist(err))
}

func TestOsFileSystem_RenameAndReadDir(t *testing.T) {
	fs := ProvideOsFileSystem()
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0600))

	require.NoError(t, fs.Rename(src, filepath.Join(dir, "b.txt")))

	entries, err := fs.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b.txt", entries[0].Name())
}

func TestOsFileSystem_ChmodAndChtimes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not preserved on windows")
	}
	fs := ProvideOsFileSystem()
	path := filepath.Join(t.TempDir(), "meta.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, fs.Chmod(path, 0640))
	require.NoError(t, fs.Chtimes(path, mtime, mtime))

	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
	assert.True(t, info.ModTime().Equal(mtime))
}

func TestOsFileSystem_Mkdir_AccessModes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not preserved on windows")
	}
	fs := ProvideOsFileSystem()
	dir := t.TempDir()

	tests := []struct {
		name         string
		mode         ports.AccessMode
		expectedPerm os.FileMode
	}{
		{"ReadWriteExecute", ports.ReadWriteExecute, 0700},
		{"ReadExecuteAllWriteOwner", ports.ReadExecuteAllWriteOwner, 0755},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			require.NoError(t, fs.Mkdir(path, tt.mode))

			info, err := os.Stat(path)
			require.NoError(t, err)
			// umask may only clear bits
			assert.Zero(t, info.Mode().Perm()&^tt.expectedPerm)
		})
	}
}

func TestExpandPath_CrossPlatform(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde with forward slash", "~/.mylib/config", filepath.Join(home, ".mylib", "config")},
		{"tilde with backslash", "~\\.mylib\\config", filepath.Join(home, ".mylib", "config")},
		{"tilde only", "~", home},
		{"no tilde", "relative/path", "relative/path"},
		{"tilde inside name", "~user/file", "~user/file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, filepath.Clean(tt.expected), filepath.Clean(result))
		})
	}
}

func TestNormalizePathSeparators(t *testing.T) {
	sep := string(filepath.Separator)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"forward slashes", "foo/bar/baz", "foo" + sep + "bar" + sep + "baz"},
		{"backslashes", "foo\\bar\\baz", "foo" + sep + "bar" + sep + "baz"},
		{"mixed separators", "foo/bar\\baz", "foo" + sep + "bar" + sep + "baz"},
		{"empty string", "", ""},
		{"single segment", "foo", "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizePathSeparators(tt.input))
		})
	}
}

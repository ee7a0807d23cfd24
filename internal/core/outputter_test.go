package core

import (
	"errors"
	"testing"

	"mylib/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputter_TruncatesAndAppends(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	path := fileSystem.WriteFile(t, "out.txt", "previous content")

	sut, err := NewOutputter(fileSystem, path, "")
	require.NoError(t, err)
	assert.Equal(t, "", fileSystem.ReadFile(t, path))
	assert.Equal(t, "utf-8", sut.Encoding())
	assert.Equal(t, path, sut.Path())

	require.NoError(t, sut.Output("a"))
	require.NoError(t, sut.Output("b"))

	assert.Equal(t, "ab", fileSystem.ReadFile(t, path))
}

func TestOutputter_ShiftJIS(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	path := fileSystem.Path("sjis.txt")

	sut, err := NewOutputter(fileSystem, path, "Shift_JIS")
	require.NoError(t, err)
	require.NoError(t, sut.Output("あ"))

	assert.Equal(t, "shift_jis", sut.Encoding())
	assert.Equal(t, "\x82\xa0", fileSystem.ReadFile(t, path))
}

func TestOutputter_UnencodableText(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	sut, err := NewOutputter(fileSystem, fileSystem.Path("latin.txt"), "iso-8859-1")
	require.NoError(t, err)

	err = sut.Output("日本")

	assert.Error(t, err)
}

func TestNewOutputter_UnknownEncoding(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)

	_, err := NewOutputter(fileSystem, fileSystem.Path("x.txt"), "klingon")

	assert.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestNewOutputter_CreateError(t *testing.T) {
	expectedErr := errors.New("read-only file system")
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("Create", "/ro/out.txt").Return(nil, expectedErr)

	_, err := NewOutputter(fileSystem, "/ro/out.txt", "utf-8")

	assert.ErrorIs(t, err, expectedErr)
}

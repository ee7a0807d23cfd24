package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixPath_Windows(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"reserved name with extension", "con.txt", "con_.txt"},
		{"reserved name is case-insensitive", `dir\NUL`, `dir\NUL_`},
		{"numbered device", `x\com1.log`, `x\com1_.log`},
		{"reserved prefix of a longer name", "console.txt", "console.txt"},
		{"illegal characters", "a:b*c", "a_b_c"},
		{"every illegal character", "q?\"<>|\t.txt", "q______.txt"},
		{"drive anchor untouched", `C:\data\file?.txt`, `C:\data\file_.txt`},
		{"drive-relative drive is a name", "C:", "C_"},
		{"drive-relative path is a name", `C:x\y`, `C_x\y`},
		{"trailing period", `dir.\name.`, `dir_\name_`},
		{"dot entries untouched", `.\a\..\b`, `.\a\..\b`},
		{"leading period allowed by default", `.git\config`, `.git\config`},
		{"trailing period is replaced before reserved check", "con.", "con_"},
		{"unc anchor untouched", `\\server\share\a|b`, `\\server\share\a_b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := FixPath(tt.path, Windows, DefaultFixOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestFixPath_Posix(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"colon replaced", "/tmp/12:30:00.log", "/tmp/12_30_00.log"},
		{"windows rules do not apply", "/tmp/con.txt", "/tmp/con.txt"},
		{"asterisk is legal", "a*b", "a*b"},
		{"trailing period is legal", "name.", "name."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := FixPath(tt.path, Posix, DefaultFixOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestFixPath_DisallowLeadingPeriod(t *testing.T) {
	opts := FixOptions{AllowLeadingPeriod: false, Replacement: '-'}

	actual, err := FixPath("./.config/../.hidden/file", Posix, opts)
	require.NoError(t, err)
	assert.Equal(t, "./-config/../-hidden/file", actual)

	actual, err = FixPath(`.\.cache.`, Windows, opts)
	require.NoError(t, err)
	assert.Equal(t, `.\-cache-`, actual)
}

func TestFixPath_ZeroReplacementDefaultsToUnderscore(t *testing.T) {
	actual, err := FixPath("a:b", Posix, FixOptions{AllowLeadingPeriod: true})

	require.NoError(t, err)
	assert.Equal(t, "a_b", actual)
}

func TestFixPath_InvalidReplacement(t *testing.T) {
	for _, r := range []rune{'/', '\\', '.', ':', '*', '?', '"', '<', '>', '|', '\n', '\x00' + 1} {
		_, err := FixPath("a", Posix, FixOptions{Replacement: r})
		assert.ErrorIs(t, err, ErrInvalidReplacement, "replacement %q", r)
	}
}

func TestFixPath_Idempotent(t *testing.T) {
	paths := []string{
		"con.txt", "con.", "co.", ".on", "a:b*c", `C:\x\y.\lpt9.tar.gz`, `..\..\.x.`,
		"/tmp/a:b/.c", "aux", "AUX.", `\\srv\share\nul`, "x\v\ty",
	}
	optsList := []FixOptions{
		DefaultFixOptions(),
		{AllowLeadingPeriod: false, Replacement: '_'},
		{AllowLeadingPeriod: false, Replacement: 'n'},
		{AllowLeadingPeriod: false, Replacement: 'c'},
	}

	for _, flavor := range []Flavor{Posix, Windows} {
		for _, opts := range optsList {
			for _, path := range paths {
				once, err := FixPath(path, flavor, opts)
				require.NoError(t, err)
				twice, err := FixPath(once, flavor, opts)
				require.NoError(t, err)
				assert.Equal(t, once, twice, "flavor=%s opts=%+v path=%q", flavor, opts, path)
			}
		}
	}
}

func TestFixPath_PreservesComponentCount(t *testing.T) {
	for _, flavor := range []Flavor{Posix, Windows} {
		path := "./../a:b/con./.x"
		actual, err := FixPath(path, flavor, FixOptions{Replacement: '_'})
		require.NoError(t, err)

		before := SplitPath(path, flavor)
		after := SplitPath(actual, flavor)
		require.Len(t, after, len(before))
		assert.Equal(t, ".", after[0])
		assert.Equal(t, "..", after[1])
	}
}

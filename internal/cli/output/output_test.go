package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyles_PlainWhenNoColorSet(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, ColorsEnabled())
	for _, styled := range []string{Dim("x"), Success("x"), Error("x"), Warning("x"), Info("x"), Header("x")} {
		assert.Equal(t, "x", styled)
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "file", Plural(1, "file", "files"))
	assert.Equal(t, "files", Plural(0, "file", "files"))
	assert.Equal(t, "files", Plural(2, "file", "files"))
}

package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve tests relative resolution and absolute pass-through.
func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("/base", "a", "b"), Resolve("/base", "a/b"))
	assert.Equal(t, "/abs/x", Resolve("/base", "/abs/x"))
	assert.Equal(t, "/abs/x", Resolve("/base", "/abs/./x"))
}

// TestBases tests resolution against the bundle and data roots.
func TestBases(t *testing.T) {
	b := Bases{Bundle: "/bundle", Data: "/data"}

	assert.Equal(t, filepath.Join("/bundle", "sounds"), b.InBundle("sounds"))
	assert.Equal(t, filepath.Join("/data", "save.json"), b.InData("save.json"))
}

// TestDefault tests environment-derived bases.
func TestDefault(t *testing.T) {
	b, err := Default("myapp")
	require.NoError(t, err)
	assert.NotEmpty(t, b.Bundle)
	assert.Contains(t, b.Data, "myapp")

	_, err = Default("")
	assert.Error(t, err)
}

// TestTrimRoot tests literal, trailing-separator and absolute forms.
func TestTrimRoot(t *testing.T) {
	assert.Equal(t, "sfx/click.wav", TrimRoot("sounds", "sounds/sfx/click.wav"))
	assert.Equal(t, "sfx/click.wav", TrimRoot("sounds/", "sounds/sfx/click.wav"))

	abs, err := filepath.Abs("sounds")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("sfx", "click.wav"),
		TrimRoot("sounds", filepath.Join(abs, "sfx", "click.wav")))

	// Non-matching prefixes pass through untouched.
	assert.Equal(t, "music/theme.ogg", TrimRoot("sounds", "music/theme.ogg"))
	assert.Equal(t, "soundsy/x.wav", TrimRoot("sounds", "soundsy/x.wav"))
}

// TestTrimRootDotPrefixedRoot tests a root spelled with a redundant
// "./" prefix against the cleaned paths the walker produces.
func TestTrimRootDotPrefixedRoot(t *testing.T) {
	assert.Equal(t, "sfx/click.wav", TrimRoot("./sounds", "sounds/sfx/click.wav"))
	assert.Equal(t, "sfx/click.wav", TrimRoot("./sounds/", "sounds/sfx/click.wav"))
	assert.Equal(t, "sfx/click.wav", TrimRoot("./sounds", "./sounds/sfx/click.wav"))
}

// TestSplitSegments tests splitting on both separators.
func TestSplitSegments(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitSegments("a/b/c"))
	assert.Equal(t, []string{"a", "b", "c"}, SplitSegments(`a\b\c`))
	assert.Equal(t, []string{"a", "b"}, SplitSegments(`a/b/`))
	assert.Empty(t, SplitSegments(""))
}

// TestValidateAppName tests the name guard.
func TestValidateAppName(t *testing.T) {
	assert.NoError(t, ValidateAppName("myapp"))
	assert.Error(t, ValidateAppName(""))
	assert.Error(t, ValidateAppName("/abs"))
	assert.Error(t, ValidateAppName("a/b"))
	assert.Error(t, ValidateAppName("../up"))
}

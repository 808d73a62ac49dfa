package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glimmerkit/assetfs/internal/namer"
	"github.com/glimmerkit/assetfs/internal/walker"
)

// makeAssets builds an asset tree in a temp dir and returns its root.
//
//	root/
//	  music/
//	    theme.ogg
//	  readme.txt            (root-level, dropped)
//	  sfx/
//	    .DS_Store           (junk, dropped)
//	    boom.wav
//	    ui/
//	      click.wav
func makeAssets(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sfx", "ui"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "music"), 0o755))
	for _, f := range []string{
		filepath.Join("music", "theme.ogg"),
		"readme.txt",
		filepath.Join("sfx", ".DS_Store"),
		filepath.Join("sfx", "boom.wav"),
		filepath.Join("sfx", "ui", "click.wav"),
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte(f), 0o644))
	}
	return root
}

// TestScan tests the full pipeline: traversal order in, filtered named
// records out.
func TestScan(t *testing.T) {
	root := makeAssets(t)

	table, err := Scan(root)
	require.NoError(t, err)

	names := table.Names()
	assert.Equal(t, []string{"theme", "boom", "ui-click"}, names)

	records := table.Records()
	require.Len(t, records, 3)
	assert.Equal(t, filepath.Join(root, "sfx", "ui", "click.wav"), records[2].Path)
	assert.Equal(t, "click.wav", records[2].Filename)
}

// TestScanDotPrefixedRoot tests scanning a root spelled with a
// redundant "./" prefix: names must come out identical to scanning the
// plain relative root.
func TestScanDotPrefixedRoot(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "sounds", "sfx", "ui"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(base, "sounds", "sfx", "ui", "click.wav"), []byte("x"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(base))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	table, err := Scan("./sounds")
	require.NoError(t, err)

	assert.Equal(t, []string{"ui-click"}, table.Names())
}

// TestScanMissingRoot tests that the walker's not-found error passes
// through the pipeline.
func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, walker.ErrNotFound)
}

// TestScanIdempotent tests that scanning an unmodified tree twice
// yields identical ordered records.
func TestScanIdempotent(t *testing.T) {
	root := makeAssets(t)

	first, err := Scan(root)
	require.NoError(t, err)
	second, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, first.Records(), second.Records())
}

// TestScanWithExtraJunk tests that a caller-configured namer filters
// additional filenames.
func TestScanWithExtraJunk(t *testing.T) {
	root := makeAssets(t)

	table, err := ScanWith(root, namer.New("boom.wav"))
	require.NoError(t, err)

	assert.Equal(t, []string{"theme", "ui-click"}, table.Names())
}

// TestLookup tests the by-name index.
func TestLookup(t *testing.T) {
	root := makeAssets(t)

	table, err := Scan(root)
	require.NoError(t, err)

	rec, ok := table.Lookup("ui-click")
	require.True(t, ok)
	assert.Equal(t, "click.wav", rec.Filename)

	_, ok = table.Lookup("missing")
	assert.False(t, ok)
}

// TestLookupCollision tests that the later record wins the index slot
// while the ordered list keeps both.
func TestLookupCollision(t *testing.T) {
	table := New([]namer.FileRecord{
		{Path: "a/sfx/hit.wav", Filename: "hit.wav", Name: "hit"},
		{Path: "a/music/hit.ogg", Filename: "hit.ogg", Name: "hit"},
	})

	assert.Equal(t, 2, table.Len())
	rec, ok := table.Lookup("hit")
	require.True(t, ok)
	assert.Equal(t, "hit.ogg", rec.Filename)
}

// TestGlob tests doublestar filtering over record paths.
func TestGlob(t *testing.T) {
	root := makeAssets(t)

	table, err := Scan(root)
	require.NoError(t, err)

	matched, err := table.Glob("**/*.wav")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "boom", matched[0].Name)
	assert.Equal(t, "ui-click", matched[1].Name)

	none, err := table.Glob("**/*.mp3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// TestGlobBadPattern tests that an invalid pattern is reported.
func TestGlobBadPattern(t *testing.T) {
	table := New([]namer.FileRecord{{Path: "a/b/c.wav", Name: "c"}})

	_, err := table.Glob("[")
	assert.Error(t, err)
}

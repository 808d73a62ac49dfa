// Package namer derives lookup-friendly asset names from file paths
// discovered under a scan root.
//
// A path like "sounds/sfx/ui/click.wav" scanned with root "sounds" is
// decomposed into a type tag ("sfx", the first segment under the root),
// a local directory ("ui") and a filename ("click.wav"), and collapsed
// into the record name "ui-click": the type tag is stripped, remaining
// directory segments are joined with hyphens, and the extension is
// dropped. Files that do not fit the nested shape are filtered out, not
// reported as errors.
package namer

import (
	"strings"

	"github.com/glimmerkit/assetfs/internal/paths"
	"github.com/glimmerkit/assetfs/internal/strutil"
)

// FileRecord pairs a discovered file path with its synthesized name.
// Records are immutable once created.
type FileRecord struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
	Name     string `json:"name"`
}

// defaultJunk are OS metadata files that never become records.
var defaultJunk = []string{".DS_Store", "Thumbs.db", "desktop.ini"}

// Namer converts file paths into records. The zero value is not usable;
// construct with New.
type Namer struct {
	junk map[string]struct{}
}

// New returns a Namer that drops the built-in OS metadata filenames plus
// any extra junk entries.
func New(extraJunk ...string) *Namer {
	junk := make(map[string]struct{}, len(defaultJunk)+len(extraJunk))
	for _, name := range defaultJunk {
		junk[name] = struct{}{}
	}
	for _, name := range extraJunk {
		junk[name] = struct{}{}
	}
	return &Namer{junk: junk}
}

// Convert derives a FileRecord for each path that fits the expected
// nested-directory shape, preserving input order. Equivalent to
// New().Convert.
func Convert(root string, filePaths []string) []FileRecord {
	return New().Convert(root, filePaths)
}

// Convert derives a FileRecord for each path that fits the expected
// nested-directory shape, preserving input order. Paths are interpreted
// relative to root, which is stripped whether it appears in its literal
// or absolute form.
//
// A path is dropped when it sits directly under the root (no type-tag
// segment) or its filename is a junk entry. Two distinct paths may
// legitimately produce the same name; no uniqueness is enforced.
func (n *Namer) Convert(root string, filePaths []string) []FileRecord {
	records := make([]FileRecord, 0, len(filePaths))
	for _, p := range filePaths {
		rec, ok := n.convertOne(root, p)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func (n *Namer) convertOne(root, path string) (FileRecord, bool) {
	rel := paths.TrimRoot(root, path)
	segs := paths.SplitSegments(rel)

	// Need at least a type tag and a filename; a file directly under
	// the root has no tag and is dropped.
	if len(segs) < 2 {
		return FileRecord{}, false
	}

	filename := segs[len(segs)-1]
	if _, junk := n.junk[filename]; junk {
		return FileRecord{}, false
	}

	// segs[0] is the type tag; everything between it and the filename
	// is the local directory, hyphenated into the name.
	local := segs[1 : len(segs)-1]
	parts := make([]string, 0, len(local)+1)
	parts = append(parts, local...)
	parts = append(parts, strutil.StripExtension(filename))

	return FileRecord{
		Path:     path,
		Filename: filename,
		Name:     strings.Join(parts, "-"),
	}, true
}

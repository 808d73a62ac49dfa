// Package catalog ties traversal and naming together: it scans an asset
// root, keeps every regular file in traversal order, and derives the
// ordered name table used for asset lookup.
package catalog

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/glimmerkit/assetfs/internal/namer"
	"github.com/glimmerkit/assetfs/internal/walker"
)

// Table is an ordered set of file records with a by-name index. When two
// records share a name, the later one wins the index slot; the ordered
// record list keeps both.
type Table struct {
	records []namer.FileRecord
	index   map[string]int
}

// Scan walks root depth-first, keeps regular files in pre-order, and
// converts them into a Table with the default Namer. Scanning the same
// unmodified tree twice yields identical tables.
func Scan(root string) (*Table, error) {
	return ScanWith(root, namer.New())
}

// ScanWith scans root using a caller-configured Namer, typically one
// carrying extra junk entries from a manifest.
func ScanWith(root string, n *namer.Namer) (*Table, error) {
	files, err := walker.Files(root)
	if err != nil {
		return nil, err
	}
	return New(n.Convert(root, files)), nil
}

// New builds a Table over records, preserving their order.
func New(records []namer.FileRecord) *Table {
	t := &Table{
		records: records,
		index:   make(map[string]int, len(records)),
	}
	for i, rec := range records {
		t.index[rec.Name] = i
	}
	return t
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns the records in scan order. The returned slice is shared;
// callers must not mutate it.
func (t *Table) Records() []namer.FileRecord {
	return t.records
}

// Lookup finds a record by its synthesized name.
func (t *Table) Lookup(name string) (namer.FileRecord, bool) {
	i, ok := t.index[name]
	if !ok {
		return namer.FileRecord{}, false
	}
	return t.records[i], true
}

// Names returns every record name in scan order, including duplicates.
func (t *Table) Names() []string {
	names := make([]string, len(t.records))
	for i, rec := range t.records {
		names[i] = rec.Name
	}
	return names
}

// Glob returns the records whose Path matches a doublestar pattern
// (gitignore-style, ** supported), preserving scan order. An invalid
// pattern returns doublestar.ErrBadPattern.
func (t *Table) Glob(pattern string) ([]namer.FileRecord, error) {
	var matched []namer.FileRecord
	for _, rec := range t.records {
		ok, err := doublestar.Match(pattern, rec.Path)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// Package walker implements lazy, depth-first, pre-order traversal of a
// directory subtree.
//
// Traversal is pull-based: the caller drains an Iterator one entry at a
// time and may abandon it at any point. Each level's listing is read only
// when the level is entered, so stopping early never touches the rest of
// the tree and leaves no open handles behind.
package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Sentinel errors returned by Walk and Iterator.Err.
var (
	// ErrInvalidArgument indicates an empty root path.
	ErrInvalidArgument = errors.New("walker: root path is empty")

	// ErrNotFound indicates the root does not exist. It is surfaced
	// rather than yielding an empty sequence, since an empty result is
	// indistinguishable from an existing empty directory.
	ErrNotFound = errors.New("walker: root not found")

	// ErrMetadataUnavailable indicates an entry exists but its metadata
	// could not be read. Traversal aborts when this occurs.
	ErrMetadataUnavailable = errors.New("walker: metadata unavailable")
)

// Entry is a single filesystem entry produced during traversal.
type Entry struct {
	// Path is the entry path: the scan root joined with every segment
	// down to the entry. Relative roots yield relative paths.
	Path string

	// IsDir reports whether the entry is a directory.
	IsDir bool

	// Info carries the entry's metadata.
	Info fs.FileInfo
}

// frame is one pending directory on the traversal stack. Its listing is
// loaded lazily the first time the frame is consulted.
type frame struct {
	dir     string
	entries []fs.DirEntry
	next    int
	loaded  bool
}

// Iterator walks a subtree in pre-order. Create one with Walk. After
// Next returns false, Err distinguishes end-of-walk from failure.
type Iterator struct {
	stack []*frame
	err   error
}

// Walk starts a fresh traversal rooted at root. Exactly one trailing
// separator is stripped from root if present. The root itself is not
// yielded; its children are, each directory immediately followed by its
// subtree, sorted by name within each level.
func Walk(root string) (*Iterator, error) {
	if root == "" {
		return nil, ErrInvalidArgument
	}
	root = trimOneTrailingSeparator(root)

	// Validate the root eagerly so a missing directory surfaces as an
	// error instead of an empty sequence.
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return nil, fmt.Errorf("%w: stat %s: %v", ErrMetadataUnavailable, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidArgument, root)
	}

	return &Iterator{stack: []*frame{{dir: root}}}, nil
}

// Next advances to the next entry in pre-order. It returns false when the
// traversal is exhausted or an error occurred; check Err to tell which.
func (it *Iterator) Next() (Entry, bool) {
	if it.err != nil {
		return Entry{}, false
	}
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		if !top.loaded {
			if err := top.load(); err != nil {
				it.fail(err)
				return Entry{}, false
			}
		}
		if top.next >= len(top.entries) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}

		de := top.entries[top.next]
		top.next++

		full := filepath.Join(top.dir, de.Name())
		info, err := de.Info()
		if err != nil {
			it.fail(fmt.Errorf("%w: %s: %v", ErrMetadataUnavailable, full, err))
			return Entry{}, false
		}

		if de.IsDir() {
			// Pre-order: the directory is yielded now, its subtree on
			// the following pulls.
			it.stack = append(it.stack, &frame{dir: full})
		}
		return Entry{Path: full, IsDir: de.IsDir(), Info: info}, true
	}
	return Entry{}, false
}

// Err returns the error that terminated the traversal, if any.
func (it *Iterator) Err() error {
	return it.err
}

func (it *Iterator) fail(err error) {
	it.err = err
	it.stack = nil
}

func (f *frame) load() error {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return fmt.Errorf("%w: read dir %s: %v", ErrMetadataUnavailable, f.dir, err)
	}
	f.entries = entries
	f.loaded = true
	return nil
}

// Files drains a full traversal of root and returns the paths of every
// regular file in pre-order. Directories and irregular entries (sockets,
// device nodes) are skipped.
func Files(root string) ([]string, error) {
	it, err := Walk(root)
	if err != nil {
		return nil, err
	}
	var files []string
	for {
		entry, ok := it.Next()
		if !ok {
			break
		}
		if entry.IsDir || !entry.Info.Mode().IsRegular() {
			continue
		}
		files = append(files, entry.Path)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return files, nil
}

func trimOneTrailingSeparator(path string) string {
	if len(path) > 1 {
		last := path[len(path)-1]
		if last == '/' || last == '\\' {
			return path[:len(path)-1]
		}
	}
	return path
}

package walker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// Flatten returns the root-relative paths of every regular file under
// root using a parallel walk. It trades the ordering guarantee of Walk
// for speed: results are sorted lexically, not in traversal order, so it
// must not feed the naming pipeline. Symlinks are not followed.
func Flatten(ctx context.Context, root string) ([]string, error) {
	if root == "" {
		return nil, ErrInvalidArgument
	}
	root = trimOneTrailingSeparator(root)
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var (
		mu    sync.Mutex
		files []string
	)
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil {
			// Same policy as the ordered walk: an unreadable entry
			// aborts instead of silently shrinking the result.
			return fmt.Errorf("%w: %s: %v", ErrMetadataUnavailable, p, err)
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return nil
		}
		mu.Lock()
		files = append(files, rel)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

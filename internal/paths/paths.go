// Package paths provides the two conventional filesystem bases used across
// the library: a read-only bundle root for resources shipped with the
// application, and a writable per-user data root.
//
// All other packages resolve caller-supplied paths against one of these
// bases so the rest of the code never concatenates path strings by hand.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Separator is the canonical separator used in derived identifiers and
// relative paths produced by this library. The platform separator is only
// relevant when touching the real filesystem.
const Separator = "/"

// Bases holds the resolved bundle and data roots.
type Bases struct {
	// Bundle is the read-only root for resources shipped with the app.
	Bundle string

	// Data is the writable per-user root.
	Data string
}

// Resolve resolves a relative path against a base directory. Absolute
// paths are cleaned and returned unchanged.
func Resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// InBundle resolves path against the bundle root.
func (b Bases) InBundle(path string) string {
	return Resolve(b.Bundle, path)
}

// InData resolves path against the data root.
func (b Bases) InData(path string) string {
	return Resolve(b.Data, path)
}

// Default returns bases derived from the current process environment:
// the working directory as the bundle root and the OS user config
// directory as the data root.
func Default(appName string) (Bases, error) {
	if err := ValidateAppName(appName); err != nil {
		return Bases{}, err
	}
	bundle, err := os.Getwd()
	if err != nil {
		return Bases{}, fmt.Errorf("resolve bundle root: %w", err)
	}
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return Bases{}, fmt.Errorf("resolve data root: %w", err)
	}
	return Bases{
		Bundle: bundle,
		Data:   filepath.Join(cfgDir, appName),
	}, nil
}

// TrimRoot removes one leading occurrence of root (relative or absolute
// form) plus its trailing separator from path. Returns path unchanged when
// the prefix does not match.
func TrimRoot(root, path string) string {
	for _, prefix := range rootForms(root) {
		if prefix == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(path, prefix+Separator); ok {
			return rest
		}
		if rest, ok := strings.CutPrefix(path, prefix+string(os.PathSeparator)); ok {
			return rest
		}
	}
	return path
}

// rootForms returns the literal root plus its cleaned and absolute
// forms, so prefix stripping works whether the walker produced cleaned
// relative paths (a "./sounds" root yields "sounds/..." children) or
// absolute ones.
func rootForms(root string) []string {
	forms := []string{strings.TrimRight(root, `/\`)}
	if clean := filepath.Clean(forms[0]); clean != forms[0] {
		forms = append(forms, clean)
	}
	if abs, err := filepath.Abs(root); err == nil && abs != forms[0] {
		forms = append(forms, abs)
	}
	return forms
}

// SplitSegments splits a path on both forward and backward slashes,
// discarding empty segments. Both separators are accepted since asset
// manifests authored on Windows may carry backslashes.
func SplitSegments(path string) []string {
	segs := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	return segs
}

// ValidateAppName checks that a name is safe to embed in a data-root path.
func ValidateAppName(name string) error {
	if name == "" {
		return fmt.Errorf("app name cannot be empty")
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("app name cannot be an absolute path")
	}
	if filepath.Clean(name) != name || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("app name contains invalid path components")
	}
	return nil
}

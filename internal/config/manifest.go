package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Manifest describes the asset roots of a project. It is authored by the
// application as assetfs.yaml or assetfs.toml next to the assets.
type Manifest struct {
	// Roots are the directories to scan, relative to the manifest.
	Roots []string `yaml:"roots" toml:"roots"`

	// Junk adds filenames to ignore on top of the built-in OS metadata
	// entries.
	Junk []string `yaml:"junk" toml:"junk"`

	// Output is the file the derived table is written to.
	Output string `yaml:"output" toml:"output"`
}

// LoadManifest parses a manifest file, dispatching on extension: .yaml
// and .yml use the YAML codec, .toml uses TOML.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("manifest %s: unsupported format", path)
	}

	if len(m.Roots) == 0 {
		return nil, fmt.Errorf("manifest %s: no roots declared", path)
	}
	return &m, nil
}

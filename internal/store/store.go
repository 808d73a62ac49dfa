// Package store persists derived name tables as JSON, plain or
// gzip-compressed.
//
// Writes go straight to the target file with no temp-file-and-rename
// step: a crash mid-write can leave a partially written table behind.
// Callers that need durability should keep the previous table until a
// fresh scan replaces it.
package store

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/gzip"

	"github.com/glimmerkit/assetfs/internal/catalog"
	"github.com/glimmerkit/assetfs/internal/namer"
)

// SaveTable writes the table's records to path as indented JSON.
func SaveTable(path string, t *catalog.Table) error {
	data, err := sonic.MarshalIndent(t.Records(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save table %s: %w", path, err)
	}
	return nil
}

// LoadTable reads a table previously written by SaveTable.
func LoadTable(path string) (*catalog.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", path, err)
	}
	return decode(path, data)
}

// SaveTableGzip writes the table's records as gzip-compressed JSON.
func SaveTableGzip(path string, t *catalog.Table) error {
	data, err := sonic.Marshal(t.Records())
	if err != nil {
		return fmt.Errorf("encode table: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save table %s: %w", path, err)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		return fmt.Errorf("save table %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("save table %s: %w", path, err)
	}
	return f.Close()
}

// LoadTableGzip reads a table previously written by SaveTableGzip.
func LoadTableGzip(path string) (*catalog.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", path, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", path, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", path, err)
	}
	return decode(path, data)
}

func decode(path string, data []byte) (*catalog.Table, error) {
	var records []namer.FileRecord
	if err := sonic.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse table %s: %w", path, err)
	}
	return catalog.New(records), nil
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/glimmerkit/assetfs/internal/catalog"
	"github.com/glimmerkit/assetfs/internal/config"
	"github.com/glimmerkit/assetfs/internal/logging"
	"github.com/glimmerkit/assetfs/internal/namer"
	"github.com/glimmerkit/assetfs/internal/store"
)

func main() {
	cfg := config.LoadOrDefault()

	root := flag.String("root", cfg.Scan.Root, "Asset root directory to scan")
	manifest := flag.String("manifest", cfg.Scan.Manifest, "Path to assetfs.yaml or assetfs.toml manifest")
	out := flag.String("out", "", "Output file for the name table (stdout when empty)")
	compress := flag.Bool("gzip", cfg.Scan.Compress, "Write the table gzip-compressed")
	flag.Parse()

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.Named("scan").With(zap.String("scan_id", uuid.NewString()))

	table, output, err := buildTable(*root, *manifest, log)
	if err != nil {
		log.Error("scan failed", zap.Error(err))
		os.Exit(1)
	}
	if *out != "" {
		output = *out
	}

	log.Info("scan complete", zap.Int("records", table.Len()))

	if output == "" {
		data, err := sonic.MarshalIndent(table.Records(), "", "  ")
		if err != nil {
			log.Error("encode failed", zap.Error(err))
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	if *compress {
		err = store.SaveTableGzip(output, table)
	} else {
		err = store.SaveTable(output, table)
	}
	if err != nil {
		log.Error("save failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("table written", zap.String("path", output))
}

// buildTable scans either the single root or, when a manifest is given,
// every root the manifest declares, merging the records in declaration
// order. It returns the table and the manifest's output path, if any.
func buildTable(root, manifestPath string, log *logging.Logger) (*catalog.Table, string, error) {
	if manifestPath == "" {
		table, err := catalog.Scan(root)
		return table, "", err
	}

	m, err := config.LoadManifest(manifestPath)
	if err != nil {
		return nil, "", err
	}

	n := namer.New(m.Junk...)
	var records []namer.FileRecord
	for _, r := range m.Roots {
		t, err := catalog.ScanWith(r, n)
		if err != nil {
			return nil, "", fmt.Errorf("scan %s: %w", r, err)
		}
		log.Debug("root scanned", zap.String("root", r), zap.Int("records", t.Len()))
		records = append(records, t.Records()...)
	}
	return catalog.New(records), m.Output, nil
}

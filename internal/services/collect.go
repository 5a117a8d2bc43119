package services

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"modscan/internal/issue"
)

// Collector runs one inventory pass: scan, locate and parse the mod list,
// build the inventory, derive the report. It either returns a complete
// Collection or an error, never a partial report.
type Collector struct {
	source Source
	logger *log.Logger
}

func NewCollector(source Source, logger *log.Logger) *Collector {
	if logger == nil {
		logger = log.Default()
	}
	return &Collector{source: source, logger: logger}
}

func (collector *Collector) Collect(ctx context.Context, req CollectRequest) (Collection, error) {
	start := time.Now()
	scan, err := collector.source.Scan(ctx, ScanRequest{RootPath: req.RootPath})
	if err != nil {
		return Collection{}, scanError(req.RootPath, err)
	}

	manifest, ok := ManifestFile(scan.Files)
	if !ok {
		return Collection{}, issue.NewErrorContext().
			WithOperation("locate mod list").
			WithResource(scan.RootPath).
			WithSuggestion("Check that --file points at the game's mods folder").
			WithSuggestion("Start the game once so it writes the mod list").
			Wrap(ErrMissingManifest).
			Build()
	}

	data, err := collector.source.ReadFile(manifest.Entry)
	if err != nil {
		return Collection{}, issue.NewErrorContext().
			WithOperation("read mod list").
			WithResource(manifest.Entry.Path).
			Wrap(err).
			Build()
	}
	enabled, err := ParseManifest(data)
	if err != nil {
		return Collection{}, issue.NewErrorContext().
			WithOperation("parse mod list").
			WithResource(manifest.Entry.Path).
			WithSuggestion(`Expected {"mods": [{"name": "...", "enabled": true}]}`).
			WithSuggestion("Let the game regenerate the file by removing it and restarting").
			Wrap(err).
			Build()
	}
	digest, err := ManifestDigest(data)
	if err != nil {
		return Collection{}, fmt.Errorf("digest mod list: %w", err)
	}

	inventory, err := BuildInventory(scan.Files, enabled, req.Build)
	if err != nil {
		return Collection{}, err
	}
	if inventory.Settings == nil {
		collector.logger.Warn("mod settings file not found", "path", scan.RootPath)
	}
	if len(inventory.DuplicateManifests) > 0 {
		collector.logger.Warn("extra mod list entries treated as unrecognized", "count", len(inventory.DuplicateManifests))
	}

	report := BuildReport(inventory)
	collector.logger.Debug("inventory built",
		"packages", report.Summary.Packages,
		"files", len(scan.Files),
		"unrecognized", report.Summary.Unrecognized,
	)

	return Collection{
		RootPath:       scan.RootPath,
		Inventory:      inventory,
		Report:         report,
		ManifestDigest: digest,
		Duration:       time.Since(start),
	}, nil
}

func scanError(root string, err error) error {
	errCtx := issue.NewErrorContext().
		WithOperation("read mods folder").
		WithResource(root)
	switch {
	case isNotExistErr(err):
		errCtx.WithSuggestion("Pass the mods folder explicitly with --file")
	case isPermissionErr(err):
		errCtx.WithSuggestion("Check the folder permissions")
	}
	return errCtx.Wrap(err).Build()
}

package render

import (
	"encoding/json"
	"io"

	"modscan/internal/services"
)

type jsonReport struct {
	Path           string      `json:"path"`
	ManifestDigest string      `json:"manifest_digest"`
	Packages       []jsonRow   `json:"packages"`
	Summary        jsonSummary `json:"summary"`
	Unrecognized   []string    `json:"unrecognized"`
	ManifestOnly   []string    `json:"manifest_only"`
}

type jsonRow struct {
	Name         string   `json:"name"`
	State        string   `json:"state"`
	Enabled      *bool    `json:"enabled"`
	Version      string   `json:"version"`
	VersionCount int      `json:"version_count"`
	Versions     []string `json:"versions"`
	Files        []string `json:"files"`
}

type jsonSummary struct {
	Packages           int  `json:"packages"`
	PackageFiles       int  `json:"package_files"`
	NonPackageFiles    int  `json:"non_package_files"`
	ManifestFound      bool `json:"manifest_found"`
	SettingsFound      bool `json:"settings_found"`
	Unrecognized       int  `json:"unrecognized"`
	Unlisted           int  `json:"unlisted"`
	ManifestOnly       int  `json:"manifest_only"`
	DuplicateManifests int  `json:"duplicate_manifests"`
}

// JSON writes the report with rows in report order. Unlisted packages have
// "enabled": null.
func JSON(w io.Writer, collection services.Collection) error {
	report := collection.Report
	out := jsonReport{
		Path:           collection.RootPath,
		ManifestDigest: collection.ManifestDigest,
		Packages:       make([]jsonRow, 0, len(report.Rows)),
		Unrecognized:   append([]string{}, report.UnrecognizedNames...),
		ManifestOnly:   append([]string{}, report.ManifestOnlyNames...),
		Summary: jsonSummary{
			Packages:           report.Summary.Packages,
			PackageFiles:       report.Summary.PackageFiles,
			NonPackageFiles:    report.Summary.NonPackageFiles,
			ManifestFound:      report.Summary.ManifestFound,
			SettingsFound:      report.Summary.SettingsFound,
			Unrecognized:       report.Summary.Unrecognized,
			Unlisted:           report.Summary.Unlisted,
			ManifestOnly:       report.Summary.ManifestOnly,
			DuplicateManifests: report.Summary.DuplicateManifests,
		},
	}
	for _, row := range report.Rows {
		entry := jsonRow{
			Name:         row.Name,
			State:        row.Enabled.String(),
			Version:      row.Version,
			VersionCount: row.VersionCount,
			Versions:     row.Versions,
			Files:        row.Files,
		}
		if value, listed := row.Enabled.Bool(); listed {
			entry.Enabled = &value
		}
		out.Packages = append(out.Packages, entry)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

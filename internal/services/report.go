package services

import (
	"fmt"
	"sort"

	"modscan/internal/domain"
)

type Row struct {
	Name         string
	Enabled      domain.Enablement
	Version      string
	VersionCount int
	Versions     []string
	Files        []string
}

// Line renders the row as "[x] name version (n versions)".
func (row Row) Line() string {
	unit := "versions"
	if row.VersionCount == 1 {
		unit = "version"
	}
	return fmt.Sprintf("%s %s %s (%d %s)", row.Enabled.Marker(), row.Name, row.Version, row.VersionCount, unit)
}

type Summary struct {
	Packages           int
	PackageFiles       int
	NonPackageFiles    int
	ManifestFound      bool
	SettingsFound      bool
	Unrecognized       int
	Unlisted           int
	ManifestOnly       int
	DuplicateManifests int
}

type Report struct {
	Rows              []Row
	Summary           Summary
	UnrecognizedNames []string
	ManifestOnlyNames []string
}

func BuildReport(inventory domain.Inventory) Report {
	rows := make([]Row, 0, len(inventory.Groups))
	unlisted := 0
	for _, group := range inventory.Groups {
		row := Row{
			Name:         group.Name,
			Enabled:      group.Enabled,
			Version:      group.Latest().VersionString(),
			VersionCount: group.DistinctVersions(),
			Versions:     make([]string, 0, len(group.Versions)),
			Files:        make([]string, 0, len(group.Files)),
		}
		for _, pkg := range group.Versions {
			row.Versions = append(row.Versions, pkg.VersionString())
		}
		for _, file := range group.Files {
			row.Files = append(row.Files, file.Entry.Name)
		}
		if group.Enabled == domain.Unlisted {
			unlisted++
		}
		rows = append(rows, row)
	}
	SortRows(rows, domain.SortByState)

	unrecognized := make([]string, 0, len(inventory.Unrecognized))
	for _, file := range inventory.Unrecognized {
		unrecognized = append(unrecognized, file.Entry.Name)
	}
	manifestOnly := inventory.ManifestOnly()

	nonPackage := 1 + len(inventory.Unrecognized)
	if inventory.Settings != nil {
		nonPackage++
	}

	return Report{
		Rows: rows,
		Summary: Summary{
			Packages:           len(rows),
			PackageFiles:       inventory.PackageFiles(),
			NonPackageFiles:    nonPackage,
			ManifestFound:      true,
			SettingsFound:      inventory.Settings != nil,
			Unrecognized:       len(inventory.Unrecognized),
			Unlisted:           unlisted,
			ManifestOnly:       len(manifestOnly),
			DuplicateManifests: len(inventory.DuplicateManifests),
		},
		UnrecognizedNames: unrecognized,
		ManifestOnlyNames: manifestOnly,
	}
}

func (report Report) Lines() []string {
	lines := make([]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		lines = append(lines, row.Line())
	}
	return lines
}

// SortRows orders rows in place. SortByState puts enabled packages first,
// then disabled, then unlisted, ties broken by name in byte order.
func SortRows(rows []Row, mode domain.SortMode) {
	sort.SliceStable(rows, func(i, j int) bool {
		left, right := rows[i], rows[j]
		switch mode {
		case domain.SortByName:
			return left.Name < right.Name
		case domain.SortByVersions:
			if left.VersionCount != right.VersionCount {
				return left.VersionCount > right.VersionCount
			}
			return left.Name < right.Name
		default:
			if left.Enabled != right.Enabled {
				return left.Enabled > right.Enabled
			}
			return left.Name < right.Name
		}
	})
}

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"modscan/internal/services"
)

// Text writes one aligned row per package group followed by the summary
// counters.
func Text(w io.Writer, collection services.Collection, theme string) error {
	styles := StylesFor(theme)
	report := collection.Report

	nameWidth, versionWidth := len("NAME"), len("VERSION")
	for _, row := range report.Rows {
		nameWidth = maxInt(nameWidth, lipgloss.Width(row.Name))
		versionWidth = maxInt(versionWidth, lipgloss.Width(row.Version))
	}

	lines := make([]string, 0, len(report.Rows)+12)
	lines = append(lines, styles.Header.Render(fmt.Sprintf("Mods in %s", collection.RootPath)), "")
	lines = append(lines, styles.Muted.Render(fmt.Sprintf("    %-*s  %-*s  %s", nameWidth, "NAME", versionWidth, "VERSION", "COUNT")))
	for _, row := range report.Rows {
		line := fmt.Sprintf("%s %-*s  %-*s  %d", row.Enabled.Marker(), nameWidth, row.Name, versionWidth, row.Version, row.VersionCount)
		lines = append(lines, styles.ForState(row.Enabled).Render(line))
	}
	if len(report.Rows) == 0 {
		lines = append(lines, styles.Muted.Render("    no packages found"))
	}
	lines = append(lines, "")
	lines = append(lines, SummaryLines(report.Summary)...)
	if report.Summary.Unrecognized > 0 {
		lines = append(lines, styles.Warn.Render("Unrecognized: "+strings.Join(report.UnrecognizedNames, ", ")))
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func SummaryLines(summary services.Summary) []string {
	return []string{
		fmt.Sprintf("Packages: %d (%d files, %d unlisted)", summary.Packages, summary.PackageFiles, summary.Unlisted),
		fmt.Sprintf("Other files: %d (%d unrecognized)", summary.NonPackageFiles, summary.Unrecognized),
		fmt.Sprintf("Mod list: %s  Settings: %s", foundLabel(summary.ManifestFound), foundLabel(summary.SettingsFound)),
		fmt.Sprintf("Listed without files: %d", summary.ManifestOnly),
	}
}

func foundLabel(found bool) string {
	if found {
		return "found"
	}
	return "missing"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

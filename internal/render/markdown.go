package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"modscan/internal/services"
)

// Markdown builds a GitHub-flavoured table of the report.
func Markdown(collection services.Collection) string {
	var doc strings.Builder
	report := collection.Report
	fmt.Fprintf(&doc, "# Mods in `%s`\n\n", collection.RootPath)
	doc.WriteString("| State | Name | Version | Versions |\n")
	doc.WriteString("|---|---|---|---|\n")
	for _, row := range report.Rows {
		fmt.Fprintf(&doc, "| %s | %s | %s | %d |\n", row.Enabled, escapeCell(row.Name), row.Version, row.VersionCount)
	}
	doc.WriteString("\n## Summary\n\n")
	for _, line := range SummaryLines(report.Summary) {
		fmt.Fprintf(&doc, "- %s\n", line)
	}
	if len(report.UnrecognizedNames) > 0 {
		doc.WriteString("\n## Unrecognized\n\n")
		for _, name := range report.UnrecognizedNames {
			fmt.Fprintf(&doc, "- `%s`\n", name)
		}
	}
	return doc.String()
}

// RenderMarkdown writes the markdown report styled for the terminal, or raw
// when raw is set.
func RenderMarkdown(w io.Writer, collection services.Collection, theme string, width int, raw bool) error {
	content := Markdown(collection)
	if raw {
		_, err := io.WriteString(w, content)
		return err
	}
	options := []glamour.TermRendererOption{glamour.WithStandardStyle(theme)}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return err
	}
	styled, err := renderer.Render(content)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, styled)
	return err
}

func escapeCell(value string) string {
	return strings.ReplaceAll(value, "|", `\|`)
}

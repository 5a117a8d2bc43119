package render

import (
	"encoding/json"
	"io"

	"modscan/internal/services"
)

type exportList struct {
	Mods []exportEntry `json:"mods"`
}

type exportEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Enabled bool   `json:"enabled"`
}

// Export writes the installed packages in mod-list.json shape, extended
// with the representative version. Unlisted packages export as disabled,
// which is how the game treats them.
func Export(w io.Writer, report services.Report) error {
	list := exportList{Mods: make([]exportEntry, 0, len(report.Rows))}
	for _, row := range report.Rows {
		enabled, _ := row.Enabled.Bool()
		list.Mods = append(list.Mods, exportEntry{
			Name:    row.Name,
			Version: row.Version,
			Enabled: enabled,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(list)
}

package config

import "github.com/spf13/pflag"

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"file":    "path",
	"format":  "format",
	"theme":   "theme",
	"sort":    "sort_mode",
	"workers": "workers",
	"verbose": "verbose",
}

func RegisterFlags(flags *pflag.FlagSet, base Config) {
	flags.StringP("file", "f", base.Path, "File path of the mods folder")
	flags.String("format", string(base.Format), "Report format: text, json or markdown")
	flags.String("theme", base.Theme, "Color theme: dark or light")
	flags.String("sort", string(base.SortMode), "Initial browser order: state, name or versions")
	flags.Int("workers", base.Workers, "Classification workers (0 = one per CPU)")
	flags.BoolP("verbose", "v", base.Verbose, "Enable debug logging")
}

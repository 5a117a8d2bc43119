package config

import (
	"errors"
	"fmt"
	"strings"

	"modscan/internal/domain"
	"modscan/internal/services"
)

var (
	ErrInvalidFormat = errors.New("invalid output format")
	ErrInvalidNames  = errors.New("invalid reserved file names")
)

type Config struct {
	Path             string            `json:"path" mapstructure:"path"`
	Format           domain.Format     `json:"format" mapstructure:"format"`
	Theme            string            `json:"theme" mapstructure:"theme"`
	SortMode         domain.SortMode   `json:"sort_mode" mapstructure:"sort_mode"`
	ManifestName     string            `json:"manifest_name" mapstructure:"manifest_name"`
	SettingsName     string            `json:"settings_name" mapstructure:"settings_name"`
	ExcludedPackages []string          `json:"excluded_packages" mapstructure:"excluded_packages"`
	Workers          int               `json:"workers" mapstructure:"workers"`
	Verbose          bool              `json:"verbose" mapstructure:"verbose"`
	KeyBindings      map[string]string `json:"key_bindings" mapstructure:"key_bindings"`
}

func DefaultConfig() Config {
	return Config{
		Path:             "",
		Format:           domain.FormatText,
		Theme:            "dark",
		SortMode:         domain.SortByState,
		ManifestName:     services.DefaultManifestName,
		SettingsName:     services.DefaultSettingsName,
		ExcludedPackages: []string{services.BasePackage},
		Workers:          0,
		Verbose:          false,
		KeyBindings:      map[string]string{},
	}
}

func (config Config) ClassifierNames() services.ClassifierNames {
	return services.ClassifierNames{
		Manifest: config.ManifestName,
		Settings: config.SettingsName,
	}
}

func (config Config) BuildOptions() services.BuildOptions {
	return services.BuildOptions{
		ExcludedPackages: append([]string(nil), config.ExcludedPackages...),
	}
}

// Validate rejects values that would make the run meaningless. Display
// preferences fall back to defaults instead.
func (config Config) Validate() error {
	switch config.Format {
	case domain.FormatText, domain.FormatJSON, domain.FormatMarkdown:
	default:
		return fmt.Errorf("%w: %q (want text, json or markdown)", ErrInvalidFormat, config.Format)
	}
	manifest := strings.TrimSpace(config.ManifestName)
	settings := strings.TrimSpace(config.SettingsName)
	if manifest == "" || settings == "" {
		return fmt.Errorf("%w: manifest and settings names must be set", ErrInvalidNames)
	}
	if manifest == settings {
		return fmt.Errorf("%w: manifest and settings share the name %q", ErrInvalidNames, manifest)
	}
	return nil
}

func normalize(config Config) Config {
	config.Format = domain.Format(strings.ToLower(string(config.Format)))
	config.SortMode = domainSortMode(string(config.SortMode), domain.SortByState)
	switch strings.ToLower(config.Theme) {
	case "dark", "light":
		config.Theme = strings.ToLower(config.Theme)
	default:
		config.Theme = "dark"
	}
	if config.KeyBindings == nil {
		config.KeyBindings = map[string]string{}
	}
	if config.Workers < 0 {
		config.Workers = 0
	}
	return config
}

func domainSortMode(value string, fallback domain.SortMode) domain.SortMode {
	switch domain.SortMode(value) {
	case domain.SortByState, domain.SortByName, domain.SortByVersions:
		return domain.SortMode(value)
	default:
		return fallback
	}
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configDirName  = "modscan"
	configFileName = "config.json"
	envPrefix      = "MODSCAN"
)

type LoadOptions struct {
	// ConfigFile overrides the default location. It must exist.
	ConfigFile string
	// Flags, when set, override file and environment values for the flags
	// the user actually passed.
	Flags *pflag.FlagSet
}

func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

// LoadConfig layers flags over MODSCAN_* variables over the config file over
// DefaultConfig. A missing default config file is not an error.
func LoadConfig(opts LoadOptions) (Config, string, error) {
	defaults := DefaultConfig()
	v := viper.New()
	v.SetDefault("path", defaults.Path)
	v.SetDefault("format", string(defaults.Format))
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("sort_mode", string(defaults.SortMode))
	v.SetDefault("manifest_name", defaults.ManifestName)
	v.SetDefault("settings_name", defaults.SettingsName)
	v.SetDefault("excluded_packages", defaults.ExcludedPackages)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("key_bindings", defaults.KeyBindings)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	resolved := opts.ConfigFile
	if resolved != "" {
		if !fileExists(resolved) {
			return defaults, resolved, fmt.Errorf("config file not found: %s", resolved)
		}
	} else if path, err := ConfigPath(); err == nil && fileExists(path) {
		resolved = path
	}
	if resolved != "" {
		v.SetConfigFile(resolved)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return defaults, resolved, fmt.Errorf("read config %s: %w", resolved, err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return defaults, resolved, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return defaults, resolved, fmt.Errorf("decode config: %w", err)
	}
	config = normalize(config)
	if err := config.Validate(); err != nil {
		return config, resolved, err
	}
	return config, resolved, nil
}

func SaveConfig(config Config, path string) error {
	if path == "" {
		defaultPath, err := ConfigPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

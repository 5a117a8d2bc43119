package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

var ErrNoDefaultFolder = errors.New("no default mods folder for this platform")

// DefaultModsFolder returns where the game keeps mods on this platform.
func DefaultModsFolder() (string, error) {
	return modsFolderFor(runtime.GOOS, os.UserHomeDir, os.UserConfigDir)
}

func modsFolderFor(goos string, home, configDir func() (string, error)) (string, error) {
	switch goos {
	case "linux":
		base, err := home()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, ".factorio", "mods"), nil
	case "darwin":
		base, err := configDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, "factorio", "mods"), nil
	case "windows":
		base, err := configDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, "Factorio", "mods"), nil
	default:
		return "", ErrNoDefaultFolder
	}
}

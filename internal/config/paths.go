package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// AppName names the config directory and default files.
const AppName = "assessctl"

// Dir returns the assessctl config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/assessctl; on macOS
// to ~/Library/Application Support/assessctl; and on Windows to %AppData%/assessctl.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, AppName), nil
}

// Path returns the default config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

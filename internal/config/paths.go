package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the arcctl config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/arcctl; on macOS
// to ~/Library/Application Support/arcctl; and on Windows to %AppData%/arcctl.
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
	return filepath.Join(base, "arcctl"), nil
}

// DotDir returns ~/.arcctl, the directory holding user-editable files such
// as channel.yaml.
func DotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", errors.New("cannot determine user home directory")
	}
	return filepath.Join(home, ".arcctl"), nil
}

// Package prefs holds the editor's own preference file, separate from the
// WezTerm configuration it edits. The file is small and optional; a missing
// file means defaults.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const fileName = "weztui.toml"

// Prefs are the editor's persistent settings.
type Prefs struct {
	// DefaultPanel is the panel shown on startup when none is given on
	// the command line.
	DefaultPanel string `toml:"default_panel"`
	// BackupOnSave keeps a .bak copy of the previous config on save.
	BackupOnSave bool `toml:"backup_on_save"`
	// WatchConfig reloads the model when the file changes on disk and
	// there are no unsaved edits.
	WatchConfig bool `toml:"watch_config"`
}

// Default returns the out-of-the-box preferences.
func Default() Prefs {
	return Prefs{
		DefaultPanel: "themes",
		BackupOnSave: true,
		WatchConfig:  true,
	}
}

// Path returns the preference file location, creating parent directories.
func Path() (string, error) {
	return xdg.ConfigFile(filepath.Join("weztui", fileName))
}

// Load reads the preference file. A missing file yields defaults; a
// malformed file is an error so a typo does not silently reset everything.
func Load() (Prefs, error) {
	p := Default()
	path, err := Path()
	if err != nil {
		return p, fmt.Errorf("resolve prefs path: %w", err)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read prefs: %w", err)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

// Save writes the preference file.
func Save(p Prefs) error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// Package store locates, loads and saves the wezterm.lua configuration on
// disk. Path resolution follows WezTerm's own search order so the editor
// always operates on the file the terminal will actually read.
package store

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

// EnvConfigFile mirrors the environment override WezTerm honors.
const EnvConfigFile = "WEZTERM_CONFIG_FILE"

const configFileName = "wezterm.lua"

// ResolveDir returns the configuration directory. The override, when
// non-empty, wins unconditionally. Otherwise: the parent of
// $WEZTERM_CONFIG_FILE if that directory exists, then the first existing
// candidate in WezTerm's search order, then the default location, created on
// demand.
func ResolveDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if env := os.Getenv(EnvConfigFile); env != "" {
		parent := filepath.Dir(env)
		if dirExists(parent) {
			return parent, nil
		}
	}

	for _, candidate := range dirCandidates() {
		if dirExists(candidate) {
			return candidate, nil
		}
	}

	def := filepath.Join(xdg.ConfigHome, "wezterm")
	if err := os.MkdirAll(def, 0o755); err != nil {
		return "", err
	}
	return def, nil
}

// dirCandidates lists config directories in WezTerm's search order.
// xdg.ConfigHome already collapses $XDG_CONFIG_HOME and ~/.config.
func dirCandidates() []string {
	candidates := []string{filepath.Join(xdg.ConfigHome, "wezterm")}
	if runtime.GOOS == "windows" {
		candidates = append(candidates, filepath.Join(xdg.Home, ".wezterm"))
	}
	return candidates
}

// ResolveFile returns the path of the config file to edit. The file does not
// need to exist: the path names where a save will land.
func ResolveFile(dirOverride string) (string, error) {
	if env := os.Getenv(EnvConfigFile); env != "" && dirOverride == "" {
		if fileExists(env) {
			return env, nil
		}
	}

	dir, err := ResolveDir(dirOverride)
	if err != nil {
		return "", err
	}
	standard := filepath.Join(dir, configFileName)
	if fileExists(standard) {
		return standard, nil
	}

	// WezTerm also reads a bare ~/.wezterm.lua.
	if dirOverride == "" {
		legacy := filepath.Join(xdg.Home, ".wezterm.lua")
		if fileExists(legacy) {
			return legacy, nil
		}
	}

	return standard, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

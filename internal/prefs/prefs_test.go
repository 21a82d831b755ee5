package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func setTestConfigHome(t *testing.T) string {
	t.Helper()
	t.Cleanup(xdg.Reload)
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()
	return home
}

func TestLoadMissingGivesDefaults(t *testing.T) {
	setTestConfigHome(t)
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p != Default() {
		t.Errorf("Load = %+v, want defaults", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	setTestConfigHome(t)
	want := Prefs{DefaultPanel: "fonts", BackupOnSave: false, WatchConfig: true}
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestLoadMalformed(t *testing.T) {
	home := setTestConfigHome(t)
	dir := filepath.Join(home, "weztui")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "weztui.toml"), []byte("default_panel = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load()
	if err == nil {
		t.Error("malformed prefs should error")
	}
	if p != Default() {
		t.Errorf("malformed prefs should fall back to defaults, got %+v", p)
	}
}

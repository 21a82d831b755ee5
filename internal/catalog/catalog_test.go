package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSchemesNonEmptyAndOwned(t *testing.T) {
	schemes := Schemes()
	if len(schemes) < 100 {
		t.Errorf("Schemes() returned %d entries, want at least 100", len(schemes))
	}
	schemes[0] = "mutated"
	if Schemes()[0] == "mutated" {
		t.Error("caller mutation leaked into the catalog")
	}
}

func TestFontsNonEmptyAndOwned(t *testing.T) {
	fonts := Fonts()
	if len(fonts) < 90 {
		t.Errorf("Fonts() returned %d entries, want at least 90", len(fonts))
	}
	fonts[0] = "mutated"
	if Fonts()[0] == "mutated" {
		t.Error("caller mutation leaked into the catalog")
	}
}

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.JPG", "notes.txt", "c.webp"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	got := ListImages(dir)
	want := []string{"a.JPG", "b.png", "c.webp"}
	if len(got) != len(want) {
		t.Fatalf("ListImages = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListImages[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if imgs := ListImages(filepath.Join(dir, "missing")); imgs != nil {
		t.Errorf("missing dir should list nothing, got %v", imgs)
	}
}

package interchange

import (
	"errors"
	"testing"

	"github.com/dshills/weztui/internal/config/schema"
)

func TestExportImportIdentity(t *testing.T) {
	cfg := schema.DefaultConfig()
	cfg.SchemeName = "Tokyo Night"
	cfg.Fonts.Family = "Victor Mono"
	cfg.Fonts.Weight = schema.WeightDemiBold
	cfg.Window.BackgroundOpacity = 0.85
	cfg.Backdrop.Images = []string{"one.png"}
	cfg.Keybindings.Panes.ClosePane.Enabled = false

	data, err := Export(cfg)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	got, err := Import(data)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !got.Equal(cfg) {
		t.Error("imported config differs from exported config")
	}
}

func TestImportInvalidJSON(t *testing.T) {
	if _, err := Import([]byte("{not json")); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("err = %v, want ErrInvalidJSON", err)
	}
}

func TestImportUnknownField(t *testing.T) {
	if _, err := Import([]byte(`{"fnots": {}}`)); err == nil {
		t.Error("unknown top-level field should be rejected")
	}
}

func TestImportPartialKeepsDefaults(t *testing.T) {
	got, err := Import([]byte(`{"fonts": {"family": "Hack", "size": 11}}`))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if got.Fonts.Family != "Hack" || got.Fonts.Size != 11 {
		t.Errorf("Fonts = %+v, want Hack/11", got.Fonts)
	}
	if got.Cursor.BlinkRate != schema.DefaultCursorSettings().BlinkRate {
		t.Error("untouched sections should keep defaults")
	}
}

func TestDescribe(t *testing.T) {
	cfg := schema.DefaultConfig()
	cfg.SchemeName = "Nord"
	data, err := Export(cfg)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	scheme, font, ok := Describe(data)
	if !ok || scheme != "Nord" || font != cfg.Fonts.Family {
		t.Errorf("Describe = %q %q %t", scheme, font, ok)
	}
	if _, _, ok := Describe([]byte("nope{")); ok {
		t.Error("Describe should reject invalid JSON")
	}
}

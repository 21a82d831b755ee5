package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/weztui/internal/config/schema"
	"github.com/dshills/weztui/internal/config/store"
)

type fakeSaver struct {
	calls int
	err   error
	saved *schema.Config
}

func (f *fakeSaver) Save(cfg *schema.Config, backup bool) (*store.SaveResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.saved = cfg.Clone()
	return &store.SaveResult{}, nil
}

func newTestEditor(t *testing.T, panel Panel) (*Editor, *fakeSaver) {
	t.Helper()
	saver := &fakeSaver{}
	e := New(schema.DefaultConfig(), saver, Options{
		InitialPanel: panel,
		Themes:       []string{"Catppuccin Mocha", "Dracula", "Gruvbox Dark", "Nord", "Tokyo Night"},
		Fonts:        []string{"Fira Code", "Hack", "JetBrains Mono", "Monaspace Neon"},
	})
	return e, saver
}

func press(e *Editor, keys ...Key) {
	for _, k := range keys {
		e.HandleKey(k)
	}
}

func typeText(e *Editor, s string) {
	for _, r := range s {
		e.HandleKey(Rune(r))
	}
}

func TestFieldIndexStaysInBounds(t *testing.T) {
	e, _ := newTestEditor(t, PanelCursor)

	if e.FieldIndex() != 0 {
		t.Fatalf("initial field index = %d, want 0", e.FieldIndex())
	}
	// Up from the sidebar must not go negative.
	press(e, Key{Kind: KeyUp})
	if e.FieldIndex() != 0 {
		t.Errorf("field index after Up from sidebar = %d, want 0", e.FieldIndex())
	}

	press(e, Key{Kind: KeyEnter})
	if e.FieldIndex() != 1 {
		t.Fatalf("field index after Enter = %d, want 1", e.FieldIndex())
	}
	// Down past the last field clamps.
	for i := 0; i < 20; i++ {
		press(e, Key{Kind: KeyDown})
	}
	if got, want := e.FieldIndex(), e.FieldCount(); got != want {
		t.Errorf("field index after repeated Down = %d, want %d", got, want)
	}
}

func TestTabWrapsAround(t *testing.T) {
	e, _ := newTestEditor(t, PanelGPU)
	press(e, Key{Kind: KeyEnter}) // field 1

	count := e.FieldCount()
	for i := 0; i < count-1; i++ {
		press(e, Key{Kind: KeyTab})
	}
	if e.FieldIndex() != count {
		t.Fatalf("field index after %d Tabs = %d, want %d", count-1, e.FieldIndex(), count)
	}
	press(e, Key{Kind: KeyTab})
	if e.FieldIndex() != 1 {
		t.Errorf("Tab from last field = %d, want 1", e.FieldIndex())
	}
	press(e, Key{Kind: KeyBackTab})
	if e.FieldIndex() != count {
		t.Errorf("Shift-Tab from first field = %d, want %d", e.FieldIndex(), count)
	}
}

func TestSidebarNavigationChangesPanel(t *testing.T) {
	e, _ := newTestEditor(t, PanelThemes)

	press(e, Key{Kind: KeyDown})
	if e.Panel() != PanelColors {
		t.Errorf("panel after Down = %v, want Colors", e.Panel())
	}
	press(e, Key{Kind: KeyUp})
	if e.Panel() != PanelThemes {
		t.Errorf("panel after Up = %v, want Themes", e.Panel())
	}
	// Up at the top stays put.
	press(e, Key{Kind: KeyUp})
	if e.Panel() != PanelThemes {
		t.Errorf("panel after Up at top = %v, want Themes", e.Panel())
	}
}

func TestThemeSelectorApply(t *testing.T) {
	e, _ := newTestEditor(t, PanelThemes)

	press(e, Key{Kind: KeyEnter}) // enter the list
	press(e, Rune('j'), Key{Kind: KeyEnter})

	if got := e.Config().SchemeName; got != "Dracula" {
		t.Errorf("scheme = %q, want Dracula", got)
	}
	if !e.Dirty() {
		t.Error("applying a theme should mark the config dirty")
	}
	if !strings.Contains(e.Status(), "Dracula") {
		t.Errorf("status = %q, want it to mention the theme", e.Status())
	}
}

func TestThemeFilterIsLiveAndResetsIndex(t *testing.T) {
	e, _ := newTestEditor(t, PanelThemes)
	press(e, Key{Kind: KeyEnter})
	press(e, Rune('j'), Rune('j'))
	if e.Themes().Index() != 2 {
		t.Fatalf("selector index = %d, want 2", e.Themes().Index())
	}

	press(e, Rune('/'))
	if e.Mode() != ModeEditing {
		t.Fatalf("mode after / = %v, want Editing", e.Mode())
	}
	typeText(e, "nor")
	if got := e.Themes().Filtered(); len(got) != 1 || got[0] != "Nord" {
		t.Errorf("filtered = %v, want [Nord]", got)
	}
	if e.Themes().Index() != 0 {
		t.Errorf("index after filter change = %d, want 0", e.Themes().Index())
	}

	// Backspace re-widens the list.
	press(e, Key{Kind: KeyBackspace}, Key{Kind: KeyBackspace}, Key{Kind: KeyBackspace})
	if got := len(e.Themes().Filtered()); got != 5 {
		t.Errorf("filtered after clearing = %d items, want 5", got)
	}

	press(e, Key{Kind: KeyEnter})
	if e.Mode() != ModeNormal {
		t.Errorf("mode after Enter = %v, want Normal", e.Mode())
	}
}

func TestFontFamilyOpensBrowser(t *testing.T) {
	e, _ := newTestEditor(t, PanelFonts)

	press(e, Key{Kind: KeyEnter}) // field 1: Family
	press(e, Key{Kind: KeyEnter}) // opens the browser
	if e.FieldIndex() != 6 {
		t.Fatalf("field index = %d, want 6 (font browser)", e.FieldIndex())
	}

	press(e, Rune('j'), Rune('j'), Key{Kind: KeyEnter})
	if got := e.Config().Fonts.Family; got != "JetBrains Mono" {
		t.Errorf("family = %q, want JetBrains Mono", got)
	}
	if !e.Dirty() {
		t.Error("picking a font should mark the config dirty")
	}

	// h from the browser returns to the Family field, not the sidebar.
	press(e, Rune('h'))
	if e.FieldIndex() != 1 {
		t.Errorf("field index after h = %d, want 1", e.FieldIndex())
	}
}

func TestEditCommitAndDiscard(t *testing.T) {
	e, _ := newTestEditor(t, PanelFonts)
	press(e, Key{Kind: KeyEnter}, Key{Kind: KeyTab}) // field 2: Size
	press(e, Key{Kind: KeyEnter})
	if e.Mode() != ModeEditing {
		t.Fatalf("mode = %v, want Editing", e.Mode())
	}
	if e.Buffer() == "" {
		t.Error("edit buffer should be seeded with the current value")
	}

	// Discard leaves the value alone.
	before := e.Config().Fonts.Size
	press(e, Key{Kind: KeyEsc})
	if e.Config().Fonts.Size != before || e.Dirty() {
		t.Error("Esc should discard the edit")
	}

	// Commit applies it.
	press(e, Key{Kind: KeyEnter})
	for range e.Buffer() {
		press(e, Key{Kind: KeyBackspace})
	}
	typeText(e, "16.5")
	press(e, Key{Kind: KeyEnter})
	if got := e.Config().Fonts.Size; got != 16.5 {
		t.Errorf("size = %v, want 16.5", got)
	}
	if !e.Dirty() {
		t.Error("committed edit should mark the config dirty")
	}
}

func TestEditRejectsInvalidValue(t *testing.T) {
	tests := []struct {
		name  string
		panel Panel
		field int
		input string
	}{
		{"bad color", PanelColors, 1, "not-a-color"},
		{"bad number", PanelFonts, 2, "huge"},
		{"bad weight", PanelFonts, 3, "Heavy-ish"},
		{"bad enum", PanelCursor, 1, "Wavy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEditor(t, tt.panel)
			press(e, Key{Kind: KeyEnter})
			for e.FieldIndex() < tt.field {
				press(e, Key{Kind: KeyTab})
			}
			before := e.Config().Clone()
			press(e, Key{Kind: KeyEnter})
			for range e.Buffer() {
				press(e, Key{Kind: KeyBackspace})
			}
			typeText(e, tt.input)
			press(e, Key{Kind: KeyEnter})

			if !e.Config().Equal(before) {
				t.Error("invalid input should not change the config")
			}
			if e.Dirty() {
				t.Error("invalid input should not mark the config dirty")
			}
			if e.Status() == "" {
				t.Error("invalid input should leave an error in the status line")
			}
		})
	}
}

func TestKeybindingToggles(t *testing.T) {
	e, _ := newTestEditor(t, PanelKeybindings)
	press(e, Key{Kind: KeyEnter})

	before := e.Config().Keybindings.CustomCommands.SettingsTUI
	press(e, Key{Kind: KeyEnter})
	if got := e.Config().Keybindings.CustomCommands.SettingsTUI; got == before {
		t.Error("Enter should flip the focused toggle")
	}
	if !e.Dirty() {
		t.Error("toggling should mark the config dirty")
	}
	if e.Status() == "" {
		t.Error("toggling should report the new state in the status line")
	}

	// Last toggle is the leader key.
	for e.FieldIndex() < e.FieldCount() {
		press(e, Key{Kind: KeyDown})
	}
	leader := e.Config().Keybindings.Leader.Enabled
	press(e, Key{Kind: KeyEnter})
	if e.Config().Keybindings.Leader.Enabled == leader {
		t.Error("Enter on the last field should flip the leader toggle")
	}
}

func TestSaveClearsDirty(t *testing.T) {
	e, saver := newTestEditor(t, PanelThemes)
	press(e, Key{Kind: KeyEnter}, Key{Kind: KeyEnter}) // apply first theme
	if !e.Dirty() {
		t.Fatal("precondition: config should be dirty")
	}

	press(e, Key{Kind: KeyCtrlS})
	if saver.calls != 1 {
		t.Fatalf("saver called %d times, want 1", saver.calls)
	}
	if e.Dirty() {
		t.Error("successful save should clear the dirty flag")
	}
	if !strings.Contains(e.Status(), "saved") {
		t.Errorf("status = %q, want a save confirmation", e.Status())
	}
	if saver.saved.SchemeName != e.Config().SchemeName {
		t.Error("saver should receive the edited config")
	}
}

func TestFailedSaveKeepsDirty(t *testing.T) {
	e, saver := newTestEditor(t, PanelThemes)
	saver.err = errors.New("disk full")
	press(e, Key{Kind: KeyEnter}, Key{Kind: KeyEnter})

	press(e, Key{Kind: KeyCtrlS})
	if !e.Dirty() {
		t.Error("failed save must keep the dirty flag")
	}
	if !strings.Contains(e.Status(), "disk full") {
		t.Errorf("status = %q, want the save error", e.Status())
	}
}

func TestQuitConfirmation(t *testing.T) {
	t.Run("clean quits immediately", func(t *testing.T) {
		e, _ := newTestEditor(t, PanelThemes)
		press(e, Rune('q'))
		if !e.ShouldQuit() {
			t.Error("q with no edits should quit")
		}
	})

	t.Run("dirty asks first", func(t *testing.T) {
		e, _ := newTestEditor(t, PanelThemes)
		press(e, Key{Kind: KeyEnter}, Key{Kind: KeyEnter}, Rune('q'))
		if e.ShouldQuit() {
			t.Fatal("q with edits should not quit outright")
		}
		if e.Mode() != ModeConfirm {
			t.Fatalf("mode = %v, want Confirm", e.Mode())
		}

		press(e, Rune('n'))
		if e.Mode() != ModeNormal || e.ShouldQuit() {
			t.Error("n should return to normal mode")
		}

		press(e, Rune('q'), Rune('y'))
		if !e.ShouldQuit() {
			t.Error("y should quit without saving")
		}
	})

	t.Run("s saves then quits", func(t *testing.T) {
		e, saver := newTestEditor(t, PanelThemes)
		press(e, Key{Kind: KeyEnter}, Key{Kind: KeyEnter}, Rune('q'), Rune('s'))
		if saver.calls != 1 {
			t.Errorf("saver called %d times, want 1", saver.calls)
		}
		if !e.ShouldQuit() {
			t.Error("s should quit after saving")
		}
	})
}

func TestHelpOverlay(t *testing.T) {
	e, _ := newTestEditor(t, PanelThemes)
	press(e, Rune('?'))
	if e.Mode() != ModeHelp {
		t.Fatalf("mode = %v, want Help", e.Mode())
	}
	// Navigation keys are inert while help is up.
	press(e, Rune('j'))
	if e.Panel() != PanelThemes {
		t.Error("j should not navigate while help is shown")
	}
	press(e, Key{Kind: KeyEsc})
	if e.Mode() != ModeNormal {
		t.Errorf("mode after Esc = %v, want Normal", e.Mode())
	}
}

func TestReloadRefusedWhenDirty(t *testing.T) {
	e, _ := newTestEditor(t, PanelThemes)
	fresh := schema.DefaultConfig()
	fresh.SchemeName = "Nord"

	if !e.Reload(fresh) {
		t.Error("clean editor should accept a reload")
	}
	if e.Config().SchemeName != "Nord" {
		t.Error("reload should swap in the new config")
	}

	press(e, Key{Kind: KeyEnter}, Rune('j'), Key{Kind: KeyEnter}) // dirty it
	if e.Reload(schema.DefaultConfig()) {
		t.Error("dirty editor must refuse a reload")
	}
}

func TestStatusClearedOnNextKey(t *testing.T) {
	e, _ := newTestEditor(t, PanelThemes)
	press(e, Key{Kind: KeyEnter}, Key{Kind: KeyEnter})
	if e.Status() == "" {
		t.Fatal("precondition: applying a theme sets a status")
	}
	press(e, Rune('j'))
	if e.Status() != "" {
		t.Errorf("status = %q, want it cleared on the next key", e.Status())
	}
}

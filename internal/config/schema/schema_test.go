package schema

import "testing"

func TestDefaultConfigPopulated(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SchemeName != "" {
		t.Errorf("default scheme name should be empty, got %q", cfg.SchemeName)
	}
	if cfg.Colors.Foreground != "#cdd6f4" {
		t.Errorf("foreground = %q, want #cdd6f4", cfg.Colors.Foreground)
	}
	if cfg.Fonts.Family != "JetBrainsMono Nerd Font" {
		t.Errorf("font family = %q", cfg.Fonts.Family)
	}
	if cfg.Fonts.Size != 12.0 {
		t.Errorf("font size = %v, want 12.0", cfg.Fonts.Size)
	}
	if cfg.Window.Decorations != DecorationsIntegratedButtonsResize {
		t.Errorf("decorations = %q", cfg.Window.Decorations)
	}
	if cfg.Window.Padding.Bottom != 7.5 {
		t.Errorf("padding bottom = %v, want 7.5", cfg.Window.Padding.Bottom)
	}
	if cfg.Cursor.BlinkRate != 650 {
		t.Errorf("blink rate = %d, want 650", cfg.Cursor.BlinkRate)
	}
	if cfg.GPU.MaxFPS != 120 {
		t.Errorf("max fps = %d, want 120", cfg.GPU.MaxFPS)
	}
	if cfg.General.ScrollbackLines != 3500 {
		t.Errorf("scrollback = %d, want 3500", cfg.General.ScrollbackLines)
	}
	if !cfg.Keybindings.DisableDefaults {
		t.Error("disable_defaults should default to true")
	}
	if cfg.Keybindings.Leader.TimeoutMs != 1000 {
		t.Errorf("leader timeout = %d, want 1000", cfg.Keybindings.Leader.TimeoutMs)
	}

	for i, c := range cfg.Colors.Ansi {
		if c == "" {
			t.Errorf("ansi[%d] is empty", i)
		}
	}
	for i, c := range cfg.Colors.Brights {
		if c == "" {
			t.Errorf("brights[%d] is empty", i)
		}
	}
}

func TestDefaultTabBarItalic(t *testing.T) {
	tb := DefaultTabBarColors()
	if tb.NewTabHover.Italic == nil || !*tb.NewTabHover.Italic {
		t.Error("new_tab_hover should default to italic")
	}
	if tb.ActiveTab.Italic != nil {
		t.Error("active_tab italic should be unset by default")
	}
}

func TestCloneIndependence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backdrop.Images = []string{"a.png", "b.png"}

	clone := cfg.Clone()
	if !cfg.Equal(clone) {
		t.Fatal("clone should equal original")
	}

	clone.Colors.Foreground = "#000000"
	clone.Backdrop.Images[0] = "c.png"
	*clone.Colors.TabBar.NewTabHover.Italic = false

	if cfg.Colors.Foreground != "#cdd6f4" {
		t.Error("mutating clone changed original foreground")
	}
	if cfg.Backdrop.Images[0] != "a.png" {
		t.Error("mutating clone changed original images slice")
	}
	if !*cfg.Colors.TabBar.NewTabHover.Italic {
		t.Error("mutating clone changed original italic pointer")
	}
	if cfg.Equal(clone) {
		t.Error("configs should differ after mutation")
	}
}

func TestParseEnums(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{"weight bold", first(ParseFontWeight("Bold")), WeightBold},
		{"weight semibold alias", first(ParseFontWeight("semibold")), WeightDemiBold},
		{"weight heavy alias", first(ParseFontWeight("heavy")), WeightBlack},
		{"weight unknown", first(ParseFontWeight("chunky")), FontWeight("")},
		{"freetype lcd", first(ParseFreetypeTarget("horizontal_lcd")), FreetypeHorizontalLcd},
		{"decorations compound", first(ParseWindowDecorations("integrated_buttons|resize")), DecorationsIntegratedButtonsResize},
		{"decorations unknown", first(ParseWindowDecorations("ROUND")), WindowDecorations("")},
		{"cursor style", first(ParseCursorStyle("SteadyBar")), SteadyBar},
		{"cursor style case-sensitive", first(ParseCursorStyle("steadybar")), CursorStyle("")},
		{"ease", first(ParseEaseFunction("EaseInOut")), EaseInOut},
		{"front end", first(ParseFrontEnd("OpenGL")), FrontEndOpenGL},
		{"power", first(ParsePowerPreference("LowPower")), LowPower},
		{"close confirm", first(ParseCloseConfirmation("AlwaysPrompt")), AlwaysPrompt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

// first narrows a (value, ok) pair to its value for table entries above; the
// ok result is covered by the zero/non-zero want values.
func first[T any](v T, _ bool) T { return v }

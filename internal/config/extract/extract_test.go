package extract

import (
	"strings"
	"testing"

	"github.com/dshills/weztui/internal/config/schema"
)

const sampleConfig = `
local wezterm = require("wezterm")
local config = wezterm.config_builder()

config.color_scheme = "Catppuccin Mocha"
config.font = wezterm.font("JetBrains Mono")
config.font_size = 14.0
config.window_background_opacity = 0.95
config.enable_tab_bar = false

return config
`

func TestExtractBasics(t *testing.T) {
	res := Extract(sampleConfig)
	cfg := res.Config

	if got, want := cfg.SchemeName, "Catppuccin Mocha"; got != want {
		t.Errorf("SchemeName = %q, want %q", got, want)
	}
	if got, want := cfg.Fonts.Family, "JetBrains Mono"; got != want {
		t.Errorf("Fonts.Family = %q, want %q", got, want)
	}
	if got, want := cfg.Fonts.Size, 14.0; got != want {
		t.Errorf("Fonts.Size = %v, want %v", got, want)
	}
	if got, want := cfg.Window.BackgroundOpacity, 0.95; got != want {
		t.Errorf("Window.BackgroundOpacity = %v, want %v", got, want)
	}
	if cfg.Window.EnableTabBar {
		t.Error("Window.EnableTabBar = true, want false")
	}
	if res.Raw != sampleConfig {
		t.Error("Raw does not preserve the original content")
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", res.Warnings)
	}
}

func TestExtractUnknownContentKeepsDefaults(t *testing.T) {
	res := Extract(`-- just a comment, nothing we model`)
	if !res.Config.Equal(schema.DefaultConfig()) {
		t.Error("extracting unmodeled content should leave every default intact")
	}
}

func TestExtractFontShapes(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantFamily string
		wantWeight schema.FontWeight
	}{
		{
			name:       "call with string",
			content:    `config.font = wezterm.font("Fira Code")`,
			wantFamily: "Fira Code",
		},
		{
			name:       "brace call with family",
			content:    `config.font = wezterm.font { family = "Iosevka", weight = "DemiBold" }`,
			wantFamily: "Iosevka",
			wantWeight: schema.WeightDemiBold,
		},
		{
			name:       "separate weight key",
			content:    "config.font = wezterm.font(\"Hack\")\nconfig.font_weight = \"Bold\"",
			wantFamily: "Hack",
			wantWeight: schema.WeightBold,
		},
		{
			name:       "unrecognized weight clears",
			content:    "config.font = wezterm.font(\"Hack\")\nconfig.font_weight = \"Chonky\"",
			wantFamily: "Hack",
			wantWeight: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Extract(tt.content).Config
			if cfg.Fonts.Family != tt.wantFamily {
				t.Errorf("Family = %q, want %q", cfg.Fonts.Family, tt.wantFamily)
			}
			if cfg.Fonts.Weight != tt.wantWeight {
				t.Errorf("Weight = %q, want %q", cfg.Fonts.Weight, tt.wantWeight)
			}
		})
	}
}

func TestExtractAnsiPalette(t *testing.T) {
	eight := `config.colors = {}
config.colors.ansi = { "#1e1e2e", "#f38ba8", "#a6e3a1", "#f9e2af", "#89b4fa", "#f5c2e7", "#94e2d5", "#bac2de" }`
	cfg := Extract(eight).Config
	if got, want := cfg.Colors.Ansi[1], "#f38ba8"; got != want {
		t.Errorf("Ansi[1] = %q, want %q", got, want)
	}

	// A short palette must not disturb the defaults.
	six := `config.colors = {}
config.colors.ansi = { "#000000", "#111111", "#222222", "#333333", "#444444", "#555555" }`
	cfg = Extract(six).Config
	def := schema.DefaultColorScheme()
	if cfg.Colors.Ansi != def.Ansi {
		t.Errorf("six-entry palette overwrote defaults: %v", cfg.Colors.Ansi)
	}
}

func TestExtractNestedTabBar(t *testing.T) {
	content := `
config.colors = {}
config.colors.tab_bar = {}
config.colors.tab_bar.background = "#11111b"
config.colors.tab_bar.active_tab = {}
config.colors.tab_bar.active_tab.bg_color = "#cba6f7"
config.colors.tab_bar.active_tab.fg_color = "#11111b"
`
	cfg := Extract(content).Config
	if got, want := cfg.Colors.TabBar.Background, "#11111b"; got != want {
		t.Errorf("TabBar.Background = %q, want %q", got, want)
	}
	if got, want := cfg.Colors.TabBar.ActiveTab.BgColor, "#cba6f7"; got != want {
		t.Errorf("ActiveTab.BgColor = %q, want %q", got, want)
	}
	if got, want := cfg.Colors.TabBar.ActiveTab.FgColor, "#11111b"; got != want {
		t.Errorf("ActiveTab.FgColor = %q, want %q", got, want)
	}
}

func TestExtractEnumFallback(t *testing.T) {
	content := `
config.window_decorations = "SOMETHING_NEW"
config.window_close_confirmation = "Sometimes"
config.default_cursor_style = "WobblyBar"
config.front_end = "Vulkan"
`
	cfg := Extract(content).Config
	if got := cfg.Window.Decorations; got != schema.DefaultDecorations {
		t.Errorf("Decorations = %q, want default %q", got, schema.DefaultDecorations)
	}
	if got := cfg.Window.CloseConfirmation; got != schema.DefaultCloseConfirmation {
		t.Errorf("CloseConfirmation = %q, want default %q", got, schema.DefaultCloseConfirmation)
	}
	if got := cfg.Cursor.Style; got != schema.DefaultCursorStyle {
		t.Errorf("Cursor.Style = %q, want default %q", got, schema.DefaultCursorStyle)
	}
	if got := cfg.GPU.FrontEnd; got != schema.DefaultFrontEnd {
		t.Errorf("FrontEnd = %q, want default %q", got, schema.DefaultFrontEnd)
	}
}

func TestExtractKeyBoundary(t *testing.T) {
	// command_palette_font_size must not satisfy the font_size rule.
	cfg := Extract(`config.command_palette_font_size = 16.0`).Config
	if got, want := cfg.Fonts.Size, schema.DefaultFontSettings().Size; got != want {
		t.Errorf("Fonts.Size = %v, want untouched default %v", got, want)
	}
}

func TestExtractEvaluatesComputedValues(t *testing.T) {
	content := `
local wezterm = require("wezterm")
local config = wezterm.config_builder()

local size = 13.5
config.font_size = size
config.window_padding = { left = 4, right = 4, top = 2, bottom = 2 }
config.inactive_pane_hsb = { saturation = 0.8, brightness = 0.6 }

return config
`
	res := Extract(content)
	cfg := res.Config
	if got, want := cfg.Fonts.Size, 13.5; got != want {
		t.Errorf("Fonts.Size = %v, want %v", got, want)
	}
	if got, want := cfg.Window.Padding.Left, 4.0; got != want {
		t.Errorf("Padding.Left = %v, want %v", got, want)
	}
	if got, want := cfg.Window.Padding.Bottom, 2.0; got != want {
		t.Errorf("Padding.Bottom = %v, want %v", got, want)
	}
	if got, want := cfg.Window.InactivePaneHSB.Saturation, 0.8; got != want {
		t.Errorf("InactivePaneHSB.Saturation = %v, want %v", got, want)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", res.Warnings)
	}
}

func TestExtractPatternOverridesEval(t *testing.T) {
	// The literal in the text wins over the value the script computes.
	cfg := Extract(`
local config = {}
config.font_size = 10 + 2
return config
`).Config
	if got, want := cfg.Fonts.Size, 10.0; got != want {
		t.Errorf("Fonts.Size = %v, want pattern value %v", got, want)
	}
}

func TestExtractMalformedLuaWarns(t *testing.T) {
	res := Extract(`config.font_size = 14.0 this is not lua`)
	if got, want := res.Config.Fonts.Size, 14.0; got != want {
		t.Errorf("Fonts.Size = %v, want %v despite the syntax error", got, want)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "lua evaluation") {
		t.Errorf("Warnings = %v, want a single lua evaluation warning", res.Warnings)
	}
}

func TestExtractRuntimeLoopTimesOut(t *testing.T) {
	res := Extract(`
config.enable_tab_bar = true
while true do end
`)
	if len(res.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want a single timeout warning", res.Warnings)
	}
	if !res.Config.Window.EnableTabBar {
		t.Error("pattern extraction should still run after a timed-out evaluation")
	}
}

func TestExtractRequireResolvesInSandbox(t *testing.T) {
	// The sandbox opens no package library; require must still hand back
	// the wezterm stub and inert stand-ins for anything else.
	res := Extract(`
local wezterm = require("wezterm")
local helpers = require("my.helpers")
helpers.setup({ flavor = "mocha" })

local config = wezterm.config_builder()
config.font = wezterm.font("Monaspace Neon")
config.font_size = 12.5
return config
`)
	if len(res.Warnings) != 0 {
		t.Fatalf("Warnings = %v, want none", res.Warnings)
	}
	if got, want := res.Config.Fonts.Family, "Monaspace Neon"; got != want {
		t.Errorf("Fonts.Family = %q, want %q", got, want)
	}
	if got, want := res.Config.Fonts.Size, 12.5; got != want {
		t.Errorf("Fonts.Size = %v, want %v", got, want)
	}
}

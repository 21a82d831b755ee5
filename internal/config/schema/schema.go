// Package schema defines the typed snapshot of every WezTerm setting the
// editor understands, with full default values.
//
// A Config is always fully populated: construction yields the defaults, and
// later stages overwrite individual fields as they recognize them. There is
// no "unset" state for required fields, only "default" versus "extracted".
// The package holds data only; no operation here can fail.
package schema

// TabColors is one tab-state color pair with an optional italic flag.
type TabColors struct {
	BgColor string `json:"bg_color"`
	FgColor string `json:"fg_color"`
	Italic  *bool  `json:"italic,omitempty"`
}

// TabBarColors colors the tab bar and its five tab states.
type TabBarColors struct {
	Background       string    `json:"background"`
	ActiveTab        TabColors `json:"active_tab"`
	InactiveTab      TabColors `json:"inactive_tab"`
	InactiveTabHover TabColors `json:"inactive_tab_hover"`
	NewTab           TabColors `json:"new_tab"`
	NewTabHover      TabColors `json:"new_tab_hover"`
}

// ColorScheme holds the custom terminal palette. Ansi and Brights are always
// exactly eight entries each.
type ColorScheme struct {
	Foreground   string `json:"foreground"`
	Background   string `json:"background"`
	CursorBg     string `json:"cursor_bg"`
	CursorBorder string `json:"cursor_border"`
	CursorFg     string `json:"cursor_fg"`
	SelectionBg  string `json:"selection_bg"`
	SelectionFg  string `json:"selection_fg"`

	Ansi    [8]string `json:"ansi"`
	Brights [8]string `json:"brights"`

	TabBar TabBarColors `json:"tab_bar"`
}

// FontSettings holds the terminal font configuration.
type FontSettings struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`

	// Weight, LoadTarget and RenderTarget are optional; the empty string
	// means the setting is not emitted.
	Weight       FontWeight     `json:"weight,omitempty"`
	LoadTarget   FreetypeTarget `json:"freetype_load_target,omitempty"`
	RenderTarget FreetypeTarget `json:"freetype_render_target,omitempty"`
}

// WindowSettings holds window chrome and tab bar configuration.
type WindowSettings struct {
	Padding                Padding           `json:"window_padding"`
	BackgroundOpacity      float64           `json:"window_background_opacity"`
	Decorations            WindowDecorations `json:"window_decorations"`
	EnableTabBar           bool              `json:"enable_tab_bar"`
	HideTabBarIfOnlyOneTab bool              `json:"hide_tab_bar_if_only_one_tab"`
	UseFancyTabBar         bool              `json:"use_fancy_tab_bar"`
	TabMaxWidth            int               `json:"tab_max_width"`
	ShowTabIndexInTabBar   bool              `json:"show_tab_index_in_tab_bar"`
	InactivePaneHSB        HSB               `json:"inactive_pane_hsb"`
	CloseConfirmation      CloseConfirmation `json:"window_close_confirmation"`
}

// CursorSettings holds cursor shape and animation configuration.
type CursorSettings struct {
	Style        CursorStyle  `json:"default_cursor_style"`
	BlinkRate    int          `json:"cursor_blink_rate"`
	BlinkEaseIn  EaseFunction `json:"cursor_blink_ease_in"`
	BlinkEaseOut EaseFunction `json:"cursor_blink_ease_out"`
	AnimationFPS int          `json:"animation_fps"`
}

// BackdropSettings holds background image configuration.
type BackdropSettings struct {
	Enabled        bool     `json:"enabled"`
	ImagesDir      string   `json:"images_dir"`
	Images         []string `json:"images"`
	CurrentIndex   int      `json:"current_index"`
	FocusColor     string   `json:"focus_color"`
	OverlayOpacity float64  `json:"overlay_opacity"`
	RandomOnStart  bool     `json:"random_on_start"`
}

// GPUSettings holds renderer configuration.
type GPUSettings struct {
	FrontEnd        FrontEnd        `json:"front_end"`
	PowerPreference PowerPreference `json:"webgpu_power_preference"`
	MaxFPS          int             `json:"max_fps"`
}

// GeneralSettings holds miscellaneous terminal behavior.
type GeneralSettings struct {
	AutoReloadConfig                     bool         `json:"automatically_reload_config"`
	ScrollbackLines                      int          `json:"scrollback_lines"`
	InitialRows                          int          `json:"initial_rows"`
	InitialCols                          int          `json:"initial_cols"`
	ExitBehavior                         ExitBehavior `json:"exit_behavior"`
	AudibleBell                          AudibleBell  `json:"audible_bell"`
	EnableScrollBar                      bool         `json:"enable_scroll_bar"`
	SwitchToLastActiveTabWhenClosingTab  bool         `json:"switch_to_last_active_tab_when_closing_tab"`
	AdjustWindowSizeWhenChangingFontSize bool         `json:"adjust_window_size_when_changing_font_size"`
}

// CommandPaletteSettings colors the built-in command palette.
type CommandPaletteSettings struct {
	FgColor  string  `json:"fg_color"`
	BgColor  string  `json:"bg_color"`
	FontSize float64 `json:"font_size"`
}

// VisualBellSettings holds visual bell animation configuration.
type VisualBellSettings struct {
	FadeInDurationMs  int          `json:"fade_in_duration_ms"`
	FadeOutDurationMs int          `json:"fade_out_duration_ms"`
	FadeInFunction    EaseFunction `json:"fade_in_function"`
	FadeOutFunction   EaseFunction `json:"fade_out_function"`
	Target            string       `json:"target"`
}

// Config is the complete typed snapshot of all editable settings.
//
// SchemeName, when non-empty, names a built-in color scheme that overrides
// the custom Colors at apply time.
type Config struct {
	SchemeName     string                 `json:"color_scheme,omitempty"`
	Colors         ColorScheme            `json:"colors"`
	Fonts          FontSettings           `json:"fonts"`
	Window         WindowSettings         `json:"window"`
	Cursor         CursorSettings         `json:"cursor"`
	Backdrop       BackdropSettings       `json:"backdrop"`
	GPU            GPUSettings            `json:"gpu"`
	General        GeneralSettings        `json:"general"`
	CommandPalette CommandPaletteSettings `json:"command_palette"`
	VisualBell     VisualBellSettings     `json:"visual_bell"`
	Keybindings    KeybindingsSettings    `json:"keybindings"`
}

// DefaultTabBarColors returns the default tab bar palette.
func DefaultTabBarColors() TabBarColors {
	italic := true
	return TabBarColors{
		Background: "rgba(0, 0, 0, 0.4)",
		ActiveTab: TabColors{
			BgColor: "#585b70",
			FgColor: "#cdd6f4",
		},
		InactiveTab: TabColors{
			BgColor: "#313244",
			FgColor: "#bac2de",
		},
		InactiveTabHover: TabColors{
			BgColor: "#313244",
			FgColor: "#cdd6f4",
		},
		NewTab: TabColors{
			BgColor: "#1f1f28",
			FgColor: "#cdd6f4",
		},
		NewTabHover: TabColors{
			BgColor: "#181825",
			FgColor: "#cdd6f4",
			Italic:  &italic,
		},
	}
}

// DefaultColorScheme returns the default custom palette.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Foreground:   "#cdd6f4",
		Background:   "#1f1f28",
		CursorBg:     "#f5e0dc",
		CursorBorder: "#f5e0dc",
		CursorFg:     "#11111b",
		SelectionBg:  "#585b70",
		SelectionFg:  "#cdd6f4",
		Ansi: [8]string{
			"#0C0C0C", "#C50F1F", "#13A10E", "#C19C00",
			"#0037DA", "#881798", "#3A96DD", "#CCCCCC",
		},
		Brights: [8]string{
			"#767676", "#E74856", "#16C60C", "#F9F1A5",
			"#3B78FF", "#B4009E", "#61D6D6", "#F2F2F2",
		},
		TabBar: DefaultTabBarColors(),
	}
}

// DefaultFontSettings returns the default font configuration.
func DefaultFontSettings() FontSettings {
	return FontSettings{
		Family:       "JetBrainsMono Nerd Font",
		Size:         12.0,
		LoadTarget:   FreetypeNormal,
		RenderTarget: FreetypeNormal,
	}
}

// DefaultWindowSettings returns the default window configuration.
func DefaultWindowSettings() WindowSettings {
	return WindowSettings{
		Padding:           Padding{Left: 0, Right: 0, Top: 10, Bottom: 7.5},
		BackgroundOpacity: 1.0,
		Decorations:       DecorationsIntegratedButtonsResize,
		EnableTabBar:      true,
		UseFancyTabBar:    true,
		TabMaxWidth:       25,
		InactivePaneHSB:   HSB{Hue: 1.0, Saturation: 1.0, Brightness: 1.0},
		CloseConfirmation: NeverPrompt,
	}
}

// DefaultCursorSettings returns the default cursor configuration.
func DefaultCursorSettings() CursorSettings {
	return CursorSettings{
		Style:        BlinkingBlock,
		BlinkRate:    650,
		BlinkEaseIn:  EaseOut,
		BlinkEaseOut: EaseOut,
		AnimationFPS: 120,
	}
}

// DefaultBackdropSettings returns the default backdrop configuration.
func DefaultBackdropSettings() BackdropSettings {
	return BackdropSettings{
		FocusColor:     "#1f1f28",
		OverlayOpacity: 0.96,
	}
}

// DefaultGPUSettings returns the default renderer configuration.
func DefaultGPUSettings() GPUSettings {
	return GPUSettings{
		FrontEnd:        FrontEndWebGpu,
		PowerPreference: HighPerformance,
		MaxFPS:          120,
	}
}

// DefaultGeneralSettings returns the default general configuration.
func DefaultGeneralSettings() GeneralSettings {
	return GeneralSettings{
		AutoReloadConfig:                     true,
		ScrollbackLines:                      3500,
		InitialRows:                          24,
		InitialCols:                          80,
		ExitBehavior:                         ExitCloseOnCleanExit,
		AudibleBell:                          BellDisabled,
		SwitchToLastActiveTabWhenClosingTab:  true,
		AdjustWindowSizeWhenChangingFontSize: true,
	}
}

// DefaultCommandPaletteSettings returns the default palette colors.
func DefaultCommandPaletteSettings() CommandPaletteSettings {
	return CommandPaletteSettings{
		FgColor:  "#cdd6f4",
		BgColor:  "#1e1e2e",
		FontSize: 14.0,
	}
}

// DefaultVisualBellSettings returns the default visual bell configuration.
func DefaultVisualBellSettings() VisualBellSettings {
	return VisualBellSettings{
		FadeInDurationMs:  75,
		FadeOutDurationMs: 150,
		FadeInFunction:    EaseIn,
		FadeOutFunction:   EaseOut,
		Target:            "BackgroundColor",
	}
}

// DefaultConfig returns a fully populated configuration with every field at
// its default value.
func DefaultConfig() *Config {
	return &Config{
		Colors:         DefaultColorScheme(),
		Fonts:          DefaultFontSettings(),
		Window:         DefaultWindowSettings(),
		Cursor:         DefaultCursorSettings(),
		Backdrop:       DefaultBackdropSettings(),
		GPU:            DefaultGPUSettings(),
		General:        DefaultGeneralSettings(),
		CommandPalette: DefaultCommandPaletteSettings(),
		VisualBell:     DefaultVisualBellSettings(),
		Keybindings:    DefaultKeybindingsSettings(),
	}
}

package extract

import (
	"regexp"

	"github.com/dshills/weztui/internal/config/schema"
)

// sections is the fixed extraction pipeline. Keybindings, general, backdrop,
// command palette and visual bell settings are not extracted today; they keep
// their defaults and round-trip through the interchange format instead.
var sections = []section{
	{name: "colors", rules: colorRules},
	{name: "fonts", rules: fontRules, extra: extractFontFamily},
	{name: "window", rules: windowRules},
	{name: "cursor", rules: cursorRules},
	{name: "gpu", rules: gpuRules},
}

func strRule(key string, apply func(*schema.Config, string)) rule {
	return rule{
		path:  []string{key},
		kind:  kindString,
		apply: func(c *schema.Config, v value) { apply(c, v.str) },
	}
}

func numRule(key string, apply func(*schema.Config, float64)) rule {
	return rule{
		path:  []string{key},
		kind:  kindNumber,
		apply: func(c *schema.Config, v value) { apply(c, v.num) },
	}
}

func boolRule(key string, apply func(*schema.Config, bool)) rule {
	return rule{
		path:  []string{key},
		kind:  kindBool,
		apply: func(c *schema.Config, v value) { apply(c, v.b) },
	}
}

func nestedStr(path []string, apply func(*schema.Config, string)) rule {
	return rule{
		path:  path,
		kind:  kindString,
		apply: func(c *schema.Config, v value) { apply(c, v.str) },
	}
}

func nestedNum(path []string, apply func(*schema.Config, float64)) rule {
	return rule{
		path:  path,
		kind:  kindNumber,
		apply: func(c *schema.Config, v value) { apply(c, v.num) },
	}
}

func tabColorRules(state string, pick func(*schema.Config) *schema.TabColors) []rule {
	return []rule{
		nestedStr([]string{"colors", "tab_bar", state, "bg_color"}, func(c *schema.Config, s string) {
			pick(c).BgColor = s
		}),
		nestedStr([]string{"colors", "tab_bar", state, "fg_color"}, func(c *schema.Config, s string) {
			pick(c).FgColor = s
		}),
	}
}

var colorRules = buildColorRules()

func buildColorRules() []rule {
	rules := []rule{
		strRule("foreground", func(c *schema.Config, s string) { c.Colors.Foreground = s }),
		strRule("background", func(c *schema.Config, s string) { c.Colors.Background = s }),
		strRule("cursor_bg", func(c *schema.Config, s string) { c.Colors.CursorBg = s }),
		strRule("cursor_border", func(c *schema.Config, s string) { c.Colors.CursorBorder = s }),
		strRule("cursor_fg", func(c *schema.Config, s string) { c.Colors.CursorFg = s }),
		strRule("selection_bg", func(c *schema.Config, s string) { c.Colors.SelectionBg = s }),
		strRule("selection_fg", func(c *schema.Config, s string) { c.Colors.SelectionFg = s }),
		strRule("color_scheme", func(c *schema.Config, s string) { c.SchemeName = s }),

		// The 8-slot palettes are overwritten only on an exact-length
		// match; any other count is ignored without a warning.
		{path: []string{"ansi"}, kind: kindStringArray, apply: func(c *schema.Config, v value) {
			if len(v.list) == len(c.Colors.Ansi) {
				copy(c.Colors.Ansi[:], v.list)
			}
		}},
		{path: []string{"brights"}, kind: kindStringArray, apply: func(c *schema.Config, v value) {
			if len(v.list) == len(c.Colors.Brights) {
				copy(c.Colors.Brights[:], v.list)
			}
		}},

		nestedStr([]string{"colors", "tab_bar", "background"}, func(c *schema.Config, s string) {
			c.Colors.TabBar.Background = s
		}),
	}

	rules = append(rules, tabColorRules("active_tab", func(c *schema.Config) *schema.TabColors { return &c.Colors.TabBar.ActiveTab })...)
	rules = append(rules, tabColorRules("inactive_tab", func(c *schema.Config) *schema.TabColors { return &c.Colors.TabBar.InactiveTab })...)
	rules = append(rules, tabColorRules("inactive_tab_hover", func(c *schema.Config) *schema.TabColors { return &c.Colors.TabBar.InactiveTabHover })...)
	rules = append(rules, tabColorRules("new_tab", func(c *schema.Config) *schema.TabColors { return &c.Colors.TabBar.NewTab })...)
	rules = append(rules, tabColorRules("new_tab_hover", func(c *schema.Config) *schema.TabColors { return &c.Colors.TabBar.NewTabHover })...)
	return rules
}

func setWeight(c *schema.Config, s string) {
	// An unrecognized weight clears the optional field rather than failing.
	w, _ := schema.ParseFontWeight(s)
	c.Fonts.Weight = w
}

var fontRules = []rule{
	numRule("font_size", func(c *schema.Config, n float64) { c.Fonts.Size = n }),
	strRule("weight", setWeight),
	strRule("font_weight", setWeight),
	strRule("freetype_load_target", func(c *schema.Config, s string) {
		t, _ := schema.ParseFreetypeTarget(s)
		c.Fonts.LoadTarget = t
	}),
	strRule("freetype_render_target", func(c *schema.Config, s string) {
		t, _ := schema.ParseFreetypeTarget(s)
		c.Fonts.RenderTarget = t
	}),
}

// Font family assignments come in call shapes the generic rules cannot
// express: wezterm.font("name") and wezterm.font { family = "name" }.
func extractFontFamily(content string, cfg *schema.Config) error {
	patterns := []string{
		`wezterm\.font\s*\(\s*["']([^"']+)["']`,
		`wezterm\.font\s*\{\s*family\s*=\s*["']([^"']+)["']`,
	}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return err
		}
		if m := re.FindStringSubmatch(content); m != nil {
			cfg.Fonts.Family = m[1]
		}
	}
	return nil
}

var windowRules = []rule{
	numRule("window_background_opacity", func(c *schema.Config, n float64) { c.Window.BackgroundOpacity = n }),
	strRule("window_decorations", func(c *schema.Config, s string) {
		d, ok := schema.ParseWindowDecorations(s)
		if !ok {
			d = schema.DefaultDecorations
		}
		c.Window.Decorations = d
	}),
	boolRule("enable_tab_bar", func(c *schema.Config, b bool) { c.Window.EnableTabBar = b }),
	boolRule("hide_tab_bar_if_only_one_tab", func(c *schema.Config, b bool) { c.Window.HideTabBarIfOnlyOneTab = b }),
	boolRule("use_fancy_tab_bar", func(c *schema.Config, b bool) { c.Window.UseFancyTabBar = b }),
	boolRule("show_tab_index_in_tab_bar", func(c *schema.Config, b bool) { c.Window.ShowTabIndexInTabBar = b }),
	numRule("tab_max_width", func(c *schema.Config, n float64) { c.Window.TabMaxWidth = int(n) }),

	nestedNum([]string{"window_padding", "left"}, func(c *schema.Config, n float64) { c.Window.Padding.Left = n }),
	nestedNum([]string{"window_padding", "right"}, func(c *schema.Config, n float64) { c.Window.Padding.Right = n }),
	nestedNum([]string{"window_padding", "top"}, func(c *schema.Config, n float64) { c.Window.Padding.Top = n }),
	nestedNum([]string{"window_padding", "bottom"}, func(c *schema.Config, n float64) { c.Window.Padding.Bottom = n }),

	nestedNum([]string{"inactive_pane_hsb", "hue"}, func(c *schema.Config, n float64) { c.Window.InactivePaneHSB.Hue = n }),
	nestedNum([]string{"inactive_pane_hsb", "saturation"}, func(c *schema.Config, n float64) { c.Window.InactivePaneHSB.Saturation = n }),
	nestedNum([]string{"inactive_pane_hsb", "brightness"}, func(c *schema.Config, n float64) { c.Window.InactivePaneHSB.Brightness = n }),

	strRule("window_close_confirmation", func(c *schema.Config, s string) {
		cc, ok := schema.ParseCloseConfirmation(s)
		if !ok {
			cc = schema.DefaultCloseConfirmation
		}
		c.Window.CloseConfirmation = cc
	}),
}

var cursorRules = []rule{
	strRule("default_cursor_style", func(c *schema.Config, s string) {
		st, ok := schema.ParseCursorStyle(s)
		if !ok {
			st = schema.DefaultCursorStyle
		}
		c.Cursor.Style = st
	}),
	numRule("cursor_blink_rate", func(c *schema.Config, n float64) { c.Cursor.BlinkRate = int(n) }),
	strRule("cursor_blink_ease_in", func(c *schema.Config, s string) {
		e, ok := schema.ParseEaseFunction(s)
		if !ok {
			e = schema.DefaultEase
		}
		c.Cursor.BlinkEaseIn = e
	}),
	strRule("cursor_blink_ease_out", func(c *schema.Config, s string) {
		e, ok := schema.ParseEaseFunction(s)
		if !ok {
			e = schema.DefaultEase
		}
		c.Cursor.BlinkEaseOut = e
	}),
	numRule("animation_fps", func(c *schema.Config, n float64) { c.Cursor.AnimationFPS = int(n) }),
}

var gpuRules = []rule{
	strRule("front_end", func(c *schema.Config, s string) {
		f, ok := schema.ParseFrontEnd(s)
		if !ok {
			f = schema.DefaultFrontEnd
		}
		c.GPU.FrontEnd = f
	}),
	strRule("webgpu_power_preference", func(c *schema.Config, s string) {
		p, ok := schema.ParsePowerPreference(s)
		if !ok {
			p = schema.DefaultPowerPreference
		}
		c.GPU.PowerPreference = p
	}),
	numRule("max_fps", func(c *schema.Config, n float64) { c.GPU.MaxFPS = int(n) }),
}

// Package luagen renders a typed configuration back into wezterm.lua text.
//
// The output is a complete, deterministic rewrite of the config file in a
// fixed dialect: dotted assignments in a fixed section order, with stable key
// order inside every section. Comments from the previous file are not
// preserved. The dialect is chosen so the extraction stage reads back every
// field it models, which makes save-then-load a fixed point.
package luagen

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dshills/weztui/internal/config/schema"
)

// Generate renders cfg as a complete wezterm.lua.
func Generate(cfg *schema.Config) string {
	var w writer

	w.line("-- wezterm.lua")
	w.line("-- Managed by weztui; manual edits are overwritten on save.")
	w.blank()
	w.line(`local wezterm = require("wezterm")`)
	w.line("local act = wezterm.action")
	w.blank()
	w.line("local config = wezterm.config_builder()")
	w.blank()

	writeColors(&w, cfg)
	writeFonts(&w, &cfg.Fonts)
	writeWindow(&w, &cfg.Window)
	writeCursor(&w, &cfg.Cursor)
	writeGPU(&w, &cfg.GPU)
	writeGeneral(&w, &cfg.General)
	writeCommandPalette(&w, &cfg.CommandPalette)
	writeVisualBell(&w, &cfg.VisualBell)
	writeBackdrop(&w, &cfg.Backdrop)
	writeKeybindings(&w, &cfg.Keybindings)
	writeCustomCommands(&w, &cfg.Keybindings)

	w.line("return config")
	return w.String()
}

type writer struct {
	sb strings.Builder
}

func (w *writer) String() string { return w.sb.String() }

func (w *writer) blank() { w.sb.WriteByte('\n') }

func (w *writer) line(format string, args ...any) {
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteByte('\n')
}

// str emits key = "value".
func (w *writer) str(key, val string) {
	w.line("%s = %s", key, luaQuote(val))
}

func (w *writer) num(key string, val float64) {
	w.line("%s = %s", key, luaNum(val))
}

func (w *writer) int(key string, val int) {
	w.line("%s = %d", key, val)
}

func (w *writer) bool(key string, val bool) {
	w.line("%s = %t", key, val)
}

// luaQuote renders s as a double-quoted Lua string literal.
func luaQuote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func luaNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func quotedList(vals []string) string {
	quoted := make([]string, len(vals))
	for i, v := range vals {
		quoted[i] = luaQuote(v)
	}
	return "{ " + strings.Join(quoted, ", ") + " }"
}

// writeColors emits the color scheme. The simple keys come before the
// tab_bar subtable so first-match keys like background resolve to the core
// palette on the way back in.
func writeColors(w *writer, cfg *schema.Config) {
	w.line("-- Colors")
	if cfg.SchemeName != "" {
		w.str("config.color_scheme", cfg.SchemeName)
	}
	c := &cfg.Colors
	w.line("config.colors = {}")
	w.str("config.colors.foreground", c.Foreground)
	w.str("config.colors.background", c.Background)
	w.str("config.colors.cursor_bg", c.CursorBg)
	w.str("config.colors.cursor_border", c.CursorBorder)
	w.str("config.colors.cursor_fg", c.CursorFg)
	w.str("config.colors.selection_bg", c.SelectionBg)
	w.str("config.colors.selection_fg", c.SelectionFg)
	w.line("config.colors.ansi = %s", quotedList(c.Ansi[:]))
	w.line("config.colors.brights = %s", quotedList(c.Brights[:]))

	w.line("config.colors.tab_bar = {}")
	w.str("config.colors.tab_bar.background", c.TabBar.Background)
	writeTabColors(w, "active_tab", &c.TabBar.ActiveTab)
	writeTabColors(w, "inactive_tab", &c.TabBar.InactiveTab)
	writeTabColors(w, "inactive_tab_hover", &c.TabBar.InactiveTabHover)
	writeTabColors(w, "new_tab", &c.TabBar.NewTab)
	writeTabColors(w, "new_tab_hover", &c.TabBar.NewTabHover)
	w.blank()
}

func writeTabColors(w *writer, state string, tc *schema.TabColors) {
	prefix := "config.colors.tab_bar." + state
	w.line("%s = {}", prefix)
	w.str(prefix+".bg_color", tc.BgColor)
	w.str(prefix+".fg_color", tc.FgColor)
	if tc.Italic != nil {
		w.bool(prefix+".italic", *tc.Italic)
	}
}

func writeFonts(w *writer, f *schema.FontSettings) {
	w.line("-- Fonts")
	if f.Weight != "" {
		w.line("config.font = wezterm.font { family = %s, weight = %s }",
			luaQuote(f.Family), luaQuote(string(f.Weight)))
	} else {
		w.line("config.font = wezterm.font { family = %s }", luaQuote(f.Family))
	}
	w.num("config.font_size", f.Size)
	if f.LoadTarget != "" {
		w.str("config.freetype_load_target", string(f.LoadTarget))
	}
	if f.RenderTarget != "" {
		w.str("config.freetype_render_target", string(f.RenderTarget))
	}
	w.blank()
}

func writeWindow(w *writer, win *schema.WindowSettings) {
	w.line("-- Window")
	w.num("config.window_background_opacity", win.BackgroundOpacity)
	w.str("config.window_decorations", string(win.Decorations))
	w.bool("config.enable_tab_bar", win.EnableTabBar)
	w.bool("config.hide_tab_bar_if_only_one_tab", win.HideTabBarIfOnlyOneTab)
	w.bool("config.use_fancy_tab_bar", win.UseFancyTabBar)
	w.bool("config.show_tab_index_in_tab_bar", win.ShowTabIndexInTabBar)
	w.int("config.tab_max_width", win.TabMaxWidth)
	w.line("config.window_padding = {}")
	w.num("config.window_padding.left", win.Padding.Left)
	w.num("config.window_padding.right", win.Padding.Right)
	w.num("config.window_padding.top", win.Padding.Top)
	w.num("config.window_padding.bottom", win.Padding.Bottom)
	w.line("config.inactive_pane_hsb = {}")
	w.num("config.inactive_pane_hsb.hue", win.InactivePaneHSB.Hue)
	w.num("config.inactive_pane_hsb.saturation", win.InactivePaneHSB.Saturation)
	w.num("config.inactive_pane_hsb.brightness", win.InactivePaneHSB.Brightness)
	w.str("config.window_close_confirmation", string(win.CloseConfirmation))
	w.blank()
}

func writeCursor(w *writer, c *schema.CursorSettings) {
	w.line("-- Cursor")
	w.str("config.default_cursor_style", string(c.Style))
	w.int("config.cursor_blink_rate", c.BlinkRate)
	w.str("config.cursor_blink_ease_in", string(c.BlinkEaseIn))
	w.str("config.cursor_blink_ease_out", string(c.BlinkEaseOut))
	w.int("config.animation_fps", c.AnimationFPS)
	w.blank()
}

func writeGPU(w *writer, g *schema.GPUSettings) {
	w.line("-- Renderer")
	w.str("config.front_end", string(g.FrontEnd))
	w.str("config.webgpu_power_preference", string(g.PowerPreference))
	w.int("config.max_fps", g.MaxFPS)
	w.blank()
}

func writeGeneral(w *writer, g *schema.GeneralSettings) {
	w.line("-- General")
	w.bool("config.automatically_reload_config", g.AutoReloadConfig)
	w.int("config.scrollback_lines", g.ScrollbackLines)
	w.int("config.initial_rows", g.InitialRows)
	w.int("config.initial_cols", g.InitialCols)
	w.str("config.exit_behavior", string(g.ExitBehavior))
	w.str("config.audible_bell", string(g.AudibleBell))
	w.bool("config.enable_scroll_bar", g.EnableScrollBar)
	w.bool("config.switch_to_last_active_tab_when_closing_tab", g.SwitchToLastActiveTabWhenClosingTab)
	w.bool("config.adjust_window_size_when_changing_font_size", g.AdjustWindowSizeWhenChangingFontSize)
	w.blank()
}

func writeCommandPalette(w *writer, p *schema.CommandPaletteSettings) {
	w.line("-- Command palette")
	w.str("config.command_palette_fg_color", p.FgColor)
	w.str("config.command_palette_bg_color", p.BgColor)
	w.num("config.command_palette_font_size", p.FontSize)
	w.blank()
}

func writeVisualBell(w *writer, v *schema.VisualBellSettings) {
	w.line("-- Visual bell")
	w.line("config.visual_bell = {}")
	w.int("config.visual_bell.fade_in_duration_ms", v.FadeInDurationMs)
	w.int("config.visual_bell.fade_out_duration_ms", v.FadeOutDurationMs)
	w.str("config.visual_bell.fade_in_function", string(v.FadeInFunction))
	w.str("config.visual_bell.fade_out_function", string(v.FadeOutFunction))
	w.str("config.visual_bell.target", v.Target)
	w.blank()
}

func writeBackdrop(w *writer, b *schema.BackdropSettings) {
	if !b.Enabled || len(b.Images) == 0 {
		return
	}
	idx := b.CurrentIndex
	if idx < 0 || idx >= len(b.Images) {
		idx = 0
	}
	image := b.Images[idx]
	if !filepath.IsAbs(image) && b.ImagesDir != "" {
		image = filepath.Join(b.ImagesDir, image)
	}
	// The overlay opacity maps to how far the image is dimmed.
	brightness := math.Round((1-b.OverlayOpacity)*1000) / 1000
	w.line("-- Backdrop")
	w.str("config.window_background_image", image)
	w.line("config.window_background_image_hsb = {}")
	w.num("config.window_background_image_hsb.brightness", brightness)
	w.blank()
}

package extract

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/weztui/internal/config/schema"
)

// evalTimeout bounds the sandboxed run. Configs are expected to be
// near-instant; anything longer is a loop we do not want to wait on.
const evalTimeout = 500 * time.Millisecond

// evalContent executes the config in a sandboxed Lua state and copies
// recognized fields out of the resulting table. It recovers values the text
// patterns cannot see, such as computed expressions or table constructors.
// Pattern extraction runs afterward and overwrites anything it matches.
func evalContent(content string, cfg *schema.Config) (err error) {
	// The sandboxed state can raise rather than return on setup mistakes;
	// extraction must degrade to a warning, never crash the caller.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("eval: %v", r)
		}
	}()

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// No loading more code, no stdout noise.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "print"} {
		L.SetGlobal(name, lua.LNil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()
	L.SetContext(ctx)

	// The package library is not opened, so require is replaced wholesale
	// instead of preloading a module through it.
	wez := newWeztermStub(L)
	L.SetGlobal("wezterm", wez)
	L.SetGlobal("require", L.NewFunction(func(L *lua.LState) int {
		if L.CheckString(1) == "wezterm" {
			L.Push(wez)
		} else {
			L.Push(permissiveValue(L))
		}
		return 1
	}))

	fn, err := L.LoadString(content)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	ret := L.Get(-1)
	L.Pop(1)
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		// Older configs assign to a global instead of returning.
		tbl, ok = L.GetGlobal("config").(*lua.LTable)
		if !ok {
			return nil
		}
	}
	readConfigTable(tbl, cfg)
	return nil
}

// newWeztermStub builds a stand-in for the wezterm module with just enough
// surface for typical configs to run. Font constructors return tables
// readConfigTable understands; every other field resolves to a permissive
// stub so action and event wiring is inert.
func newWeztermStub(L *lua.LState) *lua.LTable {
	wez := L.NewTable()

	L.SetField(wez, "config_builder", L.NewFunction(func(L *lua.LState) int {
		t := L.NewTable()
		mt := L.NewTable()
		// Tolerate method calls like config:set_strict_mode(true).
		L.SetField(mt, "__index", L.NewFunction(func(L *lua.LState) int {
			L.Push(permissiveValue(L))
			return 1
		}))
		L.SetMetatable(t, mt)
		L.Push(t)
		return 1
	}))

	L.SetField(wez, "font", L.NewFunction(func(L *lua.LState) int {
		out := L.NewTable()
		switch arg := L.Get(1).(type) {
		case lua.LString:
			out.RawSetString("family", arg)
			if attrs, ok := L.Get(2).(*lua.LTable); ok {
				out.RawSetString("weight", attrs.RawGetString("weight"))
			}
		case *lua.LTable:
			out.RawSetString("family", arg.RawGetString("family"))
			out.RawSetString("weight", arg.RawGetString("weight"))
		}
		L.Push(out)
		return 1
	}))

	L.SetField(wez, "font_with_fallback", L.NewFunction(func(L *lua.LState) int {
		out := L.NewTable()
		if list, ok := L.Get(1).(*lua.LTable); ok {
			switch first := list.RawGetInt(1).(type) {
			case lua.LString:
				out.RawSetString("family", first)
			case *lua.LTable:
				out.RawSetString("family", first.RawGetString("family"))
			}
		}
		L.Push(out)
		return 1
	}))

	mt := L.NewTable()
	L.SetField(mt, "__index", L.NewFunction(func(L *lua.LState) int {
		L.Push(permissiveValue(L))
		return 1
	}))
	L.SetMetatable(wez, mt)
	return wez
}

// permissiveValue returns a table that yields another permissive value when
// indexed or called, so chains like wezterm.action.ActivateTab(1) evaluate
// without error.
func permissiveValue(L *lua.LState) *lua.LTable {
	t := L.NewTable()
	mt := L.NewTable()
	L.SetField(mt, "__index", L.NewFunction(func(L *lua.LState) int {
		L.Push(permissiveValue(L))
		return 1
	}))
	L.SetField(mt, "__call", L.NewFunction(func(L *lua.LState) int {
		L.Push(permissiveValue(L))
		return 1
	}))
	L.SetMetatable(t, mt)
	return t
}

// readConfigTable copies the fields the editor models out of an evaluated
// config table. It reads the same key set the pattern rules match so the two
// stages agree on coverage.
func readConfigTable(t *lua.LTable, cfg *schema.Config) {
	if s, ok := tblStr(t, "color_scheme"); ok {
		cfg.SchemeName = s
	}
	if colors, ok := subTable(t, "colors"); ok {
		readColors(colors, cfg)
	}
	readFonts(t, cfg)
	readWindow(t, cfg)
	readCursor(t, cfg)
	readGPU(t, cfg)
}

func readColors(t *lua.LTable, cfg *schema.Config) {
	setStr(t, "foreground", &cfg.Colors.Foreground)
	setStr(t, "background", &cfg.Colors.Background)
	setStr(t, "cursor_bg", &cfg.Colors.CursorBg)
	setStr(t, "cursor_border", &cfg.Colors.CursorBorder)
	setStr(t, "cursor_fg", &cfg.Colors.CursorFg)
	setStr(t, "selection_bg", &cfg.Colors.SelectionBg)
	setStr(t, "selection_fg", &cfg.Colors.SelectionFg)
	readPalette(t, "ansi", &cfg.Colors.Ansi)
	readPalette(t, "brights", &cfg.Colors.Brights)

	tabBar, ok := subTable(t, "tab_bar")
	if !ok {
		return
	}
	setStr(tabBar, "background", &cfg.Colors.TabBar.Background)
	readTabColors(tabBar, "active_tab", &cfg.Colors.TabBar.ActiveTab)
	readTabColors(tabBar, "inactive_tab", &cfg.Colors.TabBar.InactiveTab)
	readTabColors(tabBar, "inactive_tab_hover", &cfg.Colors.TabBar.InactiveTabHover)
	readTabColors(tabBar, "new_tab", &cfg.Colors.TabBar.NewTab)
	readTabColors(tabBar, "new_tab_hover", &cfg.Colors.TabBar.NewTabHover)
}

func readTabColors(t *lua.LTable, key string, dst *schema.TabColors) {
	sub, ok := subTable(t, key)
	if !ok {
		return
	}
	setStr(sub, "bg_color", &dst.BgColor)
	setStr(sub, "fg_color", &dst.FgColor)
}

func readPalette(t *lua.LTable, key string, dst *[8]string) {
	sub, ok := subTable(t, key)
	if !ok {
		return
	}
	var list []string
	sub.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok {
			list = append(list, string(s))
		}
	})
	if len(list) == len(dst) {
		copy(dst[:], list)
	}
}

func readFonts(t *lua.LTable, cfg *schema.Config) {
	setNum(t, "font_size", &cfg.Fonts.Size)
	if font, ok := subTable(t, "font"); ok {
		setStr(font, "family", &cfg.Fonts.Family)
		if s, ok := tblStr(font, "weight"); ok {
			cfg.Fonts.Weight, _ = schema.ParseFontWeight(s)
		}
	}
	if s, ok := tblStr(t, "freetype_load_target"); ok {
		cfg.Fonts.LoadTarget, _ = schema.ParseFreetypeTarget(s)
	}
	if s, ok := tblStr(t, "freetype_render_target"); ok {
		cfg.Fonts.RenderTarget, _ = schema.ParseFreetypeTarget(s)
	}
}

func readWindow(t *lua.LTable, cfg *schema.Config) {
	setNum(t, "window_background_opacity", &cfg.Window.BackgroundOpacity)
	if s, ok := tblStr(t, "window_decorations"); ok {
		d, ok := schema.ParseWindowDecorations(s)
		if !ok {
			d = schema.DefaultDecorations
		}
		cfg.Window.Decorations = d
	}
	setBool(t, "enable_tab_bar", &cfg.Window.EnableTabBar)
	setBool(t, "hide_tab_bar_if_only_one_tab", &cfg.Window.HideTabBarIfOnlyOneTab)
	setBool(t, "use_fancy_tab_bar", &cfg.Window.UseFancyTabBar)
	setBool(t, "show_tab_index_in_tab_bar", &cfg.Window.ShowTabIndexInTabBar)
	setInt(t, "tab_max_width", &cfg.Window.TabMaxWidth)

	if pad, ok := subTable(t, "window_padding"); ok {
		setNum(pad, "left", &cfg.Window.Padding.Left)
		setNum(pad, "right", &cfg.Window.Padding.Right)
		setNum(pad, "top", &cfg.Window.Padding.Top)
		setNum(pad, "bottom", &cfg.Window.Padding.Bottom)
	}
	if hsb, ok := subTable(t, "inactive_pane_hsb"); ok {
		setNum(hsb, "hue", &cfg.Window.InactivePaneHSB.Hue)
		setNum(hsb, "saturation", &cfg.Window.InactivePaneHSB.Saturation)
		setNum(hsb, "brightness", &cfg.Window.InactivePaneHSB.Brightness)
	}
	if s, ok := tblStr(t, "window_close_confirmation"); ok {
		cc, ok := schema.ParseCloseConfirmation(s)
		if !ok {
			cc = schema.DefaultCloseConfirmation
		}
		cfg.Window.CloseConfirmation = cc
	}
}

func readCursor(t *lua.LTable, cfg *schema.Config) {
	if s, ok := tblStr(t, "default_cursor_style"); ok {
		st, ok := schema.ParseCursorStyle(s)
		if !ok {
			st = schema.DefaultCursorStyle
		}
		cfg.Cursor.Style = st
	}
	setInt(t, "cursor_blink_rate", &cfg.Cursor.BlinkRate)
	if s, ok := tblStr(t, "cursor_blink_ease_in"); ok {
		e, ok := schema.ParseEaseFunction(s)
		if !ok {
			e = schema.DefaultEase
		}
		cfg.Cursor.BlinkEaseIn = e
	}
	if s, ok := tblStr(t, "cursor_blink_ease_out"); ok {
		e, ok := schema.ParseEaseFunction(s)
		if !ok {
			e = schema.DefaultEase
		}
		cfg.Cursor.BlinkEaseOut = e
	}
	setInt(t, "animation_fps", &cfg.Cursor.AnimationFPS)
}

func readGPU(t *lua.LTable, cfg *schema.Config) {
	if s, ok := tblStr(t, "front_end"); ok {
		f, ok := schema.ParseFrontEnd(s)
		if !ok {
			f = schema.DefaultFrontEnd
		}
		cfg.GPU.FrontEnd = f
	}
	if s, ok := tblStr(t, "webgpu_power_preference"); ok {
		p, ok := schema.ParsePowerPreference(s)
		if !ok {
			p = schema.DefaultPowerPreference
		}
		cfg.GPU.PowerPreference = p
	}
	setInt(t, "max_fps", &cfg.GPU.MaxFPS)
}

func tblStr(t *lua.LTable, key string) (string, bool) {
	if s, ok := t.RawGetString(key).(lua.LString); ok {
		return string(s), true
	}
	return "", false
}

func tblNum(t *lua.LTable, key string) (float64, bool) {
	if n, ok := t.RawGetString(key).(lua.LNumber); ok {
		return float64(n), true
	}
	return 0, false
}

func subTable(t *lua.LTable, key string) (*lua.LTable, bool) {
	sub, ok := t.RawGetString(key).(*lua.LTable)
	return sub, ok
}

func setStr(t *lua.LTable, key string, dst *string) {
	if s, ok := tblStr(t, key); ok {
		*dst = s
	}
}

func setNum(t *lua.LTable, key string, dst *float64) {
	if n, ok := tblNum(t, key); ok {
		*dst = n
	}
}

func setInt(t *lua.LTable, key string, dst *int) {
	if n, ok := tblNum(t, key); ok {
		*dst = int(n)
	}
}

func setBool(t *lua.LTable, key string, dst *bool) {
	if b, ok := t.RawGetString(key).(lua.LBool); ok {
		*dst = bool(b)
	}
}

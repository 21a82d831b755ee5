package luagen

import "github.com/dshills/weztui/internal/config/schema"

// keyEntry pairs a binding with the action expression it emits. Disabled
// bindings are skipped, not commented out.
type keyEntry struct {
	binding schema.KeyBinding
	action  string
}

const renameTabAction = `act.PromptInputLine {
      description = "Rename tab",
      action = wezterm.action_callback(function(window, pane, line)
        if line then
          window:active_tab():set_title(line)
        end
      end),
    }`

const quickSelectURLAction = `act.QuickSelectArgs {
      label = "open url",
      patterns = { "https?://\\S+" },
      action = wezterm.action_callback(function(window, pane)
        local url = window:get_selection_text_for_pane(pane)
        wezterm.open_with(url)
      end),
    }`

const shrinkWindowAction = `wezterm.action_callback(function(window, pane)
      local dims = window:get_dimensions()
      window:set_inner_size(dims.pixel_width - 50, dims.pixel_height - 50)
    end)`

const growWindowAction = `wezterm.action_callback(function(window, pane)
      local dims = window:get_dimensions()
      window:set_inner_size(dims.pixel_width + 50, dims.pixel_height + 50)
    end)`

const maximizeWindowAction = `wezterm.action_callback(function(window, pane)
      window:maximize()
    end)`

func keyEntries(k *schema.KeybindingsSettings) []keyEntry {
	return []keyEntry{
		{k.Misc.CopyMode, "act.ActivateCopyMode"},
		{k.Misc.CommandPalette, "act.ActivateCommandPalette"},
		{k.Misc.CommandPaletteAlt, "act.ActivateCommandPalette"},
		{k.Misc.ShowLauncher, "act.ShowLauncher"},
		{k.Misc.ShowTabLauncher, `act.ShowLauncherArgs { flags = "FUZZY|TABS" }`},
		{k.Misc.ShowWorkspaceLauncher, `act.ShowLauncherArgs { flags = "FUZZY|WORKSPACES" }`},
		{k.Misc.ToggleFullscreen, "act.ToggleFullScreen"},
		{k.Misc.ShowDebugOverlay, "act.ShowDebugOverlay"},
		{k.Misc.Search, `act.Search { CaseInSensitiveString = "" }`},
		{k.Misc.QuickSelectURL, quickSelectURLAction},

		{k.CopyPaste.Copy, `act.CopyTo("Clipboard")`},
		{k.CopyPaste.Paste, `act.PasteFrom("Clipboard")`},
		{k.CopyPaste.CopySimple, `act.CopyTo("Clipboard")`},
		{k.CopyPaste.PasteSimple, `act.PasteFrom("Clipboard")`},

		{k.Tabs.SpawnTab, `act.SpawnTab("DefaultDomain")`},
		{k.Tabs.SpawnTabWSL, `act.SpawnTab { DomainName = "WSL:Ubuntu" }`},
		{k.Tabs.CloseTab, "act.CloseCurrentTab { confirm = true }"},
		{k.Tabs.NextTab, "act.ActivateTabRelative(1)"},
		{k.Tabs.PrevTab, "act.ActivateTabRelative(-1)"},
		{k.Tabs.MoveTabForward, "act.MoveTabRelative(1)"},
		{k.Tabs.MoveTabBack, "act.MoveTabRelative(-1)"},
		{k.Tabs.RenameTab, renameTabAction},
		{k.Tabs.ManualUpdateTitle, `act.EmitEvent("tabs.manual-update-tab-title")`},
		{k.Tabs.ResetTitle, `act.EmitEvent("tabs.reset-tab-title")`},
		{k.Tabs.ToggleTabBar, `act.EmitEvent("tabs.toggle-tab-bar")`},

		{k.Windows.SpawnWindow, "act.SpawnWindow"},
		{k.Windows.ShrinkWindow, shrinkWindowAction},
		{k.Windows.GrowWindow, growWindowAction},
		{k.Windows.MaximizeWindow, maximizeWindowAction},

		{k.Panes.SplitVertical, `act.SplitVertical { domain = "CurrentPaneDomain" }`},
		{k.Panes.SplitHorizontal, `act.SplitHorizontal { domain = "CurrentPaneDomain" }`},
		{k.Panes.ToggleZoom, "act.TogglePaneZoomState"},
		{k.Panes.ClosePane, "act.CloseCurrentPane { confirm = true }"},
		{k.Panes.NavUp, `act.ActivatePaneDirection("Up")`},
		{k.Panes.NavDown, `act.ActivatePaneDirection("Down")`},
		{k.Panes.NavLeft, `act.ActivatePaneDirection("Left")`},
		{k.Panes.NavRight, `act.ActivatePaneDirection("Right")`},
		{k.Panes.SwapPane, `act.PaneSelect { mode = "SwapWithActive" }`},
		{k.Panes.ScrollUp, "act.ScrollByLine(-5)"},
		{k.Panes.ScrollDown, "act.ScrollByLine(5)"},
		{k.Panes.PageUp, "act.ScrollByPage(-0.75)"},
		{k.Panes.PageDown, "act.ScrollByPage(0.75)"},

		{k.Backdrops.Random, `act.EmitEvent("backdrops.random")`},
		{k.Backdrops.CycleBack, `act.EmitEvent("backdrops.cycle-back")`},
		{k.Backdrops.CycleForward, `act.EmitEvent("backdrops.cycle-forward")`},
		{k.Backdrops.Select, `act.EmitEvent("backdrops.select")`},
		{k.Backdrops.ToggleFocus, `act.EmitEvent("backdrops.toggle-focus")`},

		{k.Cursor.Home, `act.SendKey { key = "Home" }`},
		{k.Cursor.End, `act.SendKey { key = "End" }`},
		{k.Cursor.DeleteLine, `act.SendString("\21")`},
		{k.Cursor.Newline, `act.SendString("\n")`},

		{k.KeyTables.ResizeFontMode, `act.ActivateKeyTable { name = "resize_font", one_shot = false }`},
		{k.KeyTables.ResizePaneMode, `act.ActivateKeyTable { name = "resize_pane", one_shot = false }`},
	}
}

func writeKeybindings(w *writer, k *schema.KeybindingsSettings) {
	w.line("-- Keybindings")
	w.bool("config.disable_default_key_bindings", k.DisableDefaults)
	if k.Leader.Enabled {
		w.line("config.leader = { key = %s, mods = %s, timeout_milliseconds = %d }",
			luaQuote(k.Leader.Key), luaQuote(k.Leader.Mods), k.Leader.TimeoutMs)
	}

	w.line("config.keys = {")
	for _, e := range keyEntries(k) {
		if !e.binding.Enabled {
			continue
		}
		w.line("  { key = %s, mods = %s, action = %s },",
			luaQuote(e.binding.Key), luaQuote(e.binding.Mods), e.action)
	}
	w.line("}")

	writeKeyTables(w, k)
	writeMouseBindings(w, &k.Mouse)
	w.blank()
}

func writeKeyTables(w *writer, k *schema.KeybindingsSettings) {
	if !k.KeyTables.ResizeFontMode.Enabled && !k.KeyTables.ResizePaneMode.Enabled {
		return
	}
	w.line("config.key_tables = {")
	if k.KeyTables.ResizeFontMode.Enabled {
		w.line("  resize_font = {")
		w.line("    { key = \"k\", action = act.IncreaseFontSize },")
		w.line("    { key = \"j\", action = act.DecreaseFontSize },")
		w.line("    { key = \"r\", action = act.ResetFontSize },")
		w.line("    { key = \"Escape\", action = \"PopKeyTable\" },")
		w.line("    { key = \"q\", action = \"PopKeyTable\" },")
		w.line("  },")
	}
	if k.KeyTables.ResizePaneMode.Enabled {
		w.line("  resize_pane = {")
		w.line("    { key = \"k\", action = act.AdjustPaneSize({ \"Up\", 1 }) },")
		w.line("    { key = \"j\", action = act.AdjustPaneSize({ \"Down\", 1 }) },")
		w.line("    { key = \"h\", action = act.AdjustPaneSize({ \"Left\", 1 }) },")
		w.line("    { key = \"l\", action = act.AdjustPaneSize({ \"Right\", 1 }) },")
		w.line("    { key = \"Escape\", action = \"PopKeyTable\" },")
		w.line("    { key = \"q\", action = \"PopKeyTable\" },")
		w.line("  },")
	}
	w.line("}")
}

func writeMouseBindings(w *writer, m *schema.MouseBindings) {
	if !m.CtrlClickOpenLink && !m.RightClickCommandPalette {
		return
	}
	w.line("config.mouse_bindings = {")
	if m.CtrlClickOpenLink {
		w.line(`  { event = { Up = { streak = 1, button = "Left" } }, mods = "CTRL", action = act.OpenLinkAtMouseCursor },`)
	}
	if m.RightClickCommandPalette {
		w.line(`  { event = { Down = { streak = 1, button = "Right" } }, mods = "NONE", action = act.ActivateCommandPalette },`)
	}
	w.line("}")
}

func writeCustomCommands(w *writer, k *schema.KeybindingsSettings) {
	cc := k.CustomCommands
	if !cc.SettingsTUI && !cc.RenameTab {
		return
	}
	w.line("-- Command palette additions")
	w.line(`wezterm.on("augment-command-palette", function(window, pane)`)
	w.line("  return {")
	if cc.SettingsTUI {
		w.line("    {")
		w.line(`      brief = "Open settings editor",`)
		w.line(`      icon = "md_cog",`)
		w.line(`      action = act.SpawnCommandInNewWindow { args = { "weztui" } },`)
		w.line("    },")
	}
	if cc.RenameTab {
		w.line("    {")
		w.line(`      brief = "Rename tab",`)
		w.line(`      icon = "md_rename_box",`)
		w.line("      action = %s,", renameTabAction)
		w.line("    },")
	}
	w.line("  }")
	w.line("end)")
	w.blank()
}

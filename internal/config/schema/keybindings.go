package schema

// KeyBinding is one key assignment: a key token plus a modifier mask token
// such as "CTRL|SHIFT", and whether the binding is emitted at all.
type KeyBinding struct {
	Enabled bool   `json:"enabled"`
	Key     string `json:"key"`
	Mods    string `json:"mods"`
}

// NewKeyBinding returns an enabled binding for key and mods.
func NewKeyBinding(key, mods string) KeyBinding {
	return KeyBinding{Enabled: true, Key: key, Mods: mods}
}

// LeaderKey configures the leader key that activates secondary key tables.
type LeaderKey struct {
	Enabled   bool   `json:"enabled"`
	Key       string `json:"key"`
	Mods      string `json:"mods"`
	TimeoutMs int    `json:"timeout_ms"`
}

// MiscBindings are utility bindings.
type MiscBindings struct {
	CopyMode              KeyBinding `json:"copy_mode"`
	CommandPalette        KeyBinding `json:"command_palette"`
	CommandPaletteAlt     KeyBinding `json:"command_palette_alt"`
	ShowLauncher          KeyBinding `json:"show_launcher"`
	ShowTabLauncher       KeyBinding `json:"show_tab_launcher"`
	ShowWorkspaceLauncher KeyBinding `json:"show_workspace_launcher"`
	ToggleFullscreen      KeyBinding `json:"toggle_fullscreen"`
	ShowDebugOverlay      KeyBinding `json:"show_debug_overlay"`
	Search                KeyBinding `json:"search"`
	QuickSelectURL        KeyBinding `json:"quick_select_url"`
}

// CopyPasteBindings are clipboard bindings.
type CopyPasteBindings struct {
	Copy        KeyBinding `json:"copy"`
	Paste       KeyBinding `json:"paste"`
	CopySimple  KeyBinding `json:"copy_simple"`
	PasteSimple KeyBinding `json:"paste_simple"`
}

// TabBindings are tab management bindings.
type TabBindings struct {
	SpawnTab          KeyBinding `json:"spawn_tab"`
	SpawnTabWSL       KeyBinding `json:"spawn_tab_wsl"`
	CloseTab          KeyBinding `json:"close_tab"`
	NextTab           KeyBinding `json:"next_tab"`
	PrevTab           KeyBinding `json:"prev_tab"`
	MoveTabForward    KeyBinding `json:"move_tab_forward"`
	MoveTabBack       KeyBinding `json:"move_tab_back"`
	RenameTab         KeyBinding `json:"rename_tab"`
	ManualUpdateTitle KeyBinding `json:"manual_update_title"`
	ResetTitle        KeyBinding `json:"reset_title"`
	ToggleTabBar      KeyBinding `json:"toggle_tab_bar"`
}

// WindowBindings are window management bindings.
type WindowBindings struct {
	SpawnWindow    KeyBinding `json:"spawn_window"`
	ShrinkWindow   KeyBinding `json:"shrink_window"`
	GrowWindow     KeyBinding `json:"grow_window"`
	MaximizeWindow KeyBinding `json:"maximize_window"`
}

// PaneBindings are pane management bindings.
type PaneBindings struct {
	SplitVertical   KeyBinding `json:"split_vertical"`
	SplitHorizontal KeyBinding `json:"split_horizontal"`
	ToggleZoom      KeyBinding `json:"toggle_zoom"`
	ClosePane       KeyBinding `json:"close_pane"`
	NavUp           KeyBinding `json:"nav_up"`
	NavDown         KeyBinding `json:"nav_down"`
	NavLeft         KeyBinding `json:"nav_left"`
	NavRight        KeyBinding `json:"nav_right"`
	SwapPane        KeyBinding `json:"swap_pane"`
	ScrollUp        KeyBinding `json:"scroll_up"`
	ScrollDown      KeyBinding `json:"scroll_down"`
	PageUp          KeyBinding `json:"page_up"`
	PageDown        KeyBinding `json:"page_down"`
}

// BackdropBindings are background image bindings.
type BackdropBindings struct {
	Random       KeyBinding `json:"random"`
	CycleBack    KeyBinding `json:"cycle_back"`
	CycleForward KeyBinding `json:"cycle_forward"`
	Select       KeyBinding `json:"select"`
	ToggleFocus  KeyBinding `json:"toggle_focus"`
}

// CursorBindings are cursor movement bindings.
type CursorBindings struct {
	Home       KeyBinding `json:"home"`
	End        KeyBinding `json:"end"`
	DeleteLine KeyBinding `json:"delete_line"`
	Newline    KeyBinding `json:"newline"`
}

// KeyTableBindings activate leader-key tables.
type KeyTableBindings struct {
	ResizeFontMode KeyBinding `json:"resize_font_mode"`
	ResizePaneMode KeyBinding `json:"resize_pane_mode"`
}

// MouseBindings are mouse behavior toggles.
type MouseBindings struct {
	CtrlClickOpenLink        bool `json:"ctrl_click_open_link"`
	RightClickCommandPalette bool `json:"right_click_command_palette"`
}

// CustomCommands toggles extra entries in the command palette.
type CustomCommands struct {
	SettingsTUI bool `json:"settings_tui"`
	RenameTab   bool `json:"rename_tab"`
}

// KeybindingsSettings is the complete keybindings configuration.
type KeybindingsSettings struct {
	DisableDefaults bool              `json:"disable_defaults"`
	Leader          LeaderKey         `json:"leader"`
	Misc            MiscBindings      `json:"misc"`
	CopyPaste       CopyPasteBindings `json:"copy_paste"`
	Tabs            TabBindings       `json:"tabs"`
	Windows         WindowBindings    `json:"windows"`
	Panes           PaneBindings      `json:"panes"`
	Backdrops       BackdropBindings  `json:"backdrops"`
	Cursor          CursorBindings    `json:"cursor"`
	KeyTables       KeyTableBindings  `json:"key_tables"`
	Mouse           MouseBindings     `json:"mouse"`
	CustomCommands  CustomCommands    `json:"custom_commands"`
}

// DefaultKeybindingsSettings returns the default keybinding set.
func DefaultKeybindingsSettings() KeybindingsSettings {
	return KeybindingsSettings{
		DisableDefaults: true,
		Leader: LeaderKey{
			Enabled:   true,
			Key:       "Space",
			Mods:      "ALT|CTRL",
			TimeoutMs: 1000,
		},
		Misc: MiscBindings{
			CopyMode:              NewKeyBinding("F1", "NONE"),
			CommandPalette:        NewKeyBinding("F2", "NONE"),
			CommandPaletteAlt:     NewKeyBinding("p", "CTRL|SHIFT"),
			ShowLauncher:          NewKeyBinding("F3", "NONE"),
			ShowTabLauncher:       NewKeyBinding("F4", "NONE"),
			ShowWorkspaceLauncher: NewKeyBinding("F5", "NONE"),
			ToggleFullscreen:      NewKeyBinding("F11", "NONE"),
			ShowDebugOverlay:      NewKeyBinding("F12", "NONE"),
			Search:                NewKeyBinding("f", "ALT"),
			QuickSelectURL:        NewKeyBinding("u", "ALT|CTRL"),
		},
		CopyPaste: CopyPasteBindings{
			Copy:        NewKeyBinding("c", "CTRL|SHIFT"),
			Paste:       NewKeyBinding("v", "CTRL|SHIFT"),
			CopySimple:  NewKeyBinding("c", "CTRL"),
			PasteSimple: NewKeyBinding("v", "CTRL"),
		},
		Tabs: TabBindings{
			SpawnTab:          NewKeyBinding("t", "ALT"),
			SpawnTabWSL:       NewKeyBinding("t", "ALT|CTRL"),
			CloseTab:          NewKeyBinding("w", "ALT|CTRL"),
			NextTab:           NewKeyBinding("]", "ALT"),
			PrevTab:           NewKeyBinding("[", "ALT"),
			MoveTabForward:    NewKeyBinding("]", "ALT|CTRL"),
			MoveTabBack:       NewKeyBinding("[", "ALT|CTRL"),
			RenameTab:         NewKeyBinding("r", "ALT|CTRL"),
			ManualUpdateTitle: NewKeyBinding("0", "ALT"),
			ResetTitle:        NewKeyBinding("0", "ALT|CTRL"),
			ToggleTabBar:      NewKeyBinding("9", "ALT"),
		},
		Windows: WindowBindings{
			SpawnWindow:    NewKeyBinding("n", "ALT"),
			ShrinkWindow:   NewKeyBinding("-", "ALT"),
			GrowWindow:     NewKeyBinding("=", "ALT"),
			MaximizeWindow: NewKeyBinding("Enter", "ALT|CTRL"),
		},
		Panes: PaneBindings{
			SplitVertical:   NewKeyBinding("\\", "ALT"),
			SplitHorizontal: NewKeyBinding("\\", "ALT|CTRL"),
			ToggleZoom:      NewKeyBinding("Enter", "ALT"),
			ClosePane:       NewKeyBinding("w", "ALT"),
			NavUp:           NewKeyBinding("k", "ALT|CTRL"),
			NavDown:         NewKeyBinding("j", "ALT|CTRL"),
			NavLeft:         NewKeyBinding("h", "ALT|CTRL"),
			NavRight:        NewKeyBinding("l", "ALT|CTRL"),
			SwapPane:        NewKeyBinding("p", "ALT|CTRL"),
			ScrollUp:        NewKeyBinding("u", "ALT"),
			ScrollDown:      NewKeyBinding("d", "ALT"),
			PageUp:          NewKeyBinding("PageUp", "NONE"),
			PageDown:        NewKeyBinding("PageDown", "NONE"),
		},
		Backdrops: BackdropBindings{
			Random:       NewKeyBinding("/", "ALT"),
			CycleBack:    NewKeyBinding(",", "ALT"),
			CycleForward: NewKeyBinding(".", "ALT"),
			Select:       NewKeyBinding("/", "ALT|CTRL"),
			ToggleFocus:  NewKeyBinding("b", "ALT"),
		},
		Cursor: CursorBindings{
			Home:       NewKeyBinding("LeftArrow", "ALT"),
			End:        NewKeyBinding("RightArrow", "ALT"),
			DeleteLine: NewKeyBinding("Backspace", "ALT"),
			Newline:    NewKeyBinding("Enter", "SHIFT"),
		},
		KeyTables: KeyTableBindings{
			ResizeFontMode: NewKeyBinding("f", "LEADER"),
			ResizePaneMode: NewKeyBinding("p", "LEADER"),
		},
		Mouse: MouseBindings{
			CtrlClickOpenLink:        true,
			RightClickCommandPalette: true,
		},
		CustomCommands: CustomCommands{
			SettingsTUI: true,
			RenameTab:   true,
		},
	}
}

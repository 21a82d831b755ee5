package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/weztui/internal/config/schema"
)

// Panel identifies one settings category in the sidebar.
type Panel int

// Sidebar order.
const (
	PanelThemes Panel = iota
	PanelColors
	PanelFonts
	PanelWindow
	PanelCursor
	PanelGPU
	PanelKeybindings
)

var panelOrder = []Panel{
	PanelThemes,
	PanelColors,
	PanelFonts,
	PanelWindow,
	PanelCursor,
	PanelGPU,
	PanelKeybindings,
}

// Panels returns the sidebar order.
func Panels() []Panel { return panelOrder }

func (p Panel) Name() string {
	switch p {
	case PanelThemes:
		return "Themes"
	case PanelColors:
		return "Colors"
	case PanelFonts:
		return "Fonts"
	case PanelWindow:
		return "Window"
	case PanelCursor:
		return "Cursor"
	case PanelGPU:
		return "GPU"
	case PanelKeybindings:
		return "Commands"
	default:
		return "Unknown"
	}
}

// Icon returns the Nerd Font glyph shown next to the panel name.
func (p Panel) Icon() string {
	switch p {
	case PanelThemes:
		return "\U000f050e"
	case PanelColors:
		return "\U000f03d8"
	case PanelFonts:
		return "\U000f06d6"
	case PanelWindow:
		return "\U000f05b2"
	case PanelCursor:
		return "\U000f01c0"
	case PanelGPU:
		return "\U000f08ae"
	case PanelKeybindings:
		return "\U000f030c"
	default:
		return "?"
	}
}

// ParsePanel maps a command-line panel name to a Panel.
func ParsePanel(s string) (Panel, bool) {
	switch strings.ToLower(s) {
	case "themes":
		return PanelThemes, true
	case "colors":
		return PanelColors, true
	case "fonts":
		return PanelFonts, true
	case "window":
		return PanelWindow, true
	case "cursor":
		return PanelCursor, true
	case "gpu":
		return PanelGPU, true
	case "keybindings", "commands":
		return PanelKeybindings, true
	default:
		return 0, false
	}
}

// Field is one editable entry in a panel: a label, a textual view of the
// current value, and a setter that validates and applies edited text.
type Field struct {
	Label string
	Get   func(*schema.Config) string
	Set   func(*schema.Config, string) error
}

func colorField(label string, pick func(*schema.Config) *string) Field {
	return Field{
		Label: label,
		Get:   func(c *schema.Config) string { return *pick(c) },
		Set: func(c *schema.Config, v string) error {
			if _, err := colorful.Hex(v); err != nil {
				return fmt.Errorf("%q is not a hex color", v)
			}
			*pick(c) = v
			return nil
		},
	}
}

func floatField(label string, pick func(*schema.Config) *float64) Field {
	return Field{
		Label: label,
		Get:   func(c *schema.Config) string { return strconv.FormatFloat(*pick(c), 'f', -1, 64) },
		Set: func(c *schema.Config, v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return fmt.Errorf("%q is not a number", v)
			}
			*pick(c) = f
			return nil
		},
	}
}

func intField(label string, pick func(*schema.Config) *int) Field {
	return Field{
		Label: label,
		Get:   func(c *schema.Config) string { return strconv.Itoa(*pick(c)) },
		Set: func(c *schema.Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%q is not an integer", v)
			}
			*pick(c) = n
			return nil
		},
	}
}

func boolField(label string, pick func(*schema.Config) *bool) Field {
	return Field{
		Label: label,
		Get:   func(c *schema.Config) string { return strconv.FormatBool(*pick(c)) },
		Set: func(c *schema.Config, v string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%q is not true or false", v)
			}
			*pick(c) = b
			return nil
		},
	}
}

// enumField validates edited text against a parse function before applying.
func enumField[T ~string](label string, pick func(*schema.Config) *T, parse func(string) (T, bool)) Field {
	return Field{
		Label: label,
		Get:   func(c *schema.Config) string { return string(*pick(c)) },
		Set: func(c *schema.Config, v string) error {
			parsed, ok := parse(strings.TrimSpace(v))
			if !ok {
				return fmt.Errorf("%q is not a recognized value", v)
			}
			*pick(c) = parsed
			return nil
		},
	}
}

func colorsFields() []Field {
	fields := []Field{
		colorField("Foreground", func(c *schema.Config) *string { return &c.Colors.Foreground }),
		colorField("Background", func(c *schema.Config) *string { return &c.Colors.Background }),
		colorField("Cursor Bg", func(c *schema.Config) *string { return &c.Colors.CursorBg }),
		colorField("Cursor Border", func(c *schema.Config) *string { return &c.Colors.CursorBorder }),
		colorField("Cursor Fg", func(c *schema.Config) *string { return &c.Colors.CursorFg }),
		colorField("Selection Bg", func(c *schema.Config) *string { return &c.Colors.SelectionBg }),
		colorField("Selection Fg", func(c *schema.Config) *string { return &c.Colors.SelectionFg }),
	}
	ansiNames := []string{"Black", "Red", "Green", "Yellow", "Blue", "Magenta", "Cyan", "White"}
	for i, name := range ansiNames {
		i := i
		fields = append(fields, colorField("Ansi "+name, func(c *schema.Config) *string { return &c.Colors.Ansi[i] }))
	}
	for i, name := range ansiNames {
		i := i
		fields = append(fields, colorField("Bright "+name, func(c *schema.Config) *string { return &c.Colors.Brights[i] }))
	}
	return fields
}

func fontsFields() []Field {
	return []Field{
		{
			Label: "Family",
			Get:   func(c *schema.Config) string { return c.Fonts.Family },
			Set: func(c *schema.Config, v string) error {
				c.Fonts.Family = strings.TrimSpace(v)
				return nil
			},
		},
		floatField("Size", func(c *schema.Config) *float64 { return &c.Fonts.Size }),
		{
			Label: "Weight",
			Get:   func(c *schema.Config) string { return string(c.Fonts.Weight) },
			Set: func(c *schema.Config, v string) error {
				v = strings.TrimSpace(v)
				if v == "" {
					c.Fonts.Weight = ""
					return nil
				}
				w, ok := schema.ParseFontWeight(v)
				if !ok {
					return fmt.Errorf("%q is not a font weight", v)
				}
				c.Fonts.Weight = w
				return nil
			},
		},
		enumField("Load Target", func(c *schema.Config) *schema.FreetypeTarget { return &c.Fonts.LoadTarget }, schema.ParseFreetypeTarget),
		enumField("Render Target", func(c *schema.Config) *schema.FreetypeTarget { return &c.Fonts.RenderTarget }, schema.ParseFreetypeTarget),
	}
}

func windowFields() []Field {
	return []Field{
		floatField("Opacity", func(c *schema.Config) *float64 { return &c.Window.BackgroundOpacity }),
		enumField("Decorations", func(c *schema.Config) *schema.WindowDecorations { return &c.Window.Decorations }, schema.ParseWindowDecorations),
		floatField("Padding Left", func(c *schema.Config) *float64 { return &c.Window.Padding.Left }),
		floatField("Padding Right", func(c *schema.Config) *float64 { return &c.Window.Padding.Right }),
		floatField("Padding Top", func(c *schema.Config) *float64 { return &c.Window.Padding.Top }),
		floatField("Padding Bottom", func(c *schema.Config) *float64 { return &c.Window.Padding.Bottom }),
		boolField("Tab Bar", func(c *schema.Config) *bool { return &c.Window.EnableTabBar }),
		boolField("Hide Tab Bar If Single", func(c *schema.Config) *bool { return &c.Window.HideTabBarIfOnlyOneTab }),
		boolField("Fancy Tab Bar", func(c *schema.Config) *bool { return &c.Window.UseFancyTabBar }),
		intField("Tab Max Width", func(c *schema.Config) *int { return &c.Window.TabMaxWidth }),
	}
}

func cursorFields() []Field {
	return []Field{
		enumField("Style", func(c *schema.Config) *schema.CursorStyle { return &c.Cursor.Style }, schema.ParseCursorStyle),
		intField("Blink Rate (ms)", func(c *schema.Config) *int { return &c.Cursor.BlinkRate }),
		enumField("Blink Ease In", func(c *schema.Config) *schema.EaseFunction { return &c.Cursor.BlinkEaseIn }, schema.ParseEaseFunction),
		enumField("Blink Ease Out", func(c *schema.Config) *schema.EaseFunction { return &c.Cursor.BlinkEaseOut }, schema.ParseEaseFunction),
		intField("Animation FPS", func(c *schema.Config) *int { return &c.Cursor.AnimationFPS }),
	}
}

func gpuFields() []Field {
	return []Field{
		enumField("Front End", func(c *schema.Config) *schema.FrontEnd { return &c.GPU.FrontEnd }, schema.ParseFrontEnd),
		enumField("Power Preference", func(c *schema.Config) *schema.PowerPreference { return &c.GPU.PowerPreference }, schema.ParsePowerPreference),
		intField("Max FPS", func(c *schema.Config) *int { return &c.GPU.MaxFPS }),
	}
}

// keybindingToggles maps Keybindings panel field indexes (1-based) to the
// flags they flip, with the label used in the status message.
type keybindingToggle struct {
	Label string
	Flag  func(*schema.Config) *bool
}

var keybindingToggles = []keybindingToggle{
	{"Settings editor in command palette", func(c *schema.Config) *bool { return &c.Keybindings.CustomCommands.SettingsTUI }},
	{"Rename Tab in command palette", func(c *schema.Config) *bool { return &c.Keybindings.CustomCommands.RenameTab }},
	{"Ctrl+Click open link", func(c *schema.Config) *bool { return &c.Keybindings.Mouse.CtrlClickOpenLink }},
	{"Right-click command palette", func(c *schema.Config) *bool { return &c.Keybindings.Mouse.RightClickCommandPalette }},
	{"Disable default keybindings", func(c *schema.Config) *bool { return &c.Keybindings.DisableDefaults }},
	{"Leader key", func(c *schema.Config) *bool { return &c.Keybindings.Leader.Enabled }},
}

var panelFields = map[Panel][]Field{
	PanelColors: colorsFields(),
	PanelFonts:  fontsFields(),
	PanelWindow: windowFields(),
	PanelCursor: cursorFields(),
	PanelGPU:    gpuFields(),
}

// Fields returns the field table for p. Themes and Keybindings have no
// text-editable fields; they return nil.
func Fields(p Panel) []Field { return panelFields[p] }

// ToggleState is a read-only view of one Keybindings toggle, for rendering.
type ToggleState struct {
	Label string
	On    bool
}

// ToggleStates reports the Keybindings toggles in field order.
func ToggleStates(c *schema.Config) []ToggleState {
	states := make([]ToggleState, len(keybindingToggles))
	for i, t := range keybindingToggles {
		states[i] = ToggleState{Label: t.Label, On: *t.Flag(c)}
	}
	return states
}

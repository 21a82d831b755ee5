package schema

import "strings"

// Enumerated settings are closed sets of string literals matching what
// WezTerm accepts in wezterm.lua. Each enum has a ParseX function backed by
// a literal-to-variant table; the boolean result distinguishes "unrecognized
// literal" from a valid variant so callers can apply the documented default.
// Absence of a key is a separate condition: Parse is never called for it.

// FontWeight is a named font weight. The zero value means "not set".
type FontWeight string

// Font weights accepted by WezTerm.
const (
	WeightThin       FontWeight = "Thin"
	WeightExtraLight FontWeight = "ExtraLight"
	WeightLight      FontWeight = "Light"
	WeightRegular    FontWeight = "Regular"
	WeightMedium     FontWeight = "Medium"
	WeightDemiBold   FontWeight = "DemiBold"
	WeightBold       FontWeight = "Bold"
	WeightExtraBold  FontWeight = "ExtraBold"
	WeightBlack      FontWeight = "Black"
)

var fontWeights = map[string]FontWeight{
	"thin":        WeightThin,
	"extralight":  WeightExtraLight,
	"extra-light": WeightExtraLight,
	"light":       WeightLight,
	"regular":     WeightRegular,
	"normal":      WeightRegular,
	"medium":      WeightMedium,
	"demibold":    WeightDemiBold,
	"demi-bold":   WeightDemiBold,
	"semibold":    WeightDemiBold,
	"semi-bold":   WeightDemiBold,
	"bold":        WeightBold,
	"extrabold":   WeightExtraBold,
	"extra-bold":  WeightExtraBold,
	"black":       WeightBlack,
	"heavy":       WeightBlack,
}

// ParseFontWeight maps a literal to a font weight. Matching is
// case-insensitive and accepts common aliases (normal, semibold, heavy).
func ParseFontWeight(s string) (FontWeight, bool) {
	w, ok := fontWeights[strings.ToLower(s)]
	return w, ok
}

// FreetypeTarget selects a freetype hinting target. The zero value means
// "not set".
type FreetypeTarget string

// Freetype hinting targets.
const (
	FreetypeNormal        FreetypeTarget = "Normal"
	FreetypeLight         FreetypeTarget = "Light"
	FreetypeMono          FreetypeTarget = "Mono"
	FreetypeHorizontalLcd FreetypeTarget = "HorizontalLcd"
)

var freetypeTargets = map[string]FreetypeTarget{
	"normal":         FreetypeNormal,
	"light":          FreetypeLight,
	"mono":           FreetypeMono,
	"horizontallcd":  FreetypeHorizontalLcd,
	"horizontal_lcd": FreetypeHorizontalLcd,
}

// ParseFreetypeTarget maps a literal to a hinting target, case-insensitively.
func ParseFreetypeTarget(s string) (FreetypeTarget, bool) {
	t, ok := freetypeTargets[strings.ToLower(s)]
	return t, ok
}

// WindowDecorations selects the window chrome mode.
type WindowDecorations string

// Window decoration modes. DecorationsIntegratedButtonsResize is the
// compound "INTEGRATED_BUTTONS|RESIZE" mode.
const (
	DecorationsFull                    WindowDecorations = "FULL"
	DecorationsResize                  WindowDecorations = "RESIZE"
	DecorationsNone                    WindowDecorations = "NONE"
	DecorationsTitle                   WindowDecorations = "TITLE"
	DecorationsIntegratedButtonsResize WindowDecorations = "INTEGRATED_BUTTONS|RESIZE"
)

// DefaultDecorations is the fallback for unrecognized decoration literals.
const DefaultDecorations = DecorationsFull

var windowDecorations = map[string]WindowDecorations{
	"FULL":                      DecorationsFull,
	"RESIZE":                    DecorationsResize,
	"NONE":                      DecorationsNone,
	"TITLE":                     DecorationsTitle,
	"INTEGRATED_BUTTONS|RESIZE": DecorationsIntegratedButtonsResize,
}

// ParseWindowDecorations maps a literal to a decorations mode. Matching is
// case-insensitive against the upper-cased literal.
func ParseWindowDecorations(s string) (WindowDecorations, bool) {
	d, ok := windowDecorations[strings.ToUpper(s)]
	return d, ok
}

// CloseConfirmation controls the quit confirmation prompt.
type CloseConfirmation string

// Close confirmation modes.
const (
	AlwaysPrompt CloseConfirmation = "AlwaysPrompt"
	NeverPrompt  CloseConfirmation = "NeverPrompt"
)

// DefaultCloseConfirmation is the fallback for unrecognized literals. An
// unknown literal and an explicit "NeverPrompt" are indistinguishable after
// decoding.
const DefaultCloseConfirmation = NeverPrompt

// ParseCloseConfirmation maps a literal to a close confirmation mode.
func ParseCloseConfirmation(s string) (CloseConfirmation, bool) {
	switch s {
	case "AlwaysPrompt":
		return AlwaysPrompt, true
	case "NeverPrompt":
		return NeverPrompt, true
	}
	return "", false
}

// CursorStyle is the terminal cursor shape and blink behavior.
type CursorStyle string

// Cursor styles: steady/blinking crossed with block/underline/bar.
const (
	SteadyBlock       CursorStyle = "SteadyBlock"
	BlinkingBlock     CursorStyle = "BlinkingBlock"
	SteadyUnderline   CursorStyle = "SteadyUnderline"
	BlinkingUnderline CursorStyle = "BlinkingUnderline"
	SteadyBar         CursorStyle = "SteadyBar"
	BlinkingBar       CursorStyle = "BlinkingBar"
)

// DefaultCursorStyle is the fallback for unrecognized literals.
const DefaultCursorStyle = BlinkingBlock

var cursorStyles = map[string]CursorStyle{
	"SteadyBlock":       SteadyBlock,
	"BlinkingBlock":     BlinkingBlock,
	"SteadyUnderline":   SteadyUnderline,
	"BlinkingUnderline": BlinkingUnderline,
	"SteadyBar":         SteadyBar,
	"BlinkingBar":       BlinkingBar,
}

// ParseCursorStyle maps a literal to a cursor style.
func ParseCursorStyle(s string) (CursorStyle, bool) {
	c, ok := cursorStyles[s]
	return c, ok
}

// EaseFunction is an animation easing curve.
type EaseFunction string

// Easing functions.
const (
	EaseLinear   EaseFunction = "Linear"
	EaseIn       EaseFunction = "EaseIn"
	EaseOut      EaseFunction = "EaseOut"
	EaseInOut    EaseFunction = "EaseInOut"
	EaseConstant EaseFunction = "Constant"
)

// DefaultEase is the fallback for unrecognized easing literals.
const DefaultEase = EaseOut

var easeFunctions = map[string]EaseFunction{
	"Linear":    EaseLinear,
	"EaseIn":    EaseIn,
	"EaseOut":   EaseOut,
	"EaseInOut": EaseInOut,
	"Constant":  EaseConstant,
}

// ParseEaseFunction maps a literal to an easing function.
func ParseEaseFunction(s string) (EaseFunction, bool) {
	e, ok := easeFunctions[s]
	return e, ok
}

// FrontEnd selects the GPU rendering front end.
type FrontEnd string

// Rendering front ends.
const (
	FrontEndWebGpu   FrontEnd = "WebGpu"
	FrontEndOpenGL   FrontEnd = "OpenGL"
	FrontEndSoftware FrontEnd = "Software"
)

// DefaultFrontEnd is the fallback for unrecognized literals.
const DefaultFrontEnd = FrontEndWebGpu

var frontEnds = map[string]FrontEnd{
	"WebGpu":   FrontEndWebGpu,
	"OpenGL":   FrontEndOpenGL,
	"Software": FrontEndSoftware,
}

// ParseFrontEnd maps a literal to a front end.
func ParseFrontEnd(s string) (FrontEnd, bool) {
	f, ok := frontEnds[s]
	return f, ok
}

// PowerPreference selects the WebGPU power preference.
type PowerPreference string

// Power preferences.
const (
	LowPower        PowerPreference = "LowPower"
	HighPerformance PowerPreference = "HighPerformance"
)

// DefaultPowerPreference is the fallback for unrecognized literals.
const DefaultPowerPreference = HighPerformance

// ParsePowerPreference maps a literal to a power preference.
func ParsePowerPreference(s string) (PowerPreference, bool) {
	switch s {
	case "LowPower":
		return LowPower, true
	case "HighPerformance":
		return HighPerformance, true
	}
	return "", false
}

// ExitBehavior controls what happens when the shell process exits.
type ExitBehavior string

// Exit behaviors.
const (
	ExitClose            ExitBehavior = "Close"
	ExitCloseOnCleanExit ExitBehavior = "CloseOnCleanExit"
	ExitHold             ExitBehavior = "Hold"
)

// AudibleBell controls the terminal bell sound.
type AudibleBell string

// Audible bell modes.
const (
	BellSystemBeep AudibleBell = "SystemBeep"
	BellDisabled   AudibleBell = "Disabled"
)

// Padding is per-side window padding in cells (fractional).
type Padding struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// HSB is a hue/saturation/brightness adjustment triple.
type HSB struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
}

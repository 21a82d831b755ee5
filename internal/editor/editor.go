// Package editor implements the interactive editing state machine: panel
// and field navigation, the searchable theme/font browsers, edit-buffer
// lifecycle, dirty tracking, and the save/quit confirmation flow. It holds
// no terminal code; the presentation layer feeds it decoded keys and reads
// its state back out every frame.
package editor

import (
	"fmt"

	"github.com/dshills/weztui/internal/config/schema"
	"github.com/dshills/weztui/internal/config/store"
)

// Mode is the editor's input mode.
type Mode int

const (
	// ModeNormal is plain navigation.
	ModeNormal Mode = iota
	// ModeEditing has a text buffer active, either a field edit or a
	// selector filter.
	ModeEditing
	// ModeHelp shows the help overlay.
	ModeHelp
	// ModeConfirm gates quitting with unsaved changes.
	ModeConfirm
)

// Saver persists a configuration. *store.Store satisfies it; tests use a
// fake to exercise failed-save behavior.
type Saver interface {
	Save(cfg *schema.Config, backup bool) (*store.SaveResult, error)
}

// Options configures a new Editor.
type Options struct {
	InitialPanel Panel
	BackupOnSave bool
	// Themes and Fonts back the two selectors.
	Themes []string
	Fonts  []string
}

// Editor is the complete state of one editing session. All mutation happens
// through HandleKey on a single goroutine.
type Editor struct {
	config *schema.Config
	saver  Saver
	backup bool

	panel        Panel
	sidebarIndex int
	fieldIndex   int
	mode         Mode
	buffer       string
	dirty        bool
	status       string
	quit         bool

	themes *Selector
	fonts  *Selector
}

// New starts a session editing cfg.
func New(cfg *schema.Config, saver Saver, opts Options) *Editor {
	e := &Editor{
		config: cfg,
		saver:  saver,
		backup: opts.BackupOnSave,
		panel:  opts.InitialPanel,
		themes: NewSelector(opts.Themes),
		fonts:  NewSelector(opts.Fonts),
	}
	for i, p := range Panels() {
		if p == e.panel {
			e.sidebarIndex = i
		}
	}
	return e
}

// Accessors for the presentation layer.

func (e *Editor) Config() *schema.Config { return e.config }
func (e *Editor) Panel() Panel           { return e.panel }
func (e *Editor) SidebarIndex() int      { return e.sidebarIndex }
func (e *Editor) FieldIndex() int        { return e.fieldIndex }
func (e *Editor) Mode() Mode             { return e.mode }
func (e *Editor) Buffer() string         { return e.buffer }
func (e *Editor) Dirty() bool            { return e.dirty }
func (e *Editor) Status() string         { return e.status }
func (e *Editor) ShouldQuit() bool       { return e.quit }
func (e *Editor) Themes() *Selector      { return e.themes }
func (e *Editor) Fonts() *Selector       { return e.fonts }

// FieldCount returns the upper bound of fieldIndex for the current panel.
func (e *Editor) FieldCount() int {
	switch e.panel {
	case PanelThemes:
		if n := e.themes.Len(); n > 0 {
			return n
		}
		return 1
	case PanelKeybindings:
		return len(keybindingToggles)
	default:
		return len(Fields(e.panel))
	}
}

// CurrentFieldValue returns the textual value of the focused field, used to
// seed the edit buffer and by the renderer.
func (e *Editor) CurrentFieldValue() string {
	fields := Fields(e.panel)
	if e.fieldIndex < 1 || e.fieldIndex > len(fields) {
		return ""
	}
	return fields[e.fieldIndex-1].Get(e.config)
}

// Reload replaces the model with a fresh snapshot from disk. Refused when
// there are unsaved edits.
func (e *Editor) Reload(cfg *schema.Config) bool {
	if e.dirty {
		return false
	}
	e.config = cfg
	e.status = "Config reloaded from disk"
	return true
}

// HandleKey advances the state machine by one input event.
func (e *Editor) HandleKey(k Key) {
	e.status = ""

	switch e.mode {
	case ModeNormal:
		e.handleNormal(k)
	case ModeEditing:
		e.handleEditing(k)
	case ModeHelp:
		e.handleHelp(k)
	case ModeConfirm:
		e.handleConfirm(k)
	}
}

// selectorFocus returns the selector with input focus, if any.
func (e *Editor) selectorFocus() *Selector {
	if e.panel == PanelThemes && e.fieldIndex > 0 {
		return e.themes
	}
	if e.panel == PanelFonts && e.fieldIndex > 5 {
		return e.fonts
	}
	return nil
}

func (e *Editor) handleNormal(k Key) {
	if sel := e.selectorFocus(); sel != nil {
		switch {
		case k.Kind == KeyRune && k.Rune == '/':
			e.mode = ModeEditing
			e.buffer = sel.Filter()
			return
		case k.Kind == KeyUp || (k.Kind == KeyRune && k.Rune == 'k'):
			sel.MoveUp()
			return
		case k.Kind == KeyDown || (k.Kind == KeyRune && k.Rune == 'j'):
			sel.MoveDown()
			return
		case k.Kind == KeyEnter:
			e.applySelection(sel)
			return
		case k.Kind == KeyLeft || (k.Kind == KeyRune && k.Rune == 'h'):
			if e.panel == PanelFonts {
				e.fieldIndex = 1
			} else {
				e.fieldIndex = 0
			}
			return
		}
	}

	switch {
	case k.Kind == KeyEsc, k.Kind == KeyRune && k.Rune == 'q':
		if e.dirty {
			e.mode = ModeConfirm
		} else {
			e.quit = true
		}
	case k.Kind == KeyCtrlS:
		e.save()
	case k.Kind == KeyRune && k.Rune == '?':
		e.mode = ModeHelp
	case k.Kind == KeyUp, k.Kind == KeyRune && k.Rune == 'k':
		e.navigateUp()
	case k.Kind == KeyDown, k.Kind == KeyRune && k.Rune == 'j':
		e.navigateDown()
	case k.Kind == KeyLeft, k.Kind == KeyRune && k.Rune == 'h':
		e.fieldIndex = 0
	case k.Kind == KeyRight, k.Kind == KeyEnter, k.Kind == KeyRune && k.Rune == 'l':
		e.enterField()
	case k.Kind == KeyTab:
		e.nextField()
	case k.Kind == KeyBackTab:
		e.prevField()
	}
}

// filterEditTarget returns the selector whose filter the Editing buffer
// edits, if the buffer is a filter rather than a field value.
func (e *Editor) filterEditTarget() *Selector {
	if e.panel == PanelThemes {
		return e.themes
	}
	if e.panel == PanelFonts && e.fieldIndex > 5 {
		return e.fonts
	}
	return nil
}

func (e *Editor) handleEditing(k Key) {
	if sel := e.filterEditTarget(); sel != nil {
		switch k.Kind {
		case KeyEsc:
			e.mode = ModeNormal
			e.buffer = ""
		case KeyEnter:
			sel.SetFilter(e.buffer)
			e.mode = ModeNormal
			e.buffer = ""
		case KeyRune:
			e.buffer += string(k.Rune)
			sel.SetFilter(e.buffer)
		case KeyBackspace:
			e.buffer = trimLastRune(e.buffer)
			sel.SetFilter(e.buffer)
		}
		return
	}

	switch k.Kind {
	case KeyEsc:
		e.mode = ModeNormal
		e.buffer = ""
	case KeyEnter:
		e.applyEdit()
		e.mode = ModeNormal
	case KeyRune:
		e.buffer += string(k.Rune)
	case KeyBackspace:
		e.buffer = trimLastRune(e.buffer)
	}
}

func (e *Editor) handleHelp(k Key) {
	switch {
	case k.Kind == KeyEsc, k.Kind == KeyRune && (k.Rune == 'q' || k.Rune == '?'):
		e.mode = ModeNormal
	}
}

func (e *Editor) handleConfirm(k Key) {
	switch {
	case k.Kind == KeyRune && (k.Rune == 'y' || k.Rune == 'Y'):
		e.quit = true
	case k.Kind == KeyEsc, k.Kind == KeyRune && (k.Rune == 'n' || k.Rune == 'N'):
		e.mode = ModeNormal
	case k.Kind == KeyRune && (k.Rune == 's' || k.Rune == 'S'):
		e.save()
		e.quit = true
	}
}

func (e *Editor) navigateUp() {
	if e.fieldIndex == 0 {
		if e.sidebarIndex > 0 {
			e.sidebarIndex--
			e.panel = Panels()[e.sidebarIndex]
		}
		return
	}
	e.fieldIndex--
}

func (e *Editor) navigateDown() {
	if e.fieldIndex == 0 {
		if e.sidebarIndex < len(Panels())-1 {
			e.sidebarIndex++
			e.panel = Panels()[e.sidebarIndex]
		}
		return
	}
	if e.fieldIndex < e.FieldCount() {
		e.fieldIndex++
	}
}

func (e *Editor) nextField() {
	if e.fieldIndex < e.FieldCount() {
		e.fieldIndex++
	} else {
		e.fieldIndex = 1
	}
}

func (e *Editor) prevField() {
	if e.fieldIndex > 1 {
		e.fieldIndex--
	} else {
		e.fieldIndex = e.FieldCount()
	}
}

func (e *Editor) enterField() {
	switch {
	case e.fieldIndex == 0:
		e.fieldIndex = 1
	case e.panel == PanelFonts && e.fieldIndex == 1:
		// The family field opens the font browser instead of a buffer.
		e.fieldIndex = 6
	case e.panel == PanelKeybindings:
		e.toggleKeybinding()
	default:
		e.buffer = e.CurrentFieldValue()
		e.mode = ModeEditing
	}
}

func (e *Editor) toggleKeybinding() {
	if e.fieldIndex < 1 || e.fieldIndex > len(keybindingToggles) {
		return
	}
	t := keybindingToggles[e.fieldIndex-1]
	flag := t.Flag(e.config)
	*flag = !*flag
	state := "disabled"
	if *flag {
		state = "enabled"
	}
	e.status = fmt.Sprintf("%s %s", t.Label, state)
	e.dirty = true
}

func (e *Editor) applySelection(sel *Selector) {
	item, ok := sel.Selected()
	if !ok {
		return
	}
	if sel == e.themes {
		e.config.SchemeName = item
		e.status = "Theme set to: " + item
	} else {
		e.config.Fonts.Family = item
		e.status = "Font set to: " + item
	}
	e.dirty = true
}

func (e *Editor) applyEdit() {
	defer func() { e.buffer = "" }()

	fields := Fields(e.panel)
	if e.fieldIndex < 1 || e.fieldIndex > len(fields) {
		return
	}
	if err := fields[e.fieldIndex-1].Set(e.config, e.buffer); err != nil {
		e.status = err.Error()
		return
	}
	e.dirty = true
}

func (e *Editor) save() {
	if _, err := e.saver.Save(e.config, e.backup); err != nil {
		e.status = fmt.Sprintf("Error saving config: %v", err)
		return
	}
	e.dirty = false
	e.status = "Config saved successfully!"
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}

// Package tui renders the editor state on a tcell screen and drives the
// event loop. All state lives in the editor package; this package only
// translates terminal events into editor keys and paints the result.
package tui

import (
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/weztui/internal/config/schema"
	"github.com/dshills/weztui/internal/editor"
)

// Loader re-reads the configuration from disk for live reload.
type Loader interface {
	Load() (*schema.Config, error)
}

// App owns the screen and the event loop.
type App struct {
	screen tcell.Screen
	editor *editor.Editor
	loader Loader
	logger *log.Logger
}

// reloadEvent is posted into the tcell queue when the config file changes
// on disk, so the loop wakes up without a second poller.
type reloadEvent struct {
	tcell.EventTime
}

// New wraps an existing screen. The caller owns screen Init/Fini.
func New(screen tcell.Screen, ed *editor.Editor, loader Loader, logger *log.Logger) *App {
	return &App{screen: screen, editor: ed, loader: loader, logger: logger}
}

// NotifyFileChanged schedules a reload check on the event loop. Safe to
// call from any goroutine.
func (a *App) NotifyFileChanged() {
	ev := &reloadEvent{}
	ev.SetEventNow()
	if err := a.screen.PostEvent(ev); err != nil {
		a.logger.Warn("event queue full, dropping reload", "error", err)
	}
}

// Run drives the loop until the user quits. The screen must be initialized.
func (a *App) Run() error {
	for {
		if a.editor.ShouldQuit() {
			return nil
		}
		a.draw()

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if k, ok := translateKey(ev); ok {
				a.editor.HandleKey(k)
			}
		case *tcell.EventResize:
			a.screen.Sync()
		case *reloadEvent:
			a.reload()
		case nil:
			// Screen finalized underneath us.
			return nil
		}
	}
}

func (a *App) reload() {
	cfg, err := a.loader.Load()
	if err != nil {
		a.logger.Warn("reload failed", "error", err)
		return
	}
	if !a.editor.Reload(cfg) {
		a.logger.Debug("config changed on disk, keeping unsaved edits")
	}
}

// translateKey maps a tcell key event onto the editor's input alphabet.
// Unmapped keys are dropped.
func translateKey(ev *tcell.EventKey) (editor.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return editor.Key{Kind: editor.KeyUp}, true
	case tcell.KeyDown:
		return editor.Key{Kind: editor.KeyDown}, true
	case tcell.KeyLeft:
		return editor.Key{Kind: editor.KeyLeft}, true
	case tcell.KeyRight:
		return editor.Key{Kind: editor.KeyRight}, true
	case tcell.KeyEnter:
		return editor.Key{Kind: editor.KeyEnter}, true
	case tcell.KeyTab:
		return editor.Key{Kind: editor.KeyTab}, true
	case tcell.KeyBacktab:
		return editor.Key{Kind: editor.KeyBackTab}, true
	case tcell.KeyEscape:
		return editor.Key{Kind: editor.KeyEsc}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.Key{Kind: editor.KeyBackspace}, true
	case tcell.KeyCtrlS:
		return editor.Key{Kind: editor.KeyCtrlS}, true
	case tcell.KeyRune:
		return editor.Rune(ev.Rune()), true
	}
	return editor.Key{}, false
}

// modeLabel names the current mode for the status bar.
func modeLabel(m editor.Mode) string {
	switch m {
	case editor.ModeEditing:
		return "EDIT"
	case editor.ModeHelp:
		return "HELP"
	case editor.ModeConfirm:
		return "CONFIRM"
	default:
		return "NORMAL"
	}
}

func dirtyMarker(dirty bool) string {
	if dirty {
		return " ● modified"
	}
	return ""
}

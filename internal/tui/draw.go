package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/weztui/internal/editor"
)

const (
	sidebarWidth = 24
	labelWidth   = 24
)

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Bold(true)
	styleDim      = tcell.StyleDefault.Dim(true)
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleFocused  = tcell.StyleDefault.Reverse(true).Bold(true)
	styleStatus   = tcell.StyleDefault.Reverse(true)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	if w < 10 || h < 4 {
		a.screen.Show()
		return
	}

	a.drawTitle(w)
	a.drawSidebar(h)
	a.drawContent(sidebarWidth+2, 2, w, h-1)
	a.drawStatusBar(h-1, w)

	switch a.editor.Mode() {
	case editor.ModeHelp:
		a.drawHelp(w, h)
	case editor.ModeConfirm:
		a.drawConfirm(w, h)
	}

	a.screen.Show()
}

func (a *App) drawTitle(w int) {
	a.putLine(0, 0, w, " WezTerm Settings", styleTitle)
}

func (a *App) drawSidebar(h int) {
	e := a.editor
	for i, p := range editor.Panels() {
		y := 2 + i*2
		if y >= h-1 {
			break
		}
		style := styleDefault
		if p == e.Panel() {
			style = styleSelected
			if e.FieldIndex() == 0 {
				style = styleFocused
			}
		}
		label := fmt.Sprintf(" %s  %s", p.Icon(), p.Name())
		a.putLine(1, y, sidebarWidth-1, label, style)
	}
	for y := 1; y < h-1; y++ {
		a.screen.SetContent(sidebarWidth, y, tcell.RuneVLine, nil, styleDim)
	}
}

func (a *App) drawContent(x, y, w, h int) {
	switch a.editor.Panel() {
	case editor.PanelThemes:
		a.drawSelector(a.editor.Themes(), a.editor.FieldIndex() > 0, x, y, w, h)
	case editor.PanelFonts:
		a.drawFields(x, y, w)
		if a.editor.FieldIndex() > 5 {
			a.drawSelector(a.editor.Fonts(), true, x, y+len(editor.Fields(editor.PanelFonts))+2, w, h)
		}
	case editor.PanelKeybindings:
		a.drawToggles(x, y, w)
	default:
		a.drawFields(x, y, w)
	}
}

// drawSelector paints a filter line and the filtered list, keeping the
// selection scrolled into view.
func (a *App) drawSelector(sel *editor.Selector, focused bool, x, y, w, h int) {
	e := a.editor
	filter := sel.Filter()
	filterStyle := styleDim
	if e.Mode() == editor.ModeEditing {
		filter = e.Buffer() + "▏"
		filterStyle = styleDefault
	}
	a.putLine(x, y, w-x, "Filter: "+filter, filterStyle)

	items := sel.Filtered()
	rows := h - y - 2
	if rows < 1 {
		return
	}
	top := 0
	if sel.Index() >= rows {
		top = sel.Index() - rows + 1
	}
	for row := 0; row < rows && top+row < len(items); row++ {
		item := items[top+row]
		style := styleDefault
		prefix := "  "
		if focused && top+row == sel.Index() {
			style = styleSelected
			prefix = "▸ "
		}
		a.putLine(x, y+2+row, w-x, prefix+item, style)
	}
	if len(items) == 0 {
		a.putLine(x, y+2, w-x, "  (no matches)", styleDim)
	}
}

func (a *App) drawFields(x, y, w int) {
	e := a.editor
	cfg := e.Config()
	for i, f := range editor.Fields(e.Panel()) {
		row := y + i
		focused := e.FieldIndex() == i+1
		editing := focused && e.Mode() == editor.ModeEditing

		value := f.Get(cfg)
		if editing {
			value = e.Buffer() + "▏"
		}

		labelStyle := styleDefault
		if focused {
			labelStyle = styleSelected
		}
		a.putLine(x, row, labelWidth, " "+f.Label, labelStyle)

		valueStyle := styleDefault
		if editing {
			valueStyle = styleTitle
		}
		vx := x + labelWidth + 1
		a.putLine(vx, row, w-vx-4, value, valueStyle)

		// Color fields get a swatch after the value.
		if !editing {
			if c, err := colorful.Hex(value); err == nil {
				r, g, b := c.RGB255()
				swatch := styleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
				a.screen.SetContent(w-3, row, ' ', nil, swatch)
				a.screen.SetContent(w-2, row, ' ', nil, swatch)
			}
		}
	}
}

func (a *App) drawToggles(x, y, w int) {
	e := a.editor
	for i, t := range editor.ToggleStates(e.Config()) {
		row := y + i
		style := styleDefault
		if e.FieldIndex() == i+1 {
			style = styleSelected
		}
		mark := "[ ]"
		if t.On {
			mark = "[x]"
		}
		a.putLine(x, row, w-x, fmt.Sprintf(" %s %s", mark, t.Label), style)
	}
}

func (a *App) drawStatusBar(y, w int) {
	e := a.editor
	left := fmt.Sprintf(" %s%s ", modeLabel(e.Mode()), dirtyMarker(e.Dirty()))
	msg := e.Status()
	hint := "?: help  Ctrl+S: save  q: quit "

	a.putLine(0, y, w, left, styleStatus)
	if msg != "" {
		a.putLine(len(left)+1, y, w-len(left)-1, msg, styleStatus)
	} else {
		hx := w - runewidth.StringWidth(hint)
		if hx > len(left) {
			a.putLine(hx, y, w-hx, hint, styleStatus.Dim(true))
		}
	}
}

var helpLines = []string{
	"Navigation",
	"  j/k, arrows   move",
	"  h/l           leave / enter panel",
	"  Tab/Shift-Tab next / previous field",
	"  Enter         edit field or apply selection",
	"",
	"Browsers",
	"  /             filter themes or fonts",
	"  Enter         apply highlighted item",
	"",
	"Session",
	"  Ctrl+S        save configuration",
	"  q, Esc        quit",
	"  ?             toggle this help",
}

func (a *App) drawHelp(w, h int) {
	bw := 46
	bh := len(helpLines) + 4
	a.drawBox(w, h, bw, bh, " Help ", func(x, y int) {
		for i, line := range helpLines {
			a.putLine(x, y+i, bw-4, line, styleDefault)
		}
	})
}

func (a *App) drawConfirm(w, h int) {
	lines := []string{
		"You have unsaved changes.",
		"",
		"  y  quit without saving",
		"  s  save and quit",
		"  n  keep editing",
	}
	bw := 34
	bh := len(lines) + 4
	a.drawBox(w, h, bw, bh, " Unsaved Changes ", func(x, y int) {
		for i, line := range lines {
			style := styleDefault
			if i == 0 {
				style = styleError
			}
			a.putLine(x, y+i, bw-4, line, style)
		}
	})
}

// drawBox clears a centered rectangle, draws its border and title, then
// hands the interior origin to body.
func (a *App) drawBox(w, h, bw, bh int, title string, body func(x, y int)) {
	x0 := (w - bw) / 2
	y0 := (h - bh) / 2
	if x0 < 0 || y0 < 0 {
		return
	}
	for y := y0; y < y0+bh; y++ {
		for x := x0; x < x0+bw; x++ {
			a.screen.SetContent(x, y, ' ', nil, styleDefault)
		}
	}
	for x := x0; x < x0+bw; x++ {
		a.screen.SetContent(x, y0, tcell.RuneHLine, nil, styleDefault)
		a.screen.SetContent(x, y0+bh-1, tcell.RuneHLine, nil, styleDefault)
	}
	for y := y0; y < y0+bh; y++ {
		a.screen.SetContent(x0, y, tcell.RuneVLine, nil, styleDefault)
		a.screen.SetContent(x0+bw-1, y, tcell.RuneVLine, nil, styleDefault)
	}
	a.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, styleDefault)
	a.screen.SetContent(x0+bw-1, y0, tcell.RuneURCorner, nil, styleDefault)
	a.screen.SetContent(x0, y0+bh-1, tcell.RuneLLCorner, nil, styleDefault)
	a.screen.SetContent(x0+bw-1, y0+bh-1, tcell.RuneLRCorner, nil, styleDefault)
	a.putLine(x0+2, y0, bw-4, title, styleTitle)
	body(x0+2, y0+2)
}

// putLine writes s at (x, y) truncated to width cells, padding the focused
// styles out to the full width so highlights read as bars.
func (a *App) putLine(x, y, width int, s string, style tcell.Style) {
	if width <= 0 {
		return
	}
	s = runewidth.Truncate(s, width, "…")
	col := x
	for _, r := range s {
		a.screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	if style == styleSelected || style == styleFocused || style == styleStatus {
		for ; col < x+width; col++ {
			a.screen.SetContent(col, y, ' ', nil, style)
		}
	}
}

package numericentry

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Widget is a single line entry for numbers. Every edit is run through
// Accept and undone when it is refused.
type Widget struct {
	widget.Entry

	Accept        func(string) bool
	OnFocusGained func()
	OnFocusLost   func()
}

type snapshot struct {
	text     string
	row, col int
}

func New() *Widget {
	entry := &Widget{}
	entry.ExtendBaseWidget(entry)
	entry.OnSubmitted = func(string) { entry.release() }
	return entry
}

func (e *Widget) TypedRune(r rune) {
	before := e.snapshot()
	e.Entry.TypedRune(r)
	e.enforce(before)
}

func (e *Widget) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyBackspace, fyne.KeyDelete:
		before := e.snapshot()
		e.Entry.TypedKey(key)
		e.enforce(before)
	default:
		e.Entry.TypedKey(key)
	}
}

func (e *Widget) TypedShortcut(shortcut fyne.Shortcut) {
	switch shortcut.(type) {
	case *fyne.ShortcutPaste, *fyne.ShortcutCut:
		before := e.snapshot()
		e.Entry.TypedShortcut(shortcut)
		e.enforce(before)
	default:
		e.Entry.TypedShortcut(shortcut)
	}
}

func (e *Widget) FocusGained() {
	e.Entry.FocusGained()
	if e.OnFocusGained != nil {
		e.OnFocusGained()
	}
}

func (e *Widget) FocusLost() {
	e.Entry.FocusLost()
	if e.OnFocusLost != nil {
		e.OnFocusLost()
	}
}

func (e *Widget) snapshot() snapshot {
	return snapshot{text: e.Text, row: e.CursorRow, col: e.CursorColumn}
}

func (e *Widget) enforce(before snapshot) {
	if e.Accept == nil || e.Text == before.text || e.Accept(e.Text) {
		return
	}
	e.SetText(before.text)
	e.CursorRow, e.CursorColumn = before.row, before.col
	e.Refresh()
}

// release drops keyboard focus, which commits the edit through FocusLost.
func (e *Widget) release() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	if c := app.Driver().CanvasForObject(e); c != nil {
		c.Unfocus()
	}
}

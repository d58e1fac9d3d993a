package radialslider

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	textInset     = 10
	minTextHeight = 24
	logoSize      = 30
	logoOffset    = -10
)

// Edit swaps the number for the edit field and focuses it.
func (s *RadialSlider) Edit() {
	if !s.cfg.TextEditable || s.editing {
		return
	}
	s.entry.SetText(s.formatter.FormatPlain(s.value))
	s.entry.Show()
	s.intText.Hide()
	s.decText.Hide()
	if c := s.canvas(); c != nil {
		c.Focus(s.entry)
	}
}

func (s *RadialSlider) canvas() fyne.Canvas {
	app := fyne.CurrentApp()
	if app == nil {
		return nil
	}
	return app.Driver().CanvasForObject(s)
}

func (s *RadialSlider) editingBegan() {
	s.editing = true
	if s.OnEditingBegin != nil {
		s.OnEditingBegin(s, s.entry)
	}
}

func (s *RadialSlider) editingEnded() {
	if !s.editing {
		return
	}
	s.editing = false
	if s.OnEditingEnd != nil {
		s.OnEditingEnd(s, s.entry)
	}
	value := s.formatter.Parse(s.entry.Text)
	s.entry.Hide()
	s.intText.Show()
	s.decText.Show()
	s.SetValue(value, true)
}

func (s *RadialSlider) textColor() color.Color {
	return theme.Color(theme.ColorNameForeground)
}

// layoutText centres the integer and decimal parts as one line, bottoms
// aligned, with the edit field and separator line in the same column.
func (s *RadialSlider) layoutText() {
	intSize := s.intText.MinSize()
	decSize := s.decText.MinSize()
	height := fyne.Max(fyne.Max(intSize.Height, decSize.Height), minTextHeight)
	entryHeight := fyne.Max(s.entry.MinSize().Height, height)

	column := fyne.NewSize(s.size.Width-2*textInset, entryHeight)
	top := s.center.Y - entryHeight/2
	s.textRect = textRect{pos: fyne.NewPos(textInset, top), size: column}

	x := s.center.X - (intSize.Width+decSize.Width)/2
	bottom := top + (entryHeight+height)/2
	s.intText.Move(fyne.NewPos(x, bottom-intSize.Height))
	s.intText.Resize(intSize)
	s.decText.Move(fyne.NewPos(x+intSize.Width, bottom-decSize.Height))
	s.decText.Resize(decSize)

	s.entry.Move(s.textRect.pos)
	s.entry.Resize(column)

	s.line.Move(fyne.NewPos(2*textInset, top+entryHeight+1))
	s.line.Resize(fyne.NewSize(fyne.Max(s.size.Width-4*textInset, 0), 1))
}

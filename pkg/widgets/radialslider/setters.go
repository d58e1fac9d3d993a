package radialslider

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"github.com/roffe/radialslider/pkg/interpolate"
)

// Config returns a copy of the settings in effect.
func (s *RadialSlider) Config() Config { return s.cfg }

func (s *RadialSlider) Minimum() float64 { return s.cfg.Min }

func (s *RadialSlider) Maximum() float64 { return s.cfg.Max }

// SetMinimum moves the lower bound, raising the maximum with it if needed.
func (s *RadialSlider) SetMinimum(v float64) {
	s.cfg.Min = v
	if s.cfg.Max < v {
		s.cfg.Max = v
	}
	s.rangeChanged()
}

// SetMaximum moves the upper bound, lowering the minimum with it if needed.
func (s *RadialSlider) SetMaximum(v float64) {
	s.cfg.Max = v
	if s.cfg.Min > v {
		s.cfg.Min = v
	}
	s.rangeChanged()
}

func (s *RadialSlider) rangeChanged() {
	s.value = interpolate.Clamp(s.value, s.cfg.Min, s.cfg.Max)
	s.updateLabels()
	s.Refresh()
}

func (s *RadialSlider) ProgressWidth() float32 { return s.cfg.ProgressWidth }

func (s *RadialSlider) SetProgressWidth(w float32) {
	if w <= 0 {
		w = DefaultConfig().ProgressWidth
	}
	s.cfg.ProgressWidth = w
	s.Refresh()
}

func (s *RadialSlider) RadiansOffset() float64 { return s.cfg.RadiansOffset }

// SetRadiansOffset sets half the width of the gap at the top of the ring,
// clamped to [0, MaxRadiansOffset].
func (s *RadialSlider) SetRadiansOffset(offset float64) {
	s.arc = NewArc(offset)
	s.cfg.RadiansOffset = s.arc.Offset
	s.Refresh()
}

func (s *RadialSlider) TextEditable() bool { return s.cfg.TextEditable }

func (s *RadialSlider) SetTextEditable(editable bool) {
	s.cfg.TextEditable = editable
	if !editable && s.editing {
		if c := s.canvas(); c != nil {
			c.Unfocus()
		}
	}
	s.restyle()
}

func (s *RadialSlider) IntegerFont() Font { return s.cfg.IntegerFont }

func (s *RadialSlider) SetIntegerFont(f Font) {
	if f.Size <= 0 {
		f.Size = DefaultConfig().IntegerFont.Size
	}
	s.cfg.IntegerFont = f
	s.Refresh()
}

func (s *RadialSlider) DecimalFont() Font { return s.cfg.DecimalFont }

func (s *RadialSlider) SetDecimalFont(f Font) {
	if f.Size <= 0 {
		f.Size = DefaultConfig().DecimalFont.Size
	}
	s.cfg.DecimalFont = f
	s.Refresh()
}

func (s *RadialSlider) KnobRadius() float32 { return s.cfg.KnobRadius }

func (s *RadialSlider) SetKnobRadius(r float32) {
	s.cfg.KnobRadius = max(r, 0)
	s.restyle()
}

func (s *RadialSlider) BackgroundColor() color.Color { return s.cfg.BackgroundColor }

func (s *RadialSlider) SetBackgroundColor(c color.Color) {
	s.cfg.BackgroundColor = c
	s.restyle()
}

func (s *RadialSlider) Highlighted() bool { return s.cfg.Highlighted }

// SetHighlighted picks which colour the progress arc and knob use, fading
// between the two.
func (s *RadialSlider) SetHighlighted(highlighted bool) {
	if s.cfg.Highlighted == highlighted {
		return
	}
	s.cfg.Highlighted = highlighted
	s.fadeColors()
}

func (s *RadialSlider) NormalColor() color.Color { return s.cfg.NormalColor }

func (s *RadialSlider) SetNormalColor(c color.Color) {
	s.cfg.NormalColor = c
	s.applyActiveColor()
}

func (s *RadialSlider) HighlightedColor() color.Color { return s.cfg.HighlightedColor }

func (s *RadialSlider) SetHighlightedColor(c color.Color) {
	s.cfg.HighlightedColor = c
	s.applyActiveColor()
}

func (s *RadialSlider) applyActiveColor() {
	if s.colorAnim != nil {
		s.colorAnim.Stop()
		s.colorAnim = nil
	}
	s.setLayerColors(s.activeColor(), s.activeColor())
}

func (s *RadialSlider) SeparatorLineHidden() bool { return s.cfg.SeparatorLineHidden }

func (s *RadialSlider) SetSeparatorLineHidden(hidden bool) {
	s.cfg.SeparatorLineHidden = hidden
	s.restyle()
}

func (s *RadialSlider) SeparatorLineColor() color.Color { return s.cfg.SeparatorLineColor }

func (s *RadialSlider) SetSeparatorLineColor(c color.Color) {
	s.cfg.SeparatorLineColor = c
	s.restyle()
}

func (s *RadialSlider) FractionDigits() int { return s.formatter.FractionDigits() }

// SetFractionDigits sets how many digits follow the decimal separator,
// clamped to [0, 4].
func (s *RadialSlider) SetFractionDigits(n int) {
	s.formatter.SetFractionDigits(n)
	s.cfg.FractionDigits = s.formatter.FractionDigits()
	s.updateLabels()
}

func (s *RadialSlider) CustomDecimalSeparator() string { return s.formatter.Separator() }

// SetCustomDecimalSeparator replaces the locale's decimal separator. More
// than one character resets it to the locale's.
func (s *RadialSlider) SetCustomDecimalSeparator(sep string) {
	if err := s.formatter.SetSeparator(sep); err != nil {
		log.Printf("radialslider: ignoring custom decimal separator %q: %v", sep, err)
	}
	s.cfg.CustomDecimalSeparator = s.formatter.Separator()
	s.updateLabels()
}

// SetLocale switches number formatting to a BCP 47 locale, empty for the
// system locale.
func (s *RadialSlider) SetLocale(locale string) {
	f := newFormatter(locale)
	f.SetFractionDigits(s.formatter.FractionDigits())
	_ = f.SetSeparator(s.formatter.Separator())
	s.formatter = f
	s.entry.Accept = f.Accept
	s.cfg.Locale = locale
	s.updateLabels()
}

func (s *RadialSlider) Logo() fyne.Resource { return s.cfg.Logo }

func (s *RadialSlider) SetLogo(res fyne.Resource) {
	s.setLogo(res)
	s.logo.Refresh()
}

func (s *RadialSlider) setLogo(res fyne.Resource) {
	s.cfg.Logo = res
	s.logo.Resource = res
	if res == nil {
		s.logo.Hide()
		return
	}
	s.logo.Show()
}

// Package radialslider provides a ring shaped value slider. The user drags
// a knob around the ring to pick a number within a range; the number is
// shown in the centre and can be typed in directly.
package radialslider

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/radialslider/pkg/colors"
	"github.com/roffe/radialslider/pkg/interpolate"
	"github.com/roffe/radialslider/pkg/numfmt"
	"github.com/roffe/radialslider/pkg/widgets/numericentry"
	"golang.org/x/text/language"
)

type RadialSlider struct {
	widget.BaseWidget

	// OnValueForValue may remap a value before it is stored, e.g. to snap
	// to whole numbers.
	OnValueForValue func(s *RadialSlider, value float64) float64
	OnEditingBegin  func(s *RadialSlider, entry *numericentry.Widget)
	OnEditingEnd    func(s *RadialSlider, entry *numericentry.Widget)
	OnChanged       func(value float64)

	cfg       Config
	arc       Arc
	formatter *numfmt.Formatter
	value     float64

	// what is on screen, tweened towards value by animations
	shownFraction float32
	shownAngle    float64
	progressColor color.Color
	knobColor     color.Color
	anim          *fyne.Animation
	colorAnim     *fyne.Animation

	drag    dragState
	editing bool

	background *canvas.Raster
	progress   *canvas.Raster
	knob       *canvas.Circle
	logo       *canvas.Image
	intText    *canvas.Text
	decText    *canvas.Text
	line       *canvas.Rectangle
	entry      *numericentry.Widget

	size     fyne.Size
	center   fyne.Position
	radius   float32
	textRect textRect
}

type textRect struct {
	pos  fyne.Position
	size fyne.Size
}

func (r textRect) contains(p fyne.Position) bool {
	return p.X >= r.pos.X && p.X <= r.pos.X+r.size.Width &&
		p.Y >= r.pos.Y && p.Y <= r.pos.Y+r.size.Height
}

// New creates a slider from cfg, nil means DefaultConfig. Out of range
// settings are repaired rather than rejected; use Config.Validate for
// strict checking.
func New(cfg *Config) *RadialSlider {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &RadialSlider{cfg: *cfg}
	s.cfg.sanitize()
	s.ExtendBaseWidget(s)

	s.arc = NewArc(s.cfg.RadiansOffset)
	s.formatter = newFormatter(s.cfg.Locale)
	s.formatter.SetFractionDigits(s.cfg.FractionDigits)
	_ = s.formatter.SetSeparator(s.cfg.CustomDecimalSeparator)
	s.value = s.cfg.Value
	s.shownAngle = s.arc.Start()

	s.background = canvas.NewRaster(s.drawBackground)
	s.progress = canvas.NewRaster(s.drawProgress)
	s.knob = &canvas.Circle{StrokeColor: colors.White, StrokeWidth: 2}
	s.logo = &canvas.Image{FillMode: canvas.ImageFillContain}
	s.intText = &canvas.Text{Alignment: fyne.TextAlignLeading}
	s.decText = &canvas.Text{Alignment: fyne.TextAlignLeading}
	s.line = &canvas.Rectangle{}

	s.entry = numericentry.New()
	s.entry.Accept = s.formatter.Accept
	s.entry.OnFocusGained = s.editingBegan
	s.entry.OnFocusLost = s.editingEnded
	s.entry.Hide()

	s.setLogo(s.cfg.Logo)
	s.progressColor, s.knobColor = s.activeColor(), s.activeColor()
	s.restyle()
	s.updateLabels()
	return s
}

func newFormatter(locale string) *numfmt.Formatter {
	if locale == "" {
		return numfmt.System()
	}
	tag, err := language.Parse(locale)
	if err != nil {
		log.Printf("radialslider: invalid locale %q, using system locale: %v", locale, err)
		return numfmt.System()
	}
	return numfmt.New(tag)
}

func (s *RadialSlider) Value() float64 { return s.value }

// NormalizedValue is the value rescaled to [0, 1], the progress arc's
// fill fraction.
func (s *RadialSlider) NormalizedValue() float64 {
	return interpolate.Fraction(s.value, s.cfg.Min, s.cfg.Max)
}

// KnobAngle is the angle the knob sits at for the current value.
func (s *RadialSlider) KnobAngle() float64 {
	return s.arc.AngleForValue(s.value, s.cfg.Min, s.cfg.Max)
}

func (s *RadialSlider) Arc() Arc { return s.arc }

// Formatter exposes the number formatting in effect.
func (s *RadialSlider) Formatter() *numfmt.Formatter { return s.formatter }

// Entry is the field used while the value is being typed in.
func (s *RadialSlider) Entry() *numericentry.Widget { return s.entry }

// Text returns the integer and decimal parts currently displayed.
func (s *RadialSlider) Text() (integer, decimal string) {
	return s.intText.Text, s.decText.Text
}

// SetValue runs value through OnValueForValue, clamps it to the range and
// moves the progress arc and knob to it.
func (s *RadialSlider) SetValue(value float64, animated bool) {
	if s.OnValueForValue != nil {
		value = s.OnValueForValue(s, value)
	}
	old := s.value
	s.value = interpolate.Clamp(value, s.cfg.Min, s.cfg.Max)

	s.updateLabels()
	s.moveTo(float32(s.NormalizedValue()), s.KnobAngle(), animated)

	if s.value != old && s.OnChanged != nil {
		s.OnChanged(s.value)
	}
}

func (s *RadialSlider) updateLabels() {
	s.intText.Text, s.decText.Text = s.formatter.Split(s.formatter.Format(s.value))
	if !s.laidOut() {
		return
	}
	s.layoutText()
	canvas.Refresh(s.intText)
	canvas.Refresh(s.decText)
}

func (s *RadialSlider) activeColor() color.Color {
	if s.cfg.Highlighted {
		return s.cfg.HighlightedColor
	}
	return s.cfg.NormalColor
}

// restyle pushes appearance settings to the canvas objects without a new
// layout pass.
func (s *RadialSlider) restyle() {
	s.knob.StrokeColor = colors.White
	s.knob.FillColor = s.knobColor
	s.knob.Resize(fyne.NewSquareSize(s.cfg.KnobRadius))
	s.placeKnob()

	s.intText.TextSize = s.cfg.IntegerFont.Size
	s.intText.TextStyle = s.cfg.IntegerFont.Style
	s.intText.Color = s.textColor()
	s.decText.TextSize = s.cfg.DecimalFont.Size
	s.decText.TextStyle = s.cfg.DecimalFont.Style
	s.decText.Color = s.textColor()

	s.line.FillColor = s.cfg.SeparatorLineColor
	if s.cfg.SeparatorLineHidden {
		s.line.Hide()
	} else {
		s.line.Show()
	}

	if s.cfg.TextEditable {
		s.entry.Enable()
	} else {
		s.entry.Disable()
	}

	for _, o := range []fyne.CanvasObject{s.background, s.progress, s.knob, s.intText, s.decText, s.line} {
		canvas.Refresh(o)
	}
}

func (s *RadialSlider) CreateRenderer() fyne.WidgetRenderer {
	return &radialSliderRenderer{RadialSlider: s}
}

package radialslider

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/roffe/radialslider/pkg/colors"
	"github.com/roffe/radialslider/pkg/interpolate"
)

const colorFade = 250 * time.Millisecond

// moveTo sets the progress fill and knob angle, tweening from what is on
// screen when animated. A new move replaces one still in flight.
func (s *RadialSlider) moveTo(fraction float32, angle float64, animated bool) {
	s.stopMove()
	if !animated || s.cfg.AnimationDuration <= 0 {
		s.show(fraction, angle)
		return
	}
	fromFraction, fromAngle := s.shownFraction, s.shownAngle
	s.anim = fyne.NewAnimation(s.cfg.AnimationDuration, func(p float32) {
		s.show(
			interpolate.Float32(fromFraction, fraction, p),
			fromAngle+(angle-fromAngle)*float64(p),
		)
	})
	s.anim.Curve = fyne.AnimationEaseInOut
	s.anim.Start()
}

func (s *RadialSlider) stopMove() {
	if s.anim != nil {
		s.anim.Stop()
		s.anim = nil
	}
}

// cancelAnimation drops every running animation and shows the stored value,
// called when a drag begins.
func (s *RadialSlider) cancelAnimation() {
	s.stopMove()
	if s.colorAnim != nil {
		s.colorAnim.Stop()
		s.colorAnim = nil
	}
	s.progressColor, s.knobColor = s.activeColor(), s.activeColor()
	s.knob.FillColor = s.knobColor
	s.show(float32(s.NormalizedValue()), s.KnobAngle())
}

func (s *RadialSlider) show(fraction float32, angle float64) {
	s.shownFraction = fraction
	s.shownAngle = angle
	s.placeKnob()
	canvas.Refresh(s.progress)
	canvas.Refresh(s.knob)
}

func (s *RadialSlider) placeKnob() {
	half := s.cfg.KnobRadius / 2
	s.knob.Move(knobCenter(s.center, s.radius, s.shownAngle).SubtractXY(half, half))
}

// fadeColors tweens the progress arc and knob to the active colour pair.
func (s *RadialSlider) fadeColors() {
	if s.colorAnim != nil {
		s.colorAnim.Stop()
	}
	to := s.activeColor()
	fromProgress, fromKnob := s.progressColor, s.knobColor
	s.colorAnim = fyne.NewAnimation(colorFade, func(p float32) {
		s.setLayerColors(colors.Lerp(fromProgress, to, p), colors.Lerp(fromKnob, to, p))
	})
	s.colorAnim.Curve = fyne.AnimationEaseInOut
	s.colorAnim.Start()
}

func (s *RadialSlider) setLayerColors(progress, knob color.Color) {
	s.progressColor, s.knobColor = progress, knob
	s.knob.FillColor = knob
	canvas.Refresh(s.progress)
	canvas.Refresh(s.knob)
}

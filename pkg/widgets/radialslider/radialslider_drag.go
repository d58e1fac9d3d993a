package radialslider

import (
	"math"

	"fyne.io/fyne/v2"
)

type dragState int

const (
	dragIdle dragState = iota
	dragTracking
	dragIgnored // started off the ring, ignored until released
)

var (
	_ fyne.Draggable = (*RadialSlider)(nil)
	_ fyne.Tappable  = (*RadialSlider)(nil)
)

// Dragged turns the pointer around the ring centre into a new value.
func (s *RadialSlider) Dragged(ev *fyne.DragEvent) {
	switch s.drag {
	case dragIgnored:
		return
	case dragIdle:
		if !s.onRing(ev.Position.Subtract(ev.Dragged)) {
			s.drag = dragIgnored
			return
		}
		s.drag = dragTracking
		s.cancelAnimation()
	}
	s.rotateTo(s.pointerAngle(ev.Position))
}

func (s *RadialSlider) DragEnd() {
	s.drag = dragIdle
}

// Tapped starts editing when the number in the centre is tapped.
func (s *RadialSlider) Tapped(ev *fyne.PointEvent) {
	if s.cfg.TextEditable && !s.editing && s.textRect.contains(ev.Position) {
		s.Edit()
	}
}

// onRing reports whether p lands on the ring band, within a knob radius of
// the arc.
func (s *RadialSlider) onRing(p fyne.Position) bool {
	dx, dy := float64(p.X-s.center.X), float64(p.Y-s.center.Y)
	dist := math.Hypot(dx, dy)
	return math.Abs(dist-float64(s.radius)) <= float64(max(s.cfg.KnobRadius, s.cfg.ProgressWidth))
}

func (s *RadialSlider) pointerAngle(p fyne.Position) float64 {
	return math.Atan2(float64(p.Y-s.center.Y), float64(p.X-s.center.X))
}

// rotateTo applies a raw gesture angle: unwrap across the seam, clamp to
// the arc, then drop it when the knob would jump a quarter turn or more.
func (s *RadialSlider) rotateTo(raw float64) {
	angle := s.arc.Unwrap(raw)
	if !Accepts(s.KnobAngle(), angle) {
		return
	}
	s.SetValue(s.arc.ValueForAngle(angle, s.cfg.Min, s.cfg.Max), false)
}

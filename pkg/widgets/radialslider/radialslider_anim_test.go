package radialslider

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func laidOutSlider(t *testing.T) *RadialSlider {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	cfg := DefaultConfig()
	cfg.Locale = "en"
	s := New(cfg)
	w := test.NewWindow(s)
	t.Cleanup(w.Close)
	w.SetPadded(false)
	w.Resize(fyne.NewSize(150, 150))
	return s
}

func TestAnimatedMoveStartsAnimation(t *testing.T) {
	s := laidOutSlider(t)
	s.SetValue(300, true)
	require.NotNil(t, s.anim)
	assert.Equal(t, 300.0, s.Value())

	s.SetValue(100, false)
	assert.Nil(t, s.anim)
	assert.InDelta(t, 0.2, s.shownFraction, 1e-6)
	assert.InDelta(t, s.KnobAngle(), s.shownAngle, 1e-9)
}

func TestDragBeginCancelsAnimation(t *testing.T) {
	s := laidOutSlider(t)
	s.SetValue(300, true)
	require.NotNil(t, s.anim)
	// still on its way from the old value
	s.shownFraction, s.shownAngle = 0, s.arc.Start()

	var (
		hooked    bool
		animAtSet *fyne.Animation
		shownAt   float32
		angleAt   float64
	)
	s.OnValueForValue = func(s *RadialSlider, v float64) float64 {
		hooked = true
		animAtSet, shownAt, angleAt = s.anim, s.shownFraction, s.shownAngle
		return v
	}

	angle := s.KnobAngle()
	p := fyne.NewPos(
		s.center.X+s.radius*float32(math.Cos(angle)),
		s.center.Y+s.radius*float32(math.Sin(angle)),
	)
	s.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: p}})
	s.DragEnd()

	require.True(t, hooked)
	assert.Nil(t, animAtSet)
	assert.InDelta(t, 0.6, shownAt, 1e-6)
	assert.InDelta(t, s.arc.AngleForValue(300, 0, 500), angleAt, 1e-9)
	assert.Nil(t, s.colorAnim)
	assert.InDelta(t, 300, s.Value(), 1)
}

func TestDragOffRingKeepsAnimation(t *testing.T) {
	s := laidOutSlider(t)
	s.SetValue(300, true)
	require.NotNil(t, s.anim)

	s.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: s.center}})
	s.DragEnd()
	assert.NotNil(t, s.anim)
	assert.Equal(t, 300.0, s.Value())
}

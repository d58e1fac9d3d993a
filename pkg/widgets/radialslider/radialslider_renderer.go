package radialslider

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

type radialSliderRenderer struct {
	*RadialSlider
	objects []fyne.CanvasObject
}

// Layout recomputes the ring geometry, places the children and resyncs the
// progress arc and knob through SetValue.
func (r *radialSliderRenderer) Layout(space fyne.Size) {
	r.size = space
	r.center = arcCenter(space)
	r.radius = arcRadius(space, r.cfg.ProgressWidth)

	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(space)
	r.progress.Move(fyne.NewPos(0, 0))
	r.progress.Resize(space)

	r.logo.Resize(fyne.NewSquareSize(logoSize))
	r.logo.Move(fyne.NewPos(r.center.X-logoSize/2, logoOffset))

	r.knob.Resize(fyne.NewSquareSize(r.cfg.KnobRadius))
	r.layoutText()

	r.SetValue(r.value, false)
	canvas.Refresh(r.background)
	canvas.Refresh(r.logo)
	canvas.Refresh(r.line)
}

func (r *radialSliderRenderer) MinSize() fyne.Size { return r.cfg.MinSize }

func (r *radialSliderRenderer) Refresh() {
	r.restyle()
	if r.laidOut() {
		r.Layout(r.size)
	}
	for _, o := range r.Objects() {
		canvas.Refresh(o)
	}
}

func (r *radialSliderRenderer) Destroy() {
	r.cancelAnimation()
}

func (r *radialSliderRenderer) Objects() []fyne.CanvasObject {
	if r.objects == nil {
		r.objects = []fyne.CanvasObject{
			r.background,
			r.progress,
			r.logo,
			r.intText,
			r.decText,
			r.entry,
			r.line,
			r.knob,
		}
	}
	return r.objects
}

func (s *RadialSlider) laidOut() bool {
	return s.size.Width > 0 && s.size.Height > 0
}

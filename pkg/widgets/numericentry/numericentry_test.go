package numericentry_test

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/roffe/radialslider/pkg/numfmt"
	"github.com/roffe/radialslider/pkg/widgets/numericentry"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTypedRuneMask(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	f := numfmt.New(language.English)
	e := numericentry.New()
	e.Accept = f.Accept
	w := test.NewWindow(e)
	defer w.Close()

	test.Type(e, "12.345")
	assert.Equal(t, "12.34", e.Text)

	test.Type(e, "x")
	assert.Equal(t, "12.34", e.Text)
}

func TestNoMaskAcceptsAnything(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	e := numericentry.New()
	w := test.NewWindow(e)
	defer w.Close()
	test.Type(e, "abc")
	assert.Equal(t, "abc", e.Text)
}

func TestBackspaceToEmpty(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	f := numfmt.New(language.English)
	e := numericentry.New()
	e.Accept = f.Accept
	w := test.NewWindow(e)
	defer w.Close()
	test.Type(e, "7")
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.Equal(t, "", e.Text)
}

func TestFocusCallbacks(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	var gained, lost int
	e := numericentry.New()
	e.OnFocusGained = func() { gained++ }
	e.OnFocusLost = func() { lost++ }
	w := test.NewWindow(e)
	defer w.Close()

	e.FocusGained()
	e.FocusLost()
	assert.Equal(t, 1, gained)
	assert.Equal(t, 1, lost)
}

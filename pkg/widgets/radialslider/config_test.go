package radialslider_test

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/roffe/radialslider/pkg/colors"
	"github.com/roffe/radialslider/pkg/widgets/radialslider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := radialslider.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.0, cfg.Min)
	assert.Equal(t, 500.0, cfg.Max)
	assert.Equal(t, float32(6), cfg.ProgressWidth)
	assert.Equal(t, 0.5, cfg.RadiansOffset)
	assert.Equal(t, float32(24), cfg.KnobRadius)
	assert.True(t, cfg.TextEditable)
	assert.True(t, cfg.Highlighted)
	assert.False(t, cfg.SeparatorLineHidden)
	assert.Equal(t, 2, cfg.FractionDigits)
	assert.Empty(t, cfg.CustomDecimalSeparator)
	assert.Equal(t, 660*time.Millisecond, cfg.AnimationDuration)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*radialslider.Config)
		want   error
	}{
		{name: "range", modify: func(c *radialslider.Config) { c.Min = 10; c.Max = 1 }, want: radialslider.ErrRange},
		{name: "offset", modify: func(c *radialslider.Config) { c.RadiansOffset = 3.2 }, want: radialslider.ErrRadiansOffset},
		{name: "negative offset", modify: func(c *radialslider.Config) { c.RadiansOffset = -0.1 }, want: radialslider.ErrRadiansOffset},
		{name: "separator", modify: func(c *radialslider.Config) { c.CustomDecimalSeparator = "##" }, want: radialslider.ErrSeparatorLength},
		{name: "digits", modify: func(c *radialslider.Config) { c.FractionDigits = 5 }, want: radialslider.ErrFractionDigits},
		{name: "progress width", modify: func(c *radialslider.Config) { c.ProgressWidth = 0 }, want: radialslider.ErrProgressWidth},
		{name: "knob radius", modify: func(c *radialslider.Config) { c.KnobRadius = -1 }, want: radialslider.ErrKnobRadius},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := radialslider.DefaultConfig()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := radialslider.DefaultConfig()
	cfg.Min, cfg.Max = 1, 0
	cfg.CustomDecimalSeparator = "ab"
	err := cfg.Validate()
	assert.ErrorIs(t, err, radialslider.ErrRange)
	assert.ErrorIs(t, err, radialslider.ErrSeparatorLength)
}

const styleSheet = `
minimum_value = 10.0
maximum_value = 20.0
radians_offset = 0.8
fraction_digits = 1
custom_decimal_separator = "#"
background_color = "#ff0000"
separator_line_hidden = true
animation_duration = "1s"

[integer_font]
size = 14.0
bold = true
`

func TestParseConfig(t *testing.T) {
	cfg, err := radialslider.ParseConfig([]byte(styleSheet))
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.Min)
	assert.Equal(t, 20.0, cfg.Max)
	assert.Equal(t, 0.8, cfg.RadiansOffset)
	assert.Equal(t, 1, cfg.FractionDigits)
	assert.Equal(t, "#", cfg.CustomDecimalSeparator)
	assert.Equal(t, color.NRGBA{0xFF, 0, 0, 0xFF}, cfg.BackgroundColor)
	assert.Equal(t, colors.DarkGray, cfg.NormalColor)
	assert.True(t, cfg.SeparatorLineHidden)
	assert.True(t, cfg.TextEditable)
	assert.Equal(t, time.Second, cfg.AnimationDuration)
	assert.Equal(t, radialslider.Font{Size: 14, Style: fyne.TextStyle{Bold: true}}, cfg.IntegerFont)
	assert.Equal(t, radialslider.Font{Size: 20}, cfg.DecimalFont)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := radialslider.ParseConfig([]byte(`normal_color = "green"`))
	assert.ErrorIs(t, err, colors.ErrInvalidHex)

	_, err = radialslider.ParseConfig([]byte(`custom_decimal_separator = "##"`))
	assert.ErrorIs(t, err, radialslider.ErrSeparatorLength)

	_, err = radialslider.ParseConfig([]byte(`animation_duration = "soon"`))
	assert.Error(t, err)

	_, err = radialslider.ParseConfig([]byte(`minimum_value = `))
	assert.Error(t, err)
}

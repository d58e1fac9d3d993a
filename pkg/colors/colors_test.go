package colors_test

import (
	"image/color"
	"testing"

	"github.com/roffe/radialslider/pkg/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{name: "short", in: "#0f0", want: color.NRGBA{0x00, 0xFF, 0x00, 0xFF}},
		{name: "long", in: "#aaaaaa", want: colors.LightGray},
		{name: "alpha", in: "80808040", want: color.NRGBA{0x80, 0x80, 0x80, 0x40}},
		{name: "bad length", in: "#12345", wantErr: true},
		{name: "bad digits", in: "#zzzzzz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := colors.ParseHex(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, colors.ErrInvalidHex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#00ff00ff", colors.Hex(colors.Green))
	c, err := colors.ParseHex(colors.Hex(colors.DarkGray))
	require.NoError(t, err)
	assert.Equal(t, colors.DarkGray, c)
}

func TestLerp(t *testing.T) {
	assert.Equal(t, colors.DarkGray, colors.Lerp(colors.DarkGray, colors.Green, 0))
	assert.Equal(t, colors.Green, colors.Lerp(colors.DarkGray, colors.Green, 1))
	assert.Equal(t, colors.Green, colors.Lerp(colors.DarkGray, colors.Green, 2))
	mid := colors.Lerp(color.NRGBA{0, 0, 0, 255}, color.NRGBA{200, 100, 50, 255}, 0.5)
	assert.Equal(t, color.NRGBA{100, 50, 25, 255}, mid)
}

package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Default slider palette.
var (
	LightGray = color.NRGBA{0xAA, 0xAA, 0xAA, 0xFF}
	DarkGray  = color.NRGBA{0x55, 0x55, 0x55, 0xFF}
	Gray      = color.NRGBA{0x80, 0x80, 0x80, 0xFF}
	Green     = color.NRGBA{0x00, 0xFF, 0x00, 0xFF}
	White     = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

var ErrInvalidHex = errors.New("invalid hex color")

// ParseHex parses #RGB, #RRGGBB and #RRGGBBAA, the leading # is optional.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return color.NRGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}

// Hex formats c as #rrggbbaa.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

package radialslider

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"github.com/BurntSushi/toml"
	"github.com/roffe/radialslider/pkg/colors"
	"github.com/roffe/radialslider/pkg/numfmt"
)

var (
	ErrRange           = errors.New("minimum is greater than maximum")
	ErrRadiansOffset   = fmt.Errorf("radians offset must be within [0, %.4f]", MaxRadiansOffset)
	ErrSeparatorLength = numfmt.ErrSeparatorLength
	ErrFractionDigits  = fmt.Errorf("fraction digits must be within [0, %d]", numfmt.MaxFractionDigits)
	ErrProgressWidth   = errors.New("progress width must be positive")
	ErrKnobRadius      = errors.New("knob radius must not be negative")
)

type Font struct {
	Size  float32
	Style fyne.TextStyle
}

type Config struct {
	Min, Max float64
	Value    float64

	ProgressWidth float32
	RadiansOffset float64
	KnobRadius    float32

	TextEditable bool
	IntegerFont  Font
	DecimalFont  Font

	BackgroundColor  color.Color
	Highlighted      bool
	NormalColor      color.Color // progress and knob when not highlighted
	HighlightedColor color.Color // progress and knob when highlighted

	SeparatorLineHidden bool
	SeparatorLineColor  color.Color

	FractionDigits         int
	CustomDecimalSeparator string
	Locale                 string // BCP 47, empty for the system locale

	Logo fyne.Resource

	MinSize           fyne.Size
	AnimationDuration time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Min:                0,
		Max:                500,
		ProgressWidth:      6,
		RadiansOffset:      0.5,
		KnobRadius:         24,
		TextEditable:       true,
		IntegerFont:        Font{Size: 20},
		DecimalFont:        Font{Size: 20},
		BackgroundColor:    colors.LightGray,
		Highlighted:        true,
		NormalColor:        colors.DarkGray,
		HighlightedColor:   colors.Green,
		SeparatorLineColor: colors.Gray,
		FractionDigits:     numfmt.DefaultFractionDigits,
		MinSize:            fyne.NewSize(100, 100),
		AnimationDuration:  660 * time.Millisecond,
	}
}

// Validate reports every problem with the configuration. New does not call
// it; it repairs bad values instead.
func (c *Config) Validate() error {
	var errs []error
	if c.Min > c.Max {
		errs = append(errs, ErrRange)
	}
	if c.RadiansOffset < 0 || c.RadiansOffset > MaxRadiansOffset {
		errs = append(errs, ErrRadiansOffset)
	}
	if utf8.RuneCountInString(c.CustomDecimalSeparator) > 1 {
		errs = append(errs, ErrSeparatorLength)
	}
	if c.FractionDigits < 0 || c.FractionDigits > numfmt.MaxFractionDigits {
		errs = append(errs, ErrFractionDigits)
	}
	if c.ProgressWidth <= 0 {
		errs = append(errs, ErrProgressWidth)
	}
	if c.KnobRadius < 0 {
		errs = append(errs, ErrKnobRadius)
	}
	return errors.Join(errs...)
}

// sanitize repairs c in place, falling back to defaults silently.
func (c *Config) sanitize() {
	def := DefaultConfig()
	if c.Min > c.Max {
		c.Min, c.Max = c.Max, c.Min
	}
	c.Value = min(c.Max, max(c.Min, c.Value))
	c.RadiansOffset = NewArc(c.RadiansOffset).Offset
	if utf8.RuneCountInString(c.CustomDecimalSeparator) > 1 {
		log.Printf("radialslider: ignoring custom decimal separator %q: %v", c.CustomDecimalSeparator, ErrSeparatorLength)
		c.CustomDecimalSeparator = ""
	}
	c.FractionDigits = min(numfmt.MaxFractionDigits, max(0, c.FractionDigits))
	if c.ProgressWidth <= 0 {
		c.ProgressWidth = def.ProgressWidth
	}
	if c.KnobRadius < 0 {
		c.KnobRadius = 0
	}
	if c.IntegerFont.Size <= 0 {
		c.IntegerFont.Size = def.IntegerFont.Size
	}
	if c.DecimalFont.Size <= 0 {
		c.DecimalFont.Size = def.DecimalFont.Size
	}
	if c.BackgroundColor == nil {
		c.BackgroundColor = def.BackgroundColor
	}
	if c.NormalColor == nil {
		c.NormalColor = def.NormalColor
	}
	if c.HighlightedColor == nil {
		c.HighlightedColor = def.HighlightedColor
	}
	if c.SeparatorLineColor == nil {
		c.SeparatorLineColor = def.SeparatorLineColor
	}
	if c.MinSize.Width <= 0 || c.MinSize.Height <= 0 {
		c.MinSize = def.MinSize
	}
	if c.AnimationDuration < 0 {
		c.AnimationDuration = 0
	}
}

type fontStyle struct {
	Size      float32 `toml:"size"`
	Bold      bool    `toml:"bold"`
	Italic    bool    `toml:"italic"`
	Monospace bool    `toml:"monospace"`
}

// styleSheet is the TOML form of Config. Colours are hex strings.
type styleSheet struct {
	Min                    float64   `toml:"minimum_value"`
	Max                    float64   `toml:"maximum_value"`
	Value                  float64   `toml:"value"`
	ProgressWidth          float32   `toml:"progress_width"`
	RadiansOffset          float64   `toml:"radians_offset"`
	KnobRadius             float32   `toml:"knob_radius"`
	TextEditable           bool      `toml:"text_editable"`
	IntegerFont            fontStyle `toml:"integer_font"`
	DecimalFont            fontStyle `toml:"decimal_font"`
	BackgroundColor        string    `toml:"background_color"`
	Highlighted            bool      `toml:"highlighted"`
	NormalColor            string    `toml:"normal_color"`
	HighlightedColor       string    `toml:"highlighted_color"`
	SeparatorLineHidden    bool      `toml:"separator_line_hidden"`
	SeparatorLineColor     string    `toml:"separator_line_color"`
	FractionDigits         int       `toml:"fraction_digits"`
	CustomDecimalSeparator string    `toml:"custom_decimal_separator"`
	Locale                 string    `toml:"locale"`
	AnimationDuration      string    `toml:"animation_duration"`
}

func toFontStyle(f Font) fontStyle {
	return fontStyle{Size: f.Size, Bold: f.Style.Bold, Italic: f.Style.Italic, Monospace: f.Style.Monospace}
}

func (f fontStyle) font() Font {
	return Font{Size: f.Size, Style: fyne.TextStyle{Bold: f.Bold, Italic: f.Italic, Monospace: f.Monospace}}
}

// ParseConfig decodes a TOML style sheet on top of DefaultConfig. Keys that
// are left out keep their default. The result is validated.
func ParseConfig(data []byte) (*Config, error) {
	def := DefaultConfig()
	sheet := styleSheet{
		Min:                def.Min,
		Max:                def.Max,
		Value:              def.Value,
		ProgressWidth:      def.ProgressWidth,
		RadiansOffset:      def.RadiansOffset,
		KnobRadius:         def.KnobRadius,
		TextEditable:       def.TextEditable,
		IntegerFont:        toFontStyle(def.IntegerFont),
		DecimalFont:        toFontStyle(def.DecimalFont),
		BackgroundColor:    colors.Hex(def.BackgroundColor),
		Highlighted:        def.Highlighted,
		NormalColor:        colors.Hex(def.NormalColor),
		HighlightedColor:   colors.Hex(def.HighlightedColor),
		SeparatorLineColor: colors.Hex(def.SeparatorLineColor),
		FractionDigits:     def.FractionDigits,
		AnimationDuration:  def.AnimationDuration.String(),
	}
	md, err := toml.Decode(string(data), &sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to decode style sheet: %w", err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("radialslider: unknown style sheet key %q", key.String())
	}

	cfg := &Config{
		Min:                    sheet.Min,
		Max:                    sheet.Max,
		Value:                  sheet.Value,
		ProgressWidth:          sheet.ProgressWidth,
		RadiansOffset:          sheet.RadiansOffset,
		KnobRadius:             sheet.KnobRadius,
		TextEditable:           sheet.TextEditable,
		IntegerFont:            sheet.IntegerFont.font(),
		DecimalFont:            sheet.DecimalFont.font(),
		Highlighted:            sheet.Highlighted,
		SeparatorLineHidden:    sheet.SeparatorLineHidden,
		FractionDigits:         sheet.FractionDigits,
		CustomDecimalSeparator: sheet.CustomDecimalSeparator,
		Locale:                 sheet.Locale,
		MinSize:                def.MinSize,
	}
	for _, c := range []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"background_color", sheet.BackgroundColor, &cfg.BackgroundColor},
		{"normal_color", sheet.NormalColor, &cfg.NormalColor},
		{"highlighted_color", sheet.HighlightedColor, &cfg.HighlightedColor},
		{"separator_line_color", sheet.SeparatorLineColor, &cfg.SeparatorLineColor},
	} {
		col, err := colors.ParseHex(c.hex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = col
	}
	if cfg.AnimationDuration, err = time.ParseDuration(sheet.AnimationDuration); err != nil {
		return nil, fmt.Errorf("animation_duration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Package numfmt formats slider values for display and validates what the
// user types back in. Formatting follows the locale's decimal and grouping
// conventions; an optional single character custom decimal separator
// replaces the locale's one everywhere.
package numfmt

import (
	"errors"
	"log"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	MaxFractionDigits     = 4
	DefaultFractionDigits = 2
	// ParseFractionDigits is the precision text is floored to when parsed.
	ParseFractionDigits = 2
)

var ErrSeparatorLength = errors.New("custom decimal separator must be a single character")

type Formatter struct {
	tag            language.Tag
	printer        *message.Printer
	fractionDigits int
	custom         string

	// derived from the locale
	decimal string
	group   string
}

// New returns a formatter for tag with the default fraction digits and no
// custom separator.
func New(tag language.Tag) *Formatter {
	f := &Formatter{
		tag:            tag,
		printer:        message.NewPrinter(tag),
		fractionDigits: DefaultFractionDigits,
	}
	f.decimal, f.group = separators(f.printer)
	return f
}

// System returns a formatter for the operating system locale, falling back
// to English when it cannot be detected.
func System() *Formatter {
	return New(SystemTag())
}

func SystemTag() language.Tag {
	name, err := locale.GetLocale()
	if err != nil {
		log.Printf("numfmt: failed to detect locale: %v", err)
		return language.English
	}
	tag, err := language.Parse(name)
	if err != nil {
		log.Printf("numfmt: unsupported locale %q: %v", name, err)
		return language.English
	}
	return tag
}

// separators derives the locale's decimal and grouping separators by
// formatting known numbers and keeping the non digit runes.
func separators(p *message.Printer) (decimal, group string) {
	decimal = nonDigits(p.Sprint(number.Decimal(1.5, number.MinFractionDigits(1), number.MaxFractionDigits(1))))
	if decimal == "" {
		decimal = "."
	}
	g := p.Sprint(number.Decimal(1234567, number.MaxFractionDigits(0)))
	for _, r := range g {
		if !unicode.IsDigit(r) {
			group = string(r)
			break
		}
	}
	return decimal, group
}

func nonDigits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if !unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func (f *Formatter) Tag() language.Tag { return f.tag }

func (f *Formatter) FractionDigits() int { return f.fractionDigits }

// SetFractionDigits clamps n to [0, MaxFractionDigits].
func (f *Formatter) SetFractionDigits(n int) {
	f.fractionDigits = min(MaxFractionDigits, max(0, n))
}

// Separator returns the custom decimal separator, empty when none is set.
func (f *Formatter) Separator() string { return f.custom }

// SetSeparator sets the custom decimal separator. Anything longer than one
// character resets it to none and returns ErrSeparatorLength.
func (f *Formatter) SetSeparator(s string) error {
	if utf8.RuneCountInString(s) > 1 {
		f.custom = ""
		return ErrSeparatorLength
	}
	f.custom = s
	return nil
}

// DecimalSeparator is the separator in effect: the custom one when set,
// otherwise the locale's.
func (f *Formatter) DecimalSeparator() string {
	if f.custom != "" {
		return f.custom
	}
	return f.decimal
}

// GroupSeparator is the locale's grouping separator, possibly empty.
func (f *Formatter) GroupSeparator() string { return f.group }

// Format renders v with exactly FractionDigits fraction digits and the
// locale's grouping.
func (f *Formatter) Format(v float64) string {
	return f.format(v)
}

// FormatPlain is Format without grouping separators, used to seed the edit
// field so the input mask accepts the text it starts from.
func (f *Formatter) FormatPlain(v float64) string {
	return f.format(v, number.NoSeparator())
}

func (f *Formatter) format(v float64, opts ...number.Option) string {
	opts = append(opts,
		number.MinFractionDigits(f.fractionDigits),
		number.MaxFractionDigits(f.fractionDigits),
	)
	s := f.printer.Sprint(number.Decimal(roundHalfUp(v, f.fractionDigits), opts...))
	if f.custom != "" && f.fractionDigits > 0 {
		if i := strings.LastIndex(s, f.decimal); i >= 0 {
			s = s[:i] + f.custom + s[i+len(f.decimal):]
		}
	}
	return s
}

// Split cuts a formatted number at the last decimal separator, so a custom
// separator equal to the grouping one still keeps the fraction. The integer
// part keeps the separator when a decimal part follows it.
func (f *Formatter) Split(s string) (integer, decimal string) {
	if f.fractionDigits == 0 {
		return s, ""
	}
	sep := f.DecimalSeparator()
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, ""
	}
	return s[:i+len(sep)], s[i+len(sep):]
}

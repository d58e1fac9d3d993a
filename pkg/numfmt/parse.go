package numfmt

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse reads text typed by the user. Grouping separators are ignored and
// both the locale's and the custom decimal separator are understood. The
// result is floored to ParseFractionDigits, text that does not parse
// yields 0.
func (f *Formatter) Parse(s string) float64 {
	n := f.normalize(strings.TrimSpace(s))
	v, err := strconv.ParseFloat(n, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	if strings.ContainsAny(n, "eE") {
		scale := math.Pow10(ParseFractionDigits)
		return math.Floor(v*scale) / scale
	}
	v, err = strconv.ParseFloat(floorDigits(n, ParseFractionDigits), 64)
	if err != nil {
		return 0
	}
	return v
}

// normalize rewrites s to the form strconv understands. The custom
// separator takes priority over the locale's decimal separator, which in
// turn wins over the grouping separator.
func (f *Formatter) normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for len(s) > 0 {
		switch {
		case f.custom != "" && strings.HasPrefix(s, f.custom):
			sb.WriteByte('.')
			s = s[len(f.custom):]
		case strings.HasPrefix(s, f.decimal):
			sb.WriteByte('.')
			s = s[len(f.decimal):]
		case f.group != "" && strings.HasPrefix(s, f.group):
			s = s[len(f.group):]
		default:
			_, size := utf8.DecodeRuneInString(s)
			sb.WriteString(s[:size])
			s = s[size:]
		}
	}
	return sb.String()
}

// floorDigits truncates a plain decimal string to n fraction digits,
// rounding toward negative infinity.
func floorDigits(s string, n int) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= n {
		return s
	}
	kept, rest := s[:dot+1+n], s[dot+1+n:]
	if strings.HasPrefix(s, "-") && strings.Trim(rest, "0") != "" {
		return bump(kept)
	}
	return kept
}

// bump adds one unit in the last place to the magnitude of a decimal string.
func bump(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		switch {
		case b[i] == '.':
			continue
		case b[i] == '9':
			b[i] = '0'
		case b[i] >= '0' && b[i] < '9':
			b[i]++
			return string(b)
		default:
			// reached the sign, carry into a new leading digit
			return string(b[:i+1]) + "1" + string(b[i+1:])
		}
	}
	return "1" + string(b)
}

// Accept is the input mask applied on every keystroke. The empty string is
// accepted so the field can be cleared; anything else must scan as a
// decimal number in full and carry no more than FractionDigits characters
// after the decimal separator.
func (f *Formatter) Accept(s string) bool {
	if s == "" {
		return true
	}
	sep := f.DecimalSeparator()
	if !scanDecimal(strings.ReplaceAll(s, sep, ".")) {
		return false
	}
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return true
	}
	return utf8.RuneCountInString(s[i+len(sep):]) <= f.fractionDigits
}

// scanDecimal reports whether s, ignoring surrounding white space, is an
// optionally signed decimal number such as "12", "12.", "12.5" or ".5".
func scanDecimal(s string) bool {
	s = strings.TrimSpace(s)
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	intDigits := digitRun(s)
	s = s[intDigits:]
	fracDigits := 0
	if s != "" && s[0] == '.' {
		s = s[1:]
		fracDigits = digitRun(s)
		s = s[fracDigits:]
	}
	return s == "" && intDigits+fracDigits > 0
}

func digitRun(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// roundHalfUp rounds v half away from zero at digits fraction places. The
// scaled value is trimmed to 15 significant digits first so 1.005 rounds
// like it reads.
func roundHalfUp(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow10(digits)
	scaled, err := strconv.ParseFloat(strconv.FormatFloat(v*p, 'g', 15, 64), 64)
	if err != nil {
		return v
	}
	return math.Round(scaled) / p
}

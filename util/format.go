package util

import (
	"strconv"
	"strings"
)

var magnitudeSuffixes = [...]string{"", "K", "M", "B", "T"}

// FormatMagnitude renders a large monetary value as a short suffixed string,
// e.g. 1500000 -> "$1.5M". Values that are not Go numbers (nil, strings,
// anything else) render as "N/A". Only values >= 1000 are scaled, so
// negative amounts come out unscaled ("$-500.0"), and scaling stops at the
// "T" tier no matter how large the input is.
func FormatMagnitude(value any) string {
	v, ok := toNumber(value)
	if !ok {
		return "N/A"
	}

	idx := 0
	for v >= 1000 && idx < len(magnitudeSuffixes)-1 {
		v /= 1000
		idx++
	}
	return "$" + strconv.FormatFloat(v, 'f', 1, 64) + magnitudeSuffixes[idx]
}

// SafeFormat renders value as a fixed-precision decimal, or "N/A" when it
// cannot be read as a number. Unlike FormatMagnitude it also accepts numeric
// strings. It never returns an error or panics, since callers feed it raw
// provider fields of unknown shape.
func SafeFormat(value any, precision int) string {
	v, ok := toNumber(value)
	if !ok {
		s, isStr := value.(string)
		if !isStr {
			return "N/A"
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return "N/A"
		}
		v = parsed
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// FormatPlain renders a raw snapshot scalar for cells that take no numeric
// formatting: strings pass through, numbers drop insignificant decimals
// (an employee count of 164000.0 shows as "164000"), nil and anything else
// become "N/A".
func FormatPlain(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if v, ok := toNumber(value); ok {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return "N/A"
}

// ScaleNumber multiplies numeric values by factor and returns everything
// else unchanged, so a later SafeFormat still reports "N/A" for junk.
func ScaleNumber(value any, factor float64) any {
	if v, ok := toNumber(value); ok {
		return v * factor
	}
	return value
}

// Capitalize upper-cases the first character and lower-cases the rest, the
// display form used for recommendation keys ("strong_buy" -> "Strong_buy").
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

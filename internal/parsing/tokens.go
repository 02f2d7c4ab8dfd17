package parsing

import (
	"strconv"
	"strings"
	"unicode"
)

// IsNumeric reports whether a token carries a numeric, percentage or currency
// value (e.g. "25%", "$1.2M", "12", "2023").
func IsNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	if strings.HasPrefix(tok, "$") || strings.HasPrefix(tok, "€") || strings.HasPrefix(tok, "£") {
		return true
	}
	for _, r := range tok {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// IsPercent reports whether a token is a percentage value.
func IsPercent(tok string) bool {
	return strings.HasSuffix(tok, "%") && IsNumeric(tok)
}

// IsCapitalized reports whether a token starts with an upper-case letter.
func IsCapitalized(tok string) bool {
	for _, r := range tok {
		return unicode.IsUpper(r)
	}
	return false
}

// NumericValue extracts the numeric magnitude from a token, ignoring currency
// symbols, percent signs, commas and trailing '+'. The second return value is
// false when the token has no parseable number.
func NumericValue(tok string) (float64, bool) {
	var sb strings.Builder
	for _, r := range tok {
		if unicode.IsDigit(r) || r == '.' {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.Trim(sb.String(), "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// NumericStatus distinguishes a parsed zero from a value that could not be
// parsed at all, so each call site can choose its own display policy.
type NumericStatus int

const (
	NumericParsed NumericStatus = iota
	NumericZero
	NumericFailed
)

// NumericValue is the result of normalizing one display string.
type NumericValue struct {
	Value  float64
	Status NumericStatus
	Raw    string
}

var (
	currencyGlyphs   = strings.NewReplacer("₹", "", "Rs.", "", "Rs", "", "INR", "")
	numericSentinels = map[string]bool{
		"":          true,
		"-":         true,
		"not found": true,
		"n/a":       true,
		"error":     true,
	}
)

// NormalizeNumeric strips thousands separators, currency glyphs and
// whitespace, then parses the remainder. Sentinel inputs and parse failures
// are reported in the status instead of being silently coerced.
func NormalizeNumeric(raw string) NumericValue {
	cleaned := strings.TrimSpace(currencyGlyphs.Replace(raw))
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	if numericSentinels[strings.ToLower(cleaned)] {
		return NumericValue{Status: NumericFailed, Raw: raw}
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return NumericValue{Status: NumericFailed, Raw: raw}
	}
	if value == 0 {
		return NumericValue{Status: NumericZero, Raw: raw}
	}
	return NumericValue{Value: value, Status: NumericParsed, Raw: raw}
}

// Float collapses the result to a float, mapping parse failure to zero.
// This is the ECR display policy.
func (v NumericValue) Float() float64 {
	if v.Status == NumericFailed {
		return 0
	}
	return v.Value
}

// Int is the integer variant of Float, for serial numbers and day counts.
func (v NumericValue) Int() int {
	return int(v.Float())
}

// String returns the normalized value, or the original string unmodified when
// parsing failed. This is the challan amount-paid display policy.
func (v NumericValue) String() string {
	if v.Status == NumericFailed {
		return v.Raw
	}
	return strconv.FormatFloat(v.Value, 'f', 2, 64)
}

var plainNumberRe = regexp.MustCompile(`^\d+(\.\d{2})?$`)

// isPlainNumber reports whether a token is a bare decimal with an optional
// two-place fraction, commas stripped. This is the row tokenizer's notion of
// numeric data, deliberately narrower than NormalizeNumeric.
func isPlainNumber(token string) bool {
	return plainNumberRe.MatchString(strings.ReplaceAll(token, ",", ""))
}

// ensureDecimal appends ".00" to monetary strings that carry no fraction.
func ensureDecimal(s string) string {
	if !strings.Contains(s, ".") {
		return s + ".00"
	}
	return s
}

package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Formatter renders numbers as decimal strings.
//
// Values whose magnitude lies in [10^MinExponent, 10^MaxExponent) are written
// in plain positional notation using the shortest representation that
// round-trips, without a trailing ".0". Everything else uses exponent
// notation with an explicitly signed, unpadded exponent ("1e+21", "1.5e-7").
type Formatter struct {
	MinExponent int `json:"min_exponent" yaml:"min_exponent"`
	MaxExponent int `json:"max_exponent" yaml:"max_exponent"`
}

// DefaultFormatter matches the thresholds browsers use when turning a number into a string.
var DefaultFormatter = Formatter{MinExponent: -6, MaxExponent: 21}

// Format returns the decimal string for v, or ErrorText if v is not finite
func (f Formatter) Format(v float64) string {
	if !isFinite(v) {
		return ErrorText
	}
	if v == 0 {
		// also folds negative zero
		return "0"
	}

	f = f.orDefault()
	abs := math.Abs(v)
	if abs >= math.Pow10(f.MinExponent) && abs < math.Pow10(f.MaxExponent) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

func (f Formatter) orDefault() Formatter {
	if f == (Formatter{}) {
		return DefaultFormatter
	}
	return f
}

// isExponentForm reports whether s is a formatter result in exponent notation
func isExponentForm(s string) bool {
	return strings.ContainsAny(s, "eE")
}

// numericValue parses an input buffer. The bare literals "." and "-." are zero;
// a buffer too large for a float64 yields the corresponding infinity.
func numericValue(s string) float64 {
	if s == "." || s == "-." {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return 0
	}
	return v
}

package token

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// FormatFloat writes f in the shortest decimal form which reads back as f,
// without exponent. Integral values carry no fractional part.
func FormatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrNonFiniteNumber, f)
	}
	if f == 0 {
		// also -0
		return "0", nil
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// CanonicalNumber rewrites a numeric literal into canonical form. Integer
// literals of any size are kept exact.
func CanonicalNumber(lit string) (string, error) {
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return FormatInt(i), nil
	}
	if isInteger(lit) {
		var z big.Int
		if _, ok := z.SetString(lit, 10); ok {
			return z.String(), nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		ne, ok := err.(*strconv.NumError)
		if ok && ne.Err == strconv.ErrRange && math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %q", ErrNonFiniteNumber, lit)
		}
		return "", fmt.Errorf("%w: %q", ErrNumber, lit)
	}
	return FormatFloat(f)
}

func isInteger(v string) bool {
	if v != "" && (v[0] == '-' || v[0] == '+') {
		v = v[1:]
	}
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if !asciiDigit(v[i]) {
			return false
		}
	}
	return true
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

package value

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// MaxFractionDigits is the largest digit count ToFixed accepts.
const MaxFractionDigits = 100

// fixedLimit is the magnitude from which numbers are printed in exponent form
// and from which ToFixed stops padding fraction digits.
const fixedLimit = 1e21

var decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// parseDecimal parses s as a complete decimal number literal.
func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if !decimalLiteral.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out-of-range literals still carry ±Inf or 0, which is what we want.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// FormatNumber renders f using the shortest digits that round-trip.
// Magnitudes in [1e-6, 1e21) use plain decimal notation, others use an
// exponent such as "1e+21" or "1.5e-7".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < fixedLimit {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}

// ToFixed formats f with exactly digits fraction digits.
//
// Rounding is exact on the binary value of f; a value lying exactly halfway
// rounds away from zero, so ToFixed(2.5, 0) is "3". Negative inputs keep
// their sign even when the result rounds to zero. Magnitudes of 1e21 and
// above, NaN and infinities are returned as FormatNumber would print them.
func ToFixed(f float64, digits int) (string, error) {
	if digits < 0 || digits > MaxFractionDigits {
		return "", fmt.Errorf("fraction digits %d out of range [0, %d]", digits, MaxFractionDigits)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= fixedLimit {
		return FormatNumber(f), nil
	}

	neg := f < 0
	if neg {
		f = -f
	}

	scaled := new(big.Rat).SetFloat64(f)
	scaled.Mul(scaled, new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)))
	scaled.Add(scaled, big.NewRat(1, 2))
	n := new(big.Int).Quo(scaled.Num(), scaled.Denom())

	s := n.String()
	if digits > 0 {
		if len(s) <= digits {
			s = strings.Repeat("0", digits-len(s)+1) + s
		}
		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}
	if neg {
		s = "-" + s
	}
	return s, nil
}

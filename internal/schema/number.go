package schema

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"dynsheet/utils"
)

// parseNumber converts grid text to a number the way a browser's Number()
// conversion does: surrounding whitespace is ignored, blank text is 0,
// 0x/0o/0b prefixes denote integers and Infinity is spelled out.
// NaN, inf and every other spelling are rejected.
func parseNumber(raw string, foldWidth bool) (float64, bool) {
	if foldWidth {
		raw = width.Fold.String(raw)
	}

	s := strings.TrimFunc(raw, isNumberSpace)

	switch s {
	case "":
		return 0, true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		if base := prefixBase(s[1]); base != 0 {
			return parsePrefixed(s[2:], base)
		}
	}

	if strings.IndexFunc(s, notDecimalRune) >= 0 {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return f, true
}

// isNumberSpace reports the runes Number() trims: ECMAScript WhiteSpace and
// LineTerminator. U+FEFF is included and U+0085 is not.
func isNumberSpace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', ' ', '\u00a0', '\ufeff', '\n', '\r', '\u2028', '\u2029':
		return true
	}

	return unicode.Is(unicode.Zs, r)
}

func prefixBase(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	default:
		return 0
	}
}

func parsePrefixed(digits string, base int) (float64, bool) {
	if digits[0] == '+' || digits[0] == '-' || strings.Contains(digits, "_") {
		return 0, false
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, false
	}

	f, _ := new(big.Float).SetInt(n).Float64()

	return f, true
}

func notDecimalRune(r rune) bool {
	return !(r >= '0' && r <= '9' || r == '.' || r == 'e' || r == 'E' || r == '+' || r == '-')
}

// numberFits reports whether f satisfies the bounds and, for integer
// columns, integrality.
func numberFits(f float64, minV, maxV *float64, integer bool) bool {
	if !utils.IsWithin(minV, f, maxV) {
		return false
	}

	if integer && (math.IsInf(f, 0) || f != math.Trunc(f)) {
		return false
	}

	return true
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

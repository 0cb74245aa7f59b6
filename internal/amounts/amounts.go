// Package amounts formats numeric strings for display.
package amounts

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// UtiaPerTia is the base-unit to display-unit factor (10^6).
const UtiaPerTia = 1_000_000

const tiaExp = -6

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// Comma formats target with "," as the thousands separator.
func Comma(target string) string {
	return CommaWith(target, ",")
}

// CommaWith formats target as a display number: "0" when target is empty or
// does not start with a number, no decimals when it is whole, two otherwise.
// The integer digits are grouped by three with symbol.
//
//	CommaWith("1000", ",")   => "1,000"
//	CommaWith("1000.5", " ") => "1 000.50"
func CommaWith(target, symbol string) string {
	d, ok := parseLeadingFloat(target)
	if !ok {
		return "0"
	}
	places := int32(2)
	if d.Equal(d.Truncate(0)) {
		places = 0
	}
	return group(d.StringFixed(places), symbol)
}

// CommaInt groups an unsigned counter with ",".
func CommaInt(n uint64) string {
	return group(strconv.FormatUint(n, 10), ",")
}

// Tia converts a utia amount to TIA with two decimals. Only the leading
// integer of amount counts; "0" is returned when it is missing or zero.
//
//	Tia("2000000") => "2.00"
func Tia(amount string) string {
	m := leadingInt.FindString(strings.TrimSpace(amount))
	if m == "" {
		return "0"
	}
	d, err := decimal.NewFromString(m)
	if err != nil || d.IsZero() {
		return "0"
	}
	return d.Shift(tiaExp).StringFixed(2)
}

// TiaComma is Tia with the integer digits grouped by ",". The two decimals
// are kept even when they are zero.
//
//	TiaComma("1234000000") => "1,234.00"
func TiaComma(amount string) string {
	return group(Tia(amount), ",")
}

// TiaDecimal is Tia without formatting, for callers doing arithmetic.
func TiaDecimal(amount string) decimal.Decimal {
	m := leadingInt.FindString(strings.TrimSpace(amount))
	if m == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d.Shift(tiaExp)
}

func parseLeadingFloat(s string) (decimal.Decimal, bool) {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero, false
	}
	// decimal wants digits on both sides of the point.
	sign := ""
	if m[0] == '+' || m[0] == '-' {
		sign, m = m[:1], m[1:]
	}
	if strings.HasPrefix(m, ".") {
		m = "0" + m
	}
	m = strings.Replace(m, ".e", "e", 1)
	m = strings.Replace(m, ".E", "E", 1)
	m = strings.TrimSuffix(m, ".")
	if sign == "-" {
		m = "-" + m
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// group inserts symbol every three digits of the integer part of s.
func group(s, symbol string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}

	var sb strings.Builder
	sb.Grow(len(s) + len(intPart)/3*len(symbol))
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteString(symbol)
		}
		sb.WriteRune(ch)
	}
	return sign + sb.String() + frac
}

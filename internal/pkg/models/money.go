package models

import (
	"fmt"
	"strings"
)

// Money is an amount in counter units, the fixed-point representation the IN
// platform stores bucket counters in: 1 naira = 10000 counter units. All
// arithmetic on balances happens in this unit so no float accumulation can
// occur; conversion to and from naira happens only at the boundaries.
type Money int64

const CounterUnitsPerNaira = 10000

// ParseNaira converts a decimal naira string, e.g. "100" or "12.34", into
// counter units exactly. At most four fractional digits are honoured.
func ParseNaira(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	var whole int64
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		whole = whole*10 + int64(r-'0')
	}
	if len(fracPart) > 4 {
		fracPart = fracPart[:4]
	}
	var frac int64
	scale := int64(1000)
	for _, r := range fracPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		frac += int64(r-'0') * scale
		scale /= 10
	}
	m := whole*CounterUnitsPerNaira + frac
	if neg {
		m = -m
	}
	return Money(m), nil
}

// ParseCounter converts a raw counter-unit integer string from the platform.
func ParseCounter(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty counter value")
	}
	var v int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid counter value %q", s)
		}
		v = v*10 + int64(r-'0')
	}
	return Money(v), nil
}

// Naira renders the amount as the operator sees it: the counter value divided
// back down to naira, with trailing zeros trimmed but always at least one
// fractional digit ("50.0", "12.34").
func (m Money) Naira() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := v / CounterUnitsPerNaira
	frac := v % CounterUnitsPerNaira
	fracStr := fmt.Sprintf("%04d", frac)
	fracStr = strings.TrimRight(fracStr, "0")
	if fracStr == "" {
		fracStr = "0"
	}
	return fmt.Sprintf("%s%d.%s", sign, whole, fracStr)
}

// Counter renders the amount in raw counter units, the form bucket
// adjustment requests carry.
func (m Money) Counter() string {
	return fmt.Sprintf("%d", int64(m))
}

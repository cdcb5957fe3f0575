package utils

import (
	"strconv"
	"strings"
)

// ParseAmount parses an operator-entered money field. Empty or non-numeric
// input is worth 0, never an error; the source records carry amounts as free
// text.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseUint parses an unsigned integer, returning 0 on failure.
func ParseUint(s string) uint {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

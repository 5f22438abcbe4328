package components

import (
	"fmt"
	"strconv"
	"strings"
)

// CellsPerRem is the number of terminal columns one rem occupies.
const CellsPerRem = 2

// ParseRem converts a CSS-style length such as "16rem", "3.5rem" or "24"
// (bare numbers are columns) into terminal columns.
func ParseRem(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty length")
	}
	if number, ok := strings.CutSuffix(value, "rem"); ok {
		rem, err := strconv.ParseFloat(number, 64)
		if err != nil || rem < 0 {
			return 0, fmt.Errorf("invalid rem length %q", value)
		}
		return int(rem*CellsPerRem + 0.5), nil
	}
	cols, err := strconv.Atoi(value)
	if err != nil || cols < 0 {
		return 0, fmt.Errorf("invalid length %q", value)
	}
	return cols, nil
}

// RemToCells is ParseRem with a fallback for malformed input.
func RemToCells(value string, fallback int) int {
	cols, err := ParseRem(value)
	if err != nil {
		return fallback
	}
	return cols
}

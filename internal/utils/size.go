package utils

import (
	"fmt"
	"strings"
)

// FormatCharCount converts a character count into a human-readable lower-case
// unit string for preview summaries.
func FormatCharCount(characters int64) string {
	if characters < 0 {
		return "0"
	}
	units := []string{"", "k", "m", "b"}
	value := float64(characters)
	unitIndex := 0
	for value >= 1000 && unitIndex < len(units)-1 {
		value /= 1000
		unitIndex++
	}
	if unitIndex == 0 {
		return fmt.Sprintf("%d", characters)
	}
	if value < 10 {
		formatted := fmt.Sprintf("%.1f", value)
		formatted = strings.TrimSuffix(formatted, ".0")
		return formatted + units[unitIndex]
	}
	return fmt.Sprintf("%.0f%s", value, units[unitIndex])
}

// utils/validator.go - Input validation
package utils

import (
	"strings"
)

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove leading/trailing spaces
	return strings.TrimSpace(input)
}

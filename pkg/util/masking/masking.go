// Package masking renders personal data safe for log output.
package masking

import "strings"

// Mask replaces every character except the first and last with '*'.
// Values that are blank or at most two characters long are returned unchanged.
func Mask(plaintext string) string {
	if strings.TrimSpace(plaintext) == "" {
		return plaintext
	}
	runes := []rune(plaintext)
	if len(runes) <= 2 {
		return plaintext
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1])
}

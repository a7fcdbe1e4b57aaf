package utils

import (
	"regexp"
	"strings"
)

var (
	phoneRegex    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	nonPhoneChars = regexp.MustCompile(`[^\d+]`)
)

func IsValidPhone(phone string) bool {
	cleaned := nonPhoneChars.ReplaceAllString(phone, "")

	// Basic E.164 format validation
	return phoneRegex.MatchString(cleaned)
}

// NormalizePhone strips spaces, dashes and parentheses and ensures a
// leading +, for handing the number to the SMS provider.
func NormalizePhone(phone string) string {
	normalized := nonPhoneChars.ReplaceAllString(phone, "")

	if !strings.HasPrefix(normalized, "+") {
		normalized = "+" + normalized
	}

	return normalized
}

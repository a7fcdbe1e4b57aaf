package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hhmmRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// IsValidHHMM reports whether s is a 24-hour HH:MM time.
func IsValidHHMM(s string) bool {
	return hhmmRegex.MatchString(s)
}

// FormatTimeTo12Hour converts a 24-hour HH:MM string to a 12-hour display
// form like "05:30 PM". Invalid input is returned unchanged.
func FormatTimeTo12Hour(time24 string) string {
	if !hhmmRegex.MatchString(time24) {
		return time24
	}

	parts := strings.SplitN(time24, ":", 2)
	hours, _ := strconv.Atoi(parts[0])

	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	hours = hours % 12
	if hours == 0 {
		hours = 12
	}

	return fmt.Sprintf("%02d:%s %s", hours, parts[1], ampm)
}

// ToTitleCase capitalizes the first letter of each space-separated word.
func ToTitleCase(s string) string {
	if s == "" {
		return ""
	}

	words := strings.Split(strings.ToLower(s), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}

package util

import (
	"regexp"
	"strings"
	"time"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// DateLayout is the fixed-width UTC form used for server-assigned dates, so
// that they sort correctly as strings next to each other.
const DateLayout = "2006-01-02T15:04:05.000000Z07:00"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// NormalizeEmail makes email lookups case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidatePassword(password string) bool {
	return len(password) >= 6
}

// ValidateDate accepts ISO-8601 dates with or without a time, zone or
// fractional seconds.
func ValidateDate(date string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, date); err == nil {
			return true
		}
	}
	return false
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

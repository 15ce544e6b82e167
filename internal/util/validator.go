package util

import (
	"fmt"
	"regexp"
	"time"
)

// Permissive RFC-5322-style local part; the domain must have at least
// two dot-separated labels and no trailing dot.
var emailRe = regexp.MustCompile(`^[A-Za-z0-9!#$%&'*+/=?^_` + "`" + `{|}~.-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)

// ValidateEmail reports whether candidate looks like an e-mail address.
// Empty input is invalid.
func ValidateEmail(candidate string) bool {
	if candidate == "" {
		return false
	}
	return emailRe.MatchString(candidate)
}

// ValidateDate parses a YYYY-MM-DD date string.
func ValidateDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	return d, nil
}

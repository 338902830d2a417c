package sanitize

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	emailPattern  = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	nonDigit      = regexp.MustCompile(`\D`)
)

// Text trims, collapses interior whitespace runs to a single space, strips
// angle brackets, and truncates to maxLen. It never fails.
func Text(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
	if len(s) > maxLen {
		s = strings.TrimSpace(s[:maxLen])
	}
	return s
}

// Email lowercases and validates against a conservative local@domain.tld
// pattern. Returns "" on mismatch so callers treat it as a missing field.
func Email(s string) string {
	s = strings.ToLower(Text(s, 254))
	if !emailPattern.MatchString(s) {
		return ""
	}
	return s
}

// Phone strips everything but digits and caps at 20 digits.
func Phone(s string) string {
	digits := nonDigit.ReplaceAllString(s, "")
	if len(digits) > 20 {
		digits = digits[:20]
	}
	return digits
}

package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Roll number pattern - alphanumeric, 4 to 20 characters
	RollNumberPattern = `^[A-Za-z0-9\-]{4,20}$`

	// Phone pattern - digits with optional leading +, 7 to 15 digits
	PhonePattern = `^\+?\d{7,15}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	RollNumber *regexp.Regexp
	Phone      *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	RollNumber: regexp.MustCompile(RollNumberPattern),
	Phone:      regexp.MustCompile(PhonePattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

// IsValidRollNumber reports whether the value is an acceptable roll number.
func IsValidRollNumber(roll string) bool {
	return CompiledPatterns.RollNumber.MatchString(strings.TrimSpace(roll))
}

// IsValidPhone reports whether the value is an acceptable phone number.
// Empty phone numbers are allowed; they are optional on profiles.
func IsValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return true
	}
	return CompiledPatterns.Phone.MatchString(phone)
}

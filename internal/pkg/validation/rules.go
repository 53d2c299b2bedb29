package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// EmailPattern matches a plain email address
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// NationalIDPattern matches an 11-digit national id number
	NationalIDPattern = `^\d{11}$`

	// TaxIDPattern matches a 14-digit condominium tax id
	TaxIDPattern = `^\d{14}$`

	// PhonePattern matches a phone number with optional country prefix
	PhonePattern = `^\+?\d{8,15}$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	NationalID *regexp.Regexp
	TaxID      *regexp.Regexp
	Phone      *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	NationalID: regexp.MustCompile(NationalIDPattern),
	TaxID:      regexp.MustCompile(TaxIDPattern),
	Phone:      regexp.MustCompile(PhonePattern),
}

// StringValidation validates a string value against length and pattern rules.
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets a regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets whether the field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other checks for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// ValidatePassword checks the password against the minimum rules.
func ValidatePassword(password string) bool {
	return len(password) >= PasswordMinLength
}

package validation

import "testing"

func TestCompiledPatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		value   string
		want    bool
	}{
		{"valid email", "email", "ana@example.com", true},
		{"email without tld", "email", "ana@example", false},
		{"email with uppercase", "email", "Ana@example.com", false},
		{"valid national id", "nationalID", "12345678901", true},
		{"short national id", "nationalID", "1234567890", false},
		{"national id with letters", "nationalID", "1234567890a", false},
		{"valid tax id", "taxID", "12345678000199", true},
		{"short tax id", "taxID", "1234567800019", false},
		{"phone with prefix", "phone", "+5511999990000", true},
		{"phone without prefix", "phone", "11999990000", true},
		{"phone too short", "phone", "1234567", false},
		{"phone with dashes", "phone", "11-9999-0000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			switch tt.pattern {
			case "email":
				got = CompiledPatterns.Email.MatchString(tt.value)
			case "nationalID":
				got = CompiledPatterns.NationalID.MatchString(tt.value)
			case "taxID":
				got = CompiledPatterns.TaxID.MatchString(tt.value)
			case "phone":
				got = CompiledPatterns.Phone.MatchString(tt.value)
			}
			if got != tt.want {
				t.Errorf("%s match %q: got %v, want %v", tt.pattern, tt.value, got, tt.want)
			}
		})
	}
}

func TestStringValidation(t *testing.T) {
	tests := []struct {
		name string
		v    *StringValidation
		want bool
	}{
		{"required empty", NewStringValidation(""), false},
		{"optional empty", NewStringValidation("").WithRequired(false), true},
		{"below min length", NewStringValidation("a").WithMinLength(2), false},
		{"above max length", NewStringValidation("abcdef").WithMaxLength(5), false},
		{"within bounds", NewStringValidation("abc").WithMinLength(2).WithMaxLength(5), true},
		{"pattern mismatch", NewStringValidation("abc").WithPattern(CompiledPatterns.NationalID), false},
		{"pattern match", NewStringValidation("12345678901").WithPattern(CompiledPatterns.NationalID), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Validate(); got != tt.want {
				t.Errorf("Validate(): got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if ValidatePassword("short") {
		t.Error("passwords shorter than the minimum should be rejected")
	}
	if !ValidatePassword("longenough") {
		t.Error("passwords at or above the minimum should be accepted")
	}
}

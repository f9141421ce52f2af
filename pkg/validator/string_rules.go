package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// IsAlpha reports whether s is non-empty and consists of Unicode letters only.
func IsAlpha(s string) bool {
	return s != "" && !strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// IsAlphanumeric reports whether s is non-empty and consists of Unicode
// letters and numbers only.
func IsAlphanumeric(s string) bool {
	return s != "" && !strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// IsNumeric reports whether s is non-empty and consists of ASCII digits only.
func IsNumeric(s string) bool {
	return isDigits(s)
}

// HasMinLength reports whether s has at least min characters.
// Lengths are counted in runes, not bytes.
func HasMinLength(s string, min int) bool {
	return utf8.RuneCountInString(s) >= min
}

// HasMaxLength reports whether s has at most max characters.
func HasMaxLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// HasLengthBetween reports whether the rune count of s lies in [min, max].
func HasLengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// Contains reports whether substr is within s.
func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// ContainsFold reports whether substr is within s under Unicode case folding,
// so "STRASSE" is found in "Straße".
func ContainsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}

// IsUppercase reports whether s is non-empty and has no lowercase letters.
// Characters without case are ignored.
func IsUppercase(s string) bool {
	return s != "" && !strings.ContainsFunc(s, unicode.IsLower)
}

// IsLowercase reports whether s is non-empty and has no uppercase letters.
func IsLowercase(s string) bool {
	return s != "" && !strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsUpper(r) || unicode.IsTitle(r)
	})
}

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLen requires value to have at least min characters.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return HasMinLength(value, min)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLen requires value to have at most max characters.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return HasMaxLength(value, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// LengthBetween validates that a string has between min and max characters, inclusive.
func LengthBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return HasLengthBetween(value, min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %d and %d characters long", min, max),
			TranslationKey: "validation.length_between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// ValidAlpha requires value to contain only letters.
func ValidAlpha(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsAlpha(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only letters",
			TranslationKey: "validation.alpha",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidAlphanumeric requires value to contain only letters and digits.
func ValidAlphanumeric(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsAlphanumeric(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only letters and numbers",
			TranslationKey: "validation.alphanumeric",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidNumericString requires value to contain only ASCII digits.
func ValidNumericString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsNumeric(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only digits",
			TranslationKey: "validation.numeric",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

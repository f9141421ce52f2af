package validator

import (
	"github.com/google/uuid"
)

// IsUUID reports whether s is a UUID in the canonical 8-4-4-4-12 form.
// Braced, URN and unhyphenated forms accepted by uuid.Parse are rejected.
func IsUUID(s string) bool {
	// Fast rejection before parsing
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}

// ValidUUID requires value to be a UUID in canonical 8-4-4-4-12 form.
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsUUID(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid UUID",
			TranslationKey: "validation.uuid",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

package validator

import (
	"fmt"
	"math"
)

// Integer is the constraint for parity and divisibility checks.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IsInRange reports whether min <= value <= max.
func IsInRange[T Numeric](value, min, max T) bool {
	return value >= min && value <= max
}

// IsPositive reports whether value is greater than zero.
func IsPositive[T Numeric](value T) bool {
	return value > 0
}

// IsNegative reports whether value is less than zero.
func IsNegative[T Numeric](value T) bool {
	return value < 0
}

// IsZero reports whether value equals zero.
func IsZero[T Numeric](value T) bool {
	return value == 0
}

// IsEven reports whether value is divisible by two.
func IsEven[T Integer](value T) bool {
	return value%2 == 0
}

// IsOdd reports whether value is not divisible by two.
func IsOdd[T Integer](value T) bool {
	return value%2 != 0
}

// IsMultipleOf reports whether value is divisible by divisor.
// A zero divisor always yields false.
func IsMultipleOf[T Integer](value, divisor T) bool {
	if divisor == 0 {
		return false
	}
	return value%divisor == 0
}

// IsCloseTo reports whether a and b differ by at most tolerance.
// NaN operands are never close.
func IsCloseTo(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// InRange validates that a numeric value lies within [min, max].
func InRange[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return IsInRange(value, min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// Min validates that a numeric value is greater than or equal to the minimum.
func Min[T Numeric](field string, value, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max[T Numeric](field string, value, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

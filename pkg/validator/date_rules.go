package validator

import (
	"regexp"
	"strconv"
)

var (
	// ISO-8601 calendar date, YYYY-MM-DD
	isoDateRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

	// ISO-8601 clock time, HH:MM:SS
	isoTimeRegex = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})$`)

	// ISO-8601 date and time with optional fraction and offset
	isoDateTimeRegex = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})T(\d{2}:\d{2}:\d{2})(?:\.\d+)?(?:Z|[+-](\d{2}):(\d{2}))?$`)
)

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsValidDate reports whether s is a YYYY-MM-DD date that exists in the
// Gregorian calendar.
func IsValidDate(s string) bool {
	m := isoDateRegex.FindStringSubmatch(s)
	if m == nil {
		return false
	}

	year := atoi(m[1])
	month := atoi(m[2])
	day := atoi(m[3])
	if month < 1 || month > 12 || day < 1 {
		return false
	}

	limit := daysInMonth[month-1]
	if month == 2 && IsLeapYear(year) {
		limit = 29
	}
	return day <= limit
}

// IsValidTime reports whether s is a HH:MM:SS time of day.
func IsValidTime(s string) bool {
	m := isoTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	return atoi(m[1]) < 24 && atoi(m[2]) < 60 && atoi(m[3]) < 60
}

// IsValidDateTime reports whether s is an ISO-8601 date and time such as
// 2024-02-29T13:45:00, optionally followed by fractional seconds and a Z or
// ±HH:MM offset.
func IsValidDateTime(s string) bool {
	m := isoDateTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	if !IsValidDate(m[1]) || !IsValidTime(m[2]) {
		return false
	}
	if m[3] != "" && (atoi(m[3]) > 23 || atoi(m[4]) > 59) {
		return false
	}
	return true
}

// atoi converts a regex-matched digit group; it cannot fail.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// ValidDate validates that a string is an ISO-8601 calendar date.
func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidDate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid date (YYYY-MM-DD)",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field":  field,
				"format": "YYYY-MM-DD",
			},
		},
	}
}

// ValidDateTime requires value to be an ISO-8601 date and time.
func ValidDateTime(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidDateTime(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid ISO-8601 date and time",
			TranslationKey: "validation.datetime",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidTime requires value to be a time of day in HH:MM:SS form.
func ValidTime(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidTime(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid time (HH:MM:SS)",
			TranslationKey: "validation.time",
			TranslationValues: map[string]any{
				"field":  field,
				"format": "HH:MM:SS",
			},
		},
	}
}

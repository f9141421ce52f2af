package phone

import (
	"regexp"
	"strings"
)

// MobileOptions configures IsMobilePhone.
type MobileOptions struct {
	// StrictMode requires the normalised number to start with "+".
	StrictMode bool
}

// Option mutates MobileOptions.
type Option func(*MobileOptions)

// WithStrictMode requires a leading "+" country code marker.
func WithStrictMode(strict bool) Option {
	return func(o *MobileOptions) {
		o.StrictMode = strict
	}
}

var internationalRegex = regexp.MustCompile(`^\+\d{7,15}$`)

// IsMobilePhone reports whether s is a mobile number of at least one grammar
// selected by locale.
//
// The error is non-nil only when none of the requested locale identifiers is
// registered; it wraps ErrUnknownLocale. Unknown identifiers in a list that
// also names a registered locale are ignored.
func IsMobilePhone(s string, locale Locale, opts ...Option) (bool, error) {
	grammars, err := resolve(locale)
	if err != nil {
		return false, err
	}

	if s == "" {
		return false, nil
	}

	var o MobileOptions
	for _, opt := range opts {
		opt(&o)
	}

	normalized := normalize(s)
	if normalized == "" {
		return false, nil
	}
	if o.StrictMode && !strings.HasPrefix(normalized, "+") {
		return false, nil
	}

	for _, g := range grammars {
		// Some grammars spell out separators, e.g. "+31(0)6...", so the raw form is tried too.
		if g.match(normalized) || g.match(s) {
			return true, nil
		}
	}
	return false, nil
}

// IsValidPhone reports whether s is an international number: "+" followed by
// 7 to 15 digits starting with a registered country calling code.
// Spaces, hyphens and parentheses are ignored.
func IsValidPhone(s string) bool {
	normalized := normalize(s)
	if !internationalRegex.MatchString(normalized) {
		return false
	}

	digits := normalized[1:]
	for n := 1; n <= maxCallingCodeLen; n++ {
		if _, ok := callingCodes[digits[:n]]; ok {
			return true
		}
	}
	return false
}

// normalize drops cosmetic characters: whitespace, hyphens and parentheses.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '-', '(', ')':
			return -1
		}
		return r
	}, s)
}

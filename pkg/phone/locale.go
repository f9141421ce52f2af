package phone

import (
	"slices"
	"strings"
	"unicode"
)

const anyLocaleID = "any"

// Locale selects the grammars a number is matched against.
// The zero value is Any.
type Locale struct {
	ids []string
}

// Any matches a number against every registered grammar.
var Any = Locale{}

// NewLocale builds a Locale from one or more identifiers.
// Empty identifiers are skipped and duplicates collapsed. No identifiers,
// or the identifier "any", yields Any.
func NewLocale(ids ...string) Locale {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if id == anyLocaleID {
			return Any
		}
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return Any
	}
	return Locale{ids: out}
}

// ParseLocale splits a comma or whitespace separated list of identifiers,
// e.g. "en-US,en-GB" or "en-US en-GB".
func ParseLocale(s string) Locale {
	return NewLocale(strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})...)
}

// IsAny reports whether the locale matches every registered grammar.
func (l Locale) IsAny() bool {
	return len(l.ids) == 0
}

// IDs returns a copy of the requested identifiers, nil for Any.
func (l Locale) IDs() []string {
	return slices.Clone(l.ids)
}

func (l Locale) String() string {
	if l.IsAny() {
		return anyLocaleID
	}
	return strings.Join(l.ids, ",")
}

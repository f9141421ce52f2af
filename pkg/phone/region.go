package phone

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// LocalesForRegion returns the registered locale identifiers whose region is
// the given ISO 3166-1 code. Two and three letter codes are accepted in any
// case, so "us", "US" and "USA" are equivalent.
func LocalesForRegion(region string) ([]string, error) {
	r, err := language.ParseRegion(strings.ToUpper(strings.TrimSpace(region)))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownRegion, region, err)
	}

	code := r.String()
	var out []string
	for _, g := range allGrammars {
		if g.Region() == code {
			out = append(out, g.Locale)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, code)
	}
	return out, nil
}

// LocaleForRegion is LocalesForRegion wrapped into a Locale.
func LocaleForRegion(region string) (Locale, error) {
	ids, err := LocalesForRegion(region)
	if err != nil {
		return Any, err
	}
	return NewLocale(ids...), nil
}

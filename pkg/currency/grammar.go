package currency

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Grammar is a compiled set of Options. It is immutable and safe for concurrent use.
type Grammar struct {
	opts Options
	re   *regexp.Regexp
	// the value may not end with the optional space after the digits
	noTrailingSpace bool
}

// Compile validates opts on top of DefaultOptions and builds the matching grammar.
func Compile(opts ...Option) (*Grammar, error) {
	return compile(buildOptions(opts))
}

func compile(o Options) (*Grammar, error) {
	if err := validate(o); err != nil {
		return nil, err
	}

	pattern, noTrailingSpace := buildPattern(o)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return &Grammar{
		opts:            o,
		re:              re,
		noTrailingSpace: noTrailingSpace,
	}, nil
}

// MustCompile is like Compile but panics on invalid options.
func MustCompile(opts ...Option) *Grammar {
	g, err := Compile(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Match reports whether s is a currency amount of this grammar.
func (g *Grammar) Match(s string) bool {
	if s == "" || strings.HasPrefix(s, " ") || strings.HasPrefix(s, "- ") {
		return false
	}
	if !strings.ContainsFunc(s, isDigit) {
		return false
	}
	if g.noTrailingSpace && strings.HasSuffix(s, " ") {
		return false
	}
	return g.re.MatchString(s)
}

// Options returns a copy of the options the grammar was compiled from.
func (g *Grammar) Options() Options {
	return g.opts.clone()
}

// String returns the underlying regular expression.
func (g *Grammar) String() string {
	return g.re.String()
}

func validate(o Options) error {
	if o.ThousandsSeparator == o.DecimalSeparator {
		return fmt.Errorf("%w: thousands and decimal separators are both %q", ErrInvalidOptions, o.ThousandsSeparator)
	}
	for _, sep := range []rune{o.ThousandsSeparator, o.DecimalSeparator} {
		if isDigit(sep) || sep == '-' || sep == 0 || sep == unicode.ReplacementChar {
			return fmt.Errorf("%w: separator %q", ErrInvalidOptions, sep)
		}
	}
	if o.AllowDecimal || o.RequireDecimal {
		if len(o.DigitsAfterDecimal) == 0 {
			return fmt.Errorf("%w: no fractional digit count", ErrInvalidOptions)
		}
		for _, n := range o.DigitsAfterDecimal {
			if n <= 0 {
				return fmt.Errorf("%w: fractional digit count %d", ErrInvalidOptions, n)
			}
		}
	}
	return nil
}

// buildPattern assembles the anchored expression for o. The second result
// reports whether a trailing space must be rejected separately.
func buildPattern(o Options) (string, bool) {
	const negative = `-?`

	symbol := regexp.QuoteMeta(o.Symbol)

	thousands := regexp.QuoteMeta(string(o.ThousandsSeparator))
	amount := `(0|[1-9]\d*|[1-9]\d{0,2}(` + thousands + `\d{3})*)?`

	if o.AllowDecimal || o.RequireDecimal {
		counts := make([]string, 0, len(o.DigitsAfterDecimal))
		for _, n := range o.DigitsAfterDecimal {
			counts = append(counts, `\d{`+strconv.Itoa(n)+`}`)
		}
		amount += "(" + regexp.QuoteMeta(string(o.DecimalSeparator)) + "(" + strings.Join(counts, "|") + "))"
		if !o.RequireDecimal {
			amount += "?"
		}
	}

	sign := ""
	if o.AllowNegatives && !o.ParensForNegatives {
		switch {
		case o.NegativeSignAfterDigits:
			amount += negative
		case o.NegativeSignBeforeDigits:
			sign = negative
		}
	}

	// afterSymbol sits between a leading symbol and the digits, bare replaces
	// it when the symbol is absent or trails the digits. Spaces only ever
	// follow a symbol.
	afterSymbol, bare := sign, sign
	noTrailingSpace := false
	switch {
	case o.AllowNegativeSignPlaceholder && sign != "":
		// a space and a sign never share the slot
		afterSymbol = `( |-)?`
	case o.AllowNegativeSignPlaceholder, o.AllowSpaceAfterSymbol:
		afterSymbol = ` ?` + sign
	case o.AllowSpaceAfterDigits:
		amount += `( )?`
		noTrailingSpace = true
	}

	var pattern string
	switch {
	case o.SymbolAfterDigits && o.RequireSymbol:
		pattern = bare + amount + symbol
	case o.SymbolAfterDigits:
		pattern = bare + amount + "(" + symbol + ")?"
	case o.RequireSymbol:
		pattern = symbol + afterSymbol + amount
	default:
		pattern = "(" + symbol + afterSymbol + "|" + bare + ")" + amount
	}

	if o.AllowNegatives {
		switch {
		case o.ParensForNegatives:
			pattern = `(\(` + pattern + `\)|` + pattern + `)`
		case !o.NegativeSignBeforeDigits && !o.NegativeSignAfterDigits:
			pattern = negative + pattern
		}
	}

	return "^" + pattern + "$", noTrailingSpace
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

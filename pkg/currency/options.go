package currency

import "slices"

// Options describes the grammar of accepted currency strings.
// Use DefaultOptions as a starting point; the zero value disallows negatives
// and decimals and has no separators.
type Options struct {
	// Symbol is the currency symbol, e.g. "$", "€" or "kr.".
	Symbol string
	// RequireSymbol rejects amounts without the symbol.
	RequireSymbol bool
	// AllowSpaceAfterSymbol permits a single space between symbol and amount.
	AllowSpaceAfterSymbol bool
	// SymbolAfterDigits places the symbol after the amount.
	SymbolAfterDigits bool

	// AllowNegatives permits negative amounts.
	AllowNegatives bool
	// ParensForNegatives marks negatives with parentheses around the whole value.
	ParensForNegatives bool
	// NegativeSignBeforeDigits places "-" between symbol and digits, e.g. "¥-100".
	NegativeSignBeforeDigits bool
	// NegativeSignAfterDigits places "-" after the digits, e.g. "$10.00-".
	NegativeSignAfterDigits bool
	// AllowNegativeSignPlaceholder lets the slot after the symbol hold either
	// a space or "-", but not both, e.g. "R 123" and "R-123".
	AllowNegativeSignPlaceholder bool

	// ThousandsSeparator groups the integer part in threes.
	ThousandsSeparator rune
	// DecimalSeparator separates the fractional part.
	DecimalSeparator rune

	// AllowDecimal permits a fractional part.
	AllowDecimal bool
	// RequireDecimal rejects amounts without a fractional part.
	RequireDecimal bool
	// DigitsAfterDecimal lists the accepted fractional digit counts.
	DigitsAfterDecimal []int

	// AllowSpaceAfterDigits permits a single space between the amount and a
	// trailing symbol. The value may still not end with a space.
	AllowSpaceAfterDigits bool
}

// DefaultOptions returns the US dollar grammar: optional leading "$", ","
// thousands separator, "." decimal separator, exactly two fractional digits
// and a leading "-" for negatives.
func DefaultOptions() Options {
	return Options{
		Symbol:             "$",
		AllowNegatives:     true,
		ThousandsSeparator: ',',
		DecimalSeparator:   '.',
		AllowDecimal:       true,
		DigitsAfterDecimal: []int{2},
	}
}

func (o Options) clone() Options {
	o.DigitsAfterDecimal = slices.Clone(o.DigitsAfterDecimal)
	return o
}

// Option mutates Options.
type Option func(*Options)

// WithOptions replaces every setting with opts. Options listed after it still apply.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts.clone()
	}
}

// WithSymbol sets the currency symbol.
func WithSymbol(symbol string) Option {
	return func(o *Options) {
		o.Symbol = symbol
	}
}

// WithRequireSymbol makes the symbol mandatory.
func WithRequireSymbol(require bool) Option {
	return func(o *Options) {
		o.RequireSymbol = require
	}
}

// WithSpaceAfterSymbol allows one space between symbol and amount.
func WithSpaceAfterSymbol(allow bool) Option {
	return func(o *Options) {
		o.AllowSpaceAfterSymbol = allow
	}
}

// WithSymbolAfterDigits places the symbol after the amount.
func WithSymbolAfterDigits(after bool) Option {
	return func(o *Options) {
		o.SymbolAfterDigits = after
	}
}

// WithNegatives allows or forbids negative amounts.
func WithNegatives(allow bool) Option {
	return func(o *Options) {
		o.AllowNegatives = allow
	}
}

// WithParensForNegatives marks negative amounts with parentheses.
func WithParensForNegatives(parens bool) Option {
	return func(o *Options) {
		o.ParensForNegatives = parens
	}
}

// WithNegativeSignBeforeDigits places the minus sign between symbol and digits.
func WithNegativeSignBeforeDigits(before bool) Option {
	return func(o *Options) {
		o.NegativeSignBeforeDigits = before
	}
}

// WithNegativeSignAfterDigits places the minus sign after the digits.
func WithNegativeSignAfterDigits(after bool) Option {
	return func(o *Options) {
		o.NegativeSignAfterDigits = after
	}
}

// WithNegativeSignPlaceholder lets the slot after the symbol hold a space or a minus sign.
func WithNegativeSignPlaceholder(allow bool) Option {
	return func(o *Options) {
		o.AllowNegativeSignPlaceholder = allow
	}
}

// WithThousandsSeparator sets the digit grouping separator.
func WithThousandsSeparator(sep rune) Option {
	return func(o *Options) {
		o.ThousandsSeparator = sep
	}
}

// WithDecimalSeparator sets the fractional separator.
func WithDecimalSeparator(sep rune) Option {
	return func(o *Options) {
		o.DecimalSeparator = sep
	}
}

// WithDecimal allows or forbids a fractional part.
func WithDecimal(allow bool) Option {
	return func(o *Options) {
		o.AllowDecimal = allow
	}
}

// WithRequireDecimal makes the fractional part mandatory.
func WithRequireDecimal(require bool) Option {
	return func(o *Options) {
		o.RequireDecimal = require
	}
}

// WithDigitsAfterDecimal sets the accepted fractional digit counts.
func WithDigitsAfterDecimal(digits ...int) Option {
	return func(o *Options) {
		o.DigitsAfterDecimal = slices.Clone(digits)
	}
}

// WithSpaceAfterDigits allows one space between the amount and a trailing symbol.
func WithSpaceAfterDigits(allow bool) Option {
	return func(o *Options) {
		o.AllowSpaceAfterDigits = allow
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Package currency validates monetary amounts written as text, such as
// "$10,123.45", "-€ 1.234,56" or "(1,234)".
//
// The accepted grammar is configurable: the currency symbol and where it goes,
// the thousands and decimal separators, how many fractional digits are
// allowed, and how negative amounts are marked (a minus sign before the symbol,
// before or after the digits, or parentheses around the whole value).
//
// # Usage
//
//	currency.IsCurrency("$10,123.45") // US defaults
//
//	euro := []currency.Option{
//	    currency.WithSymbol("€"),
//	    currency.WithThousandsSeparator('.'),
//	    currency.WithDecimalSeparator(','),
//	    currency.WithSpaceAfterSymbol(true),
//	}
//	currency.IsCurrency("€ 1.234,56", euro...)
//
// Validating many values against the same configuration should compile the
// grammar once and reuse it. A compiled Grammar is immutable and safe for
// concurrent use:
//
//	g, err := currency.Compile(euro...)
//	if err != nil {
//	    return err // contradictory options, see ErrInvalidOptions
//	}
//	g.Match("€1.234,56")
//
// When configurations arrive at run time, a Cache keeps the most recently
// used grammars. IsCurrency with options goes through a package-level one.
//
// ForCode derives options from an ISO 4217 code using CLDR data:
//
//	opts, err := currency.ForCode("JPY") // symbol "¥", no fractional digits
//	g, err := currency.Compile(currency.WithOptions(opts))
//
// # Matching rules
//
// Input is never trimmed. Values may not start with a space or with "- ", must
// contain at least one digit and must be consumed completely. Integer parts are
// either "0", an ungrouped integer without a leading zero, or an integer grouped
// by the thousands separator at every third digit.
package currency

package checklist

import (
	"fmt"
	"unicode/utf8"

	"github.com/dmitrymomot/validkit/pkg/currency"
	"github.com/dmitrymomot/validkit/pkg/phone"
)

// Defaults apply to every check that does not override them.
type Defaults struct {
	Phone    PhoneSettings    `yaml:"phone"`
	Currency CurrencySettings `yaml:"currency"`
}

// PhoneSettings configure mobile checks. No locales means any locale.
type PhoneSettings struct {
	Locales []string `yaml:"locales"`
	Strict  *bool    `yaml:"strict"`
}

func (p PhoneSettings) merge(over PhoneSettings) PhoneSettings {
	if len(over.Locales) > 0 {
		p.Locales = over.Locales
	}
	if over.Strict != nil {
		p.Strict = over.Strict
	}
	return p
}

func (p PhoneSettings) locale() phone.Locale {
	return phone.NewLocale(p.Locales...)
}

func (p PhoneSettings) options() []phone.Option {
	if p.Strict == nil {
		return nil
	}
	return []phone.Option{phone.WithStrictMode(*p.Strict)}
}

// CurrencySettings configure currency checks. Code selects an ISO 4217
// preset; the remaining fields override it. Unset fields keep the defaults.
type CurrencySettings struct {
	Code                         string  `yaml:"code"`
	Symbol                       *string `yaml:"symbol"`
	RequireSymbol                *bool   `yaml:"require_symbol"`
	AllowSpaceAfterSymbol        *bool   `yaml:"allow_space_after_symbol"`
	SymbolAfterDigits            *bool   `yaml:"symbol_after_digits"`
	AllowNegatives               *bool   `yaml:"allow_negatives"`
	ParensForNegatives           *bool   `yaml:"parens_for_negatives"`
	NegativeSignBeforeDigits     *bool   `yaml:"negative_sign_before_digits"`
	NegativeSignAfterDigits      *bool   `yaml:"negative_sign_after_digits"`
	AllowNegativeSignPlaceholder *bool   `yaml:"allow_negative_sign_placeholder"`
	ThousandsSeparator           *string `yaml:"thousands_separator"`
	DecimalSeparator             *string `yaml:"decimal_separator"`
	AllowDecimal                 *bool   `yaml:"allow_decimal"`
	RequireDecimal               *bool   `yaml:"require_decimal"`
	DigitsAfterDecimal           []int   `yaml:"digits_after_decimal"`
	AllowSpaceAfterDigits        *bool   `yaml:"allow_space_after_digits"`
}

// merge overlays over on c. A check that names its own code starts from
// that preset and ignores the defaults.
func (c CurrencySettings) merge(over *CurrencySettings) CurrencySettings {
	if over == nil {
		return c
	}
	if over.Code != "" {
		return *over
	}

	out := c
	setIf(&out.Symbol, over.Symbol)
	setIf(&out.RequireSymbol, over.RequireSymbol)
	setIf(&out.AllowSpaceAfterSymbol, over.AllowSpaceAfterSymbol)
	setIf(&out.SymbolAfterDigits, over.SymbolAfterDigits)
	setIf(&out.AllowNegatives, over.AllowNegatives)
	setIf(&out.ParensForNegatives, over.ParensForNegatives)
	setIf(&out.NegativeSignBeforeDigits, over.NegativeSignBeforeDigits)
	setIf(&out.NegativeSignAfterDigits, over.NegativeSignAfterDigits)
	setIf(&out.AllowNegativeSignPlaceholder, over.AllowNegativeSignPlaceholder)
	setIf(&out.ThousandsSeparator, over.ThousandsSeparator)
	setIf(&out.DecimalSeparator, over.DecimalSeparator)
	setIf(&out.AllowDecimal, over.AllowDecimal)
	setIf(&out.RequireDecimal, over.RequireDecimal)
	setIf(&out.AllowSpaceAfterDigits, over.AllowSpaceAfterDigits)
	if over.DigitsAfterDecimal != nil {
		out.DigitsAfterDecimal = over.DigitsAfterDecimal
	}
	return out
}

func setIf[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

// Grammar compiles the settings into a currency grammar.
func (c CurrencySettings) Grammar() (*currency.Grammar, error) {
	opts, err := c.options()
	if err != nil {
		return nil, err
	}
	return currency.Compile(opts...)
}

func (c CurrencySettings) options() ([]currency.Option, error) {
	var opts []currency.Option
	if c.Code != "" {
		preset, err := currency.ForCode(c.Code)
		if err != nil {
			return nil, err
		}
		opts = append(opts, currency.WithOptions(preset))
	}

	boolOpts := []struct {
		v   *bool
		opt func(bool) currency.Option
	}{
		{c.RequireSymbol, currency.WithRequireSymbol},
		{c.AllowSpaceAfterSymbol, currency.WithSpaceAfterSymbol},
		{c.SymbolAfterDigits, currency.WithSymbolAfterDigits},
		{c.AllowNegatives, currency.WithNegatives},
		{c.ParensForNegatives, currency.WithParensForNegatives},
		{c.NegativeSignBeforeDigits, currency.WithNegativeSignBeforeDigits},
		{c.NegativeSignAfterDigits, currency.WithNegativeSignAfterDigits},
		{c.AllowNegativeSignPlaceholder, currency.WithNegativeSignPlaceholder},
		{c.AllowDecimal, currency.WithDecimal},
		{c.RequireDecimal, currency.WithRequireDecimal},
		{c.AllowSpaceAfterDigits, currency.WithSpaceAfterDigits},
	}
	for _, b := range boolOpts {
		if b.v != nil {
			opts = append(opts, b.opt(*b.v))
		}
	}

	if c.Symbol != nil {
		opts = append(opts, currency.WithSymbol(*c.Symbol))
	}
	if c.ThousandsSeparator != nil {
		r, err := separator(*c.ThousandsSeparator)
		if err != nil {
			return nil, err
		}
		opts = append(opts, currency.WithThousandsSeparator(r))
	}
	if c.DecimalSeparator != nil {
		r, err := separator(*c.DecimalSeparator)
		if err != nil {
			return nil, err
		}
		opts = append(opts, currency.WithDecimalSeparator(r))
	}
	if c.DigitsAfterDecimal != nil {
		opts = append(opts, currency.WithDigitsAfterDecimal(c.DigitsAfterDecimal...))
	}
	return opts, nil
}

func separator(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrSeparator, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

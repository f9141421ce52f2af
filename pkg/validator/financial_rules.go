package validator

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/currency"
)

// CardType is a payment card brand derived from the number prefix and length.
type CardType int

const (
	CardUnknown CardType = iota
	CardVisa
	CardMasterCard
	CardAmex
	CardDiscover
	CardDinersClub
	CardJCB
	CardUnionPay
)

func (c CardType) String() string {
	switch c {
	case CardVisa:
		return "visa"
	case CardMasterCard:
		return "mastercard"
	case CardAmex:
		return "amex"
	case CardDiscover:
		return "discover"
	case CardDinersClub:
		return "diners_club"
	case CardJCB:
		return "jcb"
	case CardUnionPay:
		return "unionpay"
	default:
		return "unknown"
	}
}

const (
	minCardLength = 13
	maxCardLength = 19
)

// cardPrefix maps an inclusive range of leading digits to a brand.
// Ranges are checked in order, the first match wins.
type cardPrefix struct {
	card   CardType
	low    int
	high   int
	digits int
}

var cardPrefixes = []cardPrefix{
	{CardAmex, 34, 34, 2},
	{CardAmex, 37, 37, 2},
	{CardDinersClub, 300, 305, 3},
	{CardDinersClub, 36, 36, 2},
	{CardDinersClub, 38, 39, 2},
	{CardJCB, 3528, 3589, 4},
	{CardVisa, 4, 4, 1},
	{CardMasterCard, 51, 55, 2},
	{CardMasterCard, 2221, 2720, 4},
	{CardDiscover, 6011, 6011, 4},
	{CardDiscover, 644, 649, 3},
	{CardDiscover, 65, 65, 2},
	{CardDiscover, 622126, 622925, 6},
	{CardUnionPay, 62, 62, 2},
}

var cardLengths = map[CardType][]int{
	CardVisa:       {13, 16, 19},
	CardMasterCard: {16},
	CardAmex:       {15},
	CardDiscover:   {16, 17, 18, 19},
	CardDinersClub: {14, 15, 16, 17, 18, 19},
	CardJCB:        {16, 17, 18, 19},
	CardUnionPay:   {16, 17, 18, 19},
}

// stripCardNumber removes the spaces and dashes commonly used to group card digits.
func stripCardNumber(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Luhn reports whether digits is a non-empty string of ASCII digits that
// passes the mod 10 checksum.
func Luhn(digits string) bool {
	if !isDigits(digits) {
		return false
	}
	return luhnSum(digits, false)%10 == 0
}

// LuhnCheckDigit returns the digit that, appended to prefix, makes a number
// that passes the Luhn checksum.
func LuhnCheckDigit(prefix string) (byte, error) {
	if !isDigits(prefix) {
		return 0, fmt.Errorf("%w: luhn prefix must contain only digits", ErrInvalidFormat)
	}
	sum := luhnSum(prefix, true)
	return byte('0' + (10-sum%10)%10), nil
}

// luhnSum adds the digits right to left, doubling every second one.
// doubleFirst doubles the rightmost digit, which is the case for a prefix
// that still lacks its check digit.
func luhnSum(digits string, doubleFirst bool) int {
	sum := 0
	double := doubleFirst
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum
}

// IsValidCreditCard reports whether s is a 13 to 19 digit card number with a
// valid Luhn checksum. Spaces and dashes are ignored.
func IsValidCreditCard(s string) bool {
	digits := stripCardNumber(s)
	if len(digits) < minCardLength || len(digits) > maxCardLength {
		return false
	}
	return Luhn(digits)
}

// GetCardType returns the brand of a card number. Numbers whose prefix is
// not recognised or whose length does not fit the brand are CardUnknown.
// The checksum is not verified.
func GetCardType(s string) CardType {
	digits := stripCardNumber(s)
	if !isDigits(digits) {
		return CardUnknown
	}

	for _, p := range cardPrefixes {
		if len(digits) < p.digits {
			continue
		}
		lead, err := strconv.Atoi(digits[:p.digits])
		if err != nil || lead < p.low || lead > p.high {
			continue
		}
		if slices.Contains(cardLengths[p.card], len(digits)) {
			return p.card
		}
		return CardUnknown
	}
	return CardUnknown
}

// ValidCreditCard validates a card number using the Luhn checksum.
func ValidCreditCard(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidCreditCard(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid credit card number",
			TranslationKey: "validation.credit_card",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidCreditCardType validates a card number and requires one of the given brands.
func ValidCreditCardType(field, value string, allowed ...CardType) Rule {
	names := make([]string, 0, len(allowed))
	for _, c := range allowed {
		names = append(names, c.String())
	}

	return Rule{
		Check: func() bool {
			return IsValidCreditCard(value) && slices.Contains(allowed, GetCardType(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a supported credit card",
			TranslationKey: "validation.credit_card_type",
			TranslationValues: map[string]any{
				"field": field,
				"types": strings.Join(names, ", "),
			},
		},
	}
}

// ValidCurrency validates a monetary amount against the currency grammar built from opts.
func ValidCurrency(field, value string, opts ...currency.Option) Rule {
	return Rule{
		Check: func() bool {
			return currency.IsCurrency(value, opts...)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid currency amount",
			TranslationKey: "validation.currency",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

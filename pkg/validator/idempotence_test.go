package validator_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestPredicatesAreIdempotent(t *testing.T) {
	predicates := map[string]func(string) bool{
		"email":        validator.IsValidEmail,
		"url":          validator.IsValidURL,
		"https url":    validator.IsValidHTTPSURL,
		"credit card":  validator.IsValidCreditCard,
		"luhn":         validator.Luhn,
		"date":         validator.IsValidDate,
		"datetime":     validator.IsValidDateTime,
		"time":         validator.IsValidTime,
		"alpha":        validator.IsAlpha,
		"alphanumeric": validator.IsAlphanumeric,
		"numeric":      validator.IsNumeric,
		"uppercase":    validator.IsUppercase,
		"lowercase":    validator.IsLowercase,
		"uuid":         validator.IsUUID,
		"email domain": func(s string) bool { return validator.IsValidEmailWithDomain(s, "example.com") },
		"url domain":   func(s string) bool { return validator.IsURLFromDomain(s, "example.com") },
		"card type":    func(s string) bool { return validator.GetCardType(s) != validator.CardUnknown },
		"contains fold": func(s string) bool {
			return validator.ContainsFold(s, "ss")
		},
	}

	input := rapid.OneOf(
		rapid.String(),
		rapid.StringMatching(`[a-z0-9.+-]{1,10}@[a-z]{1,8}\.(com|org)`),
		rapid.StringMatching(`https?://[a-z.]{2,12}(:[0-9]{2,4})?/[a-z]{0,6}`),
		rapid.StringMatching(`[0-9 -]{12,20}`),
		rapid.StringMatching(`[0-9]{4}-[0-9]{2}-[0-9]{2}(T[0-9]{2}:[0-9]{2}:[0-9]{2}(Z|[+-][0-9]{2}:[0-9]{2})?)?`),
	)

	for name, fn := range predicates {
		t.Run(name, func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				s := input.Draw(t, "input")
				if fn(s) != fn(s) {
					t.Fatalf("%s(%q) is not deterministic", name, s)
				}
			})
		})
	}
}

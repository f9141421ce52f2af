// Package validkit is a collection of string validators for user input.
//
// The validators live in subpackages:
//
//   - pkg/validator: email, URL, credit card, ISO date and time, string and
//     numeric predicates, plus composable rules with translatable errors
//   - pkg/phone: mobile phone numbers for more than 150 locales
//   - pkg/currency: currency amounts under a configurable grammar
//   - pkg/structtag: the validators as go-playground/validator struct tags
//   - pkg/checklist: batches of checks described in YAML
//   - pkg/i18n: translated validation messages
//
// Every predicate is pure and safe for concurrent use. Only the mobile phone
// validator reports usage errors, for unknown locales.
//
//	ok, err := phone.IsMobilePhone("+14155552671", phone.NewLocale("en-US"))
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", form.Email),
//	    validator.ValidCurrency("price", form.Price),
//	)
//
// The validkit command in cmd/validkit runs the same checks from a shell.
package validkit

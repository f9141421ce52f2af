// Package validator provides stateless format predicates and composable
// validation rules for emails, URLs, card numbers, ISO-8601 dates and times,
// strings, numbers and UUIDs.
//
// Every predicate is a plain function returning a bool; malformed input
// yields false and never an error. Predicates are safe for concurrent use
// and keep no state between calls.
//
//	validator.IsValidEmail("user@example.com")        // true
//	validator.IsValidDate("2023-02-29")               // false
//	validator.GetCardType("4532 0151 1283 0366")      // CardVisa
//	validator.ContainsFold("Straße", "STRASSE")       // true
//
// # Rules
//
// A Rule pairs a Check function with a translatable ValidationError.
// Rules are evaluated with Apply, which aggregates every failure into
// ValidationErrors:
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", form.Email),
//	    validator.ValidMobilePhone("phone", form.Phone, phone.NewLocale("en-US")),
//	    validator.ValidCurrency("amount", form.Amount),
//	    validator.LengthBetween("name", form.Name, 1, 64),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        log.Println(field, verrs.Get(field))
//	    }
//	}
//
// Both ValidationError and ValidationErrors implement error and match
// ErrValidationFailed with errors.Is.
//
// Phone and currency rules delegate to the phone and currency packages.
package validator

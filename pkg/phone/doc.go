// Package phone validates phone numbers against a registry of per-locale
// mobile number grammars.
//
// The registry maps locale identifiers such as "en-US" or "pt-BR" to a
// Grammar: the country calling code plus a compiled pattern describing the
// national and international forms of a mobile number. It is built once when
// the package is initialised and never modified afterwards, so every function
// in this package is safe for concurrent use without locking.
//
// # Usage
//
//	ok, err := phone.IsMobilePhone("+1 (415) 555-2671", phone.NewLocale("en-US"))
//	if err != nil {
//	    // the locale is not registered: a configuration problem, not bad input
//	}
//
//	// OR semantics across several locales
//	ok, _ = phone.IsMobilePhone("07911123456", phone.NewLocale("en-US", "en-GB"))
//
//	// require a leading "+" country code marker
//	ok, _ = phone.IsMobilePhone("4155552671", phone.Any, phone.WithStrictMode(true))
//
//	// locale agnostic international check
//	phone.IsValidPhone("+447911123456")
//
// # Normalisation
//
// Spaces, hyphens and parentheses are cosmetic and removed before matching.
// A leading "+" is significant and always preserved; strict mode is checked
// on the normalised value.
//
// # Error Handling
//
// IsMobilePhone separates "the number is invalid" (false, nil) from "the
// locale is unknown" (false, ErrUnknownLocale). Use errors.Is to detect the
// latter. LocalesForRegion returns ErrUnknownRegion for regions without any
// registered grammar.
package phone

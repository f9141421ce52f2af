// Package i18n renders validation errors in the user's language.
//
// Translations are YAML files named after a BCP 47 tag, with nested keys
// flattened by dots and named placeholders in the form %{name}:
//
//	# de.yaml
//	validation:
//	  email: "%{field} muss eine gültige E-Mail-Adresse sein"
//
// English, German, French and Spanish messages for every validator
// translation key are bundled and loaded by New. NewFromFS loads another
// set from any fs.FS.
//
//	tr, err := i18n.New()
//	if err != nil {
//	    return err
//	}
//	lang := tr.Match(r.Header.Get("Accept-Language"))
//	for field, msgs := range tr.Errors(lang, validator.ExtractValidationErrors(err)) {
//	    // ...
//	}
//
// Language negotiation uses golang.org/x/text/language, so "de-AT" or
// "fr-CH, fr;q=0.9" select the closest loaded language and anything
// unmatched falls back to the default language.
package i18n

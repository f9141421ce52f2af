// Package checklist runs batches of validations described in YAML.
//
// A document sets defaults for phone and currency checks and lists the
// values to check:
//
//	defaults:
//	  phone:
//	    locales: [en-US, en-CA]
//	  currency:
//	    code: EUR
//	checks:
//	  - field: email
//	    kind: email
//	    value: ann@example.com
//	    domains: [example.com]
//	  - field: phone
//	    kind: mobile
//	    value: "+1 415 555 2671"
//	    strict: true
//	  - field: price
//	    kind: currency
//	    value: "€1,234.50"
//
// Parse rejects malformed documents and unknown keys. Unknown kinds, unknown
// locales, invalid currency settings and length checks without bounds fail only
// the affected check and are reported in Result.Problem:
//
//	cl, err := checklist.Load("signup.yaml")
//	if err != nil {
//	    return err
//	}
//	report := cl.Run(checklist.WithLogger(log))
//	if err := report.Err(); err != nil {
//	    verrs := validator.ExtractValidationErrors(err)
//	    // ...
//	}
package checklist

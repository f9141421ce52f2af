package structtag

import (
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/validkit/pkg/phone"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

// Tag names registered by New.
const (
	TagPhone        = "phone"
	TagMobile       = "mobile"
	TagMobileStrict = "mobile_strict"
	TagCurrency     = "currency"
	TagCard         = "card"
	TagISODate      = "isodate"
	TagISODateTime  = "isodatetime"
	TagISOTime      = "isotime"
	TagHTTPSURL     = "https_url"
	TagEmailDomain  = "email_domain"
)

func (v *Validator) tags() map[string]playground.Func {
	return map[string]playground.Func{
		TagPhone:        stringFunc(phone.IsValidPhone),
		TagMobile:       mobileFunc(false),
		TagMobileStrict: mobileFunc(true),
		TagCurrency:     v.currencyFunc,
		TagCard:         stringFunc(validator.IsValidCreditCard),
		TagISODate:      stringFunc(validator.IsValidDate),
		TagISODateTime:  stringFunc(validator.IsValidDateTime),
		TagISOTime:      stringFunc(validator.IsValidTime),
		TagHTTPSURL:     stringFunc(validator.IsValidHTTPSURL),
		TagEmailDomain: func(fl playground.FieldLevel) bool {
			s, ok := fieldString(fl)
			return ok && validator.IsValidEmailWithDomain(s, strings.Fields(fl.Param())...)
		},
	}
}

// fieldString returns the field value for string kinds only.
func fieldString(fl playground.FieldLevel) (string, bool) {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return "", false
	}
	return f.String(), true
}

func stringFunc(check func(string) bool) playground.Func {
	return func(fl playground.FieldLevel) bool {
		s, ok := fieldString(fl)
		return ok && check(s)
	}
}

func mobileFunc(strict bool) playground.Func {
	return func(fl playground.FieldLevel) bool {
		s, ok := fieldString(fl)
		if !ok {
			return false
		}
		valid, err := phone.IsMobilePhone(s, phone.NewLocale(strings.Fields(fl.Param())...), phone.WithStrictMode(strict))
		return err == nil && valid
	}
}

func (v *Validator) currencyFunc(fl playground.FieldLevel) bool {
	s, ok := fieldString(fl)
	if !ok {
		return false
	}
	g, err := v.grammar(strings.TrimSpace(fl.Param()))
	if err != nil {
		return false
	}
	return g.Match(s)
}

// toValidationError builds the error for a failed tag, reusing the metadata
// of the matching validator rule where one exists.
func toValidationError(field, tag, param string) validator.ValidationError {
	params := strings.Fields(param)

	switch tag {
	case TagPhone:
		return validator.ValidPhone(field, "").Error
	case TagMobile, TagMobileStrict:
		return validator.ValidMobilePhone(field, "", phone.NewLocale(params...)).Error
	case TagCurrency:
		return validator.ValidCurrency(field, "").Error
	case TagCard:
		return validator.ValidCreditCard(field, "").Error
	case TagISODate:
		return validator.ValidDate(field, "").Error
	case TagISODateTime:
		return validator.ValidDateTime(field, "").Error
	case TagISOTime:
		return validator.ValidTime(field, "").Error
	case TagHTTPSURL:
		return validator.ValidHTTPSURL(field, "").Error
	case TagEmailDomain:
		return validator.ValidEmailDomain(field, "", params...).Error
	case "email":
		return validator.ValidEmail(field, "").Error
	case "url":
		return validator.ValidURL(field, "").Error
	case "uuid":
		return validator.ValidUUID(field, "").Error
	case "required":
		return validator.Required(field, "").Error
	}

	values := map[string]any{"field": field}
	if param != "" {
		values["param"] = param
	}
	return validator.ValidationError{
		Field:             field,
		Message:           fmt.Sprintf("failed on the %s rule", tag),
		TranslationKey:    "validation." + tag,
		TranslationValues: values,
	}
}

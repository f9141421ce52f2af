// Package structtag exposes the validkit validators as go-playground/validator
// struct tags, so request and config structs can be validated declaratively:
//
//	type Signup struct {
//	    Email  string `json:"email" validate:"required,email_domain=example.com example.org"`
//	    Phone  string `json:"phone" validate:"omitempty,mobile=en-US en-CA"`
//	    Amount string `json:"amount" validate:"currency=EUR"`
//	}
//
// Tag parameters are space separated. Failures are returned as
// validator.ValidationErrors keyed by the json field names.
package structtag

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/validkit/pkg/currency"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

// Validator wraps a go-playground validator with the validkit tags registered.
// It is safe for concurrent use.
type Validator struct {
	validate *playground.Validate

	grammars *currency.Cache
}

// New creates a Validator with every validkit tag registered.
func New() (*Validator, error) {
	v := &Validator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
		grammars: currency.NewCache(32),
	}
	v.validate.RegisterTagNameFunc(jsonFieldName)

	for tag, fn := range v.tags() {
		if err := v.validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRegisterTag, tag, err)
		}
	}
	return v, nil
}

// MustNew is like New but panics if a tag cannot be registered.
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Struct validates the exported fields of s. Tag failures are returned as
// validator.ValidationErrors; a nil or non-struct argument yields ErrInvalidInput.
func (v *Validator) Struct(s any) error {
	return v.convert(v.validate.Struct(s))
}

// Var validates a single value against a tag expression such as "mobile=en-GB".
func (v *Validator) Var(field any, tag string) error {
	return v.convert(v.validate.Var(field, tag))
}

func (v *Validator) convert(err error) error {
	if err == nil {
		return nil
	}

	var invalid *playground.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(validator.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, toValidationError(fieldPath(fe), fe.Tag(), fe.Param()))
	}
	return out
}

// fieldPath drops the root struct name from the namespace, so nested
// fields read "address.city".
func fieldPath(fe playground.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	if ns == "" {
		return fe.Field()
	}
	return ns
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// grammar returns the compiled currency grammar for an ISO code,
// or the default grammar for an empty code.
func (v *Validator) grammar(code string) (*currency.Grammar, error) {
	var opts []currency.Option
	if code != "" {
		preset, err := currency.ForCode(code)
		if err != nil {
			return nil, err
		}
		opts = append(opts, currency.WithOptions(preset))
	}

	return v.grammars.Compile(opts...)
}

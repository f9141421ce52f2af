package checklist

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/validkit/pkg/phone"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

// Kind names the validator a check runs.
type Kind string

const (
	KindEmail        Kind = "email"
	KindURL          Kind = "url"
	KindHTTPSURL     Kind = "https_url"
	KindPhone        Kind = "phone"
	KindMobile       Kind = "mobile"
	KindCurrency     Kind = "currency"
	KindCreditCard   Kind = "credit_card"
	KindDate         Kind = "date"
	KindDateTime     Kind = "datetime"
	KindTime         Kind = "time"
	KindAlpha        Kind = "alpha"
	KindAlphanumeric Kind = "alphanumeric"
	KindNumeric      Kind = "numeric"
	KindUUID         Kind = "uuid"
	KindLength       Kind = "length"
	KindContains     Kind = "contains"
	KindUppercase    Kind = "uppercase"
	KindLowercase    Kind = "lowercase"
	KindNumber       Kind = "number"
	KindRequired     Kind = "required"
)

// Checklist is a parsed document of checks.
type Checklist struct {
	Defaults Defaults `yaml:"defaults"`
	Checks   []Check  `yaml:"checks"`
}

// Check validates one value. Fields other than Field, Kind and Value only
// apply to the kinds that use them.
type Check struct {
	Field string `yaml:"field"`
	Kind  Kind   `yaml:"kind"`
	Value string `yaml:"value"`

	// email, url
	Domains []string `yaml:"domains"`

	// mobile
	Phone PhoneSettings `yaml:",inline"`

	// currency
	Currency *CurrencySettings `yaml:"currency"`

	// length (characters) and number (value)
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`

	// contains
	Substring  string `yaml:"substring"`
	IgnoreCase bool   `yaml:"ignore_case"`
}

// Parse decodes a YAML checklist. Unknown keys are rejected; unknown kinds
// and locales are not, they fail the affected check when the list runs.
func Parse(r io.Reader) (*Checklist, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cl Checklist
	if err := dec.Decode(&cl); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoChecks
		}
		return nil, errors.Join(ErrParse, err)
	}
	if len(cl.Checks) == 0 {
		return nil, ErrNoChecks
	}

	for i := range cl.Checks {
		if cl.Checks[i].Field == "" {
			cl.Checks[i].Field = fmt.Sprintf("checks[%d]", i)
		}
	}
	return &cl, nil
}

// Load reads and parses the checklist file at path.
func Load(path string) (*Checklist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	defer f.Close()

	return Parse(f)
}

// rules builds the validator rules for c. The error reports a usage
// problem such as an unknown kind or locale, not an invalid value.
func (c Check) rules(d Defaults) ([]validator.Rule, error) {
	field, value := c.Field, c.Value

	switch c.Kind {
	case KindRequired:
		return []validator.Rule{validator.Required(field, value)}, nil
	case KindEmail:
		if len(c.Domains) > 0 {
			return []validator.Rule{validator.ValidEmailDomain(field, value, c.Domains...)}, nil
		}
		return []validator.Rule{validator.ValidEmail(field, value)}, nil
	case KindURL:
		rules := []validator.Rule{validator.ValidURL(field, value)}
		for _, domain := range c.Domains {
			rules = append(rules, validator.ValidURLFromDomain(field, value, domain))
		}
		return rules, nil
	case KindHTTPSURL:
		return []validator.Rule{validator.ValidHTTPSURL(field, value)}, nil
	case KindPhone:
		return []validator.Rule{validator.ValidPhone(field, value)}, nil
	case KindMobile:
		settings := d.Phone.merge(c.Phone)
		locale := settings.locale()
		// an empty number still resolves the locale
		if _, err := phone.IsMobilePhone("", locale); err != nil {
			return nil, err
		}
		return []validator.Rule{validator.ValidMobilePhone(field, value, locale, settings.options()...)}, nil
	case KindCurrency:
		g, err := d.Currency.merge(c.Currency).Grammar()
		if err != nil {
			return nil, err
		}
		rule := validator.ValidCurrency(field, value)
		rule.Check = func() bool { return g.Match(value) }
		return []validator.Rule{rule}, nil
	case KindCreditCard:
		return []validator.Rule{validator.ValidCreditCard(field, value)}, nil
	case KindDate:
		return []validator.Rule{validator.ValidDate(field, value)}, nil
	case KindDateTime:
		return []validator.Rule{validator.ValidDateTime(field, value)}, nil
	case KindTime:
		return []validator.Rule{validator.ValidTime(field, value)}, nil
	case KindAlpha:
		return []validator.Rule{validator.ValidAlpha(field, value)}, nil
	case KindAlphanumeric:
		return []validator.Rule{validator.ValidAlphanumeric(field, value)}, nil
	case KindNumeric:
		return []validator.Rule{validator.ValidNumericString(field, value)}, nil
	case KindUUID:
		return []validator.Rule{validator.ValidUUID(field, value)}, nil
	case KindLength:
		return c.lengthRules()
	case KindContains:
		return []validator.Rule{c.containsRule()}, nil
	case KindUppercase, KindLowercase:
		return []validator.Rule{c.caseRule()}, nil
	case KindNumber:
		return c.numberRules(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
	}
}

func (c Check) lengthRules() ([]validator.Rule, error) {
	switch {
	case c.Min != nil && c.Max != nil:
		return []validator.Rule{validator.LengthBetween(c.Field, c.Value, int(*c.Min), int(*c.Max))}, nil
	case c.Min != nil:
		return []validator.Rule{validator.MinLen(c.Field, c.Value, int(*c.Min))}, nil
	case c.Max != nil:
		return []validator.Rule{validator.MaxLen(c.Field, c.Value, int(*c.Max))}, nil
	default:
		return nil, fmt.Errorf("%w: length needs min or max", ErrMissingBounds)
	}
}

func (c Check) containsRule() validator.Rule {
	contains := validator.Contains
	if c.IgnoreCase {
		contains = validator.ContainsFold
	}
	return validator.Rule{
		Check: func() bool {
			return contains(c.Value, c.Substring)
		},
		Error: validator.ValidationError{
			Field:          c.Field,
			Message:        fmt.Sprintf("must contain %q", c.Substring),
			TranslationKey: "validation.contains",
			TranslationValues: map[string]any{
				"field":     c.Field,
				"substring": c.Substring,
			},
		},
	}
}

func (c Check) caseRule() validator.Rule {
	check, word := validator.IsUppercase, "uppercase"
	if c.Kind == KindLowercase {
		check, word = validator.IsLowercase, "lowercase"
	}
	return validator.Rule{
		Check: func() bool {
			return check(c.Value)
		},
		Error: validator.ValidationError{
			Field:          c.Field,
			Message:        "must be " + word,
			TranslationKey: "validation." + word,
			TranslationValues: map[string]any{
				"field": c.Field,
			},
		},
	}
}

func (c Check) numberRules() []validator.Rule {
	n, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
	if err == nil && (math.IsNaN(n) || math.IsInf(n, 0)) {
		err = strconv.ErrSyntax
	}
	rules := []validator.Rule{{
		Check: func() bool {
			return err == nil
		},
		Error: validator.ValidationError{
			Field:          c.Field,
			Message:        "must be a number",
			TranslationKey: "validation.number",
			TranslationValues: map[string]any{
				"field": c.Field,
			},
		},
	}}
	if err != nil {
		return rules
	}

	switch {
	case c.Min != nil && c.Max != nil:
		rules = append(rules, validator.InRange(c.Field, n, *c.Min, *c.Max))
	case c.Min != nil:
		rules = append(rules, validator.Min(c.Field, n, *c.Min))
	case c.Max != nil:
		rules = append(rules, validator.Max(c.Field, n, *c.Max))
	}
	return rules
}

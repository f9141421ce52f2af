package validator

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/phone"
)

const maxEmailLength = 254

var (
	// Email regex - RFC 5322 subset, dot-atom local part and LDH domain labels
	emailRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

	// URL regex - http(s) scheme followed by a non-empty authority
	urlRegex = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
)

// IsValidEmail reports whether s is a syntactically valid email address.
func IsValidEmail(s string) bool {
	if s == "" || len(s) > maxEmailLength {
		return false
	}
	return emailRegex.MatchString(s)
}

// IsValidEmailWithDomain reports whether s is a valid email address whose
// domain is one of domains. Domains are compared case-insensitively.
func IsValidEmailWithDomain(s string, domains ...string) bool {
	if !IsValidEmail(s) {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	domain := s[at+1:]
	for _, d := range domains {
		if strings.EqualFold(domain, strings.TrimSpace(d)) {
			return true
		}
	}
	return false
}

// IsValidURL reports whether s is an absolute http or https URL.
func IsValidURL(s string) bool {
	return urlRegex.MatchString(s)
}

// IsValidHTTPSURL reports whether s is a valid URL with the https scheme.
func IsValidHTTPSURL(s string) bool {
	return strings.HasPrefix(s, "https://") && IsValidURL(s)
}

// IsURLFromDomain reports whether s is a valid URL whose host is domain or
// one of its subdomains. The port is ignored.
func IsURLFromDomain(s, domain string) bool {
	domain = strings.ToLower(strings.Trim(strings.TrimSpace(domain), "."))
	if domain == "" || !IsValidURL(s) {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// ValidEmail validates that a string is a valid email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidEmailDomain validates that an email address belongs to one of the allowed domains.
func ValidEmailDomain(field, value string, domains ...string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidEmailWithDomain(value, domains...)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be an email address from an allowed domain",
			TranslationKey: "validation.email_domain",
			TranslationValues: map[string]any{
				"field":   field,
				"domains": strings.Join(domains, ", "),
			},
		},
	}
}

// ValidURL validates that a string is a valid http or https URL.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidURL(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidHTTPSURL requires value to be an absolute URL with the https scheme.
func ValidHTTPSURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidHTTPSURL(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid HTTPS URL",
			TranslationKey: "validation.https_url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidURLFromDomain validates that a URL points at domain or one of its subdomains.
func ValidURLFromDomain(field, value, domain string) Rule {
	return Rule{
		Check: func() bool {
			return IsURLFromDomain(value, domain)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a URL from " + domain,
			TranslationKey: "validation.url_domain",
			TranslationValues: map[string]any{
				"field":  field,
				"domain": domain,
			},
		},
	}
}

// ValidPhone validates that a string is an international phone number with a known calling code.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phone.IsValidPhone(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidMobilePhone validates a mobile number against the grammars of locale.
// An unknown locale fails the rule.
func ValidMobilePhone(field, value string, locale phone.Locale, opts ...phone.Option) Rule {
	return Rule{
		Check: func() bool {
			ok, err := phone.IsMobilePhone(value, locale, opts...)
			return err == nil && ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid mobile phone number",
			TranslationKey: "validation.mobile_phone",
			TranslationValues: map[string]any{
				"field":  field,
				"locale": locale.String(),
			},
		},
	}
}

package main

import (
	"flag"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/config"
	"github.com/dmitrymomot/validkit/pkg/logger"
)

// envPrefix namespaces every environment variable the command reads.
const envPrefix = "VALIDKIT_"

// settings are read from VALIDKIT_* variables and overridden by flags.
type settings struct {
	LogLevel     string   `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat    string   `env:"LOG_FORMAT" envDefault:"text"`
	PhoneLocales []string `env:"PHONE_LOCALES" envSeparator:","`
	PhoneStrict  bool     `env:"PHONE_STRICT"`
	CurrencyCode string   `env:"CURRENCY_CODE"`
	EmailDomains []string `env:"EMAIL_DOMAINS" envSeparator:","`
	URLDomain    string   `env:"URL_DOMAIN"`
	Lang         string   `env:"LANG" envDefault:"en"`
}

func loadSettings() (settings, error) {
	var s settings
	if err := config.Load(&s, config.WithPrefix(envPrefix)); err != nil {
		return s, err
	}
	s.PhoneLocales = splitList(strings.Join(s.PhoneLocales, ","))
	s.EmailDomains = splitList(strings.Join(s.EmailDomains, ","))
	return s, nil
}

// bind registers flags whose defaults come from s.
func (s *settings) bind(fs *flag.FlagSet) {
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&s.LogFormat, "log-format", s.LogFormat, "log format: text or json")
	fs.Func("locales", "comma-separated mobile phone locales (default any)", func(v string) error {
		s.PhoneLocales = splitList(v)
		return nil
	})
	fs.BoolVar(&s.PhoneStrict, "strict", s.PhoneStrict, "require a leading + on mobile numbers")
	fs.StringVar(&s.CurrencyCode, "currency", s.CurrencyCode, "ISO 4217 code selecting currency rules")
	fs.Func("domains", "comma-separated domains accepted for email", func(v string) error {
		s.EmailDomains = splitList(v)
		return nil
	})
	fs.StringVar(&s.URLDomain, "url-domain", s.URLDomain, "domain every URL must belong to")
	fs.StringVar(&s.Lang, "lang", s.Lang, "language of error messages")
}

func (s settings) logger() (*slog.Logger, error) {
	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(s.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("validkit")),
	), nil
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

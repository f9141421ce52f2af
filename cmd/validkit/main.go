// Command validkit validates values from the command line or a YAML
// checklist.
//
//	validkit [flags] <kind> <value>...
//	validkit [flags] check <file.yaml>
//
// The first form prints one line per value and exits 1 when any value is
// invalid. The second prints a JSON report. Flags default from VALIDKIT_*
// environment variables, which may also come from a .env file.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/checklist"
	"github.com/dmitrymomot/validkit/pkg/i18n"
	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage: validkit [flags] <kind> <value>... | validkit [flags] check <file.yaml>")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	fs := flag.NewFlagSet("validkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	s.bind(fs)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	log, err := s.logger()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	tr, err := i18n.New(i18n.WithLogger(log))
	if err != nil {
		log.Error("validkit: loading translations", logger.Error(err))
		return exitUsage
	}
	lang := tr.Match(s.Lang)

	rest := fs.Args()
	if len(rest) < 2 {
		fmt.Fprintln(stderr, errUsage)
		return exitUsage
	}

	app := &app{
		settings: s,
		log:      log,
		format: func(e validator.ValidationError) string {
			return tr.Error(lang, e)
		},
		stdout: stdout,
		stderr: stderr,
	}

	if rest[0] == "check" {
		if len(rest) != 2 {
			fmt.Fprintln(stderr, errUsage)
			return exitUsage
		}
		return app.checkFile(rest[1])
	}
	return app.checkValues(checklist.Kind(rest[0]), rest[1:])
}

type app struct {
	settings settings
	log      *slog.Logger
	format   func(validator.ValidationError) string
	stdout   io.Writer
	stderr   io.Writer
}

// defaults turns the command settings into checklist defaults.
func (a *app) defaults() checklist.Defaults {
	d := checklist.Defaults{
		Phone:    checklist.PhoneSettings{Locales: a.settings.PhoneLocales},
		Currency: checklist.CurrencySettings{Code: a.settings.CurrencyCode},
	}
	if a.settings.PhoneStrict {
		strict := true
		d.Phone.Strict = &strict
	}
	return d
}

func (a *app) checkValues(kind checklist.Kind, values []string) int {
	cl := &checklist.Checklist{Defaults: a.defaults()}
	for i, v := range values {
		c := checklist.Check{
			Field: fmt.Sprintf("%s[%d]", kind, i),
			Kind:  kind,
			Value: v,
		}
		switch kind {
		case checklist.KindEmail:
			c.Domains = a.settings.EmailDomains
		case checklist.KindURL:
			if a.settings.URLDomain != "" {
				c.Domains = []string{a.settings.URLDomain}
			}
		}
		cl.Checks = append(cl.Checks, c)
	}

	report := cl.Run(checklist.WithLogger(a.log), checklist.WithMessageFormatter(a.format))

	code := exitOK
	for _, res := range report.Results {
		switch {
		case res.Problem != "":
			fmt.Fprintf(a.stderr, "%s: %s\n", res.Value, res.Problem)
			return exitUsage
		case res.Valid:
			fmt.Fprintf(a.stdout, "valid\t%s\n", res.Value)
		default:
			fmt.Fprintf(a.stdout, "invalid\t%s\t%s\n", res.Value, strings.Join(res.Messages, "; "))
			code = exitInvalid
		}
	}
	return code
}

func (a *app) checkFile(path string) int {
	cl, err := checklist.Load(path)
	if err != nil {
		a.log.Error("validkit: loading checklist", slog.String("path", path), logger.Error(err))
		fmt.Fprintln(a.stderr, err)
		return exitUsage
	}

	// document defaults win over the environment
	d := a.defaults()
	if len(cl.Defaults.Phone.Locales) == 0 {
		cl.Defaults.Phone.Locales = d.Phone.Locales
	}
	if cl.Defaults.Phone.Strict == nil {
		cl.Defaults.Phone.Strict = d.Phone.Strict
	}
	if cl.Defaults.Currency.Code == "" {
		cl.Defaults.Currency.Code = d.Currency.Code
	}

	report := cl.Run(checklist.WithLogger(a.log), checklist.WithMessageFormatter(a.format))

	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		fmt.Fprintln(a.stderr, err)
		return exitUsage
	}

	a.log.Info("validkit: checklist done",
		slog.String("path", path),
		slog.Int("passed", report.Passed),
		slog.Int("failed", report.Failed),
	)
	if !report.OK() {
		return exitInvalid
	}
	return exitOK
}

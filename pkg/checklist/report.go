package checklist

import (
	"log/slog"

	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

// Result is the outcome of a single check.
type Result struct {
	Field  string                      `json:"field"`
	Kind   Kind                        `json:"kind"`
	Value  string                      `json:"value"`
	Valid  bool                        `json:"valid"`
	Errors []validator.ValidationError `json:"-"`
	// Messages holds one line per failed rule, in rule order.
	Messages []string `json:"messages,omitempty"`
	// Problem describes a usage error such as an unknown kind or locale.
	Problem string `json:"problem,omitempty"`
}

// Report lists the results of a run in document order.
type Report struct {
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// ValidationErrors flattens the failures of every check. Usage problems are
// reported under the check's field with the "validation.checklist" key.
func (r Report) ValidationErrors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, res := range r.Results {
		if res.Problem != "" {
			errs.Add(validator.ValidationError{
				Field:          res.Field,
				Message:        res.Problem,
				TranslationKey: "validation.checklist",
				TranslationValues: map[string]any{
					"field": res.Field,
					"kind":  string(res.Kind),
				},
			})
			continue
		}
		for _, e := range res.Errors {
			errs.Add(e)
		}
	}
	return errs
}

// Err returns the report failures as an error, or nil when every check passed.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	return r.ValidationErrors()
}

type runConfig struct {
	logger *slog.Logger
	format func(validator.ValidationError) string
}

// Option configures a run.
type Option func(*runConfig)

// WithLogger logs every evaluated check at debug level and usage problems at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMessageFormatter sets how failures are rendered into Result.Messages,
// e.g. through a translator. The default uses the error message.
func WithMessageFormatter(format func(validator.ValidationError) string) Option {
	return func(c *runConfig) {
		if format != nil {
			c.format = format
		}
	}
}

// Run evaluates every check against the document defaults.
func (cl *Checklist) Run(opts ...Option) Report {
	cfg := runConfig{
		logger: logger.Discard(),
		format: func(e validator.ValidationError) string { return e.Message },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	report := Report{Results: make([]Result, 0, len(cl.Checks))}
	for _, c := range cl.Checks {
		res := Result{Field: c.Field, Kind: c.Kind, Value: c.Value}

		rules, err := c.rules(cl.Defaults)
		if err != nil {
			res.Problem = err.Error()
			cfg.logger.Warn("checklist: check not evaluated",
				logger.Field(c.Field),
				logger.Kind(string(c.Kind)),
				logger.Error(err),
			)
		} else {
			res.Errors = validator.ExtractValidationErrors(validator.Apply(rules...))
			res.Valid = len(res.Errors) == 0
			for _, e := range res.Errors {
				res.Messages = append(res.Messages, cfg.format(e))
			}
			cfg.logger.Debug("checklist: check evaluated",
				logger.Field(c.Field),
				logger.Kind(string(c.Kind)),
				logger.Valid(res.Valid),
			)
		}

		if res.Valid {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	return report
}

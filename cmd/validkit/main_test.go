package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/config"
)

// runCLI resets the settings cache so each call sees the current environment.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunValues(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		code, out, _ := runCLI(t, "email", "ann@example.com", "bob@example.org")
		assert.Equal(t, exitOK, code)
		assert.Equal(t, "valid\tann@example.com\nvalid\tbob@example.org\n", out)
	})

	t.Run("one invalid", func(t *testing.T) {
		code, out, _ := runCLI(t, "credit_card", "4532015112830366", "4532015112830367")
		assert.Equal(t, exitInvalid, code)
		assert.Contains(t, out, "valid\t4532015112830366\n")
		assert.Contains(t, out, "invalid\t4532015112830367\tcredit_card[1] must be a valid credit card number\n")
	})

	t.Run("mobile locale flag", func(t *testing.T) {
		code, out, _ := runCLI(t, "-locales", "en-US", "mobile", "+14155552671")
		assert.Equal(t, exitOK, code)
		assert.Equal(t, "valid\t+14155552671\n", out)

		code, _, _ = runCLI(t, "-locales", "en-GB", "mobile", "+14155552671")
		assert.Equal(t, exitInvalid, code)
	})

	t.Run("translated messages", func(t *testing.T) {
		code, out, _ := runCLI(t, "-lang", "de-AT", "email", "nope")
		assert.Equal(t, exitInvalid, code)
		assert.Equal(t, "invalid\tnope\temail[0] muss eine gültige E-Mail-Adresse sein\n", out)
	})

	t.Run("email domains from environment", func(t *testing.T) {
		t.Setenv("VALIDKIT_EMAIL_DOMAINS", "example.com, example.org")
		code, out, _ := runCLI(t, "email", "ann@example.org", "ann@example.net")
		assert.Equal(t, exitInvalid, code)
		assert.Contains(t, out, "valid\tann@example.org\n")
		assert.Contains(t, out, "invalid\tann@example.net")
	})

	t.Run("url domain flag", func(t *testing.T) {
		code, _, _ := runCLI(t, "-url-domain", "example.com", "url", "https://api.example.com/v1")
		assert.Equal(t, exitOK, code)

		code, _, _ = runCLI(t, "-url-domain", "example.com", "url", "https://example.org")
		assert.Equal(t, exitInvalid, code)
	})

	t.Run("currency code", func(t *testing.T) {
		t.Setenv("VALIDKIT_CURRENCY_CODE", "JPY")
		code, out, _ := runCLI(t, "currency", "¥1,234")
		assert.Equal(t, exitOK, code, out)
	})
}

func TestRunUsageErrors(t *testing.T) {
	tests := map[string][]string{
		"no arguments":   {},
		"kind only":      {"email"},
		"unknown kind":   {"zip", "12345"},
		"unknown locale": {"-locales", "xx-XX", "mobile", "+14155552671"},
		"bad flag":       {"-nope", "email", "a@b.co"},
		"extra args":     {"check", "a.yaml", "b.yaml"},
		"bad log level":  {"-log-level", "loud", "email", "a@b.co"},
		"missing file":   {"check", "testdata/missing.yaml"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			code, out, _ := runCLI(t, args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, out)
		})
	}
}

func TestRunCheckFile(t *testing.T) {
	code, out, _ := runCLI(t, "-lang", "fr", "check", "testdata/order.yaml")
	assert.Equal(t, exitInvalid, code)

	var report struct {
		Results []struct {
			Field    string   `json:"field"`
			Valid    bool     `json:"valid"`
			Messages []string `json:"messages"`
		} `json:"results"`
		Passed int `json:"passed"`
		Failed int `json:"failed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 3, report.Passed)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Results, 4)
	assert.Equal(t, "card", report.Results[2].Field)
	assert.False(t, report.Results[2].Valid)
	assert.Equal(t, []string{"card doit être un numéro de carte bancaire valide"}, report.Results[2].Messages)
}

func TestRunCheckFileEnvironmentDefaults(t *testing.T) {
	t.Setenv("VALIDKIT_PHONE_LOCALES", "en-GB")
	code, out, _ := runCLI(t, "check", "testdata/order.yaml")
	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, out, `"failed": 2`)
}

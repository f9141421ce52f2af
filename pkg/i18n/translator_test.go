package i18n_test

import (
	"bytes"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/i18n"
	"github.com/dmitrymomot/validkit/pkg/phone"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestNew(t *testing.T) {
	tr, err := i18n.New()
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en", "es", "fr"}, tr.SupportedLanguages())
}

func TestBundledTranslationsCoverRuleKeys(t *testing.T) {
	tr, err := i18n.New(i18n.WithFallbackToKey(false))
	require.NoError(t, err)

	rules := []validator.Rule{
		validator.Required("f", ""),
		validator.MinLen("f", "", 1),
		validator.MaxLen("f", "", 1),
		validator.LengthBetween("f", "", 1, 2),
		validator.ValidAlpha("f", ""),
		validator.ValidAlphanumeric("f", ""),
		validator.ValidNumericString("f", ""),
		validator.ValidEmail("f", ""),
		validator.ValidEmailDomain("f", "", "example.com"),
		validator.ValidURL("f", ""),
		validator.ValidHTTPSURL("f", ""),
		validator.ValidURLFromDomain("f", "", "example.com"),
		validator.ValidPhone("f", ""),
		validator.ValidMobilePhone("f", "", phone.Any),
		validator.ValidCreditCard("f", ""),
		validator.ValidCreditCardType("f", "", validator.CardVisa),
		validator.ValidCurrency("f", ""),
		validator.ValidDate("f", ""),
		validator.ValidDateTime("f", ""),
		validator.ValidTime("f", ""),
		validator.ValidUUID("f", ""),
		validator.InRange("f", 0, 1, 2),
		validator.Min("f", 0, 1),
		validator.Max("f", 3, 1),
	}

	for _, lang := range tr.SupportedLanguages() {
		for _, rule := range rules {
			key := rule.Error.TranslationKey
			msg := tr.T(lang, key, rule.Error.TranslationValues)
			assert.NotEmpty(t, msg, "%s %s", lang, key)
			assert.NotContains(t, msg, "%{", "%s %s: %s", lang, key, msg)
		}
	}
}

func TestMatch(t *testing.T) {
	tr, err := i18n.New()
	require.NoError(t, err)

	tests := map[string]string{
		"":                           "en",
		"de":                         "de",
		"de-AT":                      "de",
		"fr-CH, fr;q=0.9, en;q=0.8":  "fr",
		"pt-BR":                      "en",
		"ja, es;q=0.5":               "es",
		"not a language tag @@":      "en",
		"es-419":                     "es",
		"en-GB":                      "en",
		"de;q=0.1, fr;q=0.9":         "fr",
		"DE":                         "de",
		"fr-FR,fr;q=0.9,en-US;q=0.8": "fr",
		"en-US,en;q=0.9,de-DE;q=0.8": "en",
	}

	for header, want := range tests {
		t.Run(header, func(t *testing.T) {
			assert.Equal(t, want, tr.Match(header))
		})
	}

	assert.Equal(t, "de", tr.Match("pt", "de-DE"))
}

func TestT(t *testing.T) {
	tr, err := i18n.New()
	require.NoError(t, err)

	t.Run("substitutes placeholders", func(t *testing.T) {
		msg := tr.T("de", "validation.length_between", map[string]any{"field": "Name", "min": 1, "max": 64})
		assert.Equal(t, "Name muss zwischen 1 und 64 Zeichen lang sein", msg)
	})

	t.Run("matches regional tags", func(t *testing.T) {
		msg := tr.T("fr-CA", "validation.required", map[string]any{"field": "nom"})
		assert.Equal(t, "nom est obligatoire", msg)
	})

	t.Run("keeps unknown placeholders", func(t *testing.T) {
		msg := tr.T("en", "validation.min", map[string]any{"field": "age"})
		assert.Equal(t, "age must be at least %{min}", msg)
	})

	t.Run("missing key falls back to key", func(t *testing.T) {
		assert.Equal(t, "validation.unknown", tr.T("en", "validation.unknown", nil))
	})

	t.Run("missing key without fallback", func(t *testing.T) {
		var buf bytes.Buffer
		strict, err := i18n.New(
			i18n.WithFallbackToKey(false),
			i18n.WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		)
		require.NoError(t, err)
		assert.Empty(t, strict.T("en", "validation.unknown", nil))
		assert.Contains(t, buf.String(), "key=validation.unknown")
	})
}

func TestErrors(t *testing.T) {
	tr, err := i18n.New()
	require.NoError(t, err)

	verrs := validator.ExtractValidationErrors(validator.Apply(
		validator.ValidEmail("email", "nope"),
		validator.MinLen("password", "abc", 8),
		validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: "password", Message: "custom failure", TranslationKey: "validation.custom"},
		},
		validator.Rule{
			Check: func() bool { return false },
			Error: validator.NewValidationError("terms", "must be accepted"),
		},
	))
	require.Len(t, verrs, 4)

	got := tr.Errors("es", verrs)
	assert.Equal(t, map[string][]string{
		"email":    {"email debe ser un correo electrónico válido"},
		"password": {"password debe tener al menos 8 caracteres", "custom failure"},
		"terms":    {"must be accepted"},
	}, got)
}

func TestNewFromFS(t *testing.T) {
	t.Run("custom translations", func(t *testing.T) {
		fsys := fstest.MapFS{
			"msgs/en.yaml":    {Data: []byte("validation:\n  email: \"bad email: %{field}\"\n")},
			"msgs/pt-BR.yml":  {Data: []byte("validation:\n  email: \"e-mail inválido: %{field}\"\n  retries: 3\n")},
			"msgs/README.txt": {Data: []byte("ignored")},
		}

		tr, err := i18n.NewFromFS(fsys, "msgs")
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "pt-BR"}, tr.SupportedLanguages())
		assert.Equal(t, "e-mail inválido: x", tr.T("pt", "validation.email", map[string]any{"field": "x"}))
		assert.Equal(t, "3", tr.T("pt-BR", "validation.retries", nil))
	})

	t.Run("errors", func(t *testing.T) {
		tests := map[string]struct {
			fsys fstest.MapFS
			opts []i18n.Option
			err  error
		}{
			"missing directory": {fstest.MapFS{}, nil, i18n.ErrFailedToReadFile},
			"no files":          {fstest.MapFS{"msgs/a.txt": {Data: []byte("x")}}, nil, i18n.ErrNoTranslations},
			"bad yaml":          {fstest.MapFS{"msgs/en.yaml": {Data: []byte("validation: [")}}, nil, i18n.ErrFailedToParseYAML},
			"list value":        {fstest.MapFS{"msgs/en.yaml": {Data: []byte("validation:\n  email: [a, b]\n")}}, nil, i18n.ErrInvalidTranslationKey},
			"bad file name":     {fstest.MapFS{"msgs/not a tag!.yaml": {Data: []byte("a: b\n")}}, nil, i18n.ErrInvalidLanguage},
			"no default":        {fstest.MapFS{"msgs/de.yaml": {Data: []byte("a: b\n")}}, nil, i18n.ErrDefaultLangNotLoaded},
			"bad default":       {fstest.MapFS{"msgs/en.yaml": {Data: []byte("a: b\n")}}, []i18n.Option{i18n.WithDefaultLanguage("??")}, i18n.ErrInvalidLanguage},
		}

		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := i18n.NewFromFS(tt.fsys, "msgs", tt.opts...)
				assert.ErrorIs(t, err, tt.err)
			})
		}
	})

	t.Run("custom default language", func(t *testing.T) {
		fsys := fstest.MapFS{
			"msgs/en.yaml": {Data: []byte("greeting: hello\n")},
			"msgs/de.yaml": {Data: []byte("greeting: hallo\nfarewell: tschüss\n")},
		}

		tr, err := i18n.NewFromFS(fsys, "msgs", i18n.WithDefaultLanguage("de"))
		require.NoError(t, err)
		assert.Equal(t, "de", tr.Match("ja"))
		assert.Equal(t, "hallo", tr.T("ja", "greeting", nil))
		assert.Equal(t, "tschüss", tr.T("en", "farewell", nil))
	})
}

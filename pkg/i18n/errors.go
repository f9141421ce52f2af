package i18n

import "errors"

var (
	ErrFailedToParseYAML     = errors.New("i18n: failed to parse YAML content")
	ErrFailedToReadFile      = errors.New("i18n: failed to read translation file")
	ErrNoTranslations        = errors.New("i18n: no translations found")
	ErrInvalidLanguage       = errors.New("i18n: invalid language tag")
	ErrDefaultLangNotLoaded  = errors.New("i18n: default language has no translations")
	ErrInvalidTranslationKey = errors.New("i18n: translation value is not a string")
)

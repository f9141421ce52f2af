package currency

import "errors"

var (
	// ErrInvalidOptions is returned by Compile when options contradict each other.
	ErrInvalidOptions = errors.New("invalid currency options")

	// ErrUnknownCurrency is returned by ForCode for codes that are not ISO 4217 currencies.
	ErrUnknownCurrency = errors.New("unknown currency code")
)

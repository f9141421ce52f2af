package structtag

import "errors"

var (
	// ErrRegisterTag is returned by New when a tag cannot be registered.
	ErrRegisterTag = errors.New("structtag: register tag")

	// ErrInvalidInput is returned for nil or non-struct values passed to Struct.
	ErrInvalidInput = errors.New("structtag: invalid input")
)

package phone

import "errors"

var (
	// ErrUnknownLocale is returned when none of the requested locale identifiers is registered.
	ErrUnknownLocale = errors.New("unknown phone locale")

	// ErrUnknownRegion is returned when a region code is malformed or has no registered locale.
	ErrUnknownRegion = errors.New("unknown phone region")
)

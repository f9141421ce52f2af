package checklist

import "errors"

var (
	ErrParse         = errors.New("checklist: failed to parse document")
	ErrReadFile      = errors.New("checklist: failed to read file")
	ErrNoChecks      = errors.New("checklist: document has no checks")
	ErrUnknownKind   = errors.New("checklist: unknown check kind")
	ErrSeparator     = errors.New("checklist: separator must be a single character")
	ErrMissingBounds = errors.New("checklist: missing bounds")
)

package catalog

import "errors"

var (
	ErrEmptyName       = errors.New("pattern entry has no name")
	ErrDuplicateName   = errors.New("duplicate pattern name")
	ErrInvalidEntry    = errors.New("invalid pattern entry")
	ErrUnknownPattern  = errors.New("unknown pattern")
	ErrNoParser        = errors.New("no parser for catalog file")
	ErrReadingFile     = errors.New("failed to read catalog file")
	ErrParsingDocument = errors.New("failed to parse catalog document")
	ErrLoadCancelled   = errors.New("catalog loading cancelled")
)

package errors

import "errors"

var (
	ErrNoFeedSources      = errors.New("at least one feed source is required")
	ErrInvalidSource      = errors.New("invalid feed source")
	ErrUnexpectedStatus   = errors.New("unexpected status code")
	ErrUnknownFeedDialect = errors.New("document is neither RSS nor Atom")
	ErrUnparseableDate    = errors.New("entry has no parseable publish date")
	ErrMissingLink        = errors.New("entry has no link")
	ErrPageNotFound       = errors.New("page not found")
)

package reporting

import "errors"

var (
	// ErrEmptyDataset means a report needed at least one matching record and
	// found none. It is an expected outcome, surfaced to the caller as a
	// "no data" answer rather than a failure.
	ErrEmptyDataset = errors.New("no sale records match")

	// ErrUnrecognizedDateFormat means a date string matched none of the
	// accepted formats. It aborts the whole report computation; offending
	// records are never silently skipped.
	ErrUnrecognizedDateFormat = errors.New("date format is not recognized")
)

package model

import "errors"

// Sentinel errors shared by services. The API layer maps them to HTTP
// statuses with errors.Is.
var (
	// ErrNotFound reports an unknown task, template, or notification id.
	ErrNotFound = errors.New("not found")
	// ErrValidation reports malformed input, such as an unparseable date.
	ErrValidation = errors.New("invalid input")
)

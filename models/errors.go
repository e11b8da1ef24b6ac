package models

import "github.com/pkg/errors"

// Error taxonomy of the form workflow. Handlers translate these into HTTP
// statuses; stores wrap the underlying cause with pkg/errors so the chain
// stays inspectable with errors.Is.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrValidation        = errors.New("validation failed")
	ErrConflict          = errors.New("record was changed by someone else")
)

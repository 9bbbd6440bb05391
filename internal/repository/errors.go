package repository

import "errors"

// ErrNotFound is returned when no booking matches the given identifier.
var ErrNotFound = errors.New("booking not found")

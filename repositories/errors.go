package repositories

import "errors"

// ErrNotFound is returned by the find-one methods when no row matches.
// Callers translate it into their own not-found/forbidden outcome.
var ErrNotFound = errors.New("record not found")

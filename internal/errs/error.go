package errs

import (
	"errors"
)

var (
	// ErrFetch covers any failed GET against the catalog API.
	ErrFetch = errors.New("fetch failed")
	// ErrMutation covers any failed POST/PUT/DELETE.
	ErrMutation = errors.New("mutation failed")
	ErrNotFound = errors.New("not found")
)

// pkg/filter/errors.go
package filter

import "errors"

var (
	// ErrTooManyFilters is returned when a chain already holds the maximum
	// of seven filters.
	ErrTooManyFilters = errors.New("maximum number of filters is seven")

	// ErrUnknownFilter is returned for a filter ID with no registry entry.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrOptionsNotAllowed is returned when an option string is given to a
	// filter that takes none.
	ErrOptionsNotAllowed = errors.New("filter takes no options")

	// ErrBadPreset is returned for a preset level outside 1..9.
	ErrBadPreset = errors.New("preset level out of range")
)

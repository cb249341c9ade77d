package scaffold

import "errors"

var (
	// ErrDestinationNotEmpty is returned when the project root already has
	// entries and overwriting was not requested.
	ErrDestinationNotEmpty = errors.New("destination is not empty")

	// ErrNotDirectory is returned when the project root exists but is not a
	// directory.
	ErrNotDirectory = errors.New("destination is not a directory")

	// ErrInvalidPath is returned for an empty project root or a layout entry
	// that would escape it.
	ErrInvalidPath = errors.New("invalid path")
)

// IsValidationError reports whether err was raised before any filesystem
// mutation took place.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrDestinationNotEmpty) ||
		errors.Is(err, ErrNotDirectory) ||
		errors.Is(err, ErrInvalidPath)
}

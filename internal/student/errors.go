package student

import "errors"

var (
	// ErrDuplicateID is returned when adding a record whose id is already taken.
	ErrDuplicateID = errors.New("student id already exists")

	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("student id not found")

	// ErrInvalidText is returned when a field is not valid UTF-8. Such a
	// field would not survive a save and reload unchanged.
	ErrInvalidText = errors.New("student field is not valid UTF-8")
)

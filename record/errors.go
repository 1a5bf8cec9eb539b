package record

import "errors"

// Sentinel errors returned by [New] and [With].
var (
	// ErrUnknownField is returned when a field name does not exist on the
	// target struct.
	ErrUnknownField = errors.New("record: unknown field")

	// ErrInvalidField is returned when a value cannot be decoded into the
	// named field, or the target is not a struct.
	ErrInvalidField = errors.New("record: invalid field value")
)

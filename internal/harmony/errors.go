package harmony

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEnumValue is returned when a colour space or harmony category
	// falls outside its closed set of values.
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrNonFinite is returned when a base hue or intensity is NaN or infinite.
	ErrNonFinite = errors.New("non-finite value")
)

// InvalidEnumError describes an enumerated value that was not recognised.
type InvalidEnumError struct {
	Kind  string
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("%s: unknown %s %q", ErrInvalidEnumValue, e.Kind, e.Value)
}

// Unwrap allows errors.Is(err, ErrInvalidEnumValue).
func (e *InvalidEnumError) Unwrap() error {
	return ErrInvalidEnumValue
}

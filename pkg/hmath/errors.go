package hmath

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by indexed component access outside 0..N-1.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidFormat is returned when a hex color string is malformed.
	ErrInvalidFormat = errors.New("invalid format")
)

func indexError(typeName string, index int) error {
	return fmt.Errorf("%s: invalid index %d: %w", typeName, index, ErrIndexOutOfRange)
}

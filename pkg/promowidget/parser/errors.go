package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoHeaderFound indicates no sheet had a recognizable header row.
var ErrNoHeaderFound = errors.New("no header row found")

// HeaderNotFoundError carries the expected column names so callers can
// tell the user what the file must contain.
type HeaderNotFoundError struct {
	Expected []string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("could not find required columns on any sheet; expected headers like: %s",
		strings.Join(e.Expected, ", "))
}

// Is matches ErrNoHeaderFound.
func (e *HeaderNotFoundError) Is(target error) bool {
	return target == ErrNoHeaderFound
}

// NewHeaderNotFoundError creates a new HeaderNotFoundError.
func NewHeaderNotFoundError(expected []string) *HeaderNotFoundError {
	return &HeaderNotFoundError{Expected: append([]string(nil), expected...)}
}

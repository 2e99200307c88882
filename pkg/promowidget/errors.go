package promowidget

import (
	"errors"
	"fmt"

	"github.com/ukaji3/promowidget-go/pkg/promowidget/parser"
)

// ErrUnreadableFile indicates the input could not be opened or decoded as
// a spreadsheet.
var ErrUnreadableFile = errors.New("unreadable spreadsheet")

// ErrNoHeaderFound indicates no sheet has a qualifying header row with data
// below it.
var ErrNoHeaderFound = parser.ErrNoHeaderFound

// HeaderNotFoundError lists the expected columns when no header is found.
type HeaderNotFoundError = parser.HeaderNotFoundError

// UnreadableFileError represents a failure to read the input file.
type UnreadableFileError struct {
	Path string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("cannot read %q: %v", e.Path, e.Err)
}

func (e *UnreadableFileError) Unwrap() error {
	return e.Err
}

// Is matches ErrUnreadableFile.
func (e *UnreadableFileError) Is(target error) bool {
	return target == ErrUnreadableFile
}

// NewUnreadableFileError creates a new UnreadableFileError.
func NewUnreadableFileError(path string, err error) *UnreadableFileError {
	return &UnreadableFileError{
		Path: path,
		Err:  err,
	}
}

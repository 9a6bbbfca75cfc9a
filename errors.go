package interpres

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWordType is returned for an unknown list category.
	ErrInvalidWordType = errors.New("invalid word type")
	// ErrInvalidPOS is returned for an unknown part-of-speech token.
	ErrInvalidPOS = errors.New("invalid part of speech")
	// ErrFileExists is returned by ExportList when the target exists and
	// overwriting was not requested.
	ErrFileExists = errors.New("file already exists")
)

// LoadError reports malformed lexical data.
type LoadError struct {
	File string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s line %d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

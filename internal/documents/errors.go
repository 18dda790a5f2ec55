package documents

import (
	"errors"
	"fmt"
)

// UnsupportedFormatError is returned when a file cannot be classified as a supported format.
// It is raised before any decoding work happens.
type UnsupportedFormatError struct {
	Filename    string
	Extension   string
	ContentType string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return fmt.Sprintf("unsupported format: %q has no file extension", e.Filename)
	}
	if e.ContentType != "" {
		return fmt.Sprintf("unsupported format: %q (extension %s, content-type %s)", e.Filename, e.Extension, e.ContentType)
	}
	return fmt.Sprintf("unsupported format: %q (extension %s)", e.Filename, e.Extension)
}

// DocumentDecodeError is returned when a format decoder cannot read the container
// (corrupt, encrypted or malformed input). Cause carries the decoder's own error.
type DocumentDecodeError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *DocumentDecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode %s: %s", e.Format, e.Message)
}

func (e *DocumentDecodeError) Unwrap() error {
	return e.Cause
}

func decodeError(format Format, message string, cause error) *DocumentDecodeError {
	return &DocumentDecodeError{Format: format, Message: message, Cause: cause}
}

// IsDecodeError reports whether err is, or wraps, a *DocumentDecodeError.
func IsDecodeError(err error) bool {
	var de *DocumentDecodeError
	return errors.As(err, &de)
}

// IsUnsupportedFormat reports whether err is, or wraps, an *UnsupportedFormatError.
func IsUnsupportedFormat(err error) bool {
	var ue *UnsupportedFormatError
	return errors.As(err, &ue)
}

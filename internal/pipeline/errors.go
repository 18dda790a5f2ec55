package pipeline

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ParseError for callers that branch on failure type.
type ErrorKind string

const (
	// KindUnsupportedFormat means the upload was not a PDF, DOCX or accepted text file.
	KindUnsupportedFormat ErrorKind = "unsupported_format"
	// KindDecodeFailed means the container of a supported format could not be read.
	KindDecodeFailed ErrorKind = "decode_failed"
	// KindReadFailed means the upload body could not be read into memory.
	KindReadFailed ErrorKind = "read_failed"
	// KindInternal covers recovered panics, cancellation and anything unexpected.
	KindInternal ErrorKind = "internal"
)

// userMessages are the sentences shown to end users. Causes are never included.
var userMessages = map[ErrorKind]string{
	KindUnsupportedFormat: "This file type is not supported. Please upload a PDF, DOCX or plain text résumé.",
	KindDecodeFailed:      "We couldn't read this document. It may be corrupted, encrypted or password protected.",
	KindReadFailed:        "The upload could not be read. Please try again.",
	KindInternal:          "Something went wrong while parsing your résumé. Please try again.",
}

// ParseError is the only error ParseResume returns. Cause keeps the
// underlying error, so errors.As still reaches a
// *documents.UnsupportedFormatError or *documents.DocumentDecodeError.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// UserMessage returns a fixed, presentable sentence for the error kind.
func (e *ParseError) UserMessage() string {
	if msg, ok := userMessages[e.Kind]; ok {
		return msg
	}
	return userMessages[KindInternal]
}

// KindOf returns the kind of a *ParseError anywhere in err's chain, or
// KindInternal for any other error.
func KindOf(err error) ErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindInternal
}

func newParseError(kind ErrorKind, message string, cause error) *ParseError {
	return &ParseError{Kind: kind, Message: message, Cause: cause}
}

// Warning is a soft finding reported next to a successful result.
type Warning struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// WarningEmptyContent is the kind of EmptyContentWarning.
const WarningEmptyContent = "empty_content"

// EmptyContentWarning is reported when extraction succeeded but yielded no
// text, typically a scanned PDF without a text layer. The record is still
// returned with every facet empty.
var EmptyContentWarning = Warning{
	Kind:    WarningEmptyContent,
	Message: "No text could be extracted from this document. If it is a scanned image, try a text-based PDF or DOCX.",
}

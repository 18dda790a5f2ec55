package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-parser/internal/pipeline"
)

// ErrValidation indicates a malformed request.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a stored parse result does not exist.
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("parsed resume not found: %s", e.ID)
}

// HTTPStatus returns the HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		parseErr   *pipeline.ParseError
		tooLarge   *http.MaxBytesError
		validation *ErrValidation
		notFound   *ErrNotFound
	)
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &parseErr):
		switch parseErr.Kind {
		case pipeline.KindUnsupportedFormat:
			return http.StatusUnsupportedMediaType
		case pipeline.KindDecodeFailed:
			return http.StatusUnprocessableEntity
		case pipeline.KindReadFailed:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// errorKind is the machine-readable "error" field of an error response.
func errorKind(err error) string {
	var (
		parseErr   *pipeline.ParseError
		tooLarge   *http.MaxBytesError
		validation *ErrValidation
		notFound   *ErrNotFound
	)
	switch {
	case errors.As(err, &tooLarge):
		return "too_large"
	case errors.As(err, &validation):
		return "bad_request"
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &parseErr):
		return string(parseErr.Kind)
	}
	return string(pipeline.KindInternal)
}

// userMessage is the "message" field of an error response. Causes never
// reach the client.
func userMessage(err error) string {
	var (
		parseErr   *pipeline.ParseError
		tooLarge   *http.MaxBytesError
		validation *ErrValidation
		notFound   *ErrNotFound
	)
	switch {
	case errors.As(err, &tooLarge):
		return fmt.Sprintf("The upload exceeds the %d byte limit.", tooLarge.Limit)
	case errors.As(err, &validation):
		return validation.Message
	case errors.As(err, &notFound):
		return "No parsed résumé exists with that id."
	case errors.As(err, &parseErr):
		return parseErr.UserMessage()
	}
	return (&pipeline.ParseError{Kind: pipeline.KindInternal}).UserMessage()
}

package types

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func NotFound(message string) *HTTPError   { return NewHTTPError(http.StatusNotFound, message) }
func Forbidden(message string) *HTTPError  { return NewHTTPError(http.StatusForbidden, message) }
func BadRequest(message string) *HTTPError { return NewHTTPError(http.StatusBadRequest, message) }
func Unauthorized(message string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, message)
}

// StatusOf maps an error to the HTTP status it should surface as.
// Unclassified errors are 500.
func StatusOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

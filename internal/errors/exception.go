// Package errors defines the service error taxonomy. Each error carries the
// HTTP status it maps to, so handlers translate failures without per-handler
// switch statements.
package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode extracts the HTTP status from an Exception anywhere in the
// error chain, defaulting to 500 for unclassified errors.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

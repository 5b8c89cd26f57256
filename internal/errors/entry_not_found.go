package errors

import "net/http"

var ErrEntryNotFound = &Exception{
	Message:    "entry not found",
	StatusCode: http.StatusNotFound,
}

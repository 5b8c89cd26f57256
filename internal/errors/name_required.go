package errors

import "net/http"

var ErrNameRequired = &Exception{
	Message:    "task name must not be empty",
	StatusCode: http.StatusBadRequest,
}

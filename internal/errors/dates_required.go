package errors

import "net/http"

var ErrDatesRequired = &Exception{
	Message:    "start and end dates are required",
	StatusCode: http.StatusBadRequest,
}

package errors

import "net/http"

var ErrInvalidFrequency = &Exception{
	Message:    "frequency must be daily or monthly",
	StatusCode: http.StatusBadRequest,
}

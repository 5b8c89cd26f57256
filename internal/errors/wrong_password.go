package errors

import "net/http"

var ErrWrongPassword = &Exception{
	Message:    "old password is incorrect",
	StatusCode: http.StatusBadRequest,
}

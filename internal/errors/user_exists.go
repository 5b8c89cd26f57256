package errors

import "net/http"

var ErrUserExists = &Exception{
	Message:    "a user with this email or username already exists",
	StatusCode: http.StatusBadRequest,
}

package errors

import "net/http"

var ErrCredentialsRequired = &Exception{
	Message:    "username, email and password must all be set",
	StatusCode: http.StatusBadRequest,
}

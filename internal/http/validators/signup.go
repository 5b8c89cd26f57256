package validators

import (
	apperrors "thintimer.com/thintimer/internal/errors"

	dto "thintimer.com/thintimer/internal/data_models"
)

func ValidateSignUpRequest(r *dto.SignUpRequest) error {
	if r.Username == "" || r.Email == "" || r.Password == "" {
		return apperrors.ErrCredentialsRequired
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if r.Username == "" || r.Password == "" {
		return apperrors.ErrCredentialsRequired
	}
	return nil
}

package validators

import (
	apperrors "thintimer.com/thintimer/internal/errors"

	dto "thintimer.com/thintimer/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Name == "" {
		return apperrors.ErrNameRequired
	}
	return nil
}

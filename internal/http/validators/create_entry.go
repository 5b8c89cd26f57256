package validators

import (
	apperrors "thintimer.com/thintimer/internal/errors"

	dto "thintimer.com/thintimer/internal/data_models"
)

func ValidateCreateEntryRequest(r *dto.CreateEntryRequest) error {
	if r.Task == "" {
		return apperrors.ErrTaskNotFound
	}
	if r.StartTime.IsZero() || r.EndTime.IsZero() {
		return apperrors.ErrDatesRequired
	}
	return nil
}

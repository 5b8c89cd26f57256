package validators

import (
	"time"

	apperrors "thintimer.com/thintimer/internal/errors"
	"thintimer.com/thintimer/internal/reports"
)

const dateLayout = "2006-01-02"

type ReportRange struct {
	Start     time.Time
	End       time.Time
	Frequency reports.Frequency
}

// ValidateReportRange parses the report query parameters. Missing dates and
// malformed dates are both hard 400s; nothing is defaulted or guessed.
func ValidateReportRange(startStr, endStr, frequencyStr string) (*ReportRange, error) {
	if startStr == "" || endStr == "" {
		return nil, apperrors.ErrDatesRequired
	}

	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	frequency, err := reports.ParseFrequency(frequencyStr)
	if err != nil {
		return nil, err
	}

	return &ReportRange{Start: start, End: end, Frequency: frequency}, nil
}

package reports

import apperrors "thintimer.com/thintimer/internal/errors"

// Frequency selects the bucket width for spreadsheet report columns.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyMonthly Frequency = "monthly"
)

// ParseFrequency validates the query-string form. An empty value defaults to
// daily.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyMonthly:
		return Frequency(s), nil
	case "":
		return FrequencyDaily, nil
	default:
		return "", apperrors.ErrInvalidFrequency
	}
}

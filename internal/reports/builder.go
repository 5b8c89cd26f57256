// Package reports turns stored tasks and entries into the two report forms:
// a JSON summary keyed by task id and a spreadsheet bucketed by date.
package reports

import (
	"time"

	model "thintimer.com/thintimer/internal/models"
)

// TaskSummary is one task's aggregate in the JSON report. TotalTime is in
// seconds.
type TaskSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	TotalTime   float64  `json:"total_time"`
}

// Summarize groups entries by owning task and sums their durations. Entries
// must carry their Task preloaded. Tasks without a matching entry simply do
// not appear in the result.
func Summarize(entries []model.Entry) map[string]TaskSummary {
	result := make(map[string]TaskSummary)

	for i := range entries {
		entry := &entries[i]

		summary, ok := result[entry.TaskID]
		if !ok {
			summary = TaskSummary{
				Name:        entry.Task.Name,
				Description: entry.Task.Description,
				Tags:        entry.Task.TagList(),
			}
		}
		summary.TotalTime += entry.TotalTime().Seconds()
		result[entry.TaskID] = summary
	}

	return result
}

// BucketLabels builds the spreadsheet's date column labels.
//
// Daily covers every calendar day from start to end inclusive. Monthly covers
// the month numbers start.Month()..end.Month() and stamps every label with
// start's year: a range spanning a year boundary therefore yields wrong or
// colliding labels (and an empty set when end's month number is lower).
// Known limitation, kept as-is.
func BucketLabels(start, end time.Time, frequency Frequency) []string {
	var labels []string

	switch frequency {
	case FrequencyDaily:
		for d := truncateToDate(start); !d.After(truncateToDate(end)); d = d.AddDate(0, 0, 1) {
			labels = append(labels, d.Format("2006-01-02"))
		}
	case FrequencyMonthly:
		for m := int(start.Month()); m <= int(end.Month()); m++ {
			labels = append(labels, time.Date(start.Year(), time.Month(m), 1, 0, 0, 0, 0, time.UTC).Format("2006-01"))
		}
	}

	return labels
}

// BucketIndex maps an entry's start time to its column. The bool result is
// false when the entry falls outside the computed bucket span; callers skip
// such entries instead of indexing out of range.
func BucketIndex(entryStart, start time.Time, frequency Frequency, buckets int) (int, bool) {
	var index int

	switch frequency {
	case FrequencyDaily:
		index = int(truncateToDate(entryStart).Sub(truncateToDate(start)).Hours() / 24)
	case FrequencyMonthly:
		index = int(entryStart.Month()) - int(start.Month())
	}

	if index < 0 || index >= buckets {
		return 0, false
	}
	return index, true
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package services

import (
	"context"
	"time"

	"github.com/xuri/excelize/v2"

	"thintimer.com/thintimer/internal/reports"
	repository "thintimer.com/thintimer/internal/repositories"
)

type ReportService struct {
	tasks   *repository.TaskRepository
	entries *repository.EntryRepository
}

func NewReportService(tasks *repository.TaskRepository, entries *repository.EntryRepository) *ReportService {
	return &ReportService{
		tasks:   tasks,
		entries: entries,
	}
}

// Summary builds the JSON report: per-task duration sums over all entries
// whose start date falls in [start, end] inclusive. The frequency parameter
// of the reports endpoint has no effect here; it only shapes the spreadsheet.
func (s *ReportService) Summary(ctx context.Context, start, end time.Time) (map[string]reports.TaskSummary, error) {
	entries, err := s.entries.ListStartedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return reports.Summarize(entries), nil
}

// Workbook builds the spreadsheet report: every task in the store as a row,
// hours summed into one column per date bucket.
//
// Two inherited behaviors are preserved on purpose: the row set is not scoped
// to the caller, and the entry filter compares full timestamps
// (start_time >= start, end_time <= end at midnight) rather than the JSON
// report's date-only range.
func (s *ReportService) Workbook(ctx context.Context, start, end time.Time, frequency reports.Frequency) (*excelize.File, error) {
	labels := reports.BucketLabels(start, end, frequency)

	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	lower := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	upper := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	rows := make([]reports.Row, 0, len(tasks))
	for _, task := range tasks {
		entries, err := s.entries.ListForTaskWithin(ctx, task.ID, lower, upper)
		if err != nil {
			return nil, err
		}

		hours := make([]float64, len(labels))
		for i := range entries {
			index, ok := reports.BucketIndex(entries[i].StartTime, start, frequency, len(labels))
			if !ok {
				continue
			}
			hours[index] += entries[i].TotalTime().Hours()
		}

		rows = append(rows, reports.Row{
			Name:        task.Name,
			Description: task.Description,
			Tags:        task.Tags,
			Hours:       hours,
		})
	}

	return reports.BuildWorkbook(labels, rows)
}

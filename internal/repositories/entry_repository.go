package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "thintimer.com/thintimer/internal/errors"
	model "thintimer.com/thintimer/internal/models"
)

type EntryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// Create inserts the entry and adds its duration to the owning task's total
// as one transaction. The adjustment is a SQL-level increment, not a
// read-modify-write, so concurrent creations on the same task cannot lose
// updates.
func (r *EntryRepository) Create(ctx context.Context, taskID string, start, end time.Time) (*model.Entry, error) {
	entry := &model.Entry{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		StartTime: start,
		EndTime:   end,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return addTimeSpent(tx, taskID, entry.TotalTime())
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Delete subtracts the entry's duration from the owning task's total and
// removes the record, again as one transaction.
func (r *EntryRepository) Delete(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry model.Entry
		err := tx.Joins("JOIN tasks ON tasks.id = entries.task_id").
			Where("entries.id = ? AND tasks.user_id = ?", id, userID).
			First(&entry).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrEntryNotFound
			}
			return err
		}

		if err := addTimeSpent(tx, entry.TaskID, -entry.TotalTime()); err != nil {
			return err
		}

		return tx.Delete(&entry).Error
	})
}

func addTimeSpent(tx *gorm.DB, taskID string, delta time.Duration) error {
	res := tx.Model(&model.Task{}).
		Where("id = ?", taskID).
		UpdateColumn("total_time_spent", gorm.Expr("total_time_spent + ?", int64(delta)))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

func (r *EntryRepository) FindByID(ctx context.Context, id, userID string) (*model.Entry, error) {
	var entry model.Entry
	err := r.db.WithContext(ctx).Preload("Task").
		Joins("JOIN tasks ON tasks.id = entries.task_id").
		Where("entries.id = ? AND tasks.user_id = ?", id, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *EntryRepository) List(ctx context.Context, userID string) ([]model.Entry, error) {
	var entries []model.Entry
	err := r.db.WithContext(ctx).Preload("Task").
		Joins("JOIN tasks ON tasks.id = entries.task_id").
		Where("tasks.user_id = ?", userID).
		Order("entries.start_time desc").
		Find(&entries).Error
	return entries, err
}

// ListForDate returns the owner's entries whose start time falls on the given
// calendar date.
func (r *EntryRepository) ListForDate(ctx context.Context, userID string, date time.Time) ([]model.Entry, error) {
	dayStart := truncateToDate(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var entries []model.Entry
	err := r.db.WithContext(ctx).Preload("Task").
		Joins("JOIN tasks ON tasks.id = entries.task_id").
		Where("tasks.user_id = ? AND entries.start_time >= ? AND entries.start_time < ?", userID, dayStart, dayEnd).
		Order("entries.start_time desc").
		Find(&entries).Error
	return entries, err
}

// ListStartedBetween selects entries whose start time's date lies in
// [start, end] inclusive, across all owners. Feeds the JSON summary report.
func (r *EntryRepository) ListStartedBetween(ctx context.Context, start, end time.Time) ([]model.Entry, error) {
	lower := truncateToDate(start)
	upper := truncateToDate(end).AddDate(0, 0, 1)

	var entries []model.Entry
	err := r.db.WithContext(ctx).Preload("Task").
		Where("start_time >= ? AND start_time < ?", lower, upper).
		Find(&entries).Error
	return entries, err
}

// ListForTaskWithin selects a task's entries fully inside the datetime bounds:
// start_time >= lower AND end_time <= upper. This is the spreadsheet report's
// filter and is deliberately stricter than ListStartedBetween's date-only
// comparison.
func (r *EntryRepository) ListForTaskWithin(ctx context.Context, taskID string, lower, upper time.Time) ([]model.Entry, error) {
	var entries []model.Entry
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND start_time >= ? AND end_time <= ?", taskID, lower, upper).
		Find(&entries).Error
	return entries, err
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

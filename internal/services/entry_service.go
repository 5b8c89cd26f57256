package services

import (
	"context"
	"time"

	model "thintimer.com/thintimer/internal/models"
	repository "thintimer.com/thintimer/internal/repositories"
)

type EntryService struct {
	entries *repository.EntryRepository
	tasks   *repository.TaskRepository
}

func NewEntryService(entries *repository.EntryRepository, tasks *repository.TaskRepository) *EntryService {
	return &EntryService{
		entries: entries,
		tasks:   tasks,
	}
}

func (s *EntryService) ListEntries(ctx context.Context, userID string) ([]model.Entry, error) {
	return s.entries.List(ctx, userID)
}

func (s *EntryService) GetEntry(ctx context.Context, id, userID string) (*model.Entry, error) {
	return s.entries.FindByID(ctx, id, userID)
}

// CreateEntry logs an interval against one of the caller's tasks. The task
// lookup doubles as the ownership check, so a foreign task id reads as not
// found.
func (s *EntryService) CreateEntry(ctx context.Context, userID, taskID string, start, end time.Time) (*model.Entry, error) {
	task, err := s.tasks.FindByID(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	entry, err := s.entries.Create(ctx, task.ID, start, end)
	if err != nil {
		return nil, err
	}
	entry.Task = *task
	return entry, nil
}

func (s *EntryService) DeleteEntry(ctx context.Context, id, userID string) error {
	return s.entries.Delete(ctx, id, userID)
}

func (s *EntryService) ListEntriesForDate(ctx context.Context, userID string, date time.Time) ([]model.Entry, error) {
	return s.entries.ListForDate(ctx, userID, date)
}

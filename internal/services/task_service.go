package services

import (
	"context"

	apperrors "thintimer.com/thintimer/internal/errors"
	model "thintimer.com/thintimer/internal/models"
	repository "thintimer.com/thintimer/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Name        *string
	Description *string
	Tags        *string
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	return s.repo.List(ctx, userID)
}

func (s *TaskService) GetTask(ctx context.Context, id, userID string) (*model.Task, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *TaskService) CreateTask(ctx context.Context, userID, name, description, tags string) (*model.Task, error) {
	if name == "" {
		return nil, apperrors.ErrNameRequired
	}

	task, err := s.repo.Create(ctx, userID, name, description, tags)
	if err != nil {
		return nil, err
	}

	// Re-read to pick up the owner association for serialization.
	return s.repo.FindByID(ctx, task.ID, userID)
}

func (s *TaskService) UpdateTask(ctx context.Context, id, userID string, update TaskUpdate) (*model.Task, error) {
	updates := map[string]interface{}{}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, apperrors.ErrNameRequired
		}
		updates["name"] = *update.Name
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Tags != nil {
		updates["tags"] = *update.Tags
	}

	return s.repo.Update(ctx, id, userID, updates)
}

func (s *TaskService) DeleteTask(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}

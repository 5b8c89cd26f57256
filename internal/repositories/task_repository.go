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

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, userID, name, description, tags string) (*model.Task, error) {
	task := &model.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Tags:        tags,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

// FindByID resolves a task scoped to its owner. A task belonging to another
// user is indistinguishable from a missing one.
func (r *TaskRepository) FindByID(ctx context.Context, id, userID string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Preload("User").
		First(&task, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Preload("User").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&tasks).Error
	return tasks, err
}

// ListAll returns every task in the store regardless of owner. Only the
// spreadsheet report uses it; see the builder for why.
func (r *TaskRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Update(ctx context.Context, id, userID string, updates map[string]interface{}) (*model.Task, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Task{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates)

		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, apperrors.ErrTaskNotFound
		}
	}

	return r.FindByID(ctx, id, userID)
}

// Delete removes the task and cascades to its entries in one transaction.
func (r *TaskRepository) Delete(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Task{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrTaskNotFound
		}

		return tx.Where("task_id = ?", id).Delete(&model.Entry{}).Error
	})
}

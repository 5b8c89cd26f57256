package dto

import (
	"time"

	model "thintimer.com/thintimer/internal/models"
)

// TaskResponse is the wire form of a task. TotalTimeSpent is the accumulated
// duration rendered as a string; User carries the owner's username and is
// read-only.
type TaskResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Tags           string    `json:"tags"`
	TotalTimeSpent string    `json:"total_time_spent"`
	User           string    `json:"user"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:             task.ID,
		Name:           task.Name,
		Description:    task.Description,
		Tags:           task.Tags,
		TotalTimeSpent: task.TotalTimeSpent.String(),
		User:           task.User.Username,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}

func NewTaskResponses(tasks []model.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = NewTaskResponse(&tasks[i])
	}
	return responses
}

// EntryResponse is the wire form of an entry. TaskName and TotalTime are
// derived, read-only fields.
type EntryResponse struct {
	ID        string    `json:"id"`
	Task      string    `json:"task"`
	TaskName  string    `json:"task_name"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	TotalTime string    `json:"total_time"`
}

func NewEntryResponse(entry *model.Entry) EntryResponse {
	return EntryResponse{
		ID:        entry.ID,
		Task:      entry.TaskID,
		TaskName:  entry.Task.Name,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		TotalTime: entry.TotalTime().String(),
	}
}

func NewEntryResponses(entries []model.Entry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = NewEntryResponse(&entries[i])
	}
	return responses
}

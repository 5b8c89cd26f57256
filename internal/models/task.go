package model

import (
	"strings"
	"time"
)

// Task is a named unit of work a user tracks time against. TotalTimeSpent is
// the running sum of TotalTime over the task's entries; it is adjusted
// incrementally whenever an entry is created or deleted, never recomputed
// from scratch on read.
type Task struct {
	ID             string        `gorm:"primaryKey;size:36" json:"id"`
	UserID         string        `gorm:"index;not null" json:"-"`
	User           User          `json:"-"`
	Name           string        `gorm:"not null" json:"name"`
	Description    string        `json:"description"`
	Tags           string        `json:"tags"`
	TotalTimeSpent time.Duration `gorm:"not null;default:0" json:"-"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// TagList splits the comma-delimited tag string into trimmed tokens.
// An unset tag string yields an empty, non-nil list.
func (t *Task) TagList() []string {
	tags := []string{}
	for _, tag := range strings.Split(t.Tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

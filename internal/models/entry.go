package model

import "time"

// Entry is a single timed interval logged against a task. End may precede
// Start; the resulting negative duration is accepted and flows through the
// task total and the reports unchanged.
type Entry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TaskID    string    `gorm:"index;not null" json:"task"`
	Task      Task      `json:"-"`
	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// TotalTime returns the logged interval length, end minus start.
func (e *Entry) TotalTime() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

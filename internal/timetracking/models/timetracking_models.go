package models

import (
	"time"
)

// TimeEntry is a logged block of work time, optionally tied to a task
type TimeEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	ProjectID   uint      `gorm:"index;not null" json:"project_id"`
	TaskID      *uint     `gorm:"index" json:"task_id"`
	Description string    `json:"description"`
	Hours       float64   `gorm:"not null" json:"hours"`
	Billable    bool      `gorm:"default:false" json:"billable"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateTimeEntryRequest struct {
	ProjectID   uint    `json:"project_id" binding:"required"`
	TaskID      *uint   `json:"task_id"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours" binding:"required,gt=0"`
	Billable    bool    `json:"billable"`
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
}

// TimeSummary aggregates entries over a date range
type TimeSummary struct {
	TotalHours    float64 `json:"total_hours"`
	BillableHours float64 `json:"billable_hours"`
	EntryCount    int     `json:"entry_count"`
}

// TimeFilter bounds a listing query; zero times mean unbounded
type TimeFilter struct {
	From time.Time
	To   time.Time
}

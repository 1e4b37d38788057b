package models

import (
	"time"
)

// CalendarEvent is a scheduled event in a project calendar. An event may
// be linked to at most one task; a linked event anchors that task's
// start on the project timeline.
type CalendarEvent struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProjectID   uint       `gorm:"index;not null" json:"project_id"`
	TaskID      *uint      `gorm:"uniqueIndex" json:"task_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	StartTime   time.Time  `gorm:"index;not null" json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	CreatedBy   uint       `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	TaskID      *uint      `json:"task_id"`
	StartTime   time.Time  `json:"start_time" binding:"required"`
	EndTime     *time.Time `json:"end_time"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
}

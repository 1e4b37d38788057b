package models

import (
	"time"
)

// Task statuses and priorities form closed vocabularies; writes outside
// them are rejected at the service layer.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusBlocked    = "blocked"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Task is a unit of work inside a project
type Task struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ProjectID      uint       `gorm:"index;not null" json:"project_id"`
	Title          string     `gorm:"not null" json:"title"`
	Description    string     `json:"description"`
	AssigneeID     *uint      `gorm:"index" json:"assignee_id"`
	Status         string     `gorm:"default:todo;index" json:"status"`
	Priority       string     `gorm:"default:medium" json:"priority"`
	DueDate        *time.Time `json:"due_date"`
	EstimatedHours *float64   `json:"estimated_hours"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `gorm:"index" json:"updated_at"`
}

// TaskProgress is an append-only progress report against a task.
// ProgressPercent is user-supplied and deliberately not clamped or
// required to be monotonic across reports.
type TaskProgress struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TaskID          uint      `gorm:"index;not null" json:"task_id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	ProgressPercent int       `json:"progress_percent"`
	HoursWorked     float64   `json:"hours_worked"`
	Note            string    `json:"note"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}

// ProgressWithTask joins a progress report with its task's identity,
// the shape the workload aggregator renders activity lines from.
type ProgressWithTask struct {
	ID              uint      `json:"id"`
	TaskID          uint      `json:"task_id"`
	UserID          uint      `json:"user_id"`
	ProgressPercent int       `json:"progress_percent"`
	HoursWorked     float64   `json:"hours_worked"`
	TaskTitle       string    `json:"task_title"`
	CreatedAt       time.Time `json:"created_at"`
}

// ========== REQUEST / RESPONSE SHAPES ==========

type CreateTaskRequest struct {
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description"`
	AssigneeID     *uint      `json:"assignee_id"`
	Priority       string     `json:"priority"`
	DueDate        *time.Time `json:"due_date"`
	EstimatedHours *float64   `json:"estimated_hours"`
}

type UpdateTaskRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	AssigneeID     *uint      `json:"assignee_id"`
	Status         *string    `json:"status"`
	Priority       *string    `json:"priority"`
	DueDate        *time.Time `json:"due_date"`
	EstimatedHours *float64   `json:"estimated_hours"`
}

type AddProgressRequest struct {
	ProgressPercent int     `json:"progress_percent"`
	HoursWorked     float64 `json:"hours_worked" binding:"min=0"`
	Note            string  `json:"note"`
}

type TaskListFilter struct {
	Status     string
	AssigneeID *uint
}

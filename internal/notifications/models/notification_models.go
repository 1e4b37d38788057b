package models

import (
	"time"
)

// Notification is an in-app notification for a user
type Notification struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	Type      string     `gorm:"not null" json:"type"` // "task_assigned", "task_completed", "message", "mention"
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
}

// EmailPreference gates outbound email per notification kind
type EmailPreference struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"index:idx_user_kind,unique;not null" json:"user_id"`
	Kind    string `gorm:"index:idx_user_kind,unique;not null" json:"kind"`
	Enabled bool   `gorm:"default:true" json:"enabled"`
}

type UpdatePreferenceRequest struct {
	Kind    string `json:"kind" binding:"required"`
	Enabled bool   `json:"enabled"`
}

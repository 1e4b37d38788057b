package models

import (
	"time"
)

// Message is either a project channel message (RecipientID nil) or a
// direct message between two users (ProjectID nil).
type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SenderID    uint      `gorm:"index;not null" json:"sender_id"`
	ProjectID   *uint     `gorm:"index" json:"project_id"`
	RecipientID *uint     `gorm:"index" json:"recipient_id"`
	Body        string    `gorm:"not null" json:"body"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// MessageWithSender joins a message with its sender's name for display
type MessageWithSender struct {
	ID          uint      `json:"id"`
	SenderID    uint      `json:"sender_id"`
	SenderName  string    `json:"sender_name"`
	ProjectID   *uint     `json:"project_id"`
	RecipientID *uint     `json:"recipient_id"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required,max=4000"`
}

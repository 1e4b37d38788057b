package models

import (
	"time"
)

// Project groups tasks, members, messages and files
type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	ManagerID   uint      `gorm:"index;not null" json:"manager_id"`
	Status      string    `gorm:"default:active" json:"status"` // "active", "archived", "completed"
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectMember links a user into a project's workforce.
// Unique per (project, user).
type ProjectMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"index:idx_project_user,unique;not null" json:"project_id"`
	UserID    uint      `gorm:"index:idx_project_user,unique;not null" json:"user_id"`
	Role      string    `gorm:"default:member" json:"role"` // "manager", "member"
	CreatedAt time.Time `json:"created_at"`
}

// MemberInfo is a member joined with user identity, the shape the
// analytics aggregator consumes.
type MemberInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ========== REQUEST / RESPONSE SHAPES ==========

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type AddMemberRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role"`
}

type ProjectResponse struct {
	Project Project      `json:"project"`
	Members []MemberInfo `json:"members"`
}

package repository

import (
	"github.com/teamhub/teamhub/internal/common/database"
	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/messaging/models"
)

// CreateMessage stores a message
func CreateMessage(message *models.Message) error {
	result := database.DB.Create(message)
	if result.Error != nil {
		return errors.Internal("failed to create message", result.Error.Error())
	}
	return nil
}

// ListProjectMessages retrieves a project channel's messages with sender
// names, newest first, paged by before-ID
func ListProjectMessages(projectID uint, beforeID uint, limit int) ([]models.MessageWithSender, error) {
	query := database.DB.
		Table("messages").
		Select("messages.id, messages.sender_id, users.name AS sender_name, messages.project_id, messages.recipient_id, messages.body, messages.created_at").
		Joins("JOIN users ON users.id = messages.sender_id").
		Where("messages.project_id = ?", projectID)
	if beforeID > 0 {
		query = query.Where("messages.id < ?", beforeID)
	}

	var messages []models.MessageWithSender
	result := query.Order("messages.id DESC").Limit(limit).Scan(&messages)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch messages", result.Error.Error())
	}
	return messages, nil
}

// ListDirectMessages retrieves the conversation between two users,
// newest first, paged by before-ID
func ListDirectMessages(userA, userB uint, beforeID uint, limit int) ([]models.MessageWithSender, error) {
	query := database.DB.
		Table("messages").
		Select("messages.id, messages.sender_id, users.name AS sender_name, messages.project_id, messages.recipient_id, messages.body, messages.created_at").
		Joins("JOIN users ON users.id = messages.sender_id").
		Where("(messages.sender_id = ? AND messages.recipient_id = ?) OR (messages.sender_id = ? AND messages.recipient_id = ?)",
			userA, userB, userB, userA)
	if beforeID > 0 {
		query = query.Where("messages.id < ?", beforeID)
	}

	var messages []models.MessageWithSender
	result := query.Order("messages.id DESC").Limit(limit).Scan(&messages)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch messages", result.Error.Error())
	}
	return messages, nil
}

// DeleteMessage removes a message by ID
func DeleteMessage(id uint) error {
	result := database.DB.Delete(&models.Message{}, id)
	if result.Error != nil {
		return errors.Internal("failed to delete message", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("message")
	}
	return nil
}

// GetMessageByID retrieves a message
func GetMessageByID(id uint) (*models.Message, error) {
	var message models.Message
	result := database.DB.First(&message, id)
	if result.Error != nil {
		return nil, errors.NotFound("message")
	}
	return &message, nil
}

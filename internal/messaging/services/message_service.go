package services

import (
	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/messaging/models"
	"github.com/teamhub/teamhub/internal/messaging/repository"
	notifsvc "github.com/teamhub/teamhub/internal/notifications/services"
	projectsvc "github.com/teamhub/teamhub/internal/projects/services"
	userrepo "github.com/teamhub/teamhub/internal/users/repository"
)

// Broadcaster pushes message events to project subscribers
type Broadcaster interface {
	Broadcast(channel, eventType string, data interface{})
}

var (
	dispatcher  *notifsvc.Dispatcher
	broadcaster Broadcaster
	channelFor  func(projectID uint) string
)

// Configure wires the notification dispatcher and realtime broadcaster.
// Called once from main; both may be nil in tests.
func Configure(d *notifsvc.Dispatcher, b Broadcaster, channel func(projectID uint) string) {
	dispatcher = d
	broadcaster = b
	channelFor = channel
}

const defaultPageSize = 50

// SendProjectMessage posts to a project channel and broadcasts it
func SendProjectMessage(projectID, senderID uint, req *models.SendMessageRequest) (*models.Message, error) {
	if err := projectsvc.RequireMember(projectID, senderID); err != nil {
		return nil, err
	}

	message := &models.Message{
		SenderID:  senderID,
		ProjectID: &projectID,
		Body:      req.Body,
	}
	if err := repository.CreateMessage(message); err != nil {
		return nil, err
	}

	if broadcaster != nil && channelFor != nil {
		broadcaster.Broadcast(channelFor(projectID), "message", message)
	}
	return message, nil
}

// SendDirectMessage sends a DM and notifies the recipient
func SendDirectMessage(senderID, recipientID uint, req *models.SendMessageRequest) (*models.Message, error) {
	if senderID == recipientID {
		return nil, errors.BadRequest("cannot message yourself")
	}

	sender, err := userrepo.GetUserByID(senderID)
	if err != nil {
		return nil, err
	}
	if _, err := userrepo.GetUserByID(recipientID); err != nil {
		return nil, err
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: &recipientID,
		Body:        req.Body,
	}
	if err := repository.CreateMessage(message); err != nil {
		return nil, err
	}

	if dispatcher != nil {
		dispatcher.Notify(recipientID, "message",
			"New message from "+sender.Name, req.Body)
	}
	return message, nil
}

// ListProjectMessages pages a project channel's history, newest first
func ListProjectMessages(projectID, userID, beforeID uint, limit int) ([]models.MessageWithSender, error) {
	if err := projectsvc.RequireMember(projectID, userID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}
	return repository.ListProjectMessages(projectID, beforeID, limit)
}

// ListDirectMessages pages a DM conversation, newest first
func ListDirectMessages(userID, otherID, beforeID uint, limit int) ([]models.MessageWithSender, error) {
	if _, err := userrepo.GetUserByID(otherID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}
	return repository.ListDirectMessages(userID, otherID, beforeID, limit)
}

// DeleteMessage removes a message; sender only
func DeleteMessage(messageID, userID uint) error {
	message, err := repository.GetMessageByID(messageID)
	if err != nil {
		return err
	}
	if message.SenderID != userID {
		return errors.Forbidden("you may only delete your own messages")
	}
	return repository.DeleteMessage(messageID)
}

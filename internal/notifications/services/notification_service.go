package services

import (
	"go.uber.org/zap"

	"github.com/teamhub/teamhub/internal/notifications/models"
	"github.com/teamhub/teamhub/internal/notifications/repository"
	userrepo "github.com/teamhub/teamhub/internal/users/repository"
	"github.com/teamhub/teamhub/pkg/logger"
)

// Mailer sends notification emails. The zero-config deployment uses
// LogMailer; an SMTP implementation can be swapped in from main.
type Mailer interface {
	Send(to, subject, body string) error
}

// LogMailer writes outbound mail to the log instead of sending it
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	logger.Info("outbound email",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

// Dispatcher fans a notification out to storage, email and any
// registered push function (the websocket hub in production).
type Dispatcher struct {
	mailer Mailer
	push   func(userID uint, eventType string, data interface{})
}

// NewDispatcher builds a dispatcher. push may be nil.
func NewDispatcher(mailer Mailer, push func(userID uint, eventType string, data interface{})) *Dispatcher {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &Dispatcher{mailer: mailer, push: push}
}

// Notify stores a notification and delivers it over the side channels.
// Delivery failures are logged, never returned: the triggering operation
// must not fail because a notification could not be sent.
func (d *Dispatcher) Notify(userID uint, kind, title, message string) {
	n := &models.Notification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
	}
	if err := repository.CreateNotification(n); err != nil {
		logger.Error("failed to store notification", zap.Uint("user_id", userID), zap.Error(err))
		return
	}

	if d.push != nil {
		d.push(userID, "notification", n)
	}

	pref, _ := repository.GetEmailPreference(userID, kind)
	if pref == nil || !pref.Enabled {
		return
	}

	user, err := userrepo.GetUserByID(userID)
	if err != nil {
		return
	}
	if err := d.mailer.Send(user.Email, title, message); err != nil {
		logger.Warn("failed to send notification email",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
	}
}

// ListNotifications returns the user's notifications, unread first
func ListNotifications(userID uint, limit int) ([]*models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return repository.ListNotifications(userID, limit)
}

// MarkRead marks one of the user's notifications read
func MarkRead(notificationID, userID uint) error {
	return repository.MarkRead(notificationID, userID)
}

// MarkAllRead marks all of the user's notifications read
func MarkAllRead(userID uint) error {
	return repository.MarkAllRead(userID)
}

// UnreadCount returns the user's unread notification count
func UnreadCount(userID uint) (int64, error) {
	return repository.CountUnread(userID)
}

// SetEmailPreference stores a per-kind email opt-in/out
func SetEmailPreference(userID uint, req *models.UpdatePreferenceRequest) error {
	return repository.UpsertEmailPreference(&models.EmailPreference{
		UserID:  userID,
		Kind:    req.Kind,
		Enabled: req.Enabled,
	})
}

package repository

import (
	"time"

	"github.com/teamhub/teamhub/internal/common/database"
	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/notifications/models"
)

// CreateNotification stores a notification
func CreateNotification(n *models.Notification) error {
	result := database.DB.Create(n)
	if result.Error != nil {
		return errors.Internal("failed to create notification", result.Error.Error())
	}
	return nil
}

// ListNotifications retrieves a user's notifications, unread first then newest
func ListNotifications(userID uint, limit int) ([]*models.Notification, error) {
	var notifications []*models.Notification
	result := database.DB.
		Where("user_id = ?", userID).
		Order("read_at IS NULL DESC, created_at DESC").
		Limit(limit).
		Find(&notifications)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch notifications", result.Error.Error())
	}
	return notifications, nil
}

// MarkRead marks one notification read
func MarkRead(notificationID, userID uint) error {
	now := time.Now()
	result := database.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read_at", &now)
	if result.Error != nil {
		return errors.Internal("failed to mark notification read", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("notification")
	}
	return nil
}

// MarkAllRead marks every unread notification read
func MarkAllRead(userID uint) error {
	now := time.Now()
	result := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", &now)
	if result.Error != nil {
		return errors.Internal("failed to mark notifications read", result.Error.Error())
	}
	return nil
}

// CountUnread returns the user's unread notification count
func CountUnread(userID uint) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count)
	if result.Error != nil {
		return 0, errors.Internal("failed to count notifications", result.Error.Error())
	}
	return count, nil
}

// GetEmailPreference retrieves a user's preference for a notification kind.
// Missing rows default to enabled.
func GetEmailPreference(userID uint, kind string) (*models.EmailPreference, error) {
	var pref models.EmailPreference
	result := database.DB.Where("user_id = ? AND kind = ?", userID, kind).First(&pref)
	if result.Error != nil {
		return &models.EmailPreference{UserID: userID, Kind: kind, Enabled: true}, nil
	}
	return &pref, nil
}

// UpsertEmailPreference stores a user's preference for a notification kind
func UpsertEmailPreference(pref *models.EmailPreference) error {
	var existing models.EmailPreference
	result := database.DB.Where("user_id = ? AND kind = ?", pref.UserID, pref.Kind).First(&existing)
	if result.Error == nil {
		existing.Enabled = pref.Enabled
		if res := database.DB.Save(&existing); res.Error != nil {
			return errors.Internal("failed to update preference", res.Error.Error())
		}
		return nil
	}

	if res := database.DB.Create(pref); res.Error != nil {
		return errors.Internal("failed to create preference", res.Error.Error())
	}
	return nil
}

package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

// ListNotifications returns the user's notifications, newest first,
// excluding expired ones.
func ListNotifications(userID uint) ([]models.Notification, error) {
	var out []models.Notification
	err := config.DB.
		Where("user_id = ? AND (expires_at IS NULL OR expires_at > ?)", userID, time.Now()).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func MarkNotificationRead(userID, notificationID uint) error {
	now := time.Now()
	result := config.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]any{"is_read": true, "read_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

package services

import (
	"backend/models"

	"gorm.io/gorm"
)

type notifierDeps struct {
	db  *gorm.DB
	hub *NotificationHub
}

var _notifier notifierDeps

func InitNotifier(db *gorm.DB, hub *NotificationHub) {
	_notifier = notifierDeps{db: db, hub: hub}
}

// EmitNotification persists a notification and pushes it to any open
// websocket connections. Safe to call from anywhere, including before
// InitNotifier in tests.
func EmitNotification(userID uint, typ, title, message string) {
	if _notifier.db == nil {
		return
	}
	n := &models.Notification{
		UserID:           userID,
		Title:            title,
		Message:          message,
		NotificationType: typ,
	}
	_ = _notifier.db.Create(n).Error

	if _notifier.hub != nil {
		_notifier.hub.Push(userID, map[string]any{
			"kind":         "notification.created",
			"notification": n,
		})
	}
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	UserID           uint   `gorm:"index;not null"`
	Title            string `gorm:"size:200;not null"`
	Message          string `gorm:"type:text;not null"`
	NotificationType string `gorm:"size:50;default:general"` // general | streak | achievement | health | meal
	Link             string `gorm:"size:255"`
	IsRead           bool   `gorm:"default:false"`
	ReadAt           *time.Time
	ExpiresAt        *time.Time
}

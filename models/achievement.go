package models

import (
	"time"

	"gorm.io/gorm"
)

// Achievement is a catalog entry describing an earnable badge.
type Achievement struct {
	gorm.Model
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text;not null"`
	BadgeImage  string `gorm:"size:200"`
	Category    string `gorm:"size:50"`
	Points      int    `gorm:"default:10"`
	// What earns this achievement and the threshold for it.
	RequirementType  string `gorm:"size:50"` // streak | total_steps | entries | goals_completed | points
	RequirementValue int    `gorm:"default:1"`
}

// UserAchievement records a badge earned by a user.
type UserAchievement struct {
	gorm.Model
	UserID        uint `gorm:"index;not null"`
	AchievementID uint `gorm:"index;not null"`
	EarnedAt      time.Time
	Displayed     bool `gorm:"default:false"` // whether the user has seen the notification

	Achievement Achievement
}

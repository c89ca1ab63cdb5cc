package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username       string `gorm:"size:50;uniqueIndex;not null"`
	Email          string `gorm:"size:100;uniqueIndex;not null"`
	HashedPassword string `gorm:"size:256;not null"`
	FullName       string `gorm:"size:100"`
	IsActive       bool   `gorm:"default:true"`

	// Gamification counters
	CurrentStreak    int
	LongestStreak    int
	LastActivityDate *time.Time
	TotalPoints      int
	Level            int `gorm:"default:1"`
}

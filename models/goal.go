package models

import (
	"time"

	"gorm.io/gorm"
)

type Goal struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null"`
	Name         string `gorm:"size:100"`
	Description  string `gorm:"type:text"`
	TargetValue  float64
	CurrentValue float64
	GoalType     string `gorm:"size:50"` // weight | steps | activity | nutrition
	StartDate    time.Time
	TargetDate   *time.Time
	IsAchieved   bool `gorm:"default:false"`
}

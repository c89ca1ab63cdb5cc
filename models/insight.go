package models

import "gorm.io/gorm"

// Insight is a stored AI-generated health observation.
type Insight struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	InsightText string `gorm:"type:text"`
	Category    string `gorm:"size:50"`
	IsRead      bool   `gorm:"default:false"`
}

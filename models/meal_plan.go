package models

import (
	"time"

	"gorm.io/gorm"
)

// MealPlan stores a generated multi-day plan. PlanData holds the full
// day-by-day structure as JSON text (see JSONMap).
type MealPlan struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null"`
	Name          string `gorm:"size:100"`
	StartDate     time.Time
	EndDate       *time.Time
	DailyCalories int
	IsActive      bool    `gorm:"default:true"`
	Preferences   string  `gorm:"type:text"` // comma-separated cuisines/foods
	Restrictions  string  `gorm:"type:text"` // comma-separated allergies/diets
	PlanData      JSONMap `gorm:"type:text"`
}

// GroceryList is a shopping list, usually derived from a meal plan.
// ListData maps category name to item names.
type GroceryList struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	MealPlanID  *uint  `gorm:"index"`
	Name        string `gorm:"size:100"`
	IsCompleted bool   `gorm:"default:false"`
	ListData    JSONMap `gorm:"type:text"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// HealthData is one day's worth of recorded metrics for a user.
type HealthData struct {
	gorm.Model
	UserID                 uint      `gorm:"index;not null"`
	Date                   time.Time `gorm:"index"`
	Weight                 float64   // kg
	Height                 float64   // cm
	Steps                  int
	SleepHours             float64
	WaterIntake            float64 // liters
	CaloriesConsumed       int
	CaloriesBurned         int
	HeartRate              int // BPM
	BloodPressureSystolic  int
	BloodPressureDiastolic int
	Notes                  string `gorm:"type:text"`

	NutritionEntries []NutritionEntry
	ActivityEntries  []ActivityEntry
}

// NutritionEntry is a single logged meal or snack attached to a day.
type NutritionEntry struct {
	gorm.Model
	HealthDataID uint   `gorm:"index;not null"`
	MealType     string `gorm:"size:50"` // breakfast | lunch | dinner | snack
	FoodName     string `gorm:"size:100"`
	Calories     int
	Protein      float64 // g
	Carbs        float64 // g
	Fat          float64 // g
	Time         time.Time
}

// ActivityEntry is a single logged exercise session attached to a day.
type ActivityEntry struct {
	gorm.Model
	HealthDataID   uint   `gorm:"index;not null"`
	ActivityType   string `gorm:"size:50"`
	Duration       int    // minutes
	CaloriesBurned int
	Time           time.Time
}

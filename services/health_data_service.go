package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

var ErrHealthDataNotFound = errors.New("health data entry not found")

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type HealthDataInput struct {
	Weight                 float64
	Height                 float64
	Steps                  int
	SleepHours             float64
	WaterIntake            float64
	CaloriesConsumed       int
	CaloriesBurned         int
	HeartRate              int
	BloodPressureSystolic  int
	BloodPressureDiastolic int
	Notes                  string
}

func RecordHealthData(userID uint, in HealthDataInput) (*models.HealthData, error) {
	entry := models.HealthData{
		UserID:                 userID,
		Date:                   time.Now(),
		Weight:                 in.Weight,
		Height:                 in.Height,
		Steps:                  in.Steps,
		SleepHours:             in.SleepHours,
		WaterIntake:            in.WaterIntake,
		CaloriesConsumed:       in.CaloriesConsumed,
		CaloriesBurned:         in.CaloriesBurned,
		HeartRate:              in.HeartRate,
		BloodPressureSystolic:  in.BloodPressureSystolic,
		BloodPressureDiastolic: in.BloodPressureDiastolic,
		Notes:                  in.Notes,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func ListHealthHistory(userID uint) ([]models.HealthData, error) {
	var history []models.HealthData
	err := config.DB.
		Preload("NutritionEntries").
		Preload("ActivityEntries").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&history).Error
	return history, err
}

// LatestHealthData returns nil without error when the user has no entries.
func LatestHealthData(userID uint) (*models.HealthData, error) {
	var entry models.HealthData
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// GetOrCreateToday finds today's HealthData row, creating an empty one if
// the user hasn't recorded anything yet. Nutrition and activity entries
// attach to it.
func GetOrCreateToday(userID uint) (*models.HealthData, error) {
	start := dayStart(time.Now())
	end := start.Add(24 * time.Hour)

	var entry models.HealthData
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		First(&entry).Error
	if err == nil {
		return &entry, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry = models.HealthData{UserID: userID, Date: time.Now()}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

type NutritionInput struct {
	MealType string
	FoodName string
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
}

func AddNutritionEntry(userID, healthDataID uint, in NutritionInput) (*models.NutritionEntry, error) {
	hd, err := resolveHealthData(userID, healthDataID)
	if err != nil {
		return nil, err
	}

	entry := models.NutritionEntry{
		HealthDataID: hd.ID,
		MealType:     in.MealType,
		FoodName:     in.FoodName,
		Calories:     in.Calories,
		Protein:      in.Protein,
		Carbs:        in.Carbs,
		Fat:          in.Fat,
		Time:         time.Now(),
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

type ActivityInput struct {
	ActivityType   string
	Duration       int
	CaloriesBurned int
}

func AddActivityEntry(userID, healthDataID uint, in ActivityInput) (*models.ActivityEntry, error) {
	hd, err := resolveHealthData(userID, healthDataID)
	if err != nil {
		return nil, err
	}

	entry := models.ActivityEntry{
		HealthDataID:   hd.ID,
		ActivityType:   in.ActivityType,
		Duration:       in.Duration,
		CaloriesBurned: in.CaloriesBurned,
		Time:           time.Now(),
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// resolveHealthData validates ownership of an explicit id, or falls back to
// today's row when id is zero.
func resolveHealthData(userID, healthDataID uint) (*models.HealthData, error) {
	if healthDataID == 0 {
		return GetOrCreateToday(userID)
	}
	var hd models.HealthData
	err := config.DB.
		Where("id = ? AND user_id = ?", healthDataID, userID).
		First(&hd).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHealthDataNotFound
		}
		return nil, err
	}
	return &hd, nil
}

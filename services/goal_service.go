package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

var ErrGoalNotFound = errors.New("goal not found")

type GoalInput struct {
	Name         string
	Description  string
	TargetValue  float64
	CurrentValue float64
	GoalType     string
	TargetDate   string // YYYY-MM-DD, optional
}

func CreateGoal(userID uint, in GoalInput) (*models.Goal, error) {
	goal := models.Goal{
		UserID:       userID,
		Name:         in.Name,
		Description:  in.Description,
		TargetValue:  in.TargetValue,
		CurrentValue: in.CurrentValue,
		GoalType:     in.GoalType,
		StartDate:    time.Now(),
	}
	if in.TargetDate != "" {
		td, err := time.Parse("2006-01-02", in.TargetDate)
		if err != nil {
			return nil, errors.New("invalid target date, use YYYY-MM-DD")
		}
		goal.TargetDate = &td
	}
	if err := config.DB.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// ListGoals returns active and completed goals separately, matching how the
// goals page renders them.
func ListGoals(userID uint) (active, completed []models.Goal, err error) {
	if err = config.DB.
		Where("user_id = ? AND is_achieved = ?", userID, false).
		Order("start_date DESC").
		Find(&active).Error; err != nil {
		return nil, nil, err
	}
	if err = config.DB.
		Where("user_id = ? AND is_achieved = ?", userID, true).
		Order("start_date DESC").
		Find(&completed).Error; err != nil {
		return nil, nil, err
	}
	return active, completed, nil
}

type GoalUpdate struct {
	CurrentValue *float64
	IsAchieved   *bool
}

func UpdateGoal(userID, goalID uint, upd GoalUpdate) (*models.Goal, error) {
	var goal models.Goal
	err := config.DB.
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	if upd.CurrentValue != nil {
		goal.CurrentValue = *upd.CurrentValue
	}
	if upd.IsAchieved != nil {
		goal.IsAchieved = *upd.IsAchieved
	}

	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func DeleteGoal(userID, goalID uint) error {
	result := config.DB.
		Where("id = ? AND user_id = ?", goalID, userID).
		Delete(&models.Goal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

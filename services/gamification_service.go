package services

import (
	"fmt"
	"time"

	"backend/config"
	"backend/models"
)

// pointsPerLevel controls how users level up from achievement points.
const pointsPerLevel = 100

type StreakInfo struct {
	CurrentStreak int  `json:"current_streak"`
	LongestStreak int  `json:"longest_streak"`
	TotalPoints   int  `json:"total_points"`
	Level         int  `json:"level"`
	Updated       bool `json:"updated"`
}

// UpdateUserStreak advances the daily streak: no change when already counted
// today, +1 when the last activity was yesterday, reset to 1 after a gap.
func UpdateUserStreak(userID uint) (*StreakInfo, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	today := dayStart(time.Now())
	updated := true

	if user.LastActivityDate != nil {
		last := dayStart(*user.LastActivityDate)
		switch {
		case last.Equal(today):
			updated = false
		case last.Equal(today.AddDate(0, 0, -1)):
			user.CurrentStreak++
		default:
			user.CurrentStreak = 1
		}
	} else {
		user.CurrentStreak = 1
	}

	if updated {
		if user.CurrentStreak > user.LongestStreak {
			user.LongestStreak = user.CurrentStreak
		}
		now := time.Now()
		user.LastActivityDate = &now
		if err := config.DB.Save(&user).Error; err != nil {
			return nil, err
		}
	}

	return &StreakInfo{
		CurrentStreak: user.CurrentStreak,
		LongestStreak: user.LongestStreak,
		TotalPoints:   user.TotalPoints,
		Level:         user.Level,
		Updated:       updated,
	}, nil
}

// EarnedAchievement is the JSON shape returned when a badge is unlocked.
type EarnedAchievement struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BadgeImage  string `json:"badge_image,omitempty"`
	Category    string `json:"category"`
	Points      int    `json:"points"`
}

// CheckAchievements evaluates every unearned achievement against the user's
// current progress, awarding points and emitting a notification for each one
// newly earned.
func CheckAchievements(userID uint) ([]EarnedAchievement, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	var all []models.Achievement
	if err := config.DB.Find(&all).Error; err != nil {
		return nil, err
	}

	earned := map[uint]bool{}
	var owned []models.UserAchievement
	if err := config.DB.Where("user_id = ?", userID).Find(&owned).Error; err != nil {
		return nil, err
	}
	for _, ua := range owned {
		earned[ua.AchievementID] = true
	}

	var newlyEarned []EarnedAchievement
	for _, a := range all {
		if earned[a.ID] {
			continue
		}
		progress, err := achievementProgress(&user, a.RequirementType)
		if err != nil {
			return nil, err
		}
		if progress < a.RequirementValue {
			continue
		}

		ua := models.UserAchievement{
			UserID:        userID,
			AchievementID: a.ID,
			EarnedAt:      time.Now(),
		}
		if err := config.DB.Create(&ua).Error; err != nil {
			return nil, err
		}

		user.TotalPoints += a.Points
		user.Level = user.TotalPoints/pointsPerLevel + 1

		newlyEarned = append(newlyEarned, EarnedAchievement{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			BadgeImage:  a.BadgeImage,
			Category:    a.Category,
			Points:      a.Points,
		})

		EmitNotification(userID, "achievement", "Achievement unlocked!",
			fmt.Sprintf("You've earned \"%s\" (+%d points): %s", a.Name, a.Points, a.Description))
	}

	if len(newlyEarned) > 0 {
		if err := config.DB.Save(&user).Error; err != nil {
			return nil, err
		}
	}
	return newlyEarned, nil
}

func achievementProgress(user *models.User, requirementType string) (int, error) {
	switch requirementType {
	case "streak":
		return user.CurrentStreak, nil
	case "points":
		return user.TotalPoints, nil
	case "total_steps":
		var total int64
		err := config.DB.Model(&models.HealthData{}).
			Where("user_id = ?", user.ID).
			Select("COALESCE(SUM(steps), 0)").
			Scan(&total).Error
		return int(total), err
	case "entries":
		var count int64
		err := config.DB.Model(&models.HealthData{}).
			Where("user_id = ?", user.ID).
			Count(&count).Error
		return int(count), err
	case "goals_completed":
		var count int64
		err := config.DB.Model(&models.Goal{}).
			Where("user_id = ? AND is_achieved = ?", user.ID, true).
			Count(&count).Error
		return int(count), err
	default:
		return 0, nil
	}
}

var defaultAchievements = []models.Achievement{
	{Name: "First Steps", Description: "Record your first day of health data", Category: "tracking", Points: 10, RequirementType: "entries", RequirementValue: 1},
	{Name: "Dedicated Tracker", Description: "Record health data on 30 days", Category: "tracking", Points: 50, RequirementType: "entries", RequirementValue: 30},
	{Name: "Week Warrior", Description: "Keep a 7-day logging streak", Category: "streaks", Points: 25, RequirementType: "streak", RequirementValue: 7},
	{Name: "Consistency Champion", Description: "Keep a 30-day logging streak", Category: "streaks", Points: 100, RequirementType: "streak", RequirementValue: 30},
	{Name: "Step Master", Description: "Walk 100,000 steps in total", Category: "exercise", Points: 50, RequirementType: "total_steps", RequirementValue: 100000},
	{Name: "Goal Getter", Description: "Complete your first goal", Category: "goals", Points: 20, RequirementType: "goals_completed", RequirementValue: 1},
	{Name: "Overachiever", Description: "Complete five goals", Category: "goals", Points: 50, RequirementType: "goals_completed", RequirementValue: 5},
	{Name: "Point Collector", Description: "Accumulate 100 points", Category: "milestones", Points: 25, RequirementType: "points", RequirementValue: 100},
}

// CreateDefaultAchievements seeds the badge catalog. Safe to call repeatedly.
func CreateDefaultAchievements() error {
	for _, a := range defaultAchievements {
		var existing models.Achievement
		if err := config.DB.
			Where("name = ?", a.Name).
			FirstOrCreate(&existing, a).Error; err != nil {
			return err
		}
	}
	return nil
}

// AchievementView is an achievement joined with the user's earn state.
type AchievementView struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	BadgeImage       string     `json:"badge_image,omitempty"`
	Category         string     `json:"category"`
	Points           int        `json:"points"`
	RequirementType  string     `json:"requirement_type"`
	RequirementValue int        `json:"requirement_value"`
	EarnedAt         *time.Time `json:"earned_at,omitempty"`
	Progress         int        `json:"progress,omitempty"`
}

func GetUserAchievements(userID uint) ([]AchievementView, error) {
	var owned []models.UserAchievement
	err := config.DB.
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&owned).Error
	if err != nil {
		return nil, err
	}

	out := make([]AchievementView, 0, len(owned))
	for _, ua := range owned {
		earnedAt := ua.EarnedAt
		out = append(out, AchievementView{
			ID:               ua.Achievement.ID,
			Name:             ua.Achievement.Name,
			Description:      ua.Achievement.Description,
			BadgeImage:       ua.Achievement.BadgeImage,
			Category:         ua.Achievement.Category,
			Points:           ua.Achievement.Points,
			RequirementType:  ua.Achievement.RequirementType,
			RequirementValue: ua.Achievement.RequirementValue,
			EarnedAt:         &earnedAt,
		})
	}
	return out, nil
}

func GetUnearnedAchievements(userID uint) ([]AchievementView, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	var unearned []models.Achievement
	err := config.DB.
		Where("id NOT IN (?)",
			config.DB.Model(&models.UserAchievement{}).
				Select("achievement_id").
				Where("user_id = ?", userID)).
		Find(&unearned).Error
	if err != nil {
		return nil, err
	}

	out := make([]AchievementView, 0, len(unearned))
	for _, a := range unearned {
		progress, err := achievementProgress(&user, a.RequirementType)
		if err != nil {
			return nil, err
		}
		out = append(out, AchievementView{
			ID:               a.ID,
			Name:             a.Name,
			Description:      a.Description,
			BadgeImage:       a.BadgeImage,
			Category:         a.Category,
			Points:           a.Points,
			RequirementType:  a.RequirementType,
			RequirementValue: a.RequirementValue,
			Progress:         progress,
		})
	}
	return out, nil
}

// GroupAchievementsByCategory shapes achievement lists for the templates.
func GroupAchievementsByCategory(views []AchievementView) map[string][]AchievementView {
	grouped := make(map[string][]AchievementView)
	for _, v := range views {
		grouped[v.Category] = append(grouped[v.Category], v)
	}
	return grouped
}

// GetNewAchievementNotifications returns badges the user hasn't been shown
// yet and marks them displayed.
func GetNewAchievementNotifications(userID uint) ([]EarnedAchievement, error) {
	var pending []models.UserAchievement
	err := config.DB.
		Preload("Achievement").
		Where("user_id = ? AND displayed = ?", userID, false).
		Find(&pending).Error
	if err != nil {
		return nil, err
	}

	out := make([]EarnedAchievement, 0, len(pending))
	for _, ua := range pending {
		out = append(out, EarnedAchievement{
			ID:          ua.Achievement.ID,
			Name:        ua.Achievement.Name,
			Description: ua.Achievement.Description,
			BadgeImage:  ua.Achievement.BadgeImage,
			Category:    ua.Achievement.Category,
			Points:      ua.Achievement.Points,
		})
		ua.Displayed = true
		if err := config.DB.Save(&ua).Error; err != nil {
			return nil, err
		}
	}
	return out, nil
}

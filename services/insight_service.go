package services

import (
	"errors"
	"fmt"
	"strings"

	"backend/config"
	"backend/models"
	"backend/utils"
)

var ErrNoHealthData = errors.New("no health data available for insights")

type InsightService struct {
	groq *GroqService
}

func NewInsightService(groq *GroqService) *InsightService {
	return &InsightService{groq: groq}
}

// GenerateHealthInsight summarizes the user's latest metrics, asks the AI
// for one concrete observation, and stores the result.
func (s *InsightService) GenerateHealthInsight(userID uint) (*models.Insight, error) {
	hd, err := LatestHealthData(userID)
	if err != nil {
		return nil, err
	}
	if hd == nil {
		return nil, ErrNoHealthData
	}

	reply, err := s.groq.ChatCompletion([]ChatMessage{
		{Role: "system", Content: "You are a supportive health coach. Give one short, practical insight (3-4 sentences) based on the user's metrics. Do not give medical diagnoses."},
		{Role: "user", Content: buildInsightPrompt(hd)},
	})
	if err != nil {
		return nil, err
	}

	insight := models.Insight{
		UserID:      userID,
		InsightText: reply,
		Category:    "health",
	}
	if err := config.DB.Create(&insight).Error; err != nil {
		return nil, err
	}
	return &insight, nil
}

func buildInsightPrompt(hd *models.HealthData) string {
	var sb strings.Builder
	sb.WriteString("My health metrics for ")
	sb.WriteString(hd.Date.Format("2006-01-02"))
	sb.WriteString(":\n")

	if hd.Weight > 0 {
		fmt.Fprintf(&sb, "- weight: %.1f kg\n", hd.Weight)
	}
	if hd.Height > 0 {
		fmt.Fprintf(&sb, "- height: %.1f cm\n", hd.Height)
	}
	if bmi, err := utils.CalculateBMI(hd.Weight, hd.Height); err == nil {
		fmt.Fprintf(&sb, "- BMI: %.1f (%s)\n", bmi, utils.BMICategory(bmi))
	}
	if hd.Steps > 0 {
		fmt.Fprintf(&sb, "- steps: %d\n", hd.Steps)
	}
	if hd.SleepHours > 0 {
		fmt.Fprintf(&sb, "- sleep: %.1f hours\n", hd.SleepHours)
	}
	if hd.WaterIntake > 0 {
		fmt.Fprintf(&sb, "- water: %.1f liters\n", hd.WaterIntake)
	}
	if hd.CaloriesConsumed > 0 {
		fmt.Fprintf(&sb, "- calories consumed: %d\n", hd.CaloriesConsumed)
	}
	if hd.CaloriesBurned > 0 {
		fmt.Fprintf(&sb, "- calories burned: %d\n", hd.CaloriesBurned)
	}
	if hd.HeartRate > 0 {
		fmt.Fprintf(&sb, "- resting heart rate: %d bpm\n", hd.HeartRate)
	}
	if hd.BloodPressureSystolic > 0 && hd.BloodPressureDiastolic > 0 {
		fmt.Fprintf(&sb, "- blood pressure: %d/%d\n", hd.BloodPressureSystolic, hd.BloodPressureDiastolic)
	}
	sb.WriteString("\nWhat should I focus on?")
	return sb.String()
}

func ListInsights(userID uint) ([]models.Insight, error) {
	var insights []models.Insight
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&insights).Error
	return insights, err
}

func RecentInsights(userID uint, limit int) ([]models.Insight, error) {
	if limit <= 0 {
		limit = 3
	}
	var insights []models.Insight
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&insights).Error
	return insights, err
}

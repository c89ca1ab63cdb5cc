package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func HealthDataPage(c *gin.Context) {
	userID := currentUserID(c)

	history, err := services.ListHealthHistory(userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load health history")
		return
	}
	render(c, http.StatusOK, "health_data.html", gin.H{"HealthHistory": history})
}

// RecordHealthData stores a day's metrics from the form, then updates the
// streak and checks for newly earned achievements.
func RecordHealthData(c *gin.Context) {
	userID := currentUserID(c)

	input := services.HealthDataInput{
		Weight:                 formFloat(c, "weight"),
		Height:                 formFloat(c, "height"),
		Steps:                  formInt(c, "steps"),
		SleepHours:             formFloat(c, "sleep_hours"),
		WaterIntake:            formFloat(c, "water_intake"),
		CaloriesConsumed:       formInt(c, "calories_consumed"),
		CaloriesBurned:         formInt(c, "calories_burned"),
		HeartRate:              formInt(c, "heart_rate"),
		BloodPressureSystolic:  formInt(c, "blood_pressure_systolic"),
		BloodPressureDiastolic: formInt(c, "blood_pressure_diastolic"),
		Notes:                  c.PostForm("notes"),
	}

	if _, err := services.RecordHealthData(userID, input); err != nil {
		middlewares.AddFlash(c, "danger", "Failed to record health data")
		c.Redirect(http.StatusFound, "/health-data")
		return
	}

	if _, err := services.UpdateUserStreak(userID); err != nil {
		middlewares.AddFlash(c, "danger", "Failed to update streak")
		c.Redirect(http.StatusFound, "/health-data")
		return
	}

	newAchievements, err := services.CheckAchievements(userID)
	if err == nil && len(newAchievements) > 0 {
		names := make([]string, 0, len(newAchievements))
		for _, a := range newAchievements {
			names = append(names, a.Name)
		}
		middlewares.AddFlash(c, "success", fmt.Sprintf(
			"Health data recorded successfully! You've earned %d new achievement(s): %s",
			len(newAchievements), strings.Join(names, ", ")))
	} else {
		middlewares.AddFlash(c, "success", "Health data recorded successfully")
	}

	c.Redirect(http.StatusFound, "/health-data")
}

type nutritionInput struct {
	HealthDataID uint    `json:"health_data_id"`
	MealType     string  `json:"meal_type" binding:"required"`
	FoodName     string  `json:"food_name" binding:"required"`
	Calories     int     `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
}

func AddNutrition(c *gin.Context) {
	userID := currentUserID(c)

	var input nutritionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	entry, err := services.AddNutritionEntry(userID, input.HealthDataID, services.NutritionInput{
		MealType: input.MealType,
		FoodName: input.FoodName,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Nutrition entry added",
		"entry_id": entry.ID,
	})
}

type activityInput struct {
	HealthDataID   uint   `json:"health_data_id"`
	ActivityType   string `json:"activity_type" binding:"required"`
	Duration       int    `json:"duration" binding:"required"`
	CaloriesBurned int    `json:"calories_burned"`
}

func AddActivity(c *gin.Context) {
	userID := currentUserID(c)

	var input activityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	entry, err := services.AddActivityEntry(userID, input.HealthDataID, services.ActivityInput{
		ActivityType:   input.ActivityType,
		Duration:       input.Duration,
		CaloriesBurned: input.CaloriesBurned,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Activity entry added",
		"entry_id": entry.ID,
	})
}

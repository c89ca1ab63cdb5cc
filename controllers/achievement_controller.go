package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func AchievementsPage(c *gin.Context) {
	userID := currentUserID(c)

	// Make sure the default badge catalog exists.
	if err := services.CreateDefaultAchievements(); err != nil {
		c.String(http.StatusInternalServerError, "failed to load achievements")
		return
	}

	user, err := services.FindUserByID(userID)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	earned, err := services.GetUserAchievements(userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load achievements")
		return
	}
	unearned, err := services.GetUnearnedAchievements(userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load achievements")
		return
	}

	render(c, http.StatusOK, "achievements.html", gin.H{
		"User":               user,
		"EarnedByCategory":   services.GroupAchievementsByCategory(earned),
		"UnearnedByCategory": services.GroupAchievementsByCategory(unearned),
		"EarnedCount":        len(earned),
		"UnearnedCount":      len(unearned),
	})
}

// UpdateStreak refreshes the streak, evaluates achievements, and returns
// any not-yet-displayed badge notifications.
func UpdateStreak(c *gin.Context) {
	userID := currentUserID(c)

	streakInfo, err := services.UpdateUserStreak(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	newAchievements, err := services.CheckAchievements(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	notifications, err := services.GetNewAchievementNotifications(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"streak_info":      streakInfo,
		"new_achievements": newAchievements,
		"notifications":    notifications,
	})
}

package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func Dashboard(c *gin.Context) {
	userID := currentUserID(c)

	user, err := services.FindUserByID(userID)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	latest, err := services.LatestHealthData(userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load health data")
		return
	}

	activeGoals, _, err := services.ListGoals(userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load goals")
		return
	}

	recentInsights, err := services.RecentInsights(userID, 3)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load insights")
		return
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"User":           user,
		"HealthData":     latest,
		"ActiveGoals":    activeGoals,
		"RecentInsights": recentInsights,
	})
}

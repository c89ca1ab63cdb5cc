package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	Svc *services.InsightService
}

func NewInsightController(svc *services.InsightService) *InsightController {
	return &InsightController{Svc: svc}
}

func (ic *InsightController) InsightsPage(c *gin.Context) {
	userID := currentUserID(c)

	latest, err := services.LatestHealthData(userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load health data")
		return
	}
	insights, err := services.ListInsights(userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load insights")
		return
	}

	render(c, http.StatusOK, "insights.html", gin.H{
		"HealthData": latest,
		"Insights":   insights,
	})
}

func (ic *InsightController) GenerateInsight(c *gin.Context) {
	userID := currentUserID(c)

	insight, err := ic.Svc.GenerateHealthInsight(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoHealthData) {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"insight": insight.InsightText,
	})
}

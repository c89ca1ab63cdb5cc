package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func GoalsPage(c *gin.Context) {
	userID := currentUserID(c)

	active, completed, err := services.ListGoals(userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load goals")
		return
	}
	render(c, http.StatusOK, "goals.html", gin.H{
		"ActiveGoals":    active,
		"CompletedGoals": completed,
	})
}

func CreateGoal(c *gin.Context) {
	userID := currentUserID(c)

	input := services.GoalInput{
		Name:         c.PostForm("name"),
		Description:  c.PostForm("description"),
		TargetValue:  formFloat(c, "target_value"),
		CurrentValue: formFloat(c, "current_value"),
		GoalType:     c.PostForm("goal_type"),
		TargetDate:   c.PostForm("target_date"),
	}

	if _, err := services.CreateGoal(userID, input); err != nil {
		middlewares.AddFlash(c, "danger", "Failed to create goal")
	} else {
		middlewares.AddFlash(c, "success", "New goal created successfully")
	}
	c.Redirect(http.StatusFound, "/goals")
}

// UpdateGoal serves both the page's fetch calls (JSON) and plain form
// posts, mirroring the goals page frontend.
func UpdateGoal(c *gin.Context) {
	userID := currentUserID(c)

	goalID, ok := paramUint(c, "id")
	if !ok {
		if isXHR(c) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid goal id"})
		} else {
			middlewares.AddFlash(c, "danger", "Invalid goal")
			c.Redirect(http.StatusFound, "/goals")
		}
		return
	}

	var upd services.GoalUpdate
	if v := c.PostForm("current_value"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			upd.CurrentValue = &f
		}
	}
	if v := c.PostForm("is_achieved"); v != "" {
		achieved := v == "true"
		upd.IsAchieved = &achieved
	}

	goal, err := services.UpdateGoal(userID, goalID, upd)
	if err != nil {
		if isXHR(c) {
			status := http.StatusInternalServerError
			if errors.Is(err, services.ErrGoalNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"success": false, "error": err.Error()})
		} else {
			middlewares.AddFlash(c, "danger", "Goal not found")
			c.Redirect(http.StatusFound, "/goals")
		}
		return
	}

	// Completing a goal can unlock goal-based achievements.
	if goal.IsAchieved {
		_, _ = services.CheckAchievements(userID)
	}

	if isXHR(c) {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	middlewares.AddFlash(c, "success", "Goal updated successfully")
	c.Redirect(http.StatusFound, "/goals")
}

func DeleteGoal(c *gin.Context) {
	userID := currentUserID(c)

	goalID, ok := paramUint(c, "id")
	if !ok {
		middlewares.AddFlash(c, "danger", "Invalid goal")
		c.Redirect(http.StatusFound, "/goals")
		return
	}

	if err := services.DeleteGoal(userID, goalID); err != nil {
		middlewares.AddFlash(c, "danger", "Goal not found")
	} else {
		middlewares.AddFlash(c, "success", "Goal deleted successfully")
	}
	c.Redirect(http.StatusFound, "/goals")
}

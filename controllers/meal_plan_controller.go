package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MealPlanController struct {
	Svc *services.MealPlanService
}

func NewMealPlanController(svc *services.MealPlanService) *MealPlanController {
	return &MealPlanController{Svc: svc}
}

func (mc *MealPlanController) MealPlansPage(c *gin.Context) {
	userID := currentUserID(c)

	plans, err := mc.Svc.ListMealPlans(userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load meal plans")
		return
	}
	render(c, http.StatusOK, "meal_plans.html", gin.H{"MealPlans": plans})
}

func (mc *MealPlanController) MealPlanDetailPage(c *gin.Context) {
	userID := currentUserID(c)

	planID, ok := paramUint(c, "id")
	if !ok {
		c.Redirect(http.StatusFound, "/meal-plans")
		return
	}

	plan, err := mc.Svc.GetMealPlan(userID, planID)
	if err != nil {
		c.Redirect(http.StatusFound, "/meal-plans")
		return
	}
	render(c, http.StatusOK, "meal_plan_detail.html", gin.H{"Plan": plan})
}

func (mc *MealPlanController) ListMealPlans(c *gin.Context) {
	userID := currentUserID(c)

	plans, err := mc.Svc.ListMealPlans(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "meal_plans": plans})
}

func (mc *MealPlanController) CreateMealPlan(c *gin.Context) {
	userID := currentUserID(c)

	var req services.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	plan, err := mc.Svc.GenerateMealPlan(userID, req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "meal_plan": plan})
}

func (mc *MealPlanController) CreateGroceryList(c *gin.Context) {
	userID := currentUserID(c)

	planID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid meal plan id"})
		return
	}

	list, err := mc.Svc.BuildGroceryList(userID, planID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrMealPlanNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "grocery_list": list})
}

func (mc *MealPlanController) CompleteGroceryList(c *gin.Context) {
	userID := currentUserID(c)

	listID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid grocery list id"})
		return
	}

	if err := mc.Svc.CompleteGroceryList(userID, listID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrGroceryListNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.NotificationHub) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	groq := services.NewGroqService()
	insightCtl := controllers.NewInsightController(services.NewInsightService(groq))
	mealPlanCtl := controllers.NewMealPlanController(services.NewMealPlanService(groq))
	chatCtl := controllers.NewChatbotController(services.NewChatbotService(groq))
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public pages
	r.GET("/", controllers.Home)
	r.GET("/login", controllers.LoginPage)
	r.POST("/login", controllers.Login)
	r.GET("/register", controllers.RegisterPage)
	r.POST("/register", controllers.Register)
	r.GET("/logout", controllers.Logout)

	// Token issuance for API clients
	r.POST("/auth/token", controllers.APILogin)

	// Signed-in pages
	pages := r.Group("/")
	pages.Use(middlewares.AuthRequired())
	{
		pages.GET("/dashboard", controllers.Dashboard)
		pages.GET("/health-data", controllers.HealthDataPage)
		pages.POST("/health-data", controllers.RecordHealthData)
		pages.GET("/goals", controllers.GoalsPage)
		pages.POST("/goals", controllers.CreateGoal)
		pages.POST("/update-goal/:id", controllers.UpdateGoal)
		pages.POST("/delete-goal/:id", controllers.DeleteGoal)
		pages.GET("/insights", insightCtl.InsightsPage)
		pages.GET("/achievements", controllers.AchievementsPage)
		pages.GET("/meal-plans", mealPlanCtl.MealPlansPage)
		pages.GET("/meal-plans/:id", mealPlanCtl.MealPlanDetailPage)
		pages.GET("/chat", chatCtl.ChatPage)
	}

	// JSON endpoints
	api := r.Group("/")
	api.Use(middlewares.APIAuthRequired())
	{
		api.POST("/add-nutrition", controllers.AddNutrition)
		api.POST("/add-activity", controllers.AddActivity)
		api.POST("/generate-insight", insightCtl.GenerateInsight)
		api.POST("/update-streak", controllers.UpdateStreak)

		api.GET("/api/meal-plans", mealPlanCtl.ListMealPlans)
		api.POST("/api/meal-plans", mealPlanCtl.CreateMealPlan)
		api.POST("/api/meal-plans/:id/grocery-list", mealPlanCtl.CreateGroceryList)
		api.POST("/api/grocery-lists/:id/complete", mealPlanCtl.CompleteGroceryList)

		api.POST("/api/chat", chatCtl.Chat)
		api.POST("/api/chat/reset", chatCtl.ResetChat)

		api.GET("/api/notifications", controllers.ListNotifications)
		api.POST("/api/notifications/:id/read", controllers.MarkNotificationRead)

		api.GET("/ws/notifications", realtimeCtl.NotificationsWS)
	}

	return r
}

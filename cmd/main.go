package main

import (
	"log"

	"backend/config"
	"backend/middlewares"
	"backend/routes"
	"backend/services"
)

func main() {
	config.LoadEnv()
	config.InitDB()
	middlewares.InitSessions()

	hub := services.NewNotificationHub()
	services.InitNotifier(config.DB, hub)

	if err := services.CreateDefaultAchievements(); err != nil {
		log.Fatalf("failed to seed achievements: %v", err)
	}

	r := routes.SetupRouter(hub)
	if err := r.Run(config.Addr()); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

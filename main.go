package main

import (
	"fmt"
	"log"
	"os"

	"reservahub-backend/config"
	"reservahub-backend/models"
	"reservahub-backend/routes"
	"reservahub-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.ClientProfile{},
		&models.ProviderProfile{},
		&models.Service{},
		&models.Resource{},
		&models.Schedule{},
		&models.Booking{},
		&models.NotificationLog{},
	)
}

func main() {
	services.NewReminderService(config.DB).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}

package routes

import (
	"reservahub-backend/config"
	"reservahub-backend/controllers"
	"reservahub-backend/models"
	"reservahub-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register/client", controllers.RegisterClient)
		auth.POST("/register/provider", controllers.RegisterProvider)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.PUT("/profile/client", utils.RequireRole(models.RoleClient), controllers.UpdateClientProfile)
		auth.PUT("/profile/provider", utils.RequireRole(models.RoleProvider), controllers.UpdateProviderProfile)
	}

	api := r.Group("/api")
	{
		// Public discovery routes
		api.GET("/providers", controllers.ListProviders)
		api.GET("/services/search", controllers.SearchServices)
		api.GET("/services/:id", controllers.GetService)
		api.GET("/services/provider/:id", controllers.GetServicesByProvider)
		api.GET("/resources/service/:id", controllers.GetResourcesByService)
		api.GET("/resources/:id", controllers.GetResource)
		api.GET("/schedules/resource/:id", controllers.GetSchedulesByResource)
		api.GET("/availability/resource/:id", controllers.GetResourceAvailability)
		api.GET("/availability/resource/:id/occupied", controllers.GetOccupiedStartTimes)

		// Client routes
		client := api.Group("")
		client.Use(utils.AuthMiddleware(), utils.RequireRole(models.RoleClient))
		{
			client.POST("/bookings", controllers.CreateBooking)
			client.GET("/bookings", controllers.GetMyBookings)
			client.GET("/bookings/:id", controllers.GetBooking)
			client.PATCH("/bookings/:id/cancel", controllers.CancelBooking)
			client.POST("/bookings/:id/payments", controllers.RecordPayment)
		}

		// Provider routes
		provider := api.Group("/provider")
		provider.Use(utils.AuthMiddleware(), utils.RequireRole(models.RoleProvider))
		{
			provider.POST("/services", controllers.CreateService)
			provider.GET("/services", controllers.GetMyServices)
			provider.PUT("/services/:id", controllers.UpdateService)
			provider.DELETE("/services/:id", controllers.DeleteService)

			provider.POST("/resources", controllers.CreateResource)
			provider.PUT("/resources/:id", controllers.UpdateResource)
			provider.DELETE("/resources/:id", controllers.DeleteResource)

			provider.POST("/schedules", controllers.CreateSchedule)
			provider.POST("/schedules/bulk", controllers.BulkCreateSchedules)
			provider.PUT("/schedules/:id", controllers.UpdateSchedule)
			provider.DELETE("/schedules/:id", controllers.DeleteSchedule)

			provider.GET("/bookings", controllers.GetProviderBookings)
			provider.GET("/bookings/resource/:id", controllers.GetBookingsByResource)
			provider.PATCH("/bookings/:id/confirm", controllers.ConfirmBooking)
			provider.PATCH("/bookings/:id/complete", controllers.CompleteBooking)
			provider.PATCH("/bookings/:id/no-show", controllers.MarkNoShow)
			provider.PATCH("/bookings/:id/confirm-payment", controllers.ConfirmPayment)

			provider.GET("/dashboard", controllers.GetProviderDashboard)
		}
	}

	return r
}

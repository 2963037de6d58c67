package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/farllon89/agendamento-lk-unhas/config"
	"github.com/farllon89/agendamento-lk-unhas/handlers"
	"github.com/farllon89/agendamento-lk-unhas/middleware"
	"github.com/farllon89/agendamento-lk-unhas/services"
	"github.com/farllon89/agendamento-lk-unhas/store"
)

// SetupRoutes wires the handlers onto the router. The notification handler is
// returned so main can hook it into the in-process cron schedule.
func SetupRoutes(router *gin.Engine, st store.Store, mailer services.Mailer, generator services.MessageGenerator, cfg *config.Config) *handlers.NotificationHandler {
	// Initialize handlers
	availabilityHandler := handlers.NewAvailabilityHandler(st, cfg)
	bookingHandler := handlers.NewBookingHandler(st, generator, cfg)
	notificationHandler := handlers.NewNotificationHandler(st, mailer, cfg)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Server is running",
		})
	})

	// Public booking surface
	router.GET("/availability", availabilityHandler.GetAvailability)
	router.POST("/appointments", bookingHandler.CreateAppointment)

	// Reminder job, optionally guarded by CRON_SECRET
	notifications := router.Group("/notifications")
	notifications.Use(middleware.CronAuthMiddleware(cfg))
	{
		notifications.GET("/run", notificationHandler.Run)
	}

	return notificationHandler
}

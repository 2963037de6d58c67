package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/farllon89/agendamento-lk-unhas/config"
	"github.com/farllon89/agendamento-lk-unhas/routes"
	"github.com/farllon89/agendamento-lk-unhas/services"
	"github.com/farllon89/agendamento-lk-unhas/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.NewConfig()

	// Initialize storage. Without credentials the server still starts and the
	// booking endpoint reports the setup-guidance error.
	var st store.Store
	if cfg.SupabaseConfigured() {
		st = store.NewSupabase(config.NewSupabaseClient(cfg))
	} else {
		log.Println("Warning: Supabase credentials not set, booking endpoints will report a configuration error")
	}

	// Pick a mail provider: SendGrid in production, plain SMTP for local runs.
	var mailer services.Mailer
	switch {
	case cfg.SendGridKey != "":
		mailer = services.NewSendGridMailer(cfg.SendGridKey, cfg.MailFrom)
	case cfg.SMTPHost != "":
		mailer = services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.MailFrom)
	default:
		log.Println("Warning: no mail provider configured, reminder job will report a configuration error")
	}

	// Optional confirmation-message personalization
	var generator services.MessageGenerator
	if cfg.OpenAIKey != "" {
		generator = services.NewOpenAIGenerator(cfg.OpenAIKey)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(config.CORSMiddleware(cfg))

	// Setup routes
	notificationHandler := routes.SetupRoutes(router, st, mailer, generator, cfg)

	// In-process daily reminder schedule; deployments using an external
	// scheduler leave REMINDER_CRON unset and call /notifications/run instead.
	if cfg.ReminderCron != "" {
		c := cron.New()
		if _, err := c.AddFunc(cfg.ReminderCron, func() {
			sent, err := notificationHandler.RunReminders()
			if err != nil {
				log.Printf("[ReminderJob] Run failed: %v", err)
				return
			}
			log.Printf("[ReminderJob] Sent %d reminder(s)", sent)
		}); err != nil {
			log.Fatalf("Invalid REMINDER_CRON %q: %v", cfg.ReminderCron, err)
		}
		c.Start()
		log.Printf("Reminder job scheduled: %s", cfg.ReminderCron)
	}

	// Start server
	log.Printf("Server starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

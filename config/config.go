package config

import (
	"os"
	"strings"
)

type Config struct {
	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseServiceKey string
	OpenAIKey          string
	SendGridKey        string
	MailFrom           string
	SMTPHost           string
	SMTPPort           string
	CronSecret         string
	ReminderCron       string
	ReminderStatus     string
	Port               string
	Environment        string
	AllowedOrigins     []string
}

func NewConfig() *Config {
	allowedOriginsStr := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := []string{"http://localhost:3000"}
	if allowedOriginsStr != "" {
		allowedOrigins = strings.Split(allowedOriginsStr, ",")
	}

	return &Config{
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		SendGridKey:        os.Getenv("SENDGRID_API_KEY"),
		MailFrom:           getEnvOrDefault("MAIL_FROM", "noreply@lkunhas.com"),
		SMTPHost:           os.Getenv("SMTP_HOST"),
		SMTPPort:           getEnvOrDefault("SMTP_PORT", "1025"),
		CronSecret:         os.Getenv("CRON_SECRET"),
		ReminderCron:       os.Getenv("REMINDER_CRON"),
		ReminderStatus:     getEnvOrDefault("REMINDER_STATUS", "pending"),
		Port:               getEnvOrDefault("PORT", "8080"),
		Environment:        getEnvOrDefault("ENVIRONMENT", "development"),
		AllowedOrigins:     allowedOrigins,
	}
}

// SupabaseConfigured reports whether the storage credentials are present. The
// booking endpoint surfaces a setup-guidance error instead of a generic
// failure when they are not.
func (c *Config) SupabaseConfigured() bool {
	return c.SupabaseURL != "" && (c.SupabaseAnonKey != "" || c.SupabaseServiceKey != "")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farllon89/agendamento-lk-unhas/config"
	"github.com/farllon89/agendamento-lk-unhas/models"
	"github.com/farllon89/agendamento-lk-unhas/services"
	"github.com/farllon89/agendamento-lk-unhas/store"
)

var errRemindersNotConfigured = errors.New("reminder dependencies not configured")

type NotificationHandler struct {
	store  store.Store
	mailer services.Mailer
	config *config.Config

	// now is overridable in tests; nil means time.Now.
	now func() time.Time
}

func NewNotificationHandler(st store.Store, mailer services.Mailer, cfg *config.Config) *NotificationHandler {
	return &NotificationHandler{
		store:  st,
		mailer: mailer,
		config: cfg,
	}
}

// Run is the HTTP entrypoint for the daily reminder job, called by an
// external scheduler hitting GET /notifications/run.
func (h *NotificationHandler) Run(c *gin.Context) {
	sent, err := h.RunReminders()
	if err != nil {
		if errors.Is(err, errRemindersNotConfigured) {
			c.JSON(http.StatusInternalServerError, models.Response{
				Success: false,
				Error:   "Serviço de notificações não configurado. Entre em contato com o administrador.",
			})
			return
		}
		log.Printf("[Notifications] Run failed after %d send(s): %v", sent, err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Erro ao enviar notificações",
		})
		return
	}

	c.JSON(http.StatusOK, models.NotificationRunResponse{
		Success: true,
		Sent:    sent,
	})
}

// RunReminders emails every customer with an appointment tomorrow and returns
// how many reminders went out. The in-process cron job calls it directly.
func (h *NotificationHandler) RunReminders() (int, error) {
	if h.store == nil || h.mailer == nil {
		return 0, errRemindersNotConfigured
	}

	tomorrow := h.timeNow().AddDate(0, 0, 1).Format("2006-01-02")
	appointments, err := h.store.AppointmentsByDateStatus(tomorrow, h.config.ReminderStatus)
	if err != nil {
		return 0, fmt.Errorf("fetch appointments: %w", err)
	}

	sent := 0
	for _, apt := range appointments {
		if apt.CustomerEmail == "" {
			log.Printf("[Notifications] Appointment %s has no customer email, skipping", apt.ID)
			continue
		}

		body := fmt.Sprintf(
			"Olá %s, lembre-se do seu agendamento para manicure/pedicure amanhã às %s. Estamos ansiosas para cuidar de você!",
			apt.CustomerName, apt.Time,
		)
		if err := h.mailer.Send(apt.CustomerEmail, "Lembrete: Seu agendamento amanhã", body); err != nil {
			return sent, fmt.Errorf("send reminder to %s: %w", apt.CustomerEmail, err)
		}
		sent++

		// The notification row is bookkeeping; a failed update must not stop
		// the remaining sends.
		if err := h.store.MarkNotificationSent(apt.CustomerID, apt.Date, apt.Time); err != nil {
			log.Printf("[Notifications] Failed to mark notification sent for %s: %v", apt.ID, err)
		}
	}
	return sent, nil
}

func (h *NotificationHandler) timeNow() time.Time {
	if h.now != nil {
		return h.now()
	}
	return time.Now()
}

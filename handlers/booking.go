package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farllon89/agendamento-lk-unhas/config"
	"github.com/farllon89/agendamento-lk-unhas/models"
	"github.com/farllon89/agendamento-lk-unhas/services"
	"github.com/farllon89/agendamento-lk-unhas/slots"
	"github.com/farllon89/agendamento-lk-unhas/store"
)

const slotTakenMessage = "Este horário já está ocupado. Por favor, escolha outro horário."

type BookingHandler struct {
	store     store.Store
	generator services.MessageGenerator
	config    *config.Config
}

func NewBookingHandler(st store.Store, generator services.MessageGenerator, cfg *config.Config) *BookingHandler {
	return &BookingHandler{
		store:     st,
		generator: generator,
		config:    cfg,
	}
}

// CreateAppointment books one slot for one customer. The availability
// pre-check gives the friendly conflict message; the unique index on
// (date, time) settles any race the pre-check lets through.
func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Todos os campos são obrigatórios.",
		})
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Data inválida. Use o formato AAAA-MM-DD.",
		})
		return
	}
	if !slots.Contains(req.Time) {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Horário inválido. Escolha um dos horários disponíveis.",
		})
		return
	}

	if !h.config.SupabaseConfigured() {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Sistema de agendamento não configurado. Entre em contato com o administrador.",
		})
		return
	}

	taken, err := h.store.SlotTaken(req.Date, req.Time)
	if err != nil {
		log.Printf("[CreateAppointment] Slot check failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Erro ao verificar disponibilidade do horário. Tente novamente.",
		})
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   slotTakenMessage,
		})
		return
	}

	customerID, err := h.store.UpsertCustomer(req.Email, req.Name, req.Phone)
	if err != nil {
		log.Printf("[CreateAppointment] Customer upsert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Erro ao processar dados do cliente. Tente novamente.",
		})
		return
	}

	appointment, err := h.store.CreateAppointment(customerID, req.Date, req.Time, models.StatusConfirmed)
	if err != nil {
		if errors.Is(err, store.ErrSlotTaken) {
			// Lost the race between the pre-check and the insert.
			c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Error:   slotTakenMessage,
			})
			return
		}
		log.Printf("[CreateAppointment] Insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Erro ao criar agendamento. Tente novamente.",
		})
		return
	}

	message := services.Confirmation(h.generator, req.Name, req.Date, req.Time)

	// Best-effort reminder record; its failure never fails the booking.
	h.scheduleReminder(appointment)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
	})
}

func (h *BookingHandler) scheduleReminder(appointment models.Appointment) {
	notificationDate, err := reminderDate(appointment.Date)
	if err != nil {
		log.Printf("[CreateAppointment] Skipping reminder, bad date %q: %v", appointment.Date, err)
		return
	}

	err = h.store.CreateNotification(models.Notification{
		CustomerID:       appointment.CustomerID,
		AppointmentDate:  appointment.Date,
		AppointmentTime:  appointment.Time,
		NotificationDate: notificationDate,
		Sent:             false,
	})
	if err != nil {
		log.Printf("[CreateAppointment] Reminder insert failed (booking unaffected): %v", err)
	}
}

// reminderDate is the appointment date minus one calendar day.
func reminderDate(date string) (string, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, -1).Format("2006-01-02"), nil
}

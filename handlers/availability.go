package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farllon89/agendamento-lk-unhas/config"
	"github.com/farllon89/agendamento-lk-unhas/models"
	"github.com/farllon89/agendamento-lk-unhas/store"
)

type AvailabilityHandler struct {
	store  store.Store
	config *config.Config
}

func NewAvailabilityHandler(st store.Store, cfg *config.Config) *AvailabilityHandler {
	return &AvailabilityHandler{
		store:  st,
		config: cfg,
	}
}

// GetAvailability returns the already-booked times for a date. The form
// derives the free slots by subtracting them from the catalog, so an empty
// list means the whole day is open.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data é obrigatória"})
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida. Use o formato AAAA-MM-DD."})
		return
	}

	if h.store == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao verificar disponibilidade"})
		return
	}

	booked, err := h.store.BookedTimes(date)
	if err != nil {
		log.Printf("[Availability] Failed to fetch booked times for %s: %v", date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao verificar disponibilidade"})
		return
	}
	if booked == nil {
		booked = []string{}
	}

	c.JSON(http.StatusOK, models.AvailabilityResponse{BookedSlots: booked})
}

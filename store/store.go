// Package store wraps the Supabase tables behind a small interface so the
// handlers stay testable against an in-memory double.
package store

import (
	"errors"

	"github.com/farllon89/agendamento-lk-unhas/models"
)

// ErrSlotTaken is returned when an appointment insert loses to an existing
// non-cancelled appointment on the same (date, time). The appointments table
// carries a unique index on that pair, so the error holds even when two
// requests race past the availability pre-check.
var ErrSlotTaken = errors.New("slot already booked")

type Store interface {
	// BookedTimes returns the times of all non-cancelled appointments on date.
	BookedTimes(date string) ([]string, error)

	// SlotTaken reports whether a non-cancelled appointment exists at (date, time).
	SlotTaken(date, timeOfDay string) (bool, error)

	// UpsertCustomer creates or refreshes the customer keyed by email and
	// returns its id.
	UpsertCustomer(email, name, phone string) (string, error)

	// CreateAppointment inserts a new appointment. Returns ErrSlotTaken when
	// the (date, time) pair is already held by a non-cancelled appointment.
	CreateAppointment(customerID, date, timeOfDay, status string) (models.Appointment, error)

	// AppointmentsByDateStatus returns the appointments on date with the given
	// status, each joined with its customer's name and email.
	AppointmentsByDateStatus(date, status string) ([]models.AppointmentWithCustomer, error)

	// CreateNotification records a reminder side record. Callers treat
	// failures as best-effort.
	CreateNotification(n models.Notification) error

	// MarkNotificationSent flags the reminder for the given appointment as
	// delivered.
	MarkNotificationSent(customerID, appointmentDate, appointmentTime string) error
}

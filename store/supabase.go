package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	supa "github.com/supabase-community/supabase-go"

	"github.com/farllon89/agendamento-lk-unhas/models"
)

// Supabase persists through the managed PostgREST API. Ids are generated
// app-side so inserts never need a returning round trip.
type Supabase struct {
	client *supa.Client
}

func NewSupabase(client *supa.Client) *Supabase {
	return &Supabase{client: client}
}

func (s *Supabase) BookedTimes(date string) ([]string, error) {
	data, _, err := s.client.From("appointments").
		Select("time", "", false).
		Eq("date", date).
		Neq("status", models.StatusCancelled).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("query appointments: %w", err)
	}

	var rows []struct {
		Time string `json:"time"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse appointments: %w", err)
	}

	times := make([]string, 0, len(rows))
	for _, row := range rows {
		times = append(times, row.Time)
	}
	return times, nil
}

func (s *Supabase) SlotTaken(date, timeOfDay string) (bool, error) {
	data, _, err := s.client.From("appointments").
		Select("id", "", false).
		Eq("date", date).
		Eq("time", timeOfDay).
		Neq("status", models.StatusCancelled).
		Execute()
	if err != nil {
		return false, fmt.Errorf("check slot: %w", err)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return false, fmt.Errorf("parse slot check: %w", err)
	}
	return len(rows) > 0, nil
}

func (s *Supabase) UpsertCustomer(email, name, phone string) (string, error) {
	id, found, err := s.findCustomerByEmail(email)
	if err != nil {
		return "", err
	}

	if found {
		return id, s.updateCustomer(id, name, phone)
	}

	newID := uuid.NewString()
	row := map[string]interface{}{
		"id":    newID,
		"name":  name,
		"email": email,
		"phone": phone,
	}
	_, _, err = s.client.From("customers").
		Insert(row, false, "", "", "").
		Execute()
	if err == nil {
		return newID, nil
	}

	// Two first-time bookings from the same address can race here; the unique
	// index on customers.email turns the loser into a retry-once update.
	if isUniqueViolation(err) {
		id, found, lookupErr := s.findCustomerByEmail(email)
		if lookupErr != nil {
			return "", lookupErr
		}
		if found {
			return id, s.updateCustomer(id, name, phone)
		}
	}
	return "", fmt.Errorf("insert customer: %w", err)
}

func (s *Supabase) CreateAppointment(customerID, date, timeOfDay, status string) (models.Appointment, error) {
	appt := models.Appointment{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Date:       date,
		Time:       timeOfDay,
		Status:     status,
	}

	row := map[string]interface{}{
		"id":          appt.ID,
		"customer_id": appt.CustomerID,
		"date":        appt.Date,
		"time":        appt.Time,
		"status":      appt.Status,
	}
	_, _, err := s.client.From("appointments").
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		if isUniqueViolation(err) {
			return models.Appointment{}, ErrSlotTaken
		}
		return models.Appointment{}, fmt.Errorf("insert appointment: %w", err)
	}
	return appt, nil
}

func (s *Supabase) AppointmentsByDateStatus(date, status string) ([]models.AppointmentWithCustomer, error) {
	data, _, err := s.client.From("appointments").
		Select("*", "", false).
		Eq("date", date).
		Eq("status", status).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("query appointments: %w", err)
	}

	var appointments []models.Appointment
	if err := json.Unmarshal(data, &appointments); err != nil {
		return nil, fmt.Errorf("parse appointments: %w", err)
	}

	result := make([]models.AppointmentWithCustomer, 0, len(appointments))
	for _, apt := range appointments {
		withCustomer := models.AppointmentWithCustomer{Appointment: apt}

		var customers []models.Customer
		customerData, _, custErr := s.client.From("customers").
			Select("name, email", "", false).
			Eq("id", apt.CustomerID).
			Execute()
		if custErr == nil {
			json.Unmarshal(customerData, &customers)
		}
		if len(customers) > 0 {
			withCustomer.CustomerName = customers[0].Name
			withCustomer.CustomerEmail = customers[0].Email
		}

		result = append(result, withCustomer)
	}
	return result, nil
}

func (s *Supabase) CreateNotification(n models.Notification) error {
	row := map[string]interface{}{
		"id":                uuid.NewString(),
		"customer_id":       n.CustomerID,
		"appointment_date":  n.AppointmentDate,
		"appointment_time":  n.AppointmentTime,
		"notification_date": n.NotificationDate,
		"sent":              n.Sent,
	}
	_, _, err := s.client.From("notifications").
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (s *Supabase) MarkNotificationSent(customerID, appointmentDate, appointmentTime string) error {
	_, _, err := s.client.From("notifications").
		Update(map[string]interface{}{"sent": true}, "", "").
		Eq("customer_id", customerID).
		Eq("appointment_date", appointmentDate).
		Eq("appointment_time", appointmentTime).
		Execute()
	if err != nil {
		return fmt.Errorf("mark notification sent: %w", err)
	}
	return nil
}

func (s *Supabase) findCustomerByEmail(email string) (string, bool, error) {
	data, _, err := s.client.From("customers").
		Select("id", "", false).
		Eq("email", email).
		Execute()
	if err != nil {
		return "", false, fmt.Errorf("query customer: %w", err)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return "", false, fmt.Errorf("parse customer: %w", err)
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].ID, true, nil
}

func (s *Supabase) updateCustomer(id, name, phone string) error {
	_, _, err := s.client.From("customers").
		Update(map[string]interface{}{"name": name, "phone": phone}, "", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// isUniqueViolation matches the PostgREST error payload for SQLSTATE 23505.
// supabase-go surfaces it as an opaque error string, so matching is textual.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}

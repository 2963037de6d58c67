package models

import "time"

const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	ID         string    `json:"id" db:"id"`
	CustomerID string    `json:"customer_id" db:"customer_id"`
	Date       string    `json:"date" db:"date"`
	Time       string    `json:"time" db:"time"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at,omitempty" db:"created_at"`
}

type AppointmentWithCustomer struct {
	Appointment
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

type CreateAppointmentRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
}

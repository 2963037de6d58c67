package models

import "time"

// Notification is the reminder side record written alongside a booking. Its
// notification_date is always one day before the appointment date.
type Notification struct {
	ID               string    `json:"id" db:"id"`
	CustomerID       string    `json:"customer_id" db:"customer_id"`
	AppointmentDate  string    `json:"appointment_date" db:"appointment_date"`
	AppointmentTime  string    `json:"appointment_time" db:"appointment_time"`
	NotificationDate string    `json:"notification_date" db:"notification_date"`
	Sent             bool      `json:"sent" db:"sent"`
	CreatedAt        time.Time `json:"created_at,omitempty" db:"created_at"`
}

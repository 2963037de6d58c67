package models

import "time"

// Customer is keyed by email: the first booking from an address creates the
// row, every later booking refreshes name and phone in place.
type Customer struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`
}

package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// AvailabilityResponse keeps the bookedSlots key the public form already
// consumes.
type AvailabilityResponse struct {
	BookedSlots []string `json:"bookedSlots"`
}

type NotificationRunResponse struct {
	Success bool `json:"success"`
	Sent    int  `json:"sent"`
}

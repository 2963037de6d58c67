package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/farllon89/agendamento-lk-unhas/models"
)

// Memory is an in-process Store used by tests and local runs. The mutex plays
// the role of the database's unique indexes: the check and the insert in
// CreateAppointment happen atomically, like a conditional insert against the
// (date, time) index.
type Memory struct {
	mu            sync.Mutex
	customers     []models.Customer
	appointments  []models.Appointment
	notifications []models.Notification

	// FailNotifications makes CreateNotification fail, to exercise the
	// best-effort reminder path.
	FailNotifications bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) BookedTimes(date string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var times []string
	for _, apt := range m.appointments {
		if apt.Date == date && apt.Status != models.StatusCancelled {
			times = append(times, apt.Time)
		}
	}
	return times, nil
}

func (m *Memory) SlotTaken(date, timeOfDay string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slotTakenLocked(date, timeOfDay), nil
}

func (m *Memory) UpsertCustomer(email, name, phone string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.customers {
		if m.customers[i].Email == email {
			m.customers[i].Name = name
			m.customers[i].Phone = phone
			return m.customers[i].ID, nil
		}
	}

	customer := models.Customer{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Phone: phone,
	}
	m.customers = append(m.customers, customer)
	return customer.ID, nil
}

func (m *Memory) CreateAppointment(customerID, date, timeOfDay, status string) (models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slotTakenLocked(date, timeOfDay) {
		return models.Appointment{}, ErrSlotTaken
	}

	appt := models.Appointment{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Date:       date,
		Time:       timeOfDay,
		Status:     status,
	}
	m.appointments = append(m.appointments, appt)
	return appt, nil
}

func (m *Memory) AppointmentsByDateStatus(date, status string) ([]models.AppointmentWithCustomer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []models.AppointmentWithCustomer
	for _, apt := range m.appointments {
		if apt.Date != date || apt.Status != status {
			continue
		}
		withCustomer := models.AppointmentWithCustomer{Appointment: apt}
		for _, c := range m.customers {
			if c.ID == apt.CustomerID {
				withCustomer.CustomerName = c.Name
				withCustomer.CustomerEmail = c.Email
				break
			}
		}
		result = append(result, withCustomer)
	}
	return result, nil
}

func (m *Memory) CreateNotification(n models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailNotifications {
		return errors.New("notification insert failed")
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *Memory) MarkNotificationSent(customerID, appointmentDate, appointmentTime string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.notifications {
		n := &m.notifications[i]
		if n.CustomerID == customerID && n.AppointmentDate == appointmentDate && n.AppointmentTime == appointmentTime {
			n.Sent = true
			return nil
		}
	}
	return nil
}

// SeedAppointment inserts an appointment bypassing the slot check, for test
// setups that need a specific prior state.
func (m *Memory) SeedAppointment(apt models.Appointment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if apt.ID == "" {
		apt.ID = uuid.NewString()
	}
	m.appointments = append(m.appointments, apt)
}

// SeedCustomer inserts a customer row directly.
func (m *Memory) SeedCustomer(c models.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m.customers = append(m.customers, c)
}

func (m *Memory) Customers() []models.Customer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Customer(nil), m.customers...)
}

func (m *Memory) Appointments() []models.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Appointment(nil), m.appointments...)
}

func (m *Memory) Notifications() []models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Notification(nil), m.notifications...)
}

func (m *Memory) slotTakenLocked(date, timeOfDay string) bool {
	for _, apt := range m.appointments {
		if apt.Date == date && apt.Time == timeOfDay && apt.Status != models.StatusCancelled {
			return true
		}
	}
	return false
}

package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farllon89/agendamento-lk-unhas/models"
)

func TestUpsertCustomer_CreatesThenUpdates(t *testing.T) {
	m := NewMemory()

	id1, err := m.UpsertCustomer("ana@x.com", "Ana", "11999990000")
	require.NoError(t, err)
	require.NotEmpty(t, id1)

	id2, err := m.UpsertCustomer("ana@x.com", "Ana Silva", "11888887777")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	customers := m.Customers()
	require.Len(t, customers, 1)
	assert.Equal(t, "Ana Silva", customers[0].Name)
	assert.Equal(t, "11888887777", customers[0].Phone)
}

func TestUpsertCustomer_DistinctEmails(t *testing.T) {
	m := NewMemory()

	id1, err := m.UpsertCustomer("ana@x.com", "Ana", "111")
	require.NoError(t, err)
	id2, err := m.UpsertCustomer("bia@x.com", "Bia", "222")
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Len(t, m.Customers(), 2)
}

func TestCreateAppointment_SecondBookingConflicts(t *testing.T) {
	m := NewMemory()

	_, err := m.CreateAppointment("c1", "2025-06-10", "09:00", models.StatusConfirmed)
	require.NoError(t, err)

	_, err = m.CreateAppointment("c2", "2025-06-10", "09:00", models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, m.Appointments(), 1, "failed booking must not write")
}

func TestCreateAppointment_OtherSlotsUnaffected(t *testing.T) {
	m := NewMemory()

	_, err := m.CreateAppointment("c1", "2025-06-10", "09:00", models.StatusConfirmed)
	require.NoError(t, err)

	_, err = m.CreateAppointment("c2", "2025-06-10", "09:30", models.StatusConfirmed)
	assert.NoError(t, err)

	_, err = m.CreateAppointment("c3", "2025-06-11", "09:00", models.StatusConfirmed)
	assert.NoError(t, err)
}

func TestCreateAppointment_CancelledSlotIsFree(t *testing.T) {
	m := NewMemory()
	m.SeedAppointment(models.Appointment{
		CustomerID: "c1",
		Date:       "2025-06-10",
		Time:       "09:00",
		Status:     models.StatusCancelled,
	})

	_, err := m.CreateAppointment("c2", "2025-06-10", "09:00", models.StatusConfirmed)
	assert.NoError(t, err)
}

func TestCreateAppointment_ConcurrentSingleWinner(t *testing.T) {
	m := NewMemory()

	const n = 32
	var wg sync.WaitGroup
	errs := make([]error, n)

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = m.CreateAppointment("c", "2025-06-10", "09:00", models.StatusConfirmed)
		}(i)
	}
	wg.Wait()

	wins, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case err == ErrSlotTaken:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, n-1, conflicts)
	assert.Len(t, m.Appointments(), 1)
}

func TestBookedTimes_SkipsCancelled(t *testing.T) {
	m := NewMemory()
	m.SeedAppointment(models.Appointment{Date: "2025-06-10", Time: "09:00", Status: models.StatusConfirmed})
	m.SeedAppointment(models.Appointment{Date: "2025-06-10", Time: "10:00", Status: models.StatusCancelled})
	m.SeedAppointment(models.Appointment{Date: "2025-06-11", Time: "11:00", Status: models.StatusConfirmed})

	times, err := m.BookedTimes("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, times)
}

func TestBookedTimes_EmptyDate(t *testing.T) {
	m := NewMemory()
	times, err := m.BookedTimes("2025-06-10")
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestAppointmentsByDateStatus_JoinsCustomer(t *testing.T) {
	m := NewMemory()
	m.SeedCustomer(models.Customer{ID: "c1", Name: "Ana", Email: "ana@x.com", Phone: "111"})
	m.SeedAppointment(models.Appointment{CustomerID: "c1", Date: "2025-06-10", Time: "09:00", Status: models.StatusPending})
	m.SeedAppointment(models.Appointment{CustomerID: "c1", Date: "2025-06-10", Time: "10:00", Status: models.StatusConfirmed})

	appts, err := m.AppointmentsByDateStatus("2025-06-10", models.StatusPending)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "Ana", appts[0].CustomerName)
	assert.Equal(t, "ana@x.com", appts[0].CustomerEmail)
	assert.Equal(t, "09:00", appts[0].Time)
}

func TestMarkNotificationSent(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.CreateNotification(models.Notification{
		CustomerID:       "c1",
		AppointmentDate:  "2025-06-10",
		AppointmentTime:  "09:00",
		NotificationDate: "2025-06-09",
	}))

	require.NoError(t, m.MarkNotificationSent("c1", "2025-06-10", "09:00"))

	notifications := m.Notifications()
	require.Len(t, notifications, 1)
	assert.True(t, notifications[0].Sent)
}

func TestCreateNotification_FailureSwitch(t *testing.T) {
	m := NewMemory()
	m.FailNotifications = true

	err := m.CreateNotification(models.Notification{CustomerID: "c1"})
	assert.Error(t, err)
	assert.Empty(t, m.Notifications())
}

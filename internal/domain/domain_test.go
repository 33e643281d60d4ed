package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func TestReservationStatus_IsValid(t *testing.T) {
	assert.True(t, ReservationStatusPending.IsValid())
	assert.True(t, ReservationStatusConfirmed.IsValid())
	assert.True(t, ReservationStatusCancelled.IsValid())
	assert.False(t, ReservationStatus("done").IsValid())
	assert.False(t, ReservationStatus("").IsValid())
}

func TestReservation_IsExpired(t *testing.T) {
	taipei, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	r := &Reservation{
		Date:      types.NewDate(2025, time.June, 2),
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    ReservationStatusConfirmed,
	}

	// 10:00 в Тайбэе это 02:00 UTC
	assert.False(t, r.IsExpired(time.Date(2025, time.June, 2, 1, 59, 0, 0, time.UTC), taipei))
	assert.False(t, r.IsExpired(time.Date(2025, time.June, 2, 2, 0, 0, 0, time.UTC), taipei))
	assert.True(t, r.IsExpired(time.Date(2025, time.June, 2, 2, 1, 0, 0, time.UTC), taipei))

	r.Status = ReservationStatusCancelled
	assert.False(t, r.IsExpired(time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC), taipei))
}

func TestReservation_SlotKeyIgnoresEndTime(t *testing.T) {
	a := &Reservation{CourtID: 1, Date: types.NewDate(2025, time.June, 2), StartTime: "09:00", EndTime: "10:00"}
	b := &Reservation{CourtID: 1, Date: types.NewDate(2025, time.June, 2), StartTime: "09:00", EndTime: "11:00"}

	assert.Equal(t, a.SlotKey(), b.SlotKey())
	assert.True(t, a.IsActive())
}

func TestNotificationForStatus(t *testing.T) {
	typ, ok := NotificationForStatus(ReservationStatusConfirmed)
	assert.True(t, ok)
	assert.Equal(t, NotificationReservationConfirmed, typ)

	typ, ok = NotificationForStatus(ReservationStatusCancelled)
	assert.True(t, ok)
	assert.Equal(t, NotificationReservationCancelled, typ)

	_, ok = NotificationForStatus(ReservationStatusPending)
	assert.False(t, ok)
}

func TestNewReservationNotification(t *testing.T) {
	n := NewReservationNotification(&Reservation{ID: 7, UserID: 3}, NotificationReservationCreated)

	assert.Equal(t, int64(3), n.UserID)
	require.NotNil(t, n.RelatedID)
	assert.Equal(t, int64(7), *n.RelatedID)
	require.NotNil(t, n.OnModel)
	assert.Equal(t, NotificationModelReservation, *n.OnModel)
	assert.False(t, n.IsRead)
}

func TestTemplate_Instantiate(t *testing.T) {
	tpl := &Template{ID: 5, CourtID: 2, Name: "Evening", StartTime: "18:00", EndTime: "19:00", DefaultPrice: 400}
	date := types.NewDate(2025, time.June, 3)

	slot := tpl.Instantiate(date)

	assert.Zero(t, slot.ID)
	assert.Equal(t, int64(2), slot.CourtID)
	assert.Equal(t, date, slot.Date)
	assert.Equal(t, "Evening", slot.Name)
	assert.Equal(t, 400.0, slot.DefaultPrice)
	assert.Equal(t, SlotKey("2|2025-06-03|18:00|19:00"), slot.Key())
}

func TestTimeSlot_IsTemplate(t *testing.T) {
	assert.True(t, TimeSlot{Template: &Template{}}.IsTemplate())
	assert.False(t, TimeSlot{Slot: &Slot{}}.IsTemplate())
}

func TestBusinessHours(t *testing.T) {
	assert.True(t, IsValidDayOfWeek(0))
	assert.True(t, IsValidDayOfWeek(6))
	assert.False(t, IsValidDayOfWeek(7))
	assert.False(t, IsValidDayOfWeek(-1))

	hours := BusinessHoursByDay([]*BusinessHour{
		{DayOfWeek: 0, IsHoliday: true},
		{DayOfWeek: 1, OpenTime: "08:00", CloseTime: "22:00"},
	})
	require.Len(t, hours, 2)
	assert.False(t, hours[time.Sunday].IsOpen())

	open, closeAt, err := hours[time.Monday].Window()
	require.NoError(t, err)
	assert.Equal(t, 480, open)
	assert.Equal(t, 1320, closeAt)
}

func TestUserRole_IsValid(t *testing.T) {
	assert.True(t, UserRoleUser.IsValid())
	assert.True(t, UserRoleAdmin.IsValid())
	assert.False(t, UserRole("owner").IsValid())
}

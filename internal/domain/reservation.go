package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// IsValid checks that the status is one of pending, confirmed, cancelled
func (s ReservationStatus) IsValid() bool {
	for _, valid := range ReservationStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Reservation represents a court booking
type Reservation struct {
	ID        int64
	UserID    int64
	CourtID   int64
	Date      types.Date
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    ReservationStatus
	Price     float64
	PeopleNum int
	Phone     string
	Password  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status != ReservationStatusCancelled
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == ReservationStatusCancelled
}

// EndsAt returns the moment the reservation ends in the venue timezone
func (r *Reservation) EndsAt(loc *time.Location) (time.Time, error) {
	minutes, err := r.EndTime.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return r.Date.In(loc).Add(time.Duration(minutes) * time.Minute), nil
}

// IsExpired is a read-time derived state: the reservation is over and was not cancelled.
// It is never persisted
func (r *Reservation) IsExpired(now time.Time, loc *time.Location) bool {
	if r.IsCancelled() {
		return false
	}
	endsAt, err := r.EndsAt(loc)
	if err != nil {
		return false
	}
	return endsAt.Before(now)
}

// SlotKey returns the booking-conflict key (court, date, start time)
func (r *Reservation) SlotKey() ReservationKey {
	return ReservationKey{CourtID: r.CourtID, Date: r.Date, StartTime: r.StartTime}
}

// ReservationKey identifies the slot a reservation claims
type ReservationKey struct {
	CourtID   int64
	Date      types.Date
	StartTime types.TimeString
}

// ReservationFilter filter for listing reservations
type ReservationFilter struct {
	UserID  *int64
	CourtID *int64
	Date    *types.Date
	Status  *ReservationStatus
}

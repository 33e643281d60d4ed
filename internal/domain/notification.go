package domain

import "time"

// NotificationType kind of a notification record
type NotificationType string

const (
	NotificationReservationCreated   NotificationType = "reservation_created"
	NotificationReservationConfirmed NotificationType = "reservation_confirmed"
	NotificationReservationCancelled NotificationType = "reservation_cancelled"
	NotificationReminder             NotificationType = "reminder"
)

// NotificationModelReservation the only model notifications refer to
const NotificationModelReservation = "Reservation"

// Notification is an informational record about a reservation event
type Notification struct {
	ID        int64
	UserID    int64
	Type      NotificationType
	RelatedID *int64
	OnModel   *string
	IsRead    bool
	CreatedAt time.Time
}

// NewReservationNotification builds a notification about a reservation
func NewReservationNotification(r *Reservation, t NotificationType) *Notification {
	relatedID := r.ID
	onModel := NotificationModelReservation
	return &Notification{
		UserID:    r.UserID,
		Type:      t,
		RelatedID: &relatedID,
		OnModel:   &onModel,
	}
}

// NotificationForStatus returns the notification type emitted on a status change.
// Transitions to pending emit nothing
func NotificationForStatus(status ReservationStatus) (NotificationType, bool) {
	switch status {
	case ReservationStatusConfirmed:
		return NotificationReservationConfirmed, true
	case ReservationStatusCancelled:
		return NotificationReservationCancelled, true
	default:
		return "", false
	}
}

package domain

// Generation defaults
const (
	DefaultDaysToGenerate = 14
	MinDaysToGenerate     = 1
	MaxDaysToGenerate     = 366
)

// Retention defaults
const (
	DefaultRetentionMonths = 3
)

// Reservation defaults
const (
	DefaultPeopleNum       = 1
	DefaultBookingPassword = "******"
)

// Weekday bounds for business hours (0 = Sunday .. 6 = Saturday)
const (
	MinDayOfWeek = 0
	MaxDayOfWeek = 6
)

// ReservationStatuses all valid reservation statuses
var ReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCancelled,
}

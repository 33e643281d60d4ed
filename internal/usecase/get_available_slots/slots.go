package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// calculateAvailability отмечает для каждого слота, занят ли он и не прошел ли он.
// Слот занят, если есть неотмененное бронирование с тем же кортом, датой и временем начала
func calculateAvailability(
	slots []*domain.Slot,
	reservations []*domain.Reservation,
	now time.Time,
	loc *time.Location,
) []Slot {
	booked := make(map[domain.ReservationKey]int64, len(reservations))
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		booked[res.SlotKey()] = res.ID
	}

	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		item := Slot{
			ID:           s.ID,
			CourtID:      s.CourtID,
			Name:         s.Name,
			StartTime:    s.StartTime,
			EndTime:      s.EndTime,
			DefaultPrice: s.DefaultPrice,
			Past:         hasStarted(s, now, loc),
		}

		key := domain.ReservationKey{CourtID: s.CourtID, Date: s.Date, StartTime: s.StartTime}
		if id, ok := booked[key]; ok {
			reservationID := id
			item.ReservationID = &reservationID
		}

		item.Available = !item.Past && item.ReservationID == nil
		result = append(result, item)
	}

	return result
}

// hasStarted проверяет, что начало слота уже наступило в часовом поясе площадки
func hasStarted(s *domain.Slot, now time.Time, loc *time.Location) bool {
	minutes, err := s.StartTime.Minutes()
	if err != nil {
		return false
	}
	startsAt := s.Date.In(loc).Add(time.Duration(minutes) * time.Minute)
	return !startsAt.After(now)
}

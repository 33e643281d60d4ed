package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// BusinessHour is the open/close window and holiday flag for one weekday
type BusinessHour struct {
	ID        int64
	DayOfWeek int // 0 = Sunday .. 6 = Saturday
	OpenTime  types.TimeString
	CloseTime types.TimeString
	IsHoliday bool
}

// IsOpen returns true if the venue works on this weekday
func (b *BusinessHour) IsOpen() bool {
	return !b.IsHoliday
}

// Window returns open and close times in minutes since midnight
func (b *BusinessHour) Window() (open int, close int, err error) {
	open, err = b.OpenTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	close, err = b.CloseTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	return open, close, nil
}

// IsValidDayOfWeek checks the 0..6 weekday range
func IsValidDayOfWeek(day int) bool {
	return day >= MinDayOfWeek && day <= MaxDayOfWeek
}

// BusinessHoursByDay indexes business hours by weekday
func BusinessHoursByDay(hours []*BusinessHour) map[time.Weekday]*BusinessHour {
	result := make(map[time.Weekday]*BusinessHour, len(hours))
	for _, h := range hours {
		result[time.Weekday(h.DayOfWeek)] = h
	}
	return result
}

package get_available_slots

import (
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Request модель запроса доступности слотов на дату
type Request struct {
	Date    types.Date // Дата (календарный день площадки)
	CourtID *int64     // Опционально: только один корт
}

// Response модель ответа со слотами и их занятостью
type Response struct {
	Date  types.Date
	Slots []Slot
}

// Slot конкретный слот с признаком доступности
type Slot struct {
	ID            int64
	CourtID       int64
	Name          string
	StartTime     types.TimeString
	EndTime       types.TimeString
	DefaultPrice  float64
	Available     bool   // Слот можно забронировать
	Past          bool   // Начало слота уже прошло
	ReservationID *int64 // Активное бронирование, занявшее слот
}

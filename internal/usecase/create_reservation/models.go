package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Options настройки бронирования из конфигурации
type Options struct {
	DefaultPassword  string // Пароль, если клиент его не передал
	PlaceholderPhone string // Телефон для сезонных бронирований без номера
}

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID пользователя
	CourtID   int64            // ID корта
	Date      types.Date       // Дата бронирования
	StartTime types.TimeString // Начало, "HH:MM"
	EndTime   types.TimeString // Конец, "HH:MM"
	Price     float64          // Цена
	PeopleNum int              // Количество человек, 0 = domain.DefaultPeopleNum
	Phone     string           // Телефон (обязателен)
	Password  *string          // Пароль бронирования (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	UserID    int64
	CourtID   int64
	Date      types.Date
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    domain.ReservationStatus
	Price     float64
	PeopleNum int
	Phone     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BulkResult результат одной строки пакетного создания
type BulkResult struct {
	Index       int       // Позиция строки в запросе
	Reservation *Response // Созданное бронирование
	Err         error     // Ошибка, если строка не создана
}

func fromDomain(r *domain.Reservation) *Response {
	return &Response{
		ID:        r.ID,
		UserID:    r.UserID,
		CourtID:   r.CourtID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Status:    r.Status,
		Price:     r.Price,
		PeopleNum: r.PeopleNum,
		Phone:     r.Phone,
		Password:  r.Password,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

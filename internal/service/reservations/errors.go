package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrCannotReopen возвращается при попытке вернуть отмененное бронирование в работу
	ErrCannotReopen = errors.New("cancelled reservation cannot be reopened")

	// ErrSlotAlreadyBooked возвращается, когда новое время занято активным бронированием
	ErrSlotAlreadyBooked = errors.New("time slot already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

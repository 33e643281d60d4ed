package create_reservation

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_reservation: user not found")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_reservation: court not found")

	// ErrPhoneRequired возвращается, когда не указан телефон
	ErrPhoneRequired = errors.New("create_reservation: phone is required")

	// ErrSlotAlreadyBooked возвращается, когда на (корт, дата, начало) уже есть активное бронирование
	ErrSlotAlreadyBooked = errors.New("create_reservation: time slot already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

package businesshours

import "errors"

var (
	// ErrBusinessHourNotFound возвращается, когда для дня недели нет записи
	ErrBusinessHourNotFound = errors.New("business hour not found")

	// ErrBusinessHourExists возвращается при повторном создании записи для дня недели
	ErrBusinessHourExists = errors.New("business hour for this day already exists")

	// ErrInvalidDayOfWeek возвращается, когда день недели вне диапазона 0..6
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 and 6")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotAlreadyBooked возвращается, когда на (корт, дата, начало) уже есть активное бронирование.
	// Источник: частичный уникальный индекс reservations_active_slot_uniq
	ErrSlotAlreadyBooked = errors.New("reservation.repository: time slot already booked")

	// ErrReferenceNotFound возвращается, когда пользователь или корт не существует
	ErrReferenceNotFound = errors.New("reservation.repository: referenced user or court not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)

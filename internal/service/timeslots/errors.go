package timeslots

import "errors"

var (
	// ErrTimeSlotNotFound возвращается, когда слот или шаблон не найден
	ErrTimeSlotNotFound = errors.New("time slot not found")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrSlotExists возвращается, когда конкретный слот с таким ключом уже существует
	ErrSlotExists = errors.New("time slot already exists")

	// ErrKindChange возвращается при попытке превратить шаблон в слот или наоборот
	ErrKindChange = errors.New("template flag cannot be changed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

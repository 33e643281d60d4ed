package timeslot

import "errors"

var (
	// ErrTimeSlotNotFound возвращается, когда слот или шаблон не найден
	ErrTimeSlotNotFound = errors.New("timeslot.repository: time slot not found")

	// ErrSlotExists возвращается, когда конкретный слот с таким ключом уже существует
	ErrSlotExists = errors.New("timeslot.repository: slot already exists")

	// ErrCourtNotFound возвращается, когда слот ссылается на несуществующий корт
	ErrCourtNotFound = errors.New("timeslot.repository: court not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("timeslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("timeslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("timeslot.repository: failed to scan row")
)

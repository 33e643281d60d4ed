package businesshour

import "errors"

var (
	// ErrBusinessHourNotFound возвращается, когда для дня недели нет записи
	ErrBusinessHourNotFound = errors.New("businesshour.repository: business hour not found")

	// ErrBusinessHourExists возвращается при повторном создании записи для дня недели
	ErrBusinessHourExists = errors.New("businesshour.repository: business hour for this day already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("businesshour.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("businesshour.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("businesshour.repository: failed to scan row")
)

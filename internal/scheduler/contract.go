package scheduler

import (
	"context"
	"time"

	cleanExpiredSlots "github.com/m04kA/SMC-CourtService/internal/usecase/clean_expired_slots"
	generateSlots "github.com/m04kA/SMC-CourtService/internal/usecase/generate_slots"
)

// SlotGenerator генерация слотов на диапазон дат
type SlotGenerator interface {
	Execute(ctx context.Context, req *generateSlots.Request) (*generateSlots.Response, error)
}

// SlotCleaner удаление устаревших слотов
type SlotCleaner interface {
	Execute(ctx context.Context) (*cleanExpiredSlots.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

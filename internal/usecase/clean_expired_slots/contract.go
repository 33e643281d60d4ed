package clean_expired_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	DeleteOlderThan(ctx context.Context, threshold types.Date) (int64, error)
}

// Metrics счетчик удаленных слотов
type Metrics interface {
	AddSlotsPurged(n int64)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

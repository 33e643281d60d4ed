package generate_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetActive(ctx context.Context) ([]*domain.Court, error)
}

// BusinessHourRepository интерфейс репозитория рабочих часов
type BusinessHourRepository interface {
	GetAll(ctx context.Context) ([]*domain.BusinessHour, error)
}

// TimeSlotRepository интерфейс репозитория шаблонов и слотов
type TimeSlotRepository interface {
	GetTemplates(ctx context.Context, courtID *int64) ([]*domain.Template, error)
	GetSlotsInRange(ctx context.Context, from, to types.Date) ([]*domain.Slot, error)
	BulkInsert(ctx context.Context, slots []*domain.Slot) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики генерации
type Metrics interface {
	AddSlotsGenerated(n int)
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

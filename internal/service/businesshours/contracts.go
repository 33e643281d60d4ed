package businesshours

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// BusinessHourRepository интерфейс репозитория рабочих часов
type BusinessHourRepository interface {
	GetAll(ctx context.Context) ([]*domain.BusinessHour, error)
	GetByDay(ctx context.Context, dayOfWeek int) (*domain.BusinessHour, error)
	Create(ctx context.Context, bh *domain.BusinessHour) (*domain.BusinessHour, error)
	UpdateByDay(ctx context.Context, bh *domain.BusinessHour) (*domain.BusinessHour, error)
	Upsert(ctx context.Context, bh *domain.BusinessHour) (*domain.BusinessHour, error)
	DeleteByDay(ctx context.Context, dayOfWeek int) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package timeslots

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория шаблонов и слотов
type TimeSlotRepository interface {
	List(ctx context.Context, filter domain.SlotFilter) ([]domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (domain.TimeSlot, error)
	CreateTemplate(ctx context.Context, t *domain.Template) (*domain.Template, error)
	CreateSlot(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	UpdateTemplate(ctx context.Context, t *domain.Template) (*domain.Template, error)
	UpdateSlot(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	Delete(ctx context.Context, id int64) error
	DeleteNonTemplates(ctx context.Context) (int64, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

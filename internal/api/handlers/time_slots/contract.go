package time_slots

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/timeslots/models"
	cleanExpiredSlots "github.com/m04kA/SMC-CourtService/internal/usecase/clean_expired_slots"
)

type TimeSlotService interface {
	List(ctx context.Context, req *models.ListRequest) ([]models.TimeSlotResponse, error)
	GetByID(ctx context.Context, id int64) (*models.TimeSlotResponse, error)
	Create(ctx context.Context, req *models.TimeSlotRequest) (*models.TimeSlotResponse, error)
	Update(ctx context.Context, id int64, req *models.TimeSlotRequest) (*models.TimeSlotResponse, error)
	Delete(ctx context.Context, id int64) error
	CleanNonTemplates(ctx context.Context) (*models.DeleteResponse, error)
}

type CleanExpiredSlotsUseCase interface {
	Execute(ctx context.Context) (*cleanExpiredSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package operation_hours

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/businesshours/models"
)

type BusinessHourService interface {
	GetAll(ctx context.Context) ([]models.BusinessHourResponse, error)
	GetByDay(ctx context.Context, dayOfWeek int) (*models.BusinessHourResponse, error)
	Create(ctx context.Context, req *models.BusinessHourRequest) (*models.BusinessHourResponse, error)
	Update(ctx context.Context, dayOfWeek int, req *models.BusinessHourRequest) (*models.BusinessHourResponse, error)
	Delete(ctx context.Context, dayOfWeek int) error
	BulkUpsert(ctx context.Context, req *models.BulkRequest) (*models.BulkResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

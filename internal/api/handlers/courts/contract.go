package courts

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/courts/models"
)

type CourtService interface {
	Create(ctx context.Context, req *models.CourtRequest) (*models.CourtResponse, error)
	GetByID(ctx context.Context, id int64) (*models.CourtResponse, error)
	GetAll(ctx context.Context) ([]models.CourtResponse, error)
	Update(ctx context.Context, id int64, req *models.CourtRequest) (*models.CourtResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package reservations

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error)
	List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error)
	GetByUser(ctx context.Context, userID int64) (*models.ReservationListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateRequest) (*models.ReservationResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

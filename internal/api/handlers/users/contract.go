package users

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/users/models"
)

type UserService interface {
	Upsert(ctx context.Context, req *models.UpsertRequest) (*models.UserResponse, error)
	GetByID(ctx context.Context, id int64) (*models.UserResponse, error)
	GetAll(ctx context.Context) ([]models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

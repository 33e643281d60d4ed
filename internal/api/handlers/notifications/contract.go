package notifications

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/notifications/models"
)

type NotificationService interface {
	GetByUser(ctx context.Context, userID int64) ([]models.NotificationResponse, error)
	MarkAsRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

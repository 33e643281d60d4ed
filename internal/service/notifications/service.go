package notifications

import (
	"context"
	"errors"
	"fmt"

	notificationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-CourtService/internal/service/notifications/models"
)

// Service сервис уведомлений
type Service struct {
	repo   NotificationRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo NotificationRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetByUser возвращает уведомления пользователя, новые первыми
func (s *Service) GetByUser(ctx context.Context, userID int64) ([]models.NotificationResponse, error) {
	list, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetByUser - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainList(list), nil
}

// MarkAsRead отмечает уведомление прочитанным
func (s *Service) MarkAsRead(ctx context.Context, id int64) error {
	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		return s.mapRepoError("MarkAsRead", id, err)
	}
	return nil
}

// Delete удаляет уведомление
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}
	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
		s.logger.Warn("%s: notification id=%d not found", op, id)
		return ErrNotificationNotFound
	}
	s.logger.Error("%s: repository error for notification id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

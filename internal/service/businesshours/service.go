package businesshours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	businessHourRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/businesshour"
	"github.com/m04kA/SMC-CourtService/internal/service/businesshours/models"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Service сервис рабочих часов площадки
type Service struct {
	repo      BusinessHourRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo BusinessHourRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetAll возвращает рабочие часы всех дней, отсортированные по дню недели
func (s *Service) GetAll(ctx context.Context) ([]models.BusinessHourResponse, error) {
	hours, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainList(hours), nil
}

// GetByDay возвращает рабочие часы дня недели
func (s *Service) GetByDay(ctx context.Context, dayOfWeek int) (*models.BusinessHourResponse, error) {
	if !domain.IsValidDayOfWeek(dayOfWeek) {
		return nil, ErrInvalidDayOfWeek
	}

	bh, err := s.repo.GetByDay(ctx, dayOfWeek)
	if err != nil {
		return nil, s.mapRepoError("GetByDay", dayOfWeek, err)
	}
	return models.FromDomain(bh), nil
}

// Create создает рабочие часы для дня недели. Повтор для того же дня запрещен
func (s *Service) Create(ctx context.Context, req *models.BusinessHourRequest) (*models.BusinessHourResponse, error) {
	s.logger.Info("Create: business hour for day=%d", req.DayOfWeek)

	bh, err := toDomain(req)
	if err != nil {
		s.logger.Warn("Create: invalid input for day=%d: %v", req.DayOfWeek, err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, bh)
	if err != nil {
		return nil, s.mapRepoError("Create", req.DayOfWeek, err)
	}
	return models.FromDomain(created), nil
}

// Update заменяет рабочие часы дня недели
func (s *Service) Update(ctx context.Context, dayOfWeek int, req *models.BusinessHourRequest) (*models.BusinessHourResponse, error) {
	s.logger.Info("Update: business hour for day=%d", dayOfWeek)

	req.DayOfWeek = dayOfWeek
	bh, err := toDomain(req)
	if err != nil {
		s.logger.Warn("Update: invalid input for day=%d: %v", dayOfWeek, err)
		return nil, err
	}

	updated, err := s.repo.UpdateByDay(ctx, bh)
	if err != nil {
		return nil, s.mapRepoError("Update", dayOfWeek, err)
	}
	return models.FromDomain(updated), nil
}

// Delete удаляет рабочие часы дня недели
func (s *Service) Delete(ctx context.Context, dayOfWeek int) error {
	s.logger.Info("Delete: business hour for day=%d", dayOfWeek)

	if !domain.IsValidDayOfWeek(dayOfWeek) {
		return ErrInvalidDayOfWeek
	}
	if err := s.repo.DeleteByDay(ctx, dayOfWeek); err != nil {
		return s.mapRepoError("Delete", dayOfWeek, err)
	}
	return nil
}

// BulkUpsert сохраняет рабочие часы нескольких дней в одной транзакции.
// Все записи проверяются до первой записи в БД
func (s *Service) BulkUpsert(ctx context.Context, req *models.BulkRequest) (*models.BulkResponse, error) {
	s.logger.Info("BulkUpsert: %d days", len(req.OperationHours))

	if len(req.OperationHours) == 0 {
		return nil, fmt.Errorf("%w: operationHours must not be empty", ErrInvalidInput)
	}

	hours := make([]*domain.BusinessHour, 0, len(req.OperationHours))
	for i := range req.OperationHours {
		bh, err := toDomain(&req.OperationHours[i])
		if err != nil {
			s.logger.Warn("BulkUpsert: invalid row %d: %v", i, err)
			return nil, err
		}
		hours = append(hours, bh)
	}

	saved := make([]*domain.BusinessHour, 0, len(hours))
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, bh := range hours {
			result, err := s.repo.Upsert(txCtx, bh)
			if err != nil {
				return err
			}
			saved = append(saved, result)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("BulkUpsert: failed to save business hours: %v", err)
		return nil, fmt.Errorf("%w: BulkUpsert - repository error: %v", ErrInternal, err)
	}

	return &models.BulkResponse{Results: models.FromDomainList(saved)}, nil
}

func (s *Service) mapRepoError(op string, dayOfWeek int, err error) error {
	switch {
	case errors.Is(err, businessHourRepo.ErrBusinessHourNotFound):
		s.logger.Warn("%s: business hour for day=%d not found", op, dayOfWeek)
		return ErrBusinessHourNotFound
	case errors.Is(err, businessHourRepo.ErrBusinessHourExists):
		s.logger.Warn("%s: business hour for day=%d already exists", op, dayOfWeek)
		return ErrBusinessHourExists
	default:
		s.logger.Error("%s: repository error for day=%d: %v", op, dayOfWeek, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// toDomain проверяет запрос и собирает domain модель.
// Для рабочего дня открытие должно быть раньше закрытия
func toDomain(req *models.BusinessHourRequest) (*domain.BusinessHour, error) {
	if !domain.IsValidDayOfWeek(req.DayOfWeek) {
		return nil, ErrInvalidDayOfWeek
	}

	open, err := types.NewTimeStringFromString(req.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid openTime: %v", ErrInvalidInput, err)
	}
	closeTime, err := types.NewTimeStringFromString(req.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid closeTime: %v", ErrInvalidInput, err)
	}
	if !req.IsHoliday && !open.IsBefore(closeTime) {
		return nil, fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}

	return &domain.BusinessHour{
		DayOfWeek: req.DayOfWeek,
		OpenTime:  open,
		CloseTime: closeTime,
		IsHoliday: req.IsHoliday,
	}, nil
}

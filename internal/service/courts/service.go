package courts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtService/internal/service/courts/models"
)

// Service сервис кортов
type Service struct {
	repo   CourtRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo CourtRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create создает корт
func (s *Service) Create(ctx context.Context, req *models.CourtRequest) (*models.CourtResponse, error) {
	court, err := toDomain(req)
	if err != nil {
		s.logger.Warn("Create: invalid input: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, court)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: court id=%d created", created.ID)
	return models.FromDomain(created), nil
}

// GetByID возвращает корт по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	court, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", id, err)
	}
	return models.FromDomain(court), nil
}

// GetAll возвращает все корты
func (s *Service) GetAll(ctx context.Context) ([]models.CourtResponse, error) {
	courts, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainList(courts), nil
}

// Update изменяет корт
func (s *Service) Update(ctx context.Context, id int64, req *models.CourtRequest) (*models.CourtResponse, error) {
	court, err := toDomain(req)
	if err != nil {
		s.logger.Warn("Update: invalid input for court id=%d: %v", id, err)
		return nil, err
	}
	court.ID = id

	updated, err := s.repo.Update(ctx, court)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("Update: court id=%d updated", id)
	return models.FromDomain(updated), nil
}

// Delete удаляет корт. Корт со слотами или бронированиями удалить нельзя
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}
	s.logger.Info("Delete: court id=%d deleted", id)
	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, courtRepo.ErrCourtNotFound):
		s.logger.Warn("%s: court id=%d not found", op, id)
		return ErrCourtNotFound
	case errors.Is(err, courtRepo.ErrCourtInUse):
		s.logger.Warn("%s: court id=%d is in use", op, id)
		return ErrCourtInUse
	default:
		s.logger.Error("%s: repository error for court id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

func toDomain(req *models.CourtRequest) (*domain.Court, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.CourtNumber < 0 {
		return nil, fmt.Errorf("%w: courtNumber must not be negative", ErrInvalidInput)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &domain.Court{
		Name:        name,
		CourtNumber: req.CourtNumber,
		IsActive:    isActive,
	}, nil
}

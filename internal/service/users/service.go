package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	userRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CourtService/internal/service/users/models"
)

// Service сервис пользователей
type Service struct {
	repo   UserRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo UserRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Upsert создает пользователя или обновляет имя существующего с тем же LINE ID.
// Роль задается только при создании
func (s *Service) Upsert(ctx context.Context, req *models.UpsertRequest) (*models.UserResponse, error) {
	lineID := strings.TrimSpace(req.LineID)
	if lineID == "" {
		return nil, fmt.Errorf("%w: lineId is required", ErrInvalidInput)
	}

	role := domain.UserRoleUser
	if req.Role != "" {
		role = domain.UserRole(req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
		}
	}

	user, err := s.repo.UpsertByLineID(ctx, &domain.User{
		LineID: lineID,
		Name:   strings.TrimSpace(req.Name),
		Role:   role,
	})
	if err != nil {
		s.logger.Error("Upsert: repository error for lineId=%s: %v", lineID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: user id=%d saved", user.ID)
	return models.FromDomain(user), nil
}

// GetByID возвращает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomain(user), nil
}

// GetAll возвращает всех пользователей
func (s *Service) GetAll(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainList(users), nil
}

package timeslots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	timeSlotRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-CourtService/internal/service/timeslots/models"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Service сервис шаблонов и конкретных слотов
type Service struct {
	timeSlotRepo TimeSlotRepository
	courtRepo    CourtRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(timeSlotRepo TimeSlotRepository, courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		timeSlotRepo: timeSlotRepo,
		courtRepo:    courtRepo,
		logger:       logger,
	}
}

// List возвращает шаблоны и слоты по фильтру
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]models.TimeSlotResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	items, err := s.timeSlotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainList(items), nil
}

// GetByID возвращает шаблон или слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TimeSlotResponse, error) {
	item, err := s.timeSlotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", id, err)
	}
	return models.FromDomain(item), nil
}

// Create создает шаблон или конкретный слот. Корт должен существовать
func (s *Service) Create(ctx context.Context, req *models.TimeSlotRequest) (*models.TimeSlotResponse, error) {
	s.logger.Info("Create: court=%d, isTemplate=%t, time=%s-%s", req.CourtID, req.IsTemplate, req.StartTime, req.EndTime)

	item, err := toDomain(req)
	if err != nil {
		s.logger.Warn("Create: invalid input: %v", err)
		return nil, err
	}

	if err := s.ensureCourt(ctx, "Create", req.CourtID); err != nil {
		return nil, err
	}

	if item.IsTemplate() {
		created, err := s.timeSlotRepo.CreateTemplate(ctx, item.Template)
		if err != nil {
			return nil, s.mapRepoError("Create", 0, err)
		}
		s.logger.Info("Create: template id=%d created", created.ID)
		return models.FromTemplate(created), nil
	}

	created, err := s.timeSlotRepo.CreateSlot(ctx, item.Slot)
	if err != nil {
		return nil, s.mapRepoError("Create", 0, err)
	}
	s.logger.Info("Create: slot id=%d created", created.ID)
	return models.FromSlot(created), nil
}

// Update изменяет шаблон или слот. Тип записи не меняется
func (s *Service) Update(ctx context.Context, id int64, req *models.TimeSlotRequest) (*models.TimeSlotResponse, error) {
	s.logger.Info("Update: time slot id=%d", id)

	existing, err := s.timeSlotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}
	if existing.IsTemplate() != req.IsTemplate {
		s.logger.Warn("Update: kind change rejected for time slot id=%d", id)
		return nil, ErrKindChange
	}

	item, err := toDomain(req)
	if err != nil {
		s.logger.Warn("Update: invalid input for time slot id=%d: %v", id, err)
		return nil, err
	}

	if err := s.ensureCourt(ctx, "Update", req.CourtID); err != nil {
		return nil, err
	}

	if item.IsTemplate() {
		item.Template.ID = id
		updated, err := s.timeSlotRepo.UpdateTemplate(ctx, item.Template)
		if err != nil {
			return nil, s.mapRepoError("Update", id, err)
		}
		return models.FromTemplate(updated), nil
	}

	item.Slot.ID = id
	updated, err := s.timeSlotRepo.UpdateSlot(ctx, item.Slot)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}
	return models.FromSlot(updated), nil
}

// Delete удаляет шаблон или слот
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.timeSlotRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}
	s.logger.Info("Delete: time slot id=%d deleted", id)
	return nil
}

// CleanNonTemplates удаляет все конкретные слоты, шаблоны остаются
func (s *Service) CleanNonTemplates(ctx context.Context) (*models.DeleteResponse, error) {
	deleted, err := s.timeSlotRepo.DeleteNonTemplates(ctx)
	if err != nil {
		s.logger.Error("CleanNonTemplates: repository error: %v", err)
		return nil, fmt.Errorf("%w: CleanNonTemplates - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CleanNonTemplates: deleted=%d", deleted)
	return &models.DeleteResponse{DeletedCount: deleted}, nil
}

func (s *Service) ensureCourt(ctx context.Context, op string, courtID int64) error {
	if _, err := s.courtRepo.GetByID(ctx, courtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("%s: court id=%d not found", op, courtID)
			return ErrCourtNotFound
		}
		s.logger.Error("%s: failed to get court id=%d: %v", op, courtID, err)
		return fmt.Errorf("%w: %s - get court: %v", ErrInternal, op, err)
	}
	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, timeSlotRepo.ErrTimeSlotNotFound):
		s.logger.Warn("%s: time slot id=%d not found", op, id)
		return ErrTimeSlotNotFound
	case errors.Is(err, timeSlotRepo.ErrSlotExists):
		s.logger.Warn("%s: time slot with the same key already exists", op)
		return ErrSlotExists
	case errors.Is(err, timeSlotRepo.ErrCourtNotFound):
		return ErrCourtNotFound
	default:
		s.logger.Error("%s: repository error for time slot id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// toDomain проверяет запрос и собирает шаблон или конкретный слот
func toDomain(req *models.TimeSlotRequest) (domain.TimeSlot, error) {
	if req.CourtID <= 0 {
		return domain.TimeSlot{}, fmt.Errorf("%w: courtId is required", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !start.IsBefore(end) {
		return domain.TimeSlot{}, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	if req.DefaultPrice < 0 {
		return domain.TimeSlot{}, fmt.Errorf("%w: defaultPrice must not be negative", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)

	if req.IsTemplate {
		if name == "" {
			return domain.TimeSlot{}, fmt.Errorf("%w: template name is required", ErrInvalidInput)
		}
		return domain.TimeSlot{Template: &domain.Template{
			CourtID:      req.CourtID,
			Name:         name,
			StartTime:    start,
			EndTime:      end,
			DefaultPrice: req.DefaultPrice,
		}}, nil
	}

	if req.Date == nil {
		return domain.TimeSlot{}, fmt.Errorf("%w: date is required for a concrete slot", ErrInvalidInput)
	}
	date, err := types.ParseDate(*req.Date)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return domain.TimeSlot{Slot: &domain.Slot{
		CourtID:      req.CourtID,
		Date:         date,
		Name:         name,
		StartTime:    start,
		EndTime:      end,
		DefaultPrice: req.DefaultPrice,
	}}, nil
}

package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
)

// UseCase use case для получения доступности слотов на дату
type UseCase struct {
	timeSlotRepo    TimeSlotRepository
	reservationRepo ReservationRepository
	courtRepo       CourtRepository
	txManager       TxManager
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	timeSlotRepo TimeSlotRepository,
	reservationRepo ReservationRepository,
	courtRepo CourtRepository,
	txManager TxManager,
	timeProvider TimeProvider,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		timeSlotRepo:    timeSlotRepo,
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, court=%v", req.Date, courtLabel(req.CourtID))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем корт, если он указан
	if req.CourtID != nil {
		if _, err := uc.courtRepo.GetByID(ctx, *req.CourtID); err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				uc.logger.Warn("GetAvailableSlots: court id=%d not found", *req.CourtID)
				return nil, ErrCourtNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get court id=%d: %v", *req.CourtID, err)
			return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}
	}

	// 3. Слоты и бронирования читаем из одного снимка
	isTemplate := false
	date := req.Date
	var (
		slots        []*domain.Slot
		reservations []*domain.Reservation
	)
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		items, err := uc.timeSlotRepo.List(txCtx, domain.SlotFilter{
			IsTemplate: &isTemplate,
			CourtID:    req.CourtID,
			Date:       &date,
		})
		if err != nil {
			return fmt.Errorf("failed to list slots: %w", err)
		}

		slots = make([]*domain.Slot, 0, len(items))
		for _, item := range items {
			if item.Slot != nil {
				slots = append(slots, item.Slot)
			}
		}

		// 4. Бронирования на ту же дату
		reservations, err = uc.reservationRepo.List(txCtx, domain.ReservationFilter{
			CourtID: req.CourtID,
			Date:    &date,
		})
		if err != nil {
			return fmt.Errorf("failed to list reservations: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Вычисляем доступность
	result := calculateAvailability(slots, reservations, uc.timeProvider.Now(), uc.location)

	uc.logger.Info("GetAvailableSlots: date=%s, slots=%d, reservations=%d", req.Date, len(result), len(reservations))

	return &Response{
		Date:  req.Date,
		Slots: result,
	}, nil
}

func courtLabel(courtID *int64) string {
	if courtID == nil {
		return "all"
	}
	return fmt.Sprintf("%d", *courtID)
}

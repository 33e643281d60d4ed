package clean_expired_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// UseCase use case удаления устаревших конкретных слотов.
// Шаблоны и бронирования не затрагиваются
type UseCase struct {
	timeSlotRepo    TimeSlotRepository
	metrics         Metrics
	timeProvider    TimeProvider
	location        *time.Location
	retentionMonths int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	timeSlotRepo TimeSlotRepository,
	metrics Metrics,
	timeProvider TimeProvider,
	location *time.Location,
	retentionMonths int,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		timeSlotRepo:    timeSlotRepo,
		metrics:         metrics,
		timeProvider:    timeProvider,
		location:        location,
		retentionMonths: retentionMonths,
		logger:          logger,
	}
}

// Threshold возвращает дату, слоты строго раньше которой считаются устаревшими
func (uc *UseCase) Threshold() types.Date {
	today := types.Today(uc.timeProvider.Now(), uc.location)
	return today.AddMonths(-uc.retentionMonths)
}

// Execute удаляет конкретные слоты с датой раньше порога
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	if uc.retentionMonths <= 0 {
		uc.logger.Warn("CleanExpiredSlots: invalid retention months=%d", uc.retentionMonths)
		return nil, ErrInvalidRetention
	}

	threshold := uc.Threshold()
	uc.logger.Info("CleanExpiredSlots: threshold=%s", threshold)

	deleted, err := uc.timeSlotRepo.DeleteOlderThan(ctx, threshold)
	if err != nil {
		uc.logger.Error("CleanExpiredSlots: failed to delete slots: %v", err)
		return nil, fmt.Errorf("%w: failed to delete slots: %v", ErrInternal, err)
	}

	uc.metrics.AddSlotsPurged(deleted)
	uc.logger.Info("CleanExpiredSlots: deleted=%d", deleted)

	return &Response{
		DeletedCount: deleted,
		Threshold:    threshold,
	}, nil
}

package generate_slots

import (
	"context"
	"fmt"
)

// UseCase use case генерации конкретных слотов из шаблонов
type UseCase struct {
	courtRepo        CourtRepository
	businessHourRepo BusinessHourRepository
	timeSlotRepo     TimeSlotRepository
	txManager        TransactionManager
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	businessHourRepo BusinessHourRepository,
	timeSlotRepo TimeSlotRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:        courtRepo,
		businessHourRepo: businessHourRepo,
		timeSlotRepo:     timeSlotRepo,
		txManager:        txManager,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute генерирует слоты на DaysToGenerate дней начиная со StartDate.
// Повторный запуск на том же диапазоне ничего не добавляет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := normalizeRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GenerateSlots: startDate=%s, days=%d", req.StartDate, req.DaysToGenerate)

	// 2. Загружаем корты, рабочие часы и шаблоны один раз
	courts, err := uc.courtRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to get active courts: %v", err)
		return nil, fmt.Errorf("%w: failed to get courts: %v", ErrInternal, err)
	}
	if len(courts) == 0 {
		uc.logger.Warn("GenerateSlots: no active courts")
		return nil, fmt.Errorf("%w: %w", ErrNothingToGenerate, ErrNoActiveCourts)
	}

	hours, err := uc.businessHourRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}
	if len(hours) == 0 {
		uc.logger.Warn("GenerateSlots: no business hours configured")
		return nil, fmt.Errorf("%w: %w", ErrNothingToGenerate, ErrNoBusinessHours)
	}

	templates, err := uc.timeSlotRepo.GetTemplates(ctx, nil)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to get templates: %v", err)
		return nil, fmt.Errorf("%w: failed to get templates: %v", ErrInternal, err)
	}
	if len(templates) == 0 {
		uc.logger.Warn("GenerateSlots: no slot templates")
		return nil, fmt.Errorf("%w: %w", ErrNothingToGenerate, ErrNoTemplates)
	}

	// 3. Существующие слоты диапазона [startDate, startDate+days) одним запросом
	endExclusive := req.StartDate.AddDays(req.DaysToGenerate)
	existing, err := uc.timeSlotRepo.GetSlotsInRange(ctx, req.StartDate, endExclusive)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to get existing slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get existing slots: %v", ErrInternal, err)
	}

	// 4. Раскладываем шаблоны по датам
	plan := Plan{
		Courts:    courts,
		Hours:     hours,
		Templates: templates,
		Existing:  existing,
		Dates:     DateRange(req.StartDate, req.DaysToGenerate),
	}
	result := plan.Expand()

	uc.logger.Info("GenerateSlots: staged=%d, existing=%d, skippedDates=%d",
		len(result.Staged), len(existing), result.SkippedDates)

	// 5. Вставляем одной операцией, ключи, занятые параллельно, пропускаются на уровне БД
	var inserted int64
	if len(result.Staged) > 0 {
		err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
			n, err := uc.timeSlotRepo.BulkInsert(txCtx, result.Staged)
			if err != nil {
				return err
			}
			inserted = n
			return nil
		})
		if err != nil {
			uc.logger.Error("GenerateSlots: bulk insert failed: %v", err)
			return nil, fmt.Errorf("%w: failed to insert slots: %v", ErrInternal, err)
		}
	}

	uc.metrics.AddSlotsGenerated(int(inserted))

	uc.logger.Info("GenerateSlots: generated=%d, totalExisting=%d", inserted, len(existing))

	return &Response{
		StartDate:      req.StartDate,
		EndDate:        endExclusive.AddDays(-1),
		GeneratedCount: int(inserted),
		TotalExisting:  len(existing),
		SkippedDates:   result.SkippedDates,
	}, nil
}

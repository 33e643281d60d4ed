package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/user"
)

// UseCase use case для создания бронирования корта
type UseCase struct {
	reservationRepo  ReservationRepository
	userRepo         UserRepository
	courtRepo        CourtRepository
	notificationRepo NotificationRepository
	txManager        TransactionManager
	metrics          Metrics
	options          Options
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	userRepo UserRepository,
	courtRepo CourtRepository,
	notificationRepo NotificationRepository,
	txManager TransactionManager,
	metrics Metrics,
	options Options,
	logger Logger,
) *UseCase {
	if options.DefaultPassword == "" {
		options.DefaultPassword = domain.DefaultBookingPassword
	}
	return &UseCase{
		reservationRepo:  reservationRepo,
		userRepo:         userRepo,
		courtRepo:        courtRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		metrics:          metrics,
		options:          options,
		logger:           logger,
	}
}

// Execute создает бронирование со статусом pending.
// Проверка конфликта и вставка выполняются в сериализуемой транзакции,
// дополнительно их страхует уникальный индекс по активным бронированиям
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, court=%d, date=%s, time=%s-%s",
		req.UserID, req.CourtID, req.Date, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем пользователя
	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateReservation: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateReservation: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 3. Проверяем корт
	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateReservation: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateReservation: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 4. Телефон обязателен
	if strings.TrimSpace(req.Phone) == "" {
		uc.logger.Warn("CreateReservation: phone is missing for user id=%d", req.UserID)
		return nil, ErrPhoneRequired
	}

	reservation := buildReservation(req, uc.options.DefaultPassword)

	// 5. Проверка конфликта, вставка и уведомление в одной транзакции
	var result *domain.Reservation
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservationRepo.FindActiveBySlot(txCtx, reservation.SlotKey())
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %w", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Warn("CreateReservation: slot court=%d date=%s start=%s already booked by reservation id=%d",
				req.CourtID, req.Date, req.StartTime, existing.ID)
			return ErrSlotAlreadyBooked
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotAlreadyBooked) {
				uc.logger.Warn("CreateReservation: slot court=%d date=%s start=%s taken concurrently",
					req.CourtID, req.Date, req.StartTime)
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		notification := domain.NewReservationNotification(created, domain.NotificationReservationCreated)
		if _, err := uc.notificationRepo.Create(txCtx, notification); err != nil {
			uc.logger.Error("CreateReservation: failed to create notification: %v", err)
			return fmt.Errorf("%w: failed to create notification: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotAlreadyBooked) {
			uc.metrics.IncReservationConflicts()
			return nil, err
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.IncReservationsCreated()
	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return fromDomain(result), nil
}

// ExecuteBulk создает сезонные бронирования по одному через Execute.
// Строки без телефона получают телефон-заглушку из настроек.
// Ошибка одной строки не прерывает остальные
func (uc *UseCase) ExecuteBulk(ctx context.Context, reqs []*Request) []BulkResult {
	uc.logger.Info("CreateReservationBulk: %d rows", len(reqs))

	results := make([]BulkResult, 0, len(reqs))
	created := 0
	for i, req := range reqs {
		if strings.TrimSpace(req.Phone) == "" {
			req.Phone = uc.options.PlaceholderPhone
		}

		resp, err := uc.Execute(ctx, req)
		results = append(results, BulkResult{Index: i, Reservation: resp, Err: err})
		if err == nil {
			created++
		}
	}

	uc.logger.Info("CreateReservationBulk: created=%d, failed=%d", created, len(reqs)-created)
	return results
}

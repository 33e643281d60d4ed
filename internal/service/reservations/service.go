package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Options настройки сервиса бронирований
type Options struct {
	AllowReopenCancelled bool
	Location             *time.Location
}

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo  ReservationRepository
	notificationRepo NotificationRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	options          Options
	logger           Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	notificationRepo NotificationRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	options Options,
	logger Logger,
) *Service {
	if options.Location == nil {
		options.Location = time.UTC
	}
	return &Service{
		reservationRepo:  reservationRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		timeProvider:     timeProvider,
		options:          options,
		logger:           logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return s.toResponse(reservation), nil
}

// List получает все бронирования с опциональной фильтрацией по дате, корту и статусу.
// Без фильтра по дате сортировка от новых к старым
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations, s.timeProvider.Now(), s.options.Location), nil
}

// GetByUser получает историю бронирований пользователя
func (s *Service) GetByUser(ctx context.Context, userID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("GetByUser: fetching reservations for user=%d", userID)

	reservations, err := s.reservationRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetByUser - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(reservations, s.timeProvider.Now(), s.options.Location), nil
}

// UpdateStatus меняет статус бронирования и при необходимости пароль.
// Переход в confirmed или cancelled создает уведомление владельцу
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: reservation id=%d, status=%s", id, req.Status)

	newStatus := domain.ReservationStatus(req.Status)
	if !newStatus.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%q for reservation id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	var updated *domain.Reservation
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := s.getForUpdate(txCtx, "UpdateStatus", id)
		if err != nil {
			return err
		}

		// Отмененное бронирование освободило слот, возврат в работу снова его занимает
		if reservation.IsCancelled() && newStatus != domain.ReservationStatusCancelled {
			if !s.options.AllowReopenCancelled {
				s.logger.Warn("UpdateStatus: reopening cancelled reservation id=%d is disabled", id)
				return ErrCannotReopen
			}
			if err := s.ensureSlotFree(txCtx, "UpdateStatus", reservation.SlotKey(), id); err != nil {
				return err
			}
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, newStatus, req.Password); err != nil {
			return s.mapWriteError("UpdateStatus", id, err)
		}

		reservation.Status = newStatus
		if req.Password != nil {
			reservation.Password = *req.Password
		}

		if notificationType, ok := domain.NotificationForStatus(newStatus); ok {
			notification := domain.NewReservationNotification(reservation, notificationType)
			if _, err := s.notificationRepo.Create(txCtx, notification); err != nil {
				s.logger.Error("UpdateStatus: failed to create notification for reservation id=%d: %v", id, err)
				return fmt.Errorf("%w: UpdateStatus - create notification: %v", ErrInternal, err)
			}
		}

		updated = reservation
		return nil
	})
	if err != nil {
		return nil, s.wrapTxError("UpdateStatus", err)
	}

	s.logger.Info("UpdateStatus: reservation id=%d is now %s", id, newStatus)
	return s.toResponse(updated), nil
}

// Update частично обновляет бронирование.
// Перенос активного бронирования на занятое время отклоняется
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Update: reservation id=%d", id)

	if req.IsEmpty() {
		s.logger.Warn("Update: empty request for reservation id=%d", id)
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var updated *domain.Reservation
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := s.getForUpdate(txCtx, "Update", id)
		if err != nil {
			return err
		}

		oldKey := reservation.SlotKey()
		if err := applyUpdate(reservation, req); err != nil {
			s.logger.Warn("Update: invalid input for reservation id=%d: %v", id, err)
			return err
		}

		if reservation.IsActive() && reservation.SlotKey() != oldKey {
			if err := s.ensureSlotFree(txCtx, "Update", reservation.SlotKey(), id); err != nil {
				return err
			}
		}

		if err := s.reservationRepo.Update(txCtx, reservation); err != nil {
			return s.mapWriteError("Update", id, err)
		}

		updated = reservation
		return nil
	})
	if err != nil {
		return nil, s.wrapTxError("Update", err)
	}

	s.logger.Info("Update: reservation id=%d updated", id)
	return s.toResponse(updated), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) getForUpdate(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - get reservation: %w", ErrInternal, op, err)
	}
	return reservation, nil
}

// ensureSlotFree проверяет, что ключ не занят другим активным бронированием
func (s *Service) ensureSlotFree(ctx context.Context, op string, key domain.ReservationKey, selfID int64) error {
	existing, err := s.reservationRepo.FindActiveBySlot(ctx, key)
	if err != nil {
		s.logger.Error("%s: failed to check slot: %v", op, err)
		return fmt.Errorf("%w: %s - check slot: %w", ErrInternal, op, err)
	}
	if existing != nil && existing.ID != selfID {
		s.logger.Warn("%s: slot court=%d date=%s start=%s is taken by reservation id=%d",
			op, key.CourtID, key.Date, key.StartTime, existing.ID)
		return ErrSlotAlreadyBooked
	}
	return nil
}

func (s *Service) mapWriteError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, reservationRepo.ErrReservationNotFound):
		return ErrReservationNotFound
	case errors.Is(err, reservationRepo.ErrSlotAlreadyBooked):
		s.logger.Warn("%s: slot of reservation id=%d taken concurrently", op, id)
		return ErrSlotAlreadyBooked
	default:
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
}

// wrapTxError пропускает доменные ошибки как есть, остальное превращает в ErrInternal
func (s *Service) wrapTxError(op string, err error) error {
	for _, known := range []error{ErrReservationNotFound, ErrCannotReopen, ErrSlotAlreadyBooked, ErrInvalidInput, ErrInternal} {
		if errors.Is(err, known) {
			return err
		}
	}
	s.logger.Error("%s: transaction failed: %v", op, err)
	return fmt.Errorf("%w: %s - transaction failed: %v", ErrInternal, op, err)
}

func (s *Service) toResponse(r *domain.Reservation) *models.ReservationResponse {
	return models.FromDomainReservation(r, s.timeProvider.Now(), s.options.Location)
}

// applyUpdate переносит заданные поля запроса в бронирование и проверяет результат
func applyUpdate(r *domain.Reservation, req *models.UpdateRequest) error {
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone == "" {
			return fmt.Errorf("%w: phone must not be empty", ErrInvalidInput)
		}
		r.Phone = phone
	}

	if req.Date != nil {
		date, err := types.ParseDate(*req.Date)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		r.Date = date
	}

	if req.StartTime != nil {
		start, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
		r.StartTime = start
	}

	if req.EndTime != nil {
		end, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
		r.EndTime = end
	}

	if !r.StartTime.IsBefore(r.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if req.PeopleNum != nil {
		if *req.PeopleNum <= 0 {
			return fmt.Errorf("%w: people_num must be positive", ErrInvalidInput)
		}
		r.PeopleNum = *req.PeopleNum
	}

	if req.Price != nil {
		if *req.Price < 0 {
			return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		r.Price = *req.Price
	}

	return nil
}

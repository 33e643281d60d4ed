package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// validateRequest валидирует формат входных данных.
// Телефон проверяется отдельно, после проверки пользователя и корта
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.PeopleNum < 0 {
		return fmt.Errorf("%w: people_num must not be negative", ErrInvalidInput)
	}

	return nil
}

// buildReservation собирает новое бронирование со статусом pending
func buildReservation(req *Request, defaultPassword string) *domain.Reservation {
	peopleNum := req.PeopleNum
	if peopleNum == 0 {
		peopleNum = domain.DefaultPeopleNum
	}

	password := defaultPassword
	if req.Password != nil && *req.Password != "" {
		password = *req.Password
	}

	return &domain.Reservation{
		UserID:    req.UserID,
		CourtID:   req.CourtID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domain.ReservationStatusPending,
		Price:     req.Price,
		PeopleNum: peopleNum,
		Phone:     strings.TrimSpace(req.Phone),
		Password:  password,
	}
}

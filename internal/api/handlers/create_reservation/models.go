package create_reservation

import (
	"fmt"
	"time"

	createReservation "github.com/m04kA/SMC-CourtService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	UserID    int64   `json:"userId" validate:"required,gt=0"`
	CourtID   int64   `json:"courtId" validate:"required,gt=0"`
	Date      string  `json:"date" validate:"required"`      // "2025-06-02"
	StartTime string  `json:"startTime" validate:"required"` // "09:00"
	EndTime   string  `json:"endTime" validate:"required"`   // "10:00"
	Price     float64 `json:"price" validate:"min=0"`
	PeopleNum int     `json:"people_num" validate:"min=0"`
	Phone     string  `json:"phone"`
	Password  *string `json:"password,omitempty"`
}

// BulkCreateRequest пакетное создание сезонных бронирований
type BulkCreateRequest struct {
	Reservations []CreateReservationRequest `json:"reservations" validate:"required,min=1,max=500,dive"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	CourtID   int64   `json:"courtId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Status    string  `json:"status"`
	Price     float64 `json:"price"`
	PeopleNum int     `json:"people_num"`
	Phone     string  `json:"phone"`
	Password  string  `json:"password"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// BulkRowResponse результат одной строки пакета
type BulkRowResponse struct {
	Index       int                  `json:"index"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
	Error       string               `json:"error,omitempty"`
}

// BulkCreateResponse результат пакетного создания
type BulkCreateResponse struct {
	Created int               `json:"created"`
	Failed  int               `json:"failed"`
	Results []BulkRowResponse `json:"results"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &createReservation.Request{
		UserID:    r.UserID,
		CourtID:   r.CourtID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Price:     r.Price,
		PeopleNum: r.PeopleNum,
		Phone:     r.Phone,
		Password:  r.Password,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		CourtID:   resp.CourtID,
		Date:      resp.Date.String(),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Status:    string(resp.Status),
		Price:     resp.Price,
		PeopleNum: resp.PeopleNum,
		Phone:     resp.Phone,
		Password:  resp.Password,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}

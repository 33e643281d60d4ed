package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Request модели

// ListRequest фильтры списка бронирований
type ListRequest struct {
	Date    *string `json:"date,omitempty"`
	CourtID *int64  `json:"courtId,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{CourtID: r.CourtID}

	if r.Date != nil {
		date, err := types.ParseDate(*r.Date)
		if err != nil {
			return filter, err
		}
		filter.Date = &date
	}

	if r.Status != nil {
		status := domain.ReservationStatus(*r.Status)
		if !status.IsValid() {
			return filter, fmt.Errorf("unknown status %q", *r.Status)
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса
type UpdateStatusRequest struct {
	Status   string  `json:"status"`
	Password *string `json:"password,omitempty"`
}

// UpdateRequest частичное обновление бронирования.
// Незаданные поля не меняются
type UpdateRequest struct {
	Phone     *string  `json:"phone,omitempty"`
	Date      *string  `json:"date,omitempty"`
	StartTime *string  `json:"startTime,omitempty"`
	EndTime   *string  `json:"endTime,omitempty"`
	PeopleNum *int     `json:"people_num,omitempty"`
	Price     *float64 `json:"price,omitempty"`
}

// IsEmpty возвращает true, если не задано ни одного поля
func (r *UpdateRequest) IsEmpty() bool {
	return r.Phone == nil && r.Date == nil && r.StartTime == nil &&
		r.EndTime == nil && r.PeopleNum == nil && r.Price == nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	CourtID   int64     `json:"courtId"`
	Date      string    `json:"date"`      // "2025-06-02"
	StartTime string    `json:"startTime"` // "09:00"
	EndTime   string    `json:"endTime"`   // "10:00"
	Status    string    `json:"status"`
	Expired   bool      `json:"expired"`
	Price     float64   `json:"price"`
	PeopleNum int       `json:"people_num"`
	Phone     string    `json:"phone"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain модель в response.
// expired вычисляется по дате и времени окончания в часовом поясе площадки
func FromDomainReservation(r *domain.Reservation, now time.Time, loc *time.Location) *ReservationResponse {
	return &ReservationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		CourtID:   r.CourtID,
		Date:      r.Date.String(),
		StartTime: r.StartTime.String(),
		EndTime:   r.EndTime.String(),
		Status:    string(r.Status),
		Expired:   r.IsExpired(now, loc),
		Price:     r.Price,
		PeopleNum: r.PeopleNum,
		Phone:     r.Phone,
		Password:  r.Password,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в response
func FromDomainReservationList(list []*domain.Reservation, now time.Time, loc *time.Location) *ReservationListResponse {
	items := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *FromDomainReservation(r, now, loc))
	}
	return &ReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}

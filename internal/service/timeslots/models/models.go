package models

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// ListRequest фильтры списка слотов
type ListRequest struct {
	Date       *string `json:"date,omitempty"`
	IsTemplate *bool   `json:"isTemplate,omitempty"`
	CourtID    *int64  `json:"courtId,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.SlotFilter, error) {
	filter := domain.SlotFilter{IsTemplate: r.IsTemplate, CourtID: r.CourtID}
	if r.Date != nil {
		date, err := types.ParseDate(*r.Date)
		if err != nil {
			return filter, err
		}
		filter.Date = &date
	}
	return filter, nil
}

// TimeSlotRequest запрос на создание или изменение шаблона либо конкретного слота.
// Для шаблона обязательно имя, для конкретного слота дата
type TimeSlotRequest struct {
	CourtID      int64   `json:"courtId" validate:"required,gt=0"`
	IsTemplate   bool    `json:"isTemplate"`
	Date         *string `json:"date,omitempty"`
	Name         string  `json:"name"`
	StartTime    string  `json:"startTime" validate:"required"`
	EndTime      string  `json:"endTime" validate:"required"`
	DefaultPrice float64 `json:"defaultPrice" validate:"min=0"`
}

// TimeSlotResponse ответ с данными шаблона или слота
type TimeSlotResponse struct {
	ID           int64     `json:"id"`
	CourtID      int64     `json:"courtId"`
	IsTemplate   bool      `json:"isTemplate"`
	Date         *string   `json:"date"`
	Name         string    `json:"name"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	DefaultPrice float64   `json:"defaultPrice"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DeleteResponse количество удаленных слотов
type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// FromTemplate конвертирует шаблон в response
func FromTemplate(t *domain.Template) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:           t.ID,
		CourtID:      t.CourtID,
		IsTemplate:   true,
		Name:         t.Name,
		StartTime:    t.StartTime.String(),
		EndTime:      t.EndTime.String(),
		DefaultPrice: t.DefaultPrice,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// FromSlot конвертирует конкретный слот в response
func FromSlot(s *domain.Slot) *TimeSlotResponse {
	date := s.Date.String()
	return &TimeSlotResponse{
		ID:           s.ID,
		CourtID:      s.CourtID,
		Date:         &date,
		Name:         s.Name,
		StartTime:    s.StartTime.String(),
		EndTime:      s.EndTime.String(),
		DefaultPrice: s.DefaultPrice,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomain конвертирует строку time_slots в response
func FromDomain(ts domain.TimeSlot) *TimeSlotResponse {
	if ts.IsTemplate() {
		return FromTemplate(ts.Template)
	}
	return FromSlot(ts.Slot)
}

// FromDomainList конвертирует список в response
func FromDomainList(list []domain.TimeSlot) []TimeSlotResponse {
	result := make([]TimeSlotResponse, 0, len(list))
	for _, ts := range list {
		result = append(result, *FromDomain(ts))
	}
	return result
}

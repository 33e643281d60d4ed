package models

import (
	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// BusinessHourRequest рабочие часы одного дня недели
type BusinessHourRequest struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"min=0,max=6"`
	OpenTime  string `json:"openTime" validate:"required"`
	CloseTime string `json:"closeTime" validate:"required"`
	IsHoliday bool   `json:"isHoliday"`
}

// BulkRequest пакетное сохранение рабочих часов
type BulkRequest struct {
	OperationHours []BusinessHourRequest `json:"operationHours" validate:"required,min=1,dive"`
}

// BusinessHourResponse ответ с рабочими часами дня
type BusinessHourResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsHoliday bool   `json:"isHoliday"`
}

// BulkResponse результат пакетного сохранения
type BulkResponse struct {
	Results []BusinessHourResponse `json:"results"`
}

// FromDomain конвертирует domain модель в response
func FromDomain(bh *domain.BusinessHour) *BusinessHourResponse {
	return &BusinessHourResponse{
		ID:        bh.ID,
		DayOfWeek: bh.DayOfWeek,
		OpenTime:  bh.OpenTime.String(),
		CloseTime: bh.CloseTime.String(),
		IsHoliday: bh.IsHoliday,
	}
}

// FromDomainList конвертирует список domain моделей в response
func FromDomainList(list []*domain.BusinessHour) []BusinessHourResponse {
	result := make([]BusinessHourResponse, 0, len(list))
	for _, bh := range list {
		result = append(result, *FromDomain(bh))
	}
	return result
}

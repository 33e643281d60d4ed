package models

import "github.com/m04kA/SMC-CourtService/internal/domain"

// CourtRequest запрос на создание или изменение корта
type CourtRequest struct {
	Name        string `json:"name" validate:"required"`
	CourtNumber int    `json:"courtNumber" validate:"min=0"`
	IsActive    *bool  `json:"isActive,omitempty"` // по умолчанию true
}

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CourtNumber int    `json:"courtNumber"`
	IsActive    bool   `json:"isActive"`
}

// FromDomain конвертирует domain модель в response
func FromDomain(c *domain.Court) *CourtResponse {
	return &CourtResponse{
		ID:          c.ID,
		Name:        c.Name,
		CourtNumber: c.CourtNumber,
		IsActive:    c.IsActive,
	}
}

// FromDomainList конвертирует список domain моделей в response
func FromDomainList(list []*domain.Court) []CourtResponse {
	result := make([]CourtResponse, 0, len(list))
	for _, c := range list {
		result = append(result, *FromDomain(c))
	}
	return result
}

package models

import "github.com/m04kA/SMC-CourtService/internal/domain"

// UpsertRequest запрос на создание или обновление пользователя по LINE ID
type UpsertRequest struct {
	LineID string `json:"lineId" validate:"required"`
	Name   string `json:"name"`
	Role   string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID     int64  `json:"id"`
	LineID string `json:"lineId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// FromDomain конвертирует domain модель в response
func FromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:     u.ID,
		LineID: u.LineID,
		Name:   u.Name,
		Role:   string(u.Role),
	}
}

// FromDomainList конвертирует список domain моделей в response
func FromDomainList(list []*domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(list))
	for _, u := range list {
		result = append(result, *FromDomain(u))
	}
	return result
}

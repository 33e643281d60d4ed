package models

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// NotificationResponse ответ с уведомлением
type NotificationResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Type      string    `json:"type"`
	RelatedID *int64    `json:"relatedId"`
	OnModel   *string   `json:"onModel"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainList конвертирует список domain моделей в response
func FromDomainList(list []*domain.Notification) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		result = append(result, NotificationResponse{
			ID:        n.ID,
			UserID:    n.UserID,
			Type:      string(n.Type),
			RelatedID: n.RelatedID,
			OnModel:   n.OnModel,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return result
}

package update_reservation_status

import "github.com/m04kA/SMC-CourtService/internal/service/reservations/models"

// UpdateStatusRequest HTTP модель смены статуса
type UpdateStatusRequest struct {
	Status   string  `json:"status" validate:"required"`
	Password *string `json:"password,omitempty"`
}

func (r *UpdateStatusRequest) toServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status:   r.Status,
		Password: r.Password,
	}
}

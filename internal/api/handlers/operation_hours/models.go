package operation_hours

import "github.com/m04kA/SMC-CourtService/internal/service/businesshours/models"

// BulkResponse ответ пакетного сохранения рабочих часов
type BulkResponse struct {
	Message string                        `json:"message"`
	Results []models.BusinessHourResponse `json:"results"`
}

package time_slots

import cleanExpiredSlots "github.com/m04kA/SMC-CourtService/internal/usecase/clean_expired_slots"

// CleanupExpiredResponse результат удаления устаревших слотов
type CleanupExpiredResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
	Threshold    string `json:"threshold"` // слоты раньше этой даты удалены
}

func fromCleanupResponse(resp *cleanExpiredSlots.Response) *CleanupExpiredResponse {
	return &CleanupExpiredResponse{
		Message:      msgExpiredCleaned,
		DeletedCount: resp.DeletedCount,
		Threshold:    resp.Threshold.String(),
	}
}

package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-CourtService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot модель слота с признаком доступности
type AvailableSlot struct {
	ID            int64   `json:"id"`
	CourtID       int64   `json:"courtId"`
	Name          string  `json:"name"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DefaultPrice  float64 `json:"defaultPrice"`
	Available     bool    `json:"available"`
	Past          bool    `json:"past"`
	ReservationID *int64  `json:"reservationId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:            slot.ID,
			CourtID:       slot.CourtID,
			Name:          slot.Name,
			StartTime:     slot.StartTime.String(),
			EndTime:       slot.EndTime.String(),
			DefaultPrice:  slot.DefaultPrice,
			Available:     slot.Available,
			Past:          slot.Past,
			ReservationID: slot.ReservationID,
		}
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.String(),
		Slots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string, courtID *int64) (*getAvailableSlots.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:    date,
		CourtID: courtID,
	}, nil
}

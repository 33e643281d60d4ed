package generate_slots

import (
	generateSlots "github.com/m04kA/SMC-CourtService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	StartDate      string `json:"startDate" validate:"required"` // "2025-06-02"
	DaysToGenerate int    `json:"daysToGenerate" validate:"min=0,max=366"`
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	Message        string `json:"message"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	GeneratedCount int    `json:"generatedCount"`
	TotalExisting  int    `json:"totalExisting"`
	SkippedDates   int    `json:"skippedDates"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest() (*generateSlots.Request, error) {
	startDate, err := types.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	return &generateSlots.Request{
		StartDate:      startDate,
		DaysToGenerate: r.DaysToGenerate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		Message:        msgGenerated,
		StartDate:      resp.StartDate.String(),
		EndDate:        resp.EndDate.String(),
		GeneratedCount: resp.GeneratedCount,
		TotalExisting:  resp.TotalExisting,
		SkippedDates:   resp.SkippedDates,
	}
}

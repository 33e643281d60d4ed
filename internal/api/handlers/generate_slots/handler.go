package generate_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	generateSlots "github.com/m04kA/SMC-CourtService/internal/usecase/generate_slots"
)

const (
	msgGenerated          = "слоты успешно сгенерированы"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты начала, ожидается YYYY-MM-DD"
	msgInvalidDays        = "количество дней должно быть от 1 до 366"
	msgNoActiveCourts     = "нет активных кортов"
	msgNoBusinessHours    = "сначала настройте рабочие часы"
	msgNoTemplates        = "нет шаблонов слотов"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/time-slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /time-slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /time-slots/generate - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrStartDateRequired):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, generateSlots.ErrInvalidDaysToGenerate):
			handlers.RespondBadRequest(w, msgInvalidDays)

		case errors.Is(err, generateSlots.ErrNoActiveCourts):
			h.logger.Warn("POST /time-slots/generate - No active courts")
			handlers.RespondNotFound(w, msgNoActiveCourts)

		case errors.Is(err, generateSlots.ErrNoBusinessHours):
			h.logger.Warn("POST /time-slots/generate - No business hours")
			handlers.RespondNotFound(w, msgNoBusinessHours)

		case errors.Is(err, generateSlots.ErrNoTemplates):
			h.logger.Warn("POST /time-slots/generate - No templates")
			handlers.RespondNotFound(w, msgNoTemplates)

		default:
			h.logger.Error("POST /time-slots/generate - Failed to generate slots: start=%s, error=%v", req.StartDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /time-slots/generate - Generated %d slots (existing=%d) from %s to %s",
		result.GeneratedCount, result.TotalExisting, result.StartDate, result.EndDate)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

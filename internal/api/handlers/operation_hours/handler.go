package operation_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/businesshours"
	"github.com/m04kA/SMC-CourtService/internal/service/businesshours/models"
)

const (
	msgInvalidDayOfWeek   = "день недели должен быть от 0 до 6"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные рабочие часы"
	msgNotFound           = "рабочие часы для этого дня не найдены"
	msgAlreadyExists      = "рабочие часы для этого дня уже существуют"
	msgDeleted            = "рабочие часы удалены"
	msgBulkSaved          = "рабочие часы сохранены"
)

type Handler struct {
	service BusinessHourService
	logger  Logger
}

func NewHandler(service BusinessHourService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetAll GET /api/operationhour
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	hours, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /operationhour - Failed to get business hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, hours)
}

// GetByDay GET /api/operationhour/{dayOfWeek}
func (h *Handler) GetByDay(w http.ResponseWriter, r *http.Request) {
	day, err := handlers.PathInt(r, "dayOfWeek")
	if err != nil {
		h.logger.Warn("GET /operationhour/{dayOfWeek} - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	hour, err := h.service.GetByDay(r.Context(), day)
	if err != nil {
		h.respondServiceError(w, "GET /operationhour/{dayOfWeek}", day, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, hour)
}

// Create POST /api/operationhour
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.BusinessHourRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /operationhour - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	hour, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /operationhour", req.DayOfWeek, err)
		return
	}

	h.logger.Info("POST /operationhour - Business hour created: day=%d", hour.DayOfWeek)
	handlers.RespondJSON(w, http.StatusCreated, hour)
}

// Update PUT /api/operationhour/{dayOfWeek}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	day, err := handlers.PathInt(r, "dayOfWeek")
	if err != nil {
		h.logger.Warn("PUT /operationhour/{dayOfWeek} - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	var req models.BusinessHourRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /operationhour/{dayOfWeek} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	hour, err := h.service.Update(r.Context(), day, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /operationhour/{dayOfWeek}", day, err)
		return
	}

	h.logger.Info("PUT /operationhour/{dayOfWeek} - Business hour updated: day=%d", day)
	handlers.RespondJSON(w, http.StatusOK, hour)
}

// Delete DELETE /api/operationhour/{dayOfWeek}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	day, err := handlers.PathInt(r, "dayOfWeek")
	if err != nil {
		h.logger.Warn("DELETE /operationhour/{dayOfWeek} - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	if err := h.service.Delete(r.Context(), day); err != nil {
		h.respondServiceError(w, "DELETE /operationhour/{dayOfWeek}", day, err)
		return
	}

	h.logger.Info("DELETE /operationhour/{dayOfWeek} - Business hour deleted: day=%d", day)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted)
}

// Bulk POST /api/operationhour/bulk
func (h *Handler) Bulk(w http.ResponseWriter, r *http.Request) {
	var req models.BulkRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /operationhour/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.BulkUpsert(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /operationhour/bulk", -1, err)
		return
	}

	h.logger.Info("POST /operationhour/bulk - Saved %d days", len(result.Results))
	handlers.RespondJSON(w, http.StatusOK, BulkResponse{
		Message: msgBulkSaved,
		Results: result.Results,
	})
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, day int, err error) {
	switch {
	case errors.Is(err, businesshours.ErrInvalidDayOfWeek):
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

	case errors.Is(err, businesshours.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: day=%d, error=%v", route, day, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, businesshours.ErrBusinessHourNotFound):
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, businesshours.ErrBusinessHourExists):
		h.logger.Warn("%s - Business hour already exists: day=%d", route, day)
		handlers.RespondConflict(w, msgAlreadyExists)

	default:
		h.logger.Error("%s - Failed: day=%d, error=%v", route, day, err)
		handlers.RespondInternalError(w)
	}
}

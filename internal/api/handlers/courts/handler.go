package courts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/courts"
	"github.com/m04kA/SMC-CourtService/internal/service/courts/models"
)

const (
	msgInvalidCourtID     = "некорректный ID корта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные корта"
	msgNotFound           = "корт не найден"
	msgInUse              = "корт используется в слотах или бронированиях"
	msgDeleted            = "корт удален"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetAll GET /api/courts
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /courts - Failed to get courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

// Get GET /api/courts/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	court, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /courts/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, court)
}

// Create POST /api/courts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CourtRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /courts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	court, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /courts", 0, err)
		return
	}

	h.logger.Info("POST /courts - Court created: id=%d, name=%s", court.ID, court.Name)
	handlers.RespondJSON(w, http.StatusCreated, court)
}

// Update PUT /api/courts/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	var req models.CourtRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /courts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	court, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /courts/{id}", id, err)
		return
	}

	h.logger.Info("PUT /courts/{id} - Court updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, court)
}

// Delete DELETE /api/courts/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /courts/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /courts/{id} - Court deleted: id=%d", id)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, courts.ErrCourtNotFound):
		h.logger.Warn("%s - Court not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, courts.ErrCourtInUse):
		h.logger.Warn("%s - Court is in use: id=%d", route, id)
		handlers.RespondConflict(w, msgInUse)

	case errors.Is(err, courts.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed: id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}

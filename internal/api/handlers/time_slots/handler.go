package time_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/timeslots"
	"github.com/m04kA/SMC-CourtService/internal/service/timeslots/models"
	cleanExpiredSlots "github.com/m04kA/SMC-CourtService/internal/usecase/clean_expired_slots"
)

const (
	msgInvalidTimeSlotID  = "некорректный ID слота"
	msgInvalidFilter      = "некорректные параметры фильтра"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные слота"
	msgNotFound           = "слот не найден"
	msgCourtNotFound      = "корт не найден"
	msgSlotExists         = "слот с таким временем уже существует"
	msgKindChange         = "нельзя превратить шаблон в слот и наоборот"
	msgDeleted            = "слот удален"
	msgExpiredCleaned     = "устаревшие слоты удалены"
)

type Handler struct {
	service        TimeSlotService
	cleanupUseCase CleanExpiredSlotsUseCase
	logger         Logger
}

func NewHandler(service TimeSlotService, cleanupUseCase CleanExpiredSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		service:        service,
		cleanupUseCase: cleanupUseCase,
		logger:         logger,
	}
}

// List GET /api/time-slots?date=&isTemplate=&courtId=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	isTemplate, err := handlers.QueryBool(r, "isTemplate")
	if err != nil {
		h.logger.Warn("GET /time-slots - Invalid isTemplate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	courtID, err := handlers.QueryInt64(r, "courtId")
	if err != nil {
		h.logger.Warn("GET /time-slots - Invalid courtId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	items, err := h.service.List(r.Context(), &models.ListRequest{
		Date:       handlers.QueryString(r, "date"),
		IsTemplate: isTemplate,
		CourtID:    courtID,
	})
	if err != nil {
		if errors.Is(err, timeslots.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /time-slots - Failed to list time slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

// Get GET /api/time-slots/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /time-slots/{id} - Invalid time slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeSlotID)
		return
	}

	item, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /time-slots/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, item)
}

// Create POST /api/time-slots
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TimeSlotRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /time-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /time-slots", 0, err)
		return
	}

	h.logger.Info("POST /time-slots - Time slot created: id=%d, court_id=%d, is_template=%t",
		item.ID, item.CourtID, item.IsTemplate)
	handlers.RespondJSON(w, http.StatusCreated, item)
}

// Update PUT /api/time-slots/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /time-slots/{id} - Invalid time slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeSlotID)
		return
	}

	var req models.TimeSlotRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /time-slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /time-slots/{id}", id, err)
		return
	}

	h.logger.Info("PUT /time-slots/{id} - Time slot updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, item)
}

// Delete DELETE /api/time-slots/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /time-slots/{id} - Invalid time slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /time-slots/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /time-slots/{id} - Time slot deleted: id=%d", id)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted)
}

// CleanNonTemplates DELETE /api/time-slots/clean-non-templates
func (h *Handler) CleanNonTemplates(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CleanNonTemplates(r.Context())
	if err != nil {
		h.logger.Error("DELETE /time-slots/clean-non-templates - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /time-slots/clean-non-templates - Deleted %d slots", result.DeletedCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// CleanupExpired POST /api/time-slots/cleanup-expired
func (h *Handler) CleanupExpired(w http.ResponseWriter, r *http.Request) {
	result, err := h.cleanupUseCase.Execute(r.Context())
	if err != nil {
		if errors.Is(err, cleanExpiredSlots.ErrInvalidRetention) {
			h.logger.Error("POST /time-slots/cleanup-expired - Retention is misconfigured")
		} else {
			h.logger.Error("POST /time-slots/cleanup-expired - Failed: %v", err)
		}
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /time-slots/cleanup-expired - Deleted %d slots before %s",
		result.DeletedCount, result.Threshold)
	handlers.RespondJSON(w, http.StatusOK, fromCleanupResponse(result))
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, timeslots.ErrTimeSlotNotFound):
		h.logger.Warn("%s - Time slot not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, timeslots.ErrCourtNotFound):
		h.logger.Warn("%s - Court not found", route)
		handlers.RespondNotFound(w, msgCourtNotFound)

	case errors.Is(err, timeslots.ErrSlotExists):
		h.logger.Warn("%s - Time slot already exists", route)
		handlers.RespondConflict(w, msgSlotExists)

	case errors.Is(err, timeslots.ErrKindChange):
		handlers.RespondBadRequest(w, msgKindChange)

	case errors.Is(err, timeslots.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed: id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}

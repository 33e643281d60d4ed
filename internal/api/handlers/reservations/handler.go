package reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/reservations"
	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidUserID        = "некорректный ID пользователя"
	msgInvalidFilter        = "некорректные параметры фильтра"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные данные бронирования"
	msgNotFound             = "бронирование не найдено"
	msgSlotAlreadyBooked    = "это время уже забронировано"
	msgDeleted              = "бронирование удалено"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/reservations?date=&courtId=&status=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	courtID, err := handlers.QueryInt64(r, "courtId")
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid courtId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	req := &models.ListRequest{
		Date:    handlers.QueryString(r, "date"),
		CourtID: courtID,
		Status:  handlers.QueryString(r, "status"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Listed %d reservations", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/reservations/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	reservation, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		h.respondServiceError(w, "GET /reservations/{id}", reservationID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, reservation)
}

// GetByUser GET /api/reservations/user/{userId}
func (h *Handler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathInt64(r, "userId")
	if err != nil {
		h.logger.Warn("GET /reservations/user/{userId} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.GetByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /reservations/user/{userId} - Failed to get reservations: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/user/{userId} - Found %d reservations: user_id=%d", result.Total, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/reservations/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req models.UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reservation, err := h.service.Update(r.Context(), reservationID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /reservations/{id}", reservationID, err)
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}

// Delete DELETE /api/reservations/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Delete(r.Context(), reservationID); err != nil {
		h.respondServiceError(w, "DELETE /reservations/{id}", reservationID, err)
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation deleted: reservation_id=%d", reservationID)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, reservationID int64, err error) {
	switch {
	case errors.Is(err, reservations.ErrReservationNotFound):
		h.logger.Warn("%s - Reservation not found: reservation_id=%d", route, reservationID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, reservations.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: reservation_id=%d, error=%v", route, reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, reservations.ErrSlotAlreadyBooked):
		h.logger.Warn("%s - Slot already booked: reservation_id=%d", route, reservationID)
		handlers.RespondBadRequest(w, msgSlotAlreadyBooked)

	default:
		h.logger.Error("%s - Failed: reservation_id=%d, error=%v", route, reservationID, err)
		handlers.RespondInternalError(w)
	}
}

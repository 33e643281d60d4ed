package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-CourtService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные бронирования"
	msgUserNotFound       = "пользователь не найден"
	msgCourtNotFound      = "корт не найден"
	msgPhoneRequired      = "необходимо указать телефон"
	msgSlotAlreadyBooked  = "это время уже забронировано"
	msgInternalError      = "внутренняя ошибка сервера"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, parseErrorMessage(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		status, msg := mapError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, court_id=%d, error=%v",
				req.UserID, req.CourtID, err)
		} else {
			h.logger.Warn("POST /reservations - Rejected: user_id=%d, court_id=%d, date=%s, start=%s: %v",
				req.UserID, req.CourtID, req.Date, req.StartTime, err)
		}
		handlers.RespondError(w, status, msg)
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, court_id=%d",
		result.ID, req.UserID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// HandleBulk POST /api/reservations/bulk
func (h *Handler) HandleBulk(w http.ResponseWriter, r *http.Request) {
	var req BulkCreateRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /reservations/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	response := BulkCreateResponse{Results: make([]BulkRowResponse, len(req.Reservations))}

	// Строки, которые не удалось разобрать, сразу попадают в результат с ошибкой
	useCaseReqs := make([]*createReservation.Request, 0, len(req.Reservations))
	positions := make([]int, 0, len(req.Reservations))
	for i := range req.Reservations {
		useCaseReq, err := req.Reservations[i].ToUseCaseRequest()
		if err != nil {
			response.Results[i] = BulkRowResponse{Index: i, Error: parseErrorMessage(err)}
			continue
		}
		useCaseReqs = append(useCaseReqs, useCaseReq)
		positions = append(positions, i)
	}

	for _, res := range h.useCase.ExecuteBulk(r.Context(), useCaseReqs) {
		index := positions[res.Index]
		row := BulkRowResponse{Index: index}
		if res.Err != nil {
			_, row.Error = mapError(res.Err)
		} else {
			row.Reservation = FromUseCaseResponse(res.Reservation)
		}
		response.Results[index] = row
	}

	for _, row := range response.Results {
		if row.Reservation != nil {
			response.Created++
		} else {
			response.Failed++
		}
	}

	h.logger.Info("POST /reservations/bulk - Processed %d rows: created=%d, failed=%d",
		len(req.Reservations), response.Created, response.Failed)
	handlers.RespondJSON(w, http.StatusOK, response)
}

// mapError сопоставляет ошибку use case с HTTP статусом и сообщением.
// Занятое время отдается как 400, как в исходном REST API
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, createReservation.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidInput
	case errors.Is(err, createReservation.ErrUserNotFound):
		return http.StatusNotFound, msgUserNotFound
	case errors.Is(err, createReservation.ErrCourtNotFound):
		return http.StatusNotFound, msgCourtNotFound
	case errors.Is(err, createReservation.ErrPhoneRequired):
		return http.StatusBadRequest, msgPhoneRequired
	case errors.Is(err, createReservation.ErrSlotAlreadyBooked):
		return http.StatusBadRequest, msgSlotAlreadyBooked
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

func parseErrorMessage(err error) string {
	if errors.Is(err, types.ErrInvalidDate) {
		return msgInvalidDate
	}
	return msgInvalidTime
}

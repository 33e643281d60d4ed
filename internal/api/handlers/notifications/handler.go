package notifications

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/notifications"
)

const (
	msgInvalidUserID         = "некорректный ID пользователя"
	msgInvalidNotificationID = "некорректный ID уведомления"
	msgNotFound              = "уведомление не найдено"
	msgMarkedAsRead          = "уведомление отмечено как прочитанное"
	msgDeleted               = "уведомление удалено"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetByUser GET /api/notifications/user/{userId}
func (h *Handler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathInt64(r, "userId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	items, err := h.service.GetByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /notifications/user/{userId} - Failed: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

// MarkAsRead PUT /api/notifications/{id}/read
func (h *Handler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	if err := h.service.MarkAsRead(r.Context(), id); err != nil {
		h.respondServiceError(w, "PUT /notifications/{id}/read", id, err)
		return
	}

	handlers.RespondMessage(w, http.StatusOK, msgMarkedAsRead)
}

// Delete DELETE /api/notifications/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /notifications/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /notifications/{id} - Notification deleted: id=%d", id)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, id int64, err error) {
	if errors.Is(err, notifications.ErrNotificationNotFound) {
		h.logger.Warn("%s - Notification not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}
	h.logger.Error("%s - Failed: id=%d, error=%v", route, id, err)
	handlers.RespondInternalError(w)
}

package update_reservation_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/service/reservations"
	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*models.ReservationResponse)
	return resp, args.Error(1)
}

func serve(svc ReservationService, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/reservations/{id}/status", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPut)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/reservations/"+id+"/status", strings.NewReader(body)))
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &mockService{}
	svc.On("UpdateStatus", mock.Anything, int64(7), &models.UpdateStatusRequest{Status: "confirmed"}).
		Return(&models.ReservationResponse{ID: 7, Status: "confirmed"}, nil)

	w := serve(svc, "7", `{"status":"confirmed"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid status", reservations.ErrInvalidStatus, http.StatusBadRequest},
		{"not found", reservations.ErrReservationNotFound, http.StatusNotFound},
		{"cannot reopen", reservations.ErrCannotReopen, http.StatusBadRequest},
		{"slot booked", reservations.ErrSlotAlreadyBooked, http.StatusBadRequest},
		{"internal", reservations.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("UpdateStatus", mock.Anything, int64(1), mock.Anything).Return(nil, tt.err)

			w := serve(svc, "1", `{"status":"pending"}`)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandle_BadInput(t *testing.T) {
	svc := &mockService{}

	assert.Equal(t, http.StatusBadRequest, serve(svc, "abc", `{"status":"pending"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "1", `{}`).Code)
	svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

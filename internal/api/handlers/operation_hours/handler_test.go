package operation_hours

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/service/businesshours"
	"github.com/m04kA/SMC-CourtService/internal/service/businesshours/models"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) GetAll(ctx context.Context) ([]models.BusinessHourResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).([]models.BusinessHourResponse)
	return resp, args.Error(1)
}

func (m *mockService) GetByDay(ctx context.Context, day int) (*models.BusinessHourResponse, error) {
	args := m.Called(ctx, day)
	resp, _ := args.Get(0).(*models.BusinessHourResponse)
	return resp, args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req *models.BusinessHourRequest) (*models.BusinessHourResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.BusinessHourResponse)
	return resp, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, day int, req *models.BusinessHourRequest) (*models.BusinessHourResponse, error) {
	args := m.Called(ctx, day, req)
	resp, _ := args.Get(0).(*models.BusinessHourResponse)
	return resp, args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, day int) error {
	return m.Called(ctx, day).Error(0)
}

func (m *mockService) BulkUpsert(ctx context.Context, req *models.BulkRequest) (*models.BulkResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.BulkResponse)
	return resp, args.Error(1)
}

func newRouter(svc BusinessHourService) *mux.Router {
	h := NewHandler(svc, logger.Nop())
	router := mux.NewRouter()
	router.HandleFunc("/api/operationhour", h.GetAll).Methods(http.MethodGet)
	router.HandleFunc("/api/operationhour", h.Create).Methods(http.MethodPost)
	router.HandleFunc("/api/operationhour/bulk", h.Bulk).Methods(http.MethodPost)
	router.HandleFunc("/api/operationhour/{dayOfWeek}", h.GetByDay).Methods(http.MethodGet)
	router.HandleFunc("/api/operationhour/{dayOfWeek}", h.Update).Methods(http.MethodPut)
	router.HandleFunc("/api/operationhour/{dayOfWeek}", h.Delete).Methods(http.MethodDelete)
	return router
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func TestCreate(t *testing.T) {
	body := `{"dayOfWeek":1,"openTime":"08:00","closeTime":"22:00"}`

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"created", nil, http.StatusCreated},
		{"duplicate day", businesshours.ErrBusinessHourExists, http.StatusConflict},
		{"open after close", businesshours.ErrInvalidInput, http.StatusBadRequest},
		{"internal", businesshours.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			var resp *models.BusinessHourResponse
			if tt.err == nil {
				resp = &models.BusinessHourResponse{ID: 1, DayOfWeek: 1, OpenTime: "08:00", CloseTime: "22:00"}
			}
			svc.On("Create", mock.Anything, &models.BusinessHourRequest{DayOfWeek: 1, OpenTime: "08:00", CloseTime: "22:00"}).
				Return(resp, tt.err)

			assert.Equal(t, tt.status, do(newRouter(svc), http.MethodPost, "/api/operationhour", body).Code)
		})
	}
}

func TestCreate_DayOutOfRange(t *testing.T) {
	svc := &mockService{}

	w := do(newRouter(svc), http.MethodPost, "/api/operationhour", `{"dayOfWeek":7,"openTime":"08:00","closeTime":"22:00"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetByDay_Sunday(t *testing.T) {
	svc := &mockService{}
	svc.On("GetByDay", mock.Anything, 0).Return(&models.BusinessHourResponse{DayOfWeek: 0, IsHoliday: true}, nil)
	svc.On("GetByDay", mock.Anything, 3).Return(nil, businesshours.ErrBusinessHourNotFound)
	router := newRouter(svc)

	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/api/operationhour/0", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/operationhour/3", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/api/operationhour/mon", "").Code)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := &mockService{}
	svc.On("Update", mock.Anything, 2, mock.Anything).Return(&models.BusinessHourResponse{DayOfWeek: 2}, nil)
	svc.On("Delete", mock.Anything, 2).Return(nil)
	svc.On("Delete", mock.Anything, 9).Return(businesshours.ErrInvalidDayOfWeek)
	router := newRouter(svc)

	assert.Equal(t, http.StatusOK,
		do(router, http.MethodPut, "/api/operationhour/2", `{"openTime":"09:00","closeTime":"21:00"}`).Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodDelete, "/api/operationhour/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodDelete, "/api/operationhour/9", "").Code)
}

func TestBulk(t *testing.T) {
	svc := &mockService{}
	svc.On("BulkUpsert", mock.Anything, mock.MatchedBy(func(r *models.BulkRequest) bool {
		return len(r.OperationHours) == 2
	})).Return(&models.BulkResponse{Results: []models.BusinessHourResponse{{DayOfWeek: 0}, {DayOfWeek: 1}}}, nil)

	body := `{"operationHours":[
		{"dayOfWeek":0,"openTime":"00:00","closeTime":"00:00","isHoliday":true},
		{"dayOfWeek":1,"openTime":"08:00","closeTime":"22:00"}
	]}`
	w := do(newRouter(svc), http.MethodPost, "/api/operationhour/bulk", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp BulkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgBulkSaved, resp.Message)
	assert.Len(t, resp.Results, 2)
}

func TestBulk_Empty(t *testing.T) {
	w := do(newRouter(&mockService{}), http.MethodPost, "/api/operationhour/bulk", `{"operationHours":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

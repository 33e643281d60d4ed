package users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CourtService/internal/service/users"
	"github.com/m04kA/SMC-CourtService/internal/service/users/models"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) Upsert(ctx context.Context, req *models.UpsertRequest) (*models.UserResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.UserResponse)
	return resp, args.Error(1)
}

func (m *mockService) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.UserResponse)
	return resp, args.Error(1)
}

func (m *mockService) GetAll(ctx context.Context) ([]models.UserResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).([]models.UserResponse)
	return resp, args.Error(1)
}

func newRouter(svc UserService) *mux.Router {
	h := NewHandler(svc, logger.Nop())
	router := mux.NewRouter()
	router.HandleFunc("/api/users", h.Upsert).Methods(http.MethodPost)
	router.HandleFunc("/api/users", h.GetAll).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id}", h.Get).Methods(http.MethodGet)
	return router
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func TestUpsert(t *testing.T) {
	svc := &mockService{}
	svc.On("Upsert", mock.Anything, &models.UpsertRequest{LineID: "U123", Name: "Amy"}).
		Return(&models.UserResponse{ID: 1, LineID: "U123", Name: "Amy", Role: "user"}, nil)
	router := newRouter(svc)

	w := do(router, http.MethodPost, "/api/users", `{"lineId":"U123","name":"Amy"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"user"`)

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/api/users", `{"name":"Amy"}`).Code)
	assert.Equal(t, http.StatusBadRequest,
		do(router, http.MethodPost, "/api/users", `{"lineId":"U1","role":"owner"}`).Code)
}

func TestGet(t *testing.T) {
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, int64(1)).Return(&models.UserResponse{ID: 1}, nil)
	svc.On("GetByID", mock.Anything, int64(2)).Return(nil, users.ErrUserNotFound)
	svc.On("GetAll", mock.Anything).Return([]models.UserResponse{}, nil)
	router := newRouter(svc)

	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/api/users/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/users/2", "").Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/api/users", "").Code)
}

package courts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtService/internal/service/courts/models"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
)

type mockCourtRepo struct{ mock.Mock }

func (m *mockCourtRepo) Create(ctx context.Context, c *domain.Court) (*domain.Court, error) {
	args := m.Called(ctx, c)
	res, _ := args.Get(0).(*domain.Court)
	return res, args.Error(1)
}

func (m *mockCourtRepo) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.Court)
	return res, args.Error(1)
}

func (m *mockCourtRepo) GetAll(ctx context.Context) ([]*domain.Court, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]*domain.Court)
	return res, args.Error(1)
}

func (m *mockCourtRepo) Update(ctx context.Context, c *domain.Court) (*domain.Court, error) {
	args := m.Called(ctx, c)
	res, _ := args.Get(0).(*domain.Court)
	return res, args.Error(1)
}

func (m *mockCourtRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestCreate_DefaultsToActive(t *testing.T) {
	repo := &mockCourtRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Court) bool {
		return c.Name == "C1" && c.IsActive
	})).Return(&domain.Court{ID: 1, Name: "C1", CourtNumber: 1, IsActive: true}, nil)

	resp, err := NewService(repo, logger.Nop()).Create(context.Background(), &models.CourtRequest{Name: " C1 ", CourtNumber: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	repo.AssertExpectations(t)
}

func TestCreate_RequiresName(t *testing.T) {
	repo := &mockCourtRepo{}

	_, err := NewService(repo, logger.Nop()).Create(context.Background(), &models.CourtRequest{Name: "  "})

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_Deactivate(t *testing.T) {
	repo := &mockCourtRepo{}
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Court) bool {
		return c.ID == 2 && !c.IsActive
	})).Return(&domain.Court{ID: 2, Name: "C2", IsActive: false}, nil)

	resp, err := NewService(repo, logger.Nop()).Update(context.Background(), 2,
		&models.CourtRequest{Name: "C2", IsActive: ptr.Ptr(false)})

	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestErrorsMapping(t *testing.T) {
	repo := &mockCourtRepo{}
	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, courtRepo.ErrCourtNotFound)
	repo.On("Delete", mock.Anything, int64(1)).Return(courtRepo.ErrCourtInUse)
	repo.On("Delete", mock.Anything, int64(9)).Return(courtRepo.ErrCourtNotFound)
	repo.On("GetAll", mock.Anything).Return(nil, courtRepo.ErrExecQuery)
	svc := NewService(repo, logger.Nop())

	_, err := svc.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrCourtNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrCourtInUse)
	assert.ErrorIs(t, svc.Delete(context.Background(), 9), ErrCourtNotFound)

	_, err = svc.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	notificationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).([]*domain.Notification)
	return res, args.Error(1)
}

func (m *mockRepo) MarkAsRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestGetByUser(t *testing.T) {
	repo := &mockRepo{}
	relatedID := int64(5)
	repo.On("GetByUserID", mock.Anything, int64(7)).Return([]*domain.Notification{
		{ID: 2, UserID: 7, Type: domain.NotificationReservationConfirmed, RelatedID: &relatedID},
		{ID: 1, UserID: 7, Type: domain.NotificationReservationCreated, RelatedID: &relatedID, IsRead: true},
	}, nil)

	list, err := NewService(repo, logger.Nop()).GetByUser(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "reservation_confirmed", list[0].Type)
	assert.True(t, list[1].IsRead)
}

func TestMarkAsReadAndDelete(t *testing.T) {
	repo := &mockRepo{}
	repo.On("MarkAsRead", mock.Anything, int64(1)).Return(nil)
	repo.On("MarkAsRead", mock.Anything, int64(2)).Return(notificationRepo.ErrNotificationNotFound)
	repo.On("Delete", mock.Anything, int64(3)).Return(notificationRepo.ErrExecQuery)
	svc := NewService(repo, logger.Nop())

	assert.NoError(t, svc.MarkAsRead(context.Background(), 1))
	assert.ErrorIs(t, svc.MarkAsRead(context.Background(), 2), ErrNotificationNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), 3), ErrInternal)
}

package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// memoryRepo хранит бронирования в памяти, запись на занятый активный ключ
// отклоняется как уникальным индексом
type memoryRepo struct {
	items     map[int64]*domain.Reservation
	skipCheck bool
	listErr   error
}

func newMemoryRepo(items ...*domain.Reservation) *memoryRepo {
	r := &memoryRepo{items: map[int64]*domain.Reservation{}}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *memoryRepo) FindActiveBySlot(_ context.Context, key domain.ReservationKey) (*domain.Reservation, error) {
	if r.skipCheck {
		return nil, nil
	}
	return r.activeAt(key, 0), nil
}

func (r *memoryRepo) activeAt(key domain.ReservationKey, exceptID int64) *domain.Reservation {
	for _, item := range r.items {
		if item.ID != exceptID && item.IsActive() && item.SlotKey() == key {
			return item
		}
	}
	return nil
}

func (r *memoryRepo) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	result := make([]*domain.Reservation, 0)
	for _, item := range r.items {
		if filter.UserID != nil && item.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && item.Status != *filter.Status {
			continue
		}
		if filter.Date != nil && item.Date != *filter.Date {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

func (r *memoryRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	return r.List(ctx, domain.ReservationFilter{UserID: &userID})
}

func (r *memoryRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus, password *string) error {
	item, ok := r.items[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	if status != domain.ReservationStatusCancelled && r.activeAt(item.SlotKey(), id) != nil {
		return reservationRepo.ErrSlotAlreadyBooked
	}
	item.Status = status
	if password != nil {
		item.Password = *password
	}
	return nil
}

func (r *memoryRepo) Update(_ context.Context, res *domain.Reservation) error {
	if _, ok := r.items[res.ID]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	if res.IsActive() && r.activeAt(res.SlotKey(), res.ID) != nil {
		return reservationRepo.ErrSlotAlreadyBooked
	}
	clone := *res
	r.items[res.ID] = &clone
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(r.items, id)
	return nil
}

type recordingNotifications struct {
	created []*domain.Notification
	err     error
}

func (n *recordingNotifications) Create(_ context.Context, notification *domain.Notification) (*domain.Notification, error) {
	if n.err != nil {
		return nil, n.err
	}
	n.created = append(n.created, notification)
	return notification, nil
}

type passThroughTx struct{}

func (passThroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var taipei = time.FixedZone("Asia/Taipei", 8*60*60)

func reservation(id int64, date types.Date, start, end string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		UserID:    7,
		CourtID:   1,
		Date:      date,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    status,
		PeopleNum: 1,
		Phone:     "0912345678",
		Password:  domain.DefaultBookingPassword,
	}
}

var day = types.NewDate(2025, time.June, 2)

func newService(repo *memoryRepo, notifications *recordingNotifications, allowReopen bool) *Service {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, taipei)
	return NewService(repo, notifications, passThroughTx{}, fixedTime{now: now},
		Options{AllowReopenCancelled: allowReopen, Location: taipei}, logger.Nop())
}

func TestUpdateStatus_ConfirmEmitsNotification(t *testing.T) {
	repo := newMemoryRepo(reservation(1, day, "09:00", "10:00", domain.ReservationStatusPending))
	notifications := &recordingNotifications{}
	svc := newService(repo, notifications, true)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status:   "confirmed",
		Password: ptr.Ptr("1234"),
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "1234", resp.Password)
	assert.Equal(t, "1234", repo.items[1].Password)
	require.Len(t, notifications.created, 1)
	assert.Equal(t, domain.NotificationReservationConfirmed, notifications.created[0].Type)
	assert.Equal(t, int64(7), notifications.created[0].UserID)
}

func TestUpdateStatus_CancelEmitsNotification(t *testing.T) {
	repo := newMemoryRepo(reservation(1, day, "09:00", "10:00", domain.ReservationStatusConfirmed))
	notifications := &recordingNotifications{}
	svc := newService(repo, notifications, true)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled"})

	require.NoError(t, err)
	require.Len(t, notifications.created, 1)
	assert.Equal(t, domain.NotificationReservationCancelled, notifications.created[0].Type)
	assert.Equal(t, domain.DefaultBookingPassword, repo.items[1].Password)
}

func TestUpdateStatus_PendingEmitsNothing(t *testing.T) {
	repo := newMemoryRepo(reservation(1, day, "09:00", "10:00", domain.ReservationStatusConfirmed))
	notifications := &recordingNotifications{}
	svc := newService(repo, notifications, true)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "pending"})

	require.NoError(t, err)
	assert.Empty(t, notifications.created)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := newMemoryRepo(reservation(1, day, "09:00", "10:00", domain.ReservationStatusPending))
	svc := newService(repo, &recordingNotifications{}, true)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "expired"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, domain.ReservationStatusPending, repo.items[1].Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newService(newMemoryRepo(), &recordingNotifications{}, true)

	_, err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "confirmed"})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdateStatus_ReopenCancelled(t *testing.T) {
	t.Run("allowed when slot is free", func(t *testing.T) {
		repo := newMemoryRepo(reservation(1, day, "09:00", "10:00", domain.ReservationStatusCancelled))
		svc := newService(repo, &recordingNotifications{}, true)

		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("conflict when slot was rebooked", func(t *testing.T) {
		repo := newMemoryRepo(
			reservation(1, day, "09:00", "10:00", domain.ReservationStatusCancelled),
			reservation(2, day, "09:00", "10:00", domain.ReservationStatusPending),
		)
		svc := newService(repo, &recordingNotifications{}, true)

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "pending"})

		assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
		assert.Equal(t, domain.ReservationStatusCancelled, repo.items[1].Status)
	})

	t.Run("conflict detected by storage", func(t *testing.T) {
		repo := newMemoryRepo(
			reservation(1, day, "09:00", "10:00", domain.ReservationStatusCancelled),
			reservation(2, day, "09:00", "10:00", domain.ReservationStatusPending),
		)
		repo.skipCheck = true
		svc := newService(repo, &recordingNotifications{}, true)

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

		assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	})

	t.Run("disabled by configuration", func(t *testing.T) {
		repo := newMemoryRepo(reservation(1, day, "09:00", "10:00", domain.ReservationStatusCancelled))
		notifications := &recordingNotifications{}
		svc := newService(repo, notifications, false)

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

		assert.ErrorIs(t, err, ErrCannotReopen)
		assert.Empty(t, notifications.created)
	})
}

func TestUpdateStatus_NotificationFailure(t *testing.T) {
	repo := newMemoryRepo(reservation(1, day, "09:00", "10:00", domain.ReservationStatusPending))
	svc := newService(repo, &recordingNotifications{err: errors.New("insert failed")}, true)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := newMemoryRepo(reservation(1, day, "09:00", "10:00", domain.ReservationStatusPending))
	svc := newService(repo, &recordingNotifications{}, true)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateRequest{
		Phone:     ptr.Ptr(" 0987654321 "),
		PeopleNum: ptr.Ptr(4),
		Price:     ptr.Ptr(450.0),
	})

	require.NoError(t, err)
	assert.Equal(t, "0987654321", resp.Phone)
	assert.Equal(t, 4, resp.PeopleNum)
	assert.Equal(t, 450.0, resp.Price)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "2025-06-02", resp.Date)
}

func TestUpdate_MoveOntoOccupiedSlot(t *testing.T) {
	repo := newMemoryRepo(
		reservation(1, day, "09:00", "10:00", domain.ReservationStatusPending),
		reservation(2, day, "10:00", "11:00", domain.ReservationStatusConfirmed),
	)
	svc := newService(repo, &recordingNotifications{}, true)

	_, err := svc.Update(context.Background(), 1, &models.UpdateRequest{
		StartTime: ptr.Ptr("10:00"),
		EndTime:   ptr.Ptr("11:00"),
	})

	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Equal(t, types.TimeString("09:00"), repo.items[1].StartTime)
}

func TestUpdate_MoveToFreeSlot(t *testing.T) {
	repo := newMemoryRepo(
		reservation(1, day, "09:00", "10:00", domain.ReservationStatusPending),
		reservation(2, day, "10:00", "11:00", domain.ReservationStatusCancelled),
	)
	svc := newService(repo, &recordingNotifications{}, true)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateRequest{
		Date:      ptr.Ptr("2025-06-02"),
		StartTime: ptr.Ptr("10:00"),
		EndTime:   ptr.Ptr("11:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestUpdate_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateRequest
	}{
		{"empty", &models.UpdateRequest{}},
		{"blank phone", &models.UpdateRequest{Phone: ptr.Ptr("  ")}},
		{"bad date", &models.UpdateRequest{Date: ptr.Ptr("02/06/2025")}},
		{"bad time", &models.UpdateRequest{StartTime: ptr.Ptr("9am")}},
		{"end before start", &models.UpdateRequest{EndTime: ptr.Ptr("08:00")}},
		{"zero people", &models.UpdateRequest{PeopleNum: ptr.Ptr(0)}},
		{"negative price", &models.UpdateRequest{Price: ptr.Ptr(-5.0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepo(reservation(1, day, "09:00", "10:00", domain.ReservationStatusPending))
			svc := newService(repo, &recordingNotifications{}, true)

			_, err := svc.Update(context.Background(), 1, tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetByID_ExpiredFlag(t *testing.T) {
	past := types.NewDate(2025, time.May, 31)
	repo := newMemoryRepo(
		reservation(1, past, "09:00", "10:00", domain.ReservationStatusConfirmed),
		reservation(2, past, "09:00", "10:00", domain.ReservationStatusCancelled),
		reservation(3, day, "09:00", "10:00", domain.ReservationStatusPending),
	)
	svc := newService(repo, &recordingNotifications{}, true)

	expired, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, expired.Expired)
	assert.Equal(t, "confirmed", expired.Status)

	cancelled, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, cancelled.Expired)

	upcoming, err := svc.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, upcoming.Expired)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(newMemoryRepo(), &recordingNotifications{}, true)

	_, err := svc.GetByID(context.Background(), 5)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList_Filters(t *testing.T) {
	repo := newMemoryRepo(
		reservation(1, day, "09:00", "10:00", domain.ReservationStatusPending),
		reservation(2, day, "10:00", "11:00", domain.ReservationStatusConfirmed),
		reservation(3, day.AddDays(1), "09:00", "10:00", domain.ReservationStatusConfirmed),
	)
	svc := newService(repo, &recordingNotifications{}, true)

	resp, err := svc.List(context.Background(), &models.ListRequest{
		Date:   ptr.Ptr("2025-06-02"),
		Status: ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(2), resp.Reservations[0].ID)
}

func TestList_InvalidFilter(t *testing.T) {
	svc := newService(newMemoryRepo(), &recordingNotifications{}, true)

	_, err := svc.List(context.Background(), &models.ListRequest{Status: ptr.Ptr("done")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListRequest{Date: ptr.Ptr("tomorrow")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_RepositoryError(t *testing.T) {
	repo := newMemoryRepo()
	repo.listErr = errors.New("db down")
	svc := newService(repo, &recordingNotifications{}, true)

	_, err := svc.List(context.Background(), &models.ListRequest{})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByUser(t *testing.T) {
	other := reservation(2, day, "10:00", "11:00", domain.ReservationStatusPending)
	other.UserID = 8
	repo := newMemoryRepo(reservation(1, day, "09:00", "10:00", domain.ReservationStatusPending), other)
	svc := newService(repo, &recordingNotifications{}, true)

	resp, err := svc.GetByUser(context.Background(), 7)

	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), resp.Reservations[0].ID)
}

func TestDelete(t *testing.T) {
	repo := newMemoryRepo(reservation(1, day, "09:00", "10:00", domain.ReservationStatusPending))
	svc := newService(repo, &recordingNotifications{}, true)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, repo.items)
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrReservationNotFound)
}

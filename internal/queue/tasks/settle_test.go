package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hotel-booking/engine/internal/models"
	"github.com/hotel-booking/engine/internal/repository"
	"github.com/hotel-booking/engine/internal/services"
	"github.com/hotel-booking/engine/pkg/logger"
	"github.com/hotel-booking/engine/pkg/pagination"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("info", "json"); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) CreateBooking(ctx context.Context, input *services.CreateBookingInput) (*models.Booking, error) {
	args := m.Called(ctx, input)
	if v := args.Get(0); v != nil {
		return v.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) ListBookings(ctx context.Context, filter repository.BookingFilter, p pagination.Params) (pagination.Page[models.Booking], error) {
	args := m.Called(ctx, filter, p)
	return args.Get(0).(pagination.Page[models.Booking]), args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if v := args.Get(0); v != nil {
		return v.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) UpdateBooking(ctx context.Context, bookingID uuid.UUID, input *services.UpdateBookingInput) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, input)
	if v := args.Get(0); v != nil {
		return v.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	return m.Called(ctx, bookingID).Error(0)
}

func (m *mockBookingService) SettleBookings(ctx context.Context, now time.Time) (*services.SettleResult, error) {
	args := m.Called(ctx, now)
	if v := args.Get(0); v != nil {
		return v.(*services.SettleResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestNewSettleTask(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	task, err := NewSettleTask(now)
	require.NoError(t, err)
	assert.Equal(t, TypeSettleBookings, task.Type())

	var p SettlePayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.True(t, now.Equal(p.Now))
}

func TestHandleSettle_UsesPayloadTime(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	svc := new(mockBookingService)
	svc.On("SettleBookings", mock.Anything, now).Return(&services.SettleResult{Completed: 2, Canceled: 1}, nil)

	task, err := NewSettleTask(now)
	require.NoError(t, err)

	h := NewSettleTaskHandler(svc)
	require.NoError(t, h.HandleSettle(context.Background(), task))
	svc.AssertExpectations(t)
}

func TestHandleSettle_ZeroTimeUsesClock(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	svc := new(mockBookingService)
	svc.On("SettleBookings", mock.Anything, now).Return(&services.SettleResult{}, nil)

	task, err := NewSettleTask(time.Time{})
	require.NoError(t, err)

	h := NewSettleTaskHandler(svc)
	h.clock = func() time.Time { return now }
	require.NoError(t, h.HandleSettle(context.Background(), task))
	svc.AssertExpectations(t)
}

func TestHandleSettle_BadPayloadSkipsRetry(t *testing.T) {
	svc := new(mockBookingService)
	h := NewSettleTaskHandler(svc)

	err := h.HandleSettle(context.Background(), asynq.NewTask(TypeSettleBookings, []byte("{")))
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	svc.AssertNotCalled(t, "SettleBookings", mock.Anything, mock.Anything)
}

func TestHandleSettle_ServiceError(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("SettleBookings", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	task, err := NewSettleTask(time.Time{})
	require.NoError(t, err)

	err = NewSettleTaskHandler(svc).HandleSettle(context.Background(), task)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settle bookings failed")
}

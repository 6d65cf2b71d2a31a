package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/hotel-booking/engine/internal/models"
	"github.com/hotel-booking/engine/internal/repository"
	"github.com/hotel-booking/engine/internal/services"
	"github.com/hotel-booking/engine/pkg/pagination"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) CreateUser(ctx context.Context, input *services.CreateUserInput) (*models.User, error) {
	args := m.Called(ctx, input)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) ListUsers(ctx context.Context, f repository.UserFilter, p pagination.Params) (pagination.Page[models.User], error) {
	args := m.Called(ctx, f, p)
	return args.Get(0).(pagination.Page[models.User]), args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id uuid.UUID, input *services.UpdateUserInput) (*models.User, error) {
	args := m.Called(ctx, id, input)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockHotelService struct {
	mock.Mock
}

func (m *mockHotelService) CreateHotel(ctx context.Context, input *services.CreateHotelInput) (*models.Hotel, error) {
	args := m.Called(ctx, input)
	if v := args.Get(0); v != nil {
		return v.(*models.Hotel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHotelService) ListHotels(ctx context.Context, f repository.HotelFilter, p pagination.Params) (pagination.Page[models.Hotel], error) {
	args := m.Called(ctx, f, p)
	return args.Get(0).(pagination.Page[models.Hotel]), args.Error(1)
}

func (m *mockHotelService) ListDeletedHotels(ctx context.Context, f repository.HotelFilter, p pagination.Params) (pagination.Page[models.Hotel], error) {
	args := m.Called(ctx, f, p)
	return args.Get(0).(pagination.Page[models.Hotel]), args.Error(1)
}

func (m *mockHotelService) GetHotel(ctx context.Context, id uuid.UUID) (*models.Hotel, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Hotel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHotelService) UpdateHotel(ctx context.Context, id uuid.UUID, input *services.UpdateHotelInput) (*models.Hotel, error) {
	args := m.Called(ctx, id, input)
	if v := args.Get(0); v != nil {
		return v.(*models.Hotel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHotelService) DeleteHotel(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockHotelService) RestoreHotel(ctx context.Context, id uuid.UUID) (*models.Hotel, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Hotel), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRoomService struct {
	mock.Mock
}

func (m *mockRoomService) CreateRoom(ctx context.Context, hotelID uuid.UUID, input *services.CreateRoomInput) (*models.Room, error) {
	args := m.Called(ctx, hotelID, input)
	if v := args.Get(0); v != nil {
		return v.(*models.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomService) ListRooms(ctx context.Context, hotelID uuid.UUID, f repository.RoomFilter, p pagination.Params) (pagination.Page[models.Room], error) {
	args := m.Called(ctx, hotelID, f, p)
	return args.Get(0).(pagination.Page[models.Room]), args.Error(1)
}

func (m *mockRoomService) GetRoom(ctx context.Context, hotelID, roomID uuid.UUID) (*models.Room, error) {
	args := m.Called(ctx, hotelID, roomID)
	if v := args.Get(0); v != nil {
		return v.(*models.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomService) UpdateRoom(ctx context.Context, hotelID, roomID uuid.UUID, input *services.UpdateRoomInput) (*models.Room, error) {
	args := m.Called(ctx, hotelID, roomID, input)
	if v := args.Get(0); v != nil {
		return v.(*models.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomService) DeleteRoom(ctx context.Context, hotelID, roomID uuid.UUID) error {
	return m.Called(ctx, hotelID, roomID).Error(0)
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

func (m *mockBookingService) ListBookings(ctx context.Context, f repository.BookingFilter, p pagination.Params) (pagination.Page[models.Booking], error) {
	args := m.Called(ctx, f, p)
	return args.Get(0).(pagination.Page[models.Booking]), args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) UpdateBooking(ctx context.Context, id uuid.UUID, input *services.UpdateBookingInput) (*models.Booking, error) {
	args := m.Called(ctx, id, input)
	if v := args.Get(0); v != nil {
		return v.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBookingService) SettleBookings(ctx context.Context, now time.Time) (*services.SettleResult, error) {
	args := m.Called(ctx, now)
	if v := args.Get(0); v != nil {
		return v.(*services.SettleResult), args.Error(1)
	}
	return nil, args.Error(1)
}

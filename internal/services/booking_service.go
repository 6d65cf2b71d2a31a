package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hotel-booking/engine/internal/models"
	"github.com/hotel-booking/engine/internal/repository"
	appErr "github.com/hotel-booking/engine/pkg/errors"
	"github.com/hotel-booking/engine/pkg/logger"
	"github.com/hotel-booking/engine/pkg/pagination"
)

type BookingService interface {
	CreateBooking(ctx context.Context, input *CreateBookingInput) (*models.Booking, error)
	ListBookings(ctx context.Context, filter repository.BookingFilter, p pagination.Params) (pagination.Page[models.Booking], error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	UpdateBooking(ctx context.Context, bookingID uuid.UUID, input *UpdateBookingInput) (*models.Booking, error)
	DeleteBooking(ctx context.Context, bookingID uuid.UUID) error

	// SettleBookings is run periodically by the worker.
	SettleBookings(ctx context.Context, now time.Time) (*SettleResult, error)
}

type CreateBookingInput struct {
	UserID       uuid.UUID
	HotelID      uuid.UUID
	RoomID       uuid.UUID
	Guests       int
	CheckInDate  time.Time
	CheckoutDate time.Time
	Status       models.BookingStatus
}

// UpdateBookingInput changes only the non-nil fields. The period and the
// booked room cannot be changed.
type UpdateBookingInput struct {
	Guests *int
	Status *models.BookingStatus
}

type SettleResult struct {
	Completed int64 `json:"completed"`
	Canceled  int64 `json:"canceled"`
}

type bookingService struct {
	userRepo    repository.UserRepository
	hotelRepo   repository.HotelRepository
	bookingRepo repository.BookingRepository
}

func NewBookingService(userRepo repository.UserRepository, hotelRepo repository.HotelRepository, bookingRepo repository.BookingRepository) BookingService {
	return &bookingService{userRepo: userRepo, hotelRepo: hotelRepo, bookingRepo: bookingRepo}
}

var _ BookingService = (*bookingService)(nil)

// CreateBooking validates the period, resolves the user, hotel and room and
// inserts the booking when the room is free and large enough.
func (s *bookingService) CreateBooking(ctx context.Context, input *CreateBookingInput) (*models.Booking, error) {
	logger.L().Info("create booking called",
		zap.String("user_id", input.UserID.String()),
		zap.String("hotel_id", input.HotelID.String()),
		zap.String("room_id", input.RoomID.String()),
		zap.Time("check_in", input.CheckInDate),
		zap.Time("check_out", input.CheckoutDate),
	)

	if !input.CheckInDate.Before(input.CheckoutDate) {
		return nil, appErr.New(appErr.CodeInvalid, "checkInDate must be before checkoutDate")
	}
	if input.Guests < 1 {
		return nil, appErr.New(appErr.CodeInvalid, "guests must be a positive number")
	}
	status := input.Status
	if status == "" {
		status = models.BookingStatusPending
	}
	if !validStatus(status) {
		return nil, appErr.Newf(appErr.CodeInvalid, "status must be one of: %v", models.BookingStatuses)
	}

	var u models.User
	if err := s.userRepo.GetByID(ctx, input.UserID, &u); err != nil {
		return nil, describe(err, "user")
	}
	var h models.Hotel
	if err := s.hotelRepo.GetByID(ctx, input.HotelID, &h); err != nil {
		return nil, describe(err, "hotel")
	}

	b := &models.Booking{
		UserID:       input.UserID,
		HotelID:      input.HotelID,
		RoomID:       input.RoomID,
		Guests:       input.Guests,
		CheckInDate:  input.CheckInDate,
		CheckoutDate: input.CheckoutDate,
		Status:       status,
	}
	err := s.bookingRepo.CreateIfAvailable(ctx, b, func(room models.Room, overlapping int64) error {
		if !b.Active() {
			overlapping = 0
		}
		return VerifyAvailability(overlapping, room, b.Guests)
	})
	if err != nil {
		return nil, describe(err, "room")
	}

	logger.L().Info("booking created", zap.String("booking_id", b.ID.String()), zap.String("room_id", b.RoomID.String()))
	return s.GetBooking(ctx, b.ID)
}

func (s *bookingService) ListBookings(ctx context.Context, filter repository.BookingFilter, p pagination.Params) (pagination.Page[models.Booking], error) {
	p = p.Normalize()
	logger.L().Info("list bookings", zap.Int("page", p.Page), zap.Int("per_page", p.PerPage))
	rows, count, err := s.bookingRepo.List(ctx, filter, p)
	if err != nil {
		return pagination.Page[models.Booking]{}, err
	}
	return pagination.NewPage(p, rows, count), nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	logger.L().Info("get booking", zap.String("booking_id", bookingID.String()))
	var b models.Booking
	if err := s.bookingRepo.GetWithRelations(ctx, bookingID, &b); err != nil {
		return nil, describe(err, "booking")
	}
	return &b, nil
}

// UpdateBooking re-checks the room capacity when the guest count changes.
// Moving a canceled booking back to an active status also requires the
// period to be free again. Both checks run under the room lock.
func (s *bookingService) UpdateBooking(ctx context.Context, bookingID uuid.UUID, input *UpdateBookingInput) (*models.Booking, error) {
	logger.L().Info("update booking", zap.String("booking_id", bookingID.String()))
	b, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	guestsChanged := input.Guests != nil
	if guestsChanged {
		if *input.Guests < 1 {
			return nil, appErr.New(appErr.CodeInvalid, "guests must be a positive number")
		}
		b.Guests = *input.Guests
	}
	reactivated := false
	if input.Status != nil {
		if !validStatus(*input.Status) {
			return nil, appErr.Newf(appErr.CodeInvalid, "status must be one of: %v", models.BookingStatuses)
		}
		reactivated = !b.Active() && *input.Status != models.BookingStatusCanceled
		b.Status = *input.Status
	}

	err = s.bookingRepo.UpdateIfAvailable(ctx, b, func(room models.Room, overlapping int64) error {
		if reactivated && overlapping > 0 {
			return appErr.New(appErr.CodeConflict, MsgPeriodReserved)
		}
		if guestsChanged {
			return VerifyCapacity(room, b.Guests)
		}
		return nil
	})
	if err != nil {
		return nil, describe(err, "room")
	}

	logger.L().Info("booking updated", zap.String("booking_id", bookingID.String()), zap.String("status", string(b.Status)))
	return b, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	logger.L().Info("delete booking", zap.String("booking_id", bookingID.String()))
	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		return describe(err, "booking")
	}
	logger.L().Info("booking deleted", zap.String("booking_id", bookingID.String()))
	return nil
}

// SettleBookings completes confirmed bookings whose checkout has passed and
// cancels pending bookings that were never confirmed before check-in.
func (s *bookingService) SettleBookings(ctx context.Context, now time.Time) (*SettleResult, error) {
	logger.L().Info("settle bookings", zap.Time("now", now))
	completed, canceled, err := s.bookingRepo.SettleExpired(ctx, now)
	if err != nil {
		return nil, err
	}
	logger.L().Info("bookings settled", zap.Int64("completed", completed), zap.Int64("canceled", canceled))
	return &SettleResult{Completed: completed, Canceled: canceled}, nil
}

package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hotel-booking/engine/internal/models"
	"github.com/hotel-booking/engine/internal/repository"
	appErr "github.com/hotel-booking/engine/pkg/errors"
	"github.com/hotel-booking/engine/pkg/logger"
	"github.com/hotel-booking/engine/pkg/pagination"
)

// RoomService manages the rooms of a hotel. Every operation first checks
// that the hotel exists and is not deleted.
type RoomService interface {
	CreateRoom(ctx context.Context, hotelID uuid.UUID, input *CreateRoomInput) (*models.Room, error)
	ListRooms(ctx context.Context, hotelID uuid.UUID, filter repository.RoomFilter, p pagination.Params) (pagination.Page[models.Room], error)
	GetRoom(ctx context.Context, hotelID, roomID uuid.UUID) (*models.Room, error)
	UpdateRoom(ctx context.Context, hotelID, roomID uuid.UUID, input *UpdateRoomInput) (*models.Room, error)
	DeleteRoom(ctx context.Context, hotelID, roomID uuid.UUID) error
}

type CreateRoomInput struct {
	SingleBed int
	DoubleBed int
	Number    int
	Price     decimal.Decimal
}

type UpdateRoomInput struct {
	SingleBed *int
	DoubleBed *int
	Number    *int
	Price     *decimal.Decimal
}

type roomService struct {
	hotelRepo repository.HotelRepository
	roomRepo  repository.RoomRepository
}

func NewRoomService(hotelRepo repository.HotelRepository, roomRepo repository.RoomRepository) RoomService {
	return &roomService{hotelRepo: hotelRepo, roomRepo: roomRepo}
}

var _ RoomService = (*roomService)(nil)

func validatePrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return appErr.New(appErr.CodeInvalid, "price must not be negative")
	}
	if !p.Equal(p.Round(2)) {
		return appErr.New(appErr.CodeInvalid, "price must have at most 2 decimal places")
	}
	return nil
}

// verifyBookedGuests rejects bed changes that would leave an active booking
// of the room above its capacity.
func verifyBookedGuests(room models.Room, booked int) error {
	if c := room.Capacity(); c < booked {
		return appErr.Newf(appErr.CodeInvalid, "singleBed/doubleBed leave room capacity (%d) below booked guests (%d)", c, booked)
	}
	return nil
}

func (s *roomService) requireHotel(ctx context.Context, hotelID uuid.UUID) error {
	var h models.Hotel
	if err := s.hotelRepo.GetByID(ctx, hotelID, &h); err != nil {
		return describe(err, "hotel")
	}
	return nil
}

func (s *roomService) CreateRoom(ctx context.Context, hotelID uuid.UUID, input *CreateRoomInput) (*models.Room, error) {
	logger.L().Info("create room called", zap.String("hotel_id", hotelID.String()), zap.Int("number", input.Number))
	if err := validatePrice(input.Price); err != nil {
		return nil, err
	}
	if err := s.requireHotel(ctx, hotelID); err != nil {
		return nil, err
	}

	r := &models.Room{
		HotelID:   hotelID,
		SingleBed: input.SingleBed,
		DoubleBed: input.DoubleBed,
		Number:    input.Number,
		Price:     input.Price,
	}
	if err := s.roomRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	logger.L().Info("room created", zap.String("room_id", r.ID.String()), zap.String("hotel_id", hotelID.String()))
	return r, nil
}

func (s *roomService) ListRooms(ctx context.Context, hotelID uuid.UUID, filter repository.RoomFilter, p pagination.Params) (pagination.Page[models.Room], error) {
	p = p.Normalize()
	logger.L().Info("list rooms", zap.String("hotel_id", hotelID.String()), zap.Int("page", p.Page), zap.Int("per_page", p.PerPage))
	if err := s.requireHotel(ctx, hotelID); err != nil {
		return pagination.Page[models.Room]{}, err
	}
	rows, count, err := s.roomRepo.ListInHotel(ctx, hotelID, filter, p)
	if err != nil {
		return pagination.Page[models.Room]{}, err
	}
	return pagination.NewPage(p, rows, count), nil
}

func (s *roomService) GetRoom(ctx context.Context, hotelID, roomID uuid.UUID) (*models.Room, error) {
	logger.L().Info("get room", zap.String("hotel_id", hotelID.String()), zap.String("room_id", roomID.String()))
	if err := s.requireHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	var r models.Room
	if err := s.roomRepo.GetInHotel(ctx, hotelID, roomID, &r); err != nil {
		return nil, describe(err, "room")
	}
	return &r, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, hotelID, roomID uuid.UUID, input *UpdateRoomInput) (*models.Room, error) {
	logger.L().Info("update room", zap.String("hotel_id", hotelID.String()), zap.String("room_id", roomID.String()))
	r, err := s.GetRoom(ctx, hotelID, roomID)
	if err != nil {
		return nil, err
	}

	if input.SingleBed != nil {
		r.SingleBed = *input.SingleBed
	}
	if input.DoubleBed != nil {
		r.DoubleBed = *input.DoubleBed
	}
	if input.Number != nil {
		r.Number = *input.Number
	}
	if input.Price != nil {
		if err := validatePrice(*input.Price); err != nil {
			return nil, err
		}
		r.Price = *input.Price
	}

	err = s.roomRepo.UpdateIfFits(ctx, r, func(booked int) error {
		return verifyBookedGuests(*r, booked)
	})
	if err != nil {
		return nil, describe(err, "room")
	}

	logger.L().Info("room updated", zap.String("room_id", roomID.String()))
	return r, nil
}

// DeleteRoom removes the room together with its bookings.
func (s *roomService) DeleteRoom(ctx context.Context, hotelID, roomID uuid.UUID) error {
	logger.L().Info("delete room", zap.String("hotel_id", hotelID.String()), zap.String("room_id", roomID.String()))
	if err := s.requireHotel(ctx, hotelID); err != nil {
		return err
	}
	if err := s.roomRepo.DeleteInHotel(ctx, hotelID, roomID); err != nil {
		return describe(err, "room")
	}
	logger.L().Info("room deleted", zap.String("room_id", roomID.String()))
	return nil
}

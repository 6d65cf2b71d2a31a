package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hotel-booking/engine/internal/models"
	"github.com/hotel-booking/engine/internal/repository"
	appErr "github.com/hotel-booking/engine/pkg/errors"
	"github.com/hotel-booking/engine/pkg/logger"
	"github.com/hotel-booking/engine/pkg/pagination"
)

type HotelService interface {
	CreateHotel(ctx context.Context, input *CreateHotelInput) (*models.Hotel, error)
	ListHotels(ctx context.Context, filter repository.HotelFilter, p pagination.Params) (pagination.Page[models.Hotel], error)
	ListDeletedHotels(ctx context.Context, filter repository.HotelFilter, p pagination.Params) (pagination.Page[models.Hotel], error)
	GetHotel(ctx context.Context, hotelID uuid.UUID) (*models.Hotel, error)
	UpdateHotel(ctx context.Context, hotelID uuid.UUID, input *UpdateHotelInput) (*models.Hotel, error)
	DeleteHotel(ctx context.Context, hotelID uuid.UUID) error
	RestoreHotel(ctx context.Context, hotelID uuid.UUID) (*models.Hotel, error)
}

type AddressInput struct {
	Street   string
	Number   *int
	District string
	City     string
	State    string
	Zipcode  string
}

type AddressPatch struct {
	Street   *string
	Number   *int
	District *string
	City     *string
	State    *string
	Zipcode  *string
}

type CreateHotelInput struct {
	Name         string
	ContactPhone string
	Rating       models.HotelRating
	Address      AddressInput
}

// UpdateHotelInput changes only the non-nil fields, including those of the
// nested address.
type UpdateHotelInput struct {
	Name         *string
	ContactPhone *string
	Rating       *models.HotelRating
	Address      *AddressPatch
}

type hotelService struct {
	hotelRepo repository.HotelRepository
}

func NewHotelService(hotelRepo repository.HotelRepository) HotelService {
	return &hotelService{hotelRepo: hotelRepo}
}

var _ HotelService = (*hotelService)(nil)

func (s *hotelService) CreateHotel(ctx context.Context, input *CreateHotelInput) (*models.Hotel, error) {
	logger.L().Info("create hotel called", zap.String("name", input.Name))
	if !validRating(input.Rating) {
		return nil, appErr.Newf(appErr.CodeInvalid, "rating must be one of: %v", models.HotelRatings)
	}

	h := &models.Hotel{
		Name:         input.Name,
		ContactPhone: input.ContactPhone,
		Rating:       input.Rating,
		Address: models.Address{
			Street:   input.Address.Street,
			Number:   input.Address.Number,
			District: input.Address.District,
			City:     input.Address.City,
			State:    input.Address.State,
			Zipcode:  input.Address.Zipcode,
		},
	}
	if err := s.hotelRepo.CreateWithAddress(ctx, h); err != nil {
		return nil, err
	}

	logger.L().Info("hotel created", zap.String("hotel_id", h.ID.String()), zap.String("address_id", h.AddressID.String()))
	return h, nil
}

func (s *hotelService) ListHotels(ctx context.Context, filter repository.HotelFilter, p pagination.Params) (pagination.Page[models.Hotel], error) {
	return s.list(ctx, filter, p, false)
}

func (s *hotelService) ListDeletedHotels(ctx context.Context, filter repository.HotelFilter, p pagination.Params) (pagination.Page[models.Hotel], error) {
	return s.list(ctx, filter, p, true)
}

func (s *hotelService) list(ctx context.Context, filter repository.HotelFilter, p pagination.Params, deleted bool) (pagination.Page[models.Hotel], error) {
	p = p.Normalize()
	logger.L().Info("list hotels", zap.Bool("deleted", deleted), zap.Int("page", p.Page), zap.Int("per_page", p.PerPage))
	rows, count, err := s.hotelRepo.List(ctx, filter, p, deleted)
	if err != nil {
		return pagination.Page[models.Hotel]{}, err
	}
	return pagination.NewPage(p, rows, count), nil
}

func (s *hotelService) GetHotel(ctx context.Context, hotelID uuid.UUID) (*models.Hotel, error) {
	logger.L().Info("get hotel", zap.String("hotel_id", hotelID.String()))
	var h models.Hotel
	if err := s.hotelRepo.GetByID(ctx, hotelID, &h); err != nil {
		return nil, describe(err, "hotel")
	}
	return &h, nil
}

func (s *hotelService) UpdateHotel(ctx context.Context, hotelID uuid.UUID, input *UpdateHotelInput) (*models.Hotel, error) {
	logger.L().Info("update hotel", zap.String("hotel_id", hotelID.String()))
	var h models.Hotel
	if err := s.hotelRepo.GetByID(ctx, hotelID, &h); err != nil {
		return nil, describe(err, "hotel")
	}

	if input.Name != nil {
		h.Name = *input.Name
	}
	if input.ContactPhone != nil {
		h.ContactPhone = *input.ContactPhone
	}
	if input.Rating != nil {
		if !validRating(*input.Rating) {
			return nil, appErr.Newf(appErr.CodeInvalid, "rating must be one of: %v", models.HotelRatings)
		}
		h.Rating = *input.Rating
	}
	if a := input.Address; a != nil {
		if a.Street != nil {
			h.Address.Street = *a.Street
		}
		if a.Number != nil {
			h.Address.Number = a.Number
		}
		if a.District != nil {
			h.Address.District = *a.District
		}
		if a.City != nil {
			h.Address.City = *a.City
		}
		if a.State != nil {
			h.Address.State = *a.State
		}
		if a.Zipcode != nil {
			h.Address.Zipcode = *a.Zipcode
		}
	}

	if err := s.hotelRepo.UpdateWithAddress(ctx, &h); err != nil {
		return nil, err
	}

	logger.L().Info("hotel updated", zap.String("hotel_id", hotelID.String()))
	return &h, nil
}

// DeleteHotel soft deletes the hotel and its address.
func (s *hotelService) DeleteHotel(ctx context.Context, hotelID uuid.UUID) error {
	logger.L().Info("delete hotel", zap.String("hotel_id", hotelID.String()))
	if err := s.hotelRepo.SoftDelete(ctx, hotelID); err != nil {
		return describe(err, "hotel")
	}
	logger.L().Info("hotel deleted", zap.String("hotel_id", hotelID.String()))
	return nil
}

func (s *hotelService) RestoreHotel(ctx context.Context, hotelID uuid.UUID) (*models.Hotel, error) {
	logger.L().Info("restore hotel", zap.String("hotel_id", hotelID.String()))
	var h models.Hotel
	if err := s.hotelRepo.Restore(ctx, hotelID, &h); err != nil {
		return nil, describe(err, "deleted hotel")
	}
	logger.L().Info("hotel restored", zap.String("hotel_id", hotelID.String()))
	return &h, nil
}

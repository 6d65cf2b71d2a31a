package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/hotel-booking/engine/internal/models"
)

type UserDto struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	TaxID     string    `json:"taxId"`
	Phone     string    `json:"phone"`
	Birthdate string    `json:"birthdate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AddressDto struct {
	ID        uuid.UUID  `json:"id"`
	Street    string     `json:"street"`
	Number    *int       `json:"number"`
	District  string     `json:"district"`
	City      string     `json:"city"`
	State     string     `json:"state"`
	Zipcode   string     `json:"zipcode"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

type HotelDto struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	ContactPhone string     `json:"contactPhone"`
	Rating       string     `json:"rating"`
	Address      AddressDto `json:"address"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"deletedAt"`
}

type RoomDto struct {
	ID        uuid.UUID   `json:"id"`
	HotelID   uuid.UUID   `json:"hotelId"`
	Number    int         `json:"number"`
	SingleBed int         `json:"singleBed"`
	DoubleBed int         `json:"doubleBed"`
	Capacity  int         `json:"capacity"`
	Price     json.Number `json:"price"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type BookingDto struct {
	ID           uuid.UUID `json:"id"`
	Guests       int       `json:"guests"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckoutDate time.Time `json:"checkoutDate"`
	Status       string    `json:"status"`
	User         UserDto   `json:"user"`
	Hotel        HotelDto  `json:"hotel"`
	Room         RoomDto   `json:"room"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func NewUserDto(u *models.User) UserDto {
	return UserDto{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		TaxID:     u.TaxID,
		Phone:     u.Phone,
		Birthdate: time.Time(u.Birthdate).Format(time.DateOnly),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewAddressDto(a *models.Address) AddressDto {
	dto := AddressDto{
		ID:        a.ID,
		Street:    a.Street,
		Number:    a.Number,
		District:  a.District,
		City:      a.City,
		State:     a.State,
		Zipcode:   a.Zipcode,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.DeletedAt.Valid {
		dto.DeletedAt = &a.DeletedAt.Time
	}
	return dto
}

func NewHotelDto(h *models.Hotel) HotelDto {
	dto := HotelDto{
		ID:           h.ID,
		Name:         h.Name,
		ContactPhone: h.ContactPhone,
		Rating:       string(h.Rating),
		Address:      NewAddressDto(&h.Address),
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}
	if h.DeletedAt.Valid {
		dto.DeletedAt = &h.DeletedAt.Time
	}
	return dto
}

func NewRoomDto(r *models.Room) RoomDto {
	return RoomDto{
		ID:        r.ID,
		HotelID:   r.HotelID,
		Number:    r.Number,
		SingleBed: r.SingleBed,
		DoubleBed: r.DoubleBed,
		Capacity:  r.Capacity(),
		Price:     json.Number(r.Price.StringFixed(2)),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func NewBookingDto(b *models.Booking) BookingDto {
	return BookingDto{
		ID:           b.ID,
		Guests:       b.Guests,
		CheckInDate:  b.CheckInDate,
		CheckoutDate: b.CheckoutDate,
		Status:       string(b.Status),
		User:         NewUserDto(&b.User),
		Hotel:        NewHotelDto(&b.Hotel),
		Room:         NewRoomDto(&b.Room),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// Value adapters for pagination.Map.

func UserRecord(u models.User) UserDto          { return NewUserDto(&u) }
func HotelRecord(h models.Hotel) HotelDto       { return NewHotelDto(&h) }
func RoomRecord(r models.Room) RoomDto          { return NewRoomDto(&r) }
func BookingRecord(b models.Booking) BookingDto { return NewBookingDto(&b) }

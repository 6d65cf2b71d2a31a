package types

import (
	"github.com/shopspring/decimal"
)

type CreateUserRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	TaxID     string `json:"taxId" validate:"required,numeric,len=11"`
	Phone     string `json:"phone" validate:"required,numeric,len=11"`
	Birthdate string `json:"birthdate" validate:"required,datetime=2006-01-02"`
}

type UpdateUserRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	TaxID     *string `json:"taxId" validate:"omitempty,numeric,len=11"`
	Phone     *string `json:"phone" validate:"omitempty,numeric,len=11"`
	Birthdate *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
}

type CreateAddressRequest struct {
	Street   string `json:"street" validate:"required,max=255"`
	Number   *int   `json:"number" validate:"omitempty,gte=0,lte=32767"`
	District string `json:"district" validate:"required,max=255"`
	City     string `json:"city" validate:"required,max=255"`
	State    string `json:"state" validate:"required,max=255"`
	Zipcode  string `json:"zipcode" validate:"required,numeric,len=8"`
}

type UpdateAddressRequest struct {
	Street   *string `json:"street" validate:"omitempty,min=1,max=255"`
	Number   *int    `json:"number" validate:"omitempty,gte=0,lte=32767"`
	District *string `json:"district" validate:"omitempty,min=1,max=255"`
	City     *string `json:"city" validate:"omitempty,min=1,max=255"`
	State    *string `json:"state" validate:"omitempty,min=1,max=255"`
	Zipcode  *string `json:"zipcode" validate:"omitempty,numeric,len=8"`
}

type CreateHotelRequest struct {
	Name         string               `json:"name" validate:"required,max=255"`
	ContactPhone string               `json:"contactPhone" validate:"required,numeric,len=11"`
	Rating       string               `json:"rating" validate:"required,oneof=eco standard superior luxury"`
	Address      CreateAddressRequest `json:"address" validate:"required"`
}

type UpdateHotelRequest struct {
	Name         *string               `json:"name" validate:"omitempty,min=1,max=255"`
	ContactPhone *string               `json:"contactPhone" validate:"omitempty,numeric,len=11"`
	Rating       *string               `json:"rating" validate:"omitempty,oneof=eco standard superior luxury"`
	Address      *UpdateAddressRequest `json:"address"`
}

type CreateRoomRequest struct {
	SingleBed *int             `json:"singleBed" validate:"required,gte=0,lte=32767"`
	DoubleBed *int             `json:"doubleBed" validate:"required,gte=0,lte=32767"`
	Number    *int             `json:"number" validate:"required,gte=0,lte=32767"`
	Price     *decimal.Decimal `json:"price" validate:"required,price"`
}

type UpdateRoomRequest struct {
	SingleBed *int             `json:"singleBed" validate:"omitempty,gte=0,lte=32767"`
	DoubleBed *int             `json:"doubleBed" validate:"omitempty,gte=0,lte=32767"`
	Number    *int             `json:"number" validate:"omitempty,gte=0,lte=32767"`
	Price     *decimal.Decimal `json:"price" validate:"omitempty,price"`
}

type CreateBookingRequest struct {
	UserID       string `json:"userId" validate:"required,uuid"`
	HotelID      string `json:"hotelId" validate:"required,uuid"`
	RoomID       string `json:"roomId" validate:"required,uuid"`
	Guests       int    `json:"guests" validate:"required,gte=1,lte=32767"`
	CheckInDate  string `json:"checkInDate" validate:"required,timestamp"`
	CheckoutDate string `json:"checkoutDate" validate:"required,timestamp"`
	Status       string `json:"status" validate:"omitempty,oneof=pending confirmed canceled completed"`
}

type UpdateBookingRequest struct {
	Guests *int    `json:"guests" validate:"omitempty,gte=1,lte=32767"`
	Status *string `json:"status" validate:"omitempty,oneof=pending confirmed canceled completed"`
}

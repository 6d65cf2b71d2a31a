package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Room belongs to one Hotel; number is unique within it.
type Room struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HotelID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_rooms_hotel_number" json:"-"`
	Number    int             `gorm:"type:int2;not null;uniqueIndex:idx_rooms_hotel_number" json:"number"`
	SingleBed int             `gorm:"type:int2;not null;default:0" json:"singleBed"`
	DoubleBed int             `gorm:"type:int2;not null;default:0" json:"doubleBed"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Bookings  []Booking       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time       `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"index" json:"updatedAt"`
}

// Capacity is the number of guests the beds accommodate.
func (r Room) Capacity() int {
	return r.DoubleBed*2 + r.SingleBed
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
	BookingStatusCompleted BookingStatus = "completed"
)

// BookingStatuses lists every accepted status.
var BookingStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCanceled, BookingStatusCompleted}

// Booking reserves a Room of a Hotel between CheckInDate and CheckoutDate.
type Booking struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Guests       int           `gorm:"type:int2;not null" json:"guests"`
	CheckInDate  time.Time     `gorm:"not null;index:idx_bookings_room_period,priority:2" json:"checkInDate"`
	CheckoutDate time.Time     `gorm:"column:check_out_date;not null;index:idx_bookings_room_period,priority:3" json:"checkoutDate"`
	Status       BookingStatus `gorm:"type:varchar(16);not null;index" json:"status"`
	UserID       uuid.UUID     `gorm:"type:uuid;not null;index" json:"-"`
	HotelID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"-"`
	RoomID       uuid.UUID     `gorm:"type:uuid;not null;index:idx_bookings_room_period,priority:1" json:"-"`
	User         User          `json:"user"`
	Hotel        Hotel         `gorm:"constraint:OnDelete:RESTRICT" json:"hotel"`
	Room         Room          `json:"room"`
	CreatedAt    time.Time     `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time     `gorm:"index" json:"updatedAt"`
}

// Active reports whether the booking still holds its room.
func (b Booking) Active() bool {
	return b.Status != BookingStatusCanceled
}

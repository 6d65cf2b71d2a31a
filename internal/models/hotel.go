package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HotelRating string

const (
	HotelRatingEco      HotelRating = "eco"
	HotelRatingStandard HotelRating = "standard"
	HotelRatingSuperior HotelRating = "superior"
	HotelRatingLuxury   HotelRating = "luxury"
)

// HotelRatings lists every accepted rating.
var HotelRatings = []HotelRating{HotelRatingEco, HotelRatingStandard, HotelRatingSuperior, HotelRatingLuxury}

// Hotel owns its Address and Rooms. Deleting a hotel only stamps DeletedAt.
type Hotel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	ContactPhone string         `gorm:"type:varchar(11);not null" json:"contactPhone"`
	Rating       HotelRating    `gorm:"type:varchar(16);not null;index" json:"rating"`
	AddressID    uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"-"`
	Address      Address        `gorm:"constraint:OnDelete:CASCADE" json:"address"`
	Rooms        []Room         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"index" json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deletedAt"`
}

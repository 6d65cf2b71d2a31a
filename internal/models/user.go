package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User is a guest who can hold bookings.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	TaxID     string         `gorm:"type:varchar(11);uniqueIndex;not null" json:"taxId"`
	Phone     string         `gorm:"type:varchar(11);not null" json:"phone"`
	Birthdate datatypes.Date `gorm:"not null" json:"birthdate"`
	Bookings  []Booking      `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"index" json:"updatedAt"`
}

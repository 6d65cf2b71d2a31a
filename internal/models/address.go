package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is owned by exactly one Hotel and shares its soft-delete lifecycle.
type Address struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Street    string         `gorm:"type:varchar(255);not null" json:"street"`
	Number    *int           `gorm:"type:int2" json:"number"`
	District  string         `gorm:"type:varchar(255);not null" json:"district"`
	City      string         `gorm:"type:varchar(255);not null" json:"city"`
	State     string         `gorm:"type:varchar(255);not null" json:"state"`
	Zipcode   string         `gorm:"type:varchar(8);not null" json:"zipcode"`
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"index" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`
}

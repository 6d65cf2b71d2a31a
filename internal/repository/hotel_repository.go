package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hotel-booking/engine/internal/models"
	"github.com/hotel-booking/engine/pkg/pagination"
)

// HotelFilter narrows hotel listings; zero fields are ignored.
type HotelFilter struct {
	Name         string
	ContactPhone string
	Rating       models.HotelRating
	City         string
	State        string
}

var hotelColumns = pagination.Columns{
	"id":           "hotels.id",
	"name":         "hotels.name",
	"contactPhone": "hotels.contact_phone",
	"rating":       "hotels.rating",
	"city":         "addresses.city",
	"state":        "addresses.state",
	"createdAt":    "hotels.created_at",
	"updatedAt":    "hotels.updated_at",
	"deletedAt":    "hotels.deleted_at",
}

// HotelRepository persists hotels together with their address. Reads skip
// soft-deleted hotels unless stated otherwise.
type HotelRepository interface {
	GetByID(ctx context.Context, id uuid.UUID, dest *models.Hotel) error
	CreateWithAddress(ctx context.Context, h *models.Hotel) error
	UpdateWithAddress(ctx context.Context, h *models.Hotel) error
	List(ctx context.Context, f HotelFilter, p pagination.Params, deleted bool) ([]models.Hotel, *int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID, dest *models.Hotel) error
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) GetByID(ctx context.Context, id uuid.UUID, dest *models.Hotel) error {
	if err := r.db.WithContext(ctx).Preload("Address").First(dest, "hotels.id = ?", id).Error; err != nil {
		return translate(err, "get")
	}
	return nil
}

// CreateWithAddress inserts the address and the hotel in one transaction.
func (r *hotelRepository) CreateWithAddress(ctx context.Context, h *models.Hotel) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&h.Address).Error; err != nil {
			return translate(err, "create")
		}
		h.AddressID = h.Address.ID
		if err := tx.Omit(clause.Associations).Create(h).Error; err != nil {
			return translate(err, "create")
		}
		return nil
	})
	return err
}

// UpdateWithAddress saves the hotel columns and its address in one transaction.
func (r *hotelRepository) UpdateWithAddress(ctx context.Context, h *models.Hotel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&h.Address).Error; err != nil {
			return translate(err, "update")
		}
		if err := tx.Omit(clause.Associations).Save(h).Error; err != nil {
			return translate(err, "update")
		}
		return nil
	})
}

func (r *hotelRepository) List(ctx context.Context, f HotelFilter, p pagination.Params, deleted bool) ([]models.Hotel, *int64, error) {
	db := r.db
	filters := []scope{func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN addresses ON addresses.id = hotels.address_id")
	}}
	if deleted {
		db = db.Unscoped()
		filters = append(filters, func(db *gorm.DB) *gorm.DB {
			return db.Where("hotels.deleted_at IS NOT NULL")
		})
	}
	if f.Name != "" {
		filters = append(filters, containsFold("hotels.name", f.Name))
	}
	if f.ContactPhone != "" {
		filters = append(filters, equals("hotels.contact_phone", f.ContactPhone))
	}
	if f.Rating != "" {
		filters = append(filters, equals("hotels.rating", f.Rating))
	}
	if f.City != "" {
		filters = append(filters, containsFold("addresses.city", f.City))
	}
	if f.State != "" {
		filters = append(filters, containsFold("addresses.state", f.State))
	}
	preload := func(db *gorm.DB) *gorm.DB {
		return db.Preload("Address", func(db *gorm.DB) *gorm.DB { return db.Unscoped() })
	}
	return listPage[models.Hotel](ctx, db, p, hotelColumns, filters, preload)
}

// SoftDelete stamps deleted_at on the hotel and its address.
func (r *hotelRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var h models.Hotel
		if err := tx.First(&h, "id = ?", id).Error; err != nil {
			return translate(err, "delete")
		}
		if err := tx.Delete(&models.Hotel{}, "id = ?", h.ID).Error; err != nil {
			return translate(err, "delete")
		}
		if err := tx.Delete(&models.Address{}, "id = ?", h.AddressID).Error; err != nil {
			return translate(err, "delete")
		}
		return nil
	})
}

// Restore clears deleted_at on a soft-deleted hotel and its address. Hotels
// that are not deleted are reported as not found.
func (r *hotelRepository) Restore(ctx context.Context, id uuid.UUID, dest *models.Hotel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var h models.Hotel
		if err := tx.Unscoped().Where("id = ? AND deleted_at IS NOT NULL", id).First(&h).Error; err != nil {
			return translate(err, "restore")
		}
		if err := tx.Unscoped().Model(&models.Hotel{}).Where("id = ?", h.ID).Update("deleted_at", nil).Error; err != nil {
			return translate(err, "restore")
		}
		if err := tx.Unscoped().Model(&models.Address{}).Where("id = ?", h.AddressID).Update("deleted_at", nil).Error; err != nil {
			return translate(err, "restore")
		}
		if err := tx.Preload("Address").First(dest, "hotels.id = ?", h.ID).Error; err != nil {
			return translate(err, "restore")
		}
		return nil
	})
}

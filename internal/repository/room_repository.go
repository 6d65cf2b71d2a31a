package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hotel-booking/engine/internal/models"
	appErr "github.com/hotel-booking/engine/pkg/errors"
	"github.com/hotel-booking/engine/pkg/pagination"
)

// RoomFilter narrows room listings; nil fields are ignored.
type RoomFilter struct {
	SingleBed *int
	DoubleBed *int
	Number    *int
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
}

var roomColumns = pagination.Columns{
	"id":        "rooms.id",
	"number":    "rooms.number",
	"singleBed": "rooms.single_bed",
	"doubleBed": "rooms.double_bed",
	"price":     "rooms.price",
	"createdAt": "rooms.created_at",
	"updatedAt": "rooms.updated_at",
}

// CapacityCheck receives the largest guest count among the room's active
// bookings and rejects the update by returning an error.
type CapacityCheck func(bookedGuests int) error

// RoomRepository reads and writes rooms scoped to their hotel.
type RoomRepository interface {
	BaseRepository[models.Room]
	GetInHotel(ctx context.Context, hotelID, roomID uuid.UUID, dest *models.Room) error
	ListInHotel(ctx context.Context, hotelID uuid.UUID, f RoomFilter, p pagination.Params) ([]models.Room, *int64, error)
	UpdateIfFits(ctx context.Context, room *models.Room, check CapacityCheck) error
	DeleteInHotel(ctx context.Context, hotelID, roomID uuid.UUID) error
}

type roomRepository struct {
	BaseRepository[models.Room]
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{BaseRepository: NewBaseRepository[models.Room](db), db: db}
}

func (r *roomRepository) GetInHotel(ctx context.Context, hotelID, roomID uuid.UUID, dest *models.Room) error {
	if err := r.db.WithContext(ctx).Where("id = ? AND hotel_id = ?", roomID, hotelID).First(dest).Error; err != nil {
		return translate(err, "get")
	}
	return nil
}

func (r *roomRepository) ListInHotel(ctx context.Context, hotelID uuid.UUID, f RoomFilter, p pagination.Params) ([]models.Room, *int64, error) {
	filters := []scope{equals("rooms.hotel_id", hotelID)}
	if f.SingleBed != nil {
		filters = append(filters, equals("rooms.single_bed", *f.SingleBed))
	}
	if f.DoubleBed != nil {
		filters = append(filters, equals("rooms.double_bed", *f.DoubleBed))
	}
	if f.Number != nil {
		filters = append(filters, equals("rooms.number", *f.Number))
	}
	if f.MinPrice != nil {
		lo := *f.MinPrice
		filters = append(filters, func(db *gorm.DB) *gorm.DB { return db.Where("rooms.price >= ?", lo) })
	}
	if f.MaxPrice != nil {
		hi := *f.MaxPrice
		filters = append(filters, func(db *gorm.DB) *gorm.DB { return db.Where("rooms.price <= ?", hi) })
	}
	return listPage[models.Room](ctx, r.db, p, roomColumns, filters)
}

// UpdateIfFits locks the room row, reads the largest active booking it holds
// and saves room only when check accepts. Booking creation takes the same
// lock, so no booking can slip in between the check and the save.
func (r *roomRepository) UpdateIfFits(ctx context.Context, room *models.Room, check CapacityCheck) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockRoom(tx, room.ID, room.HotelID); err != nil {
			return err
		}
		booked, err := maxActiveGuests(tx, room.ID)
		if err != nil {
			return err
		}
		if err := check(booked); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(room).Error; err != nil {
			return translate(err, "update")
		}
		return nil
	})
}

// DeleteInHotel removes the room; its bookings go with it through the foreign key.
func (r *roomRepository) DeleteInHotel(ctx context.Context, hotelID, roomID uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Room{}, "id = ? AND hotel_id = ?", roomID, hotelID)
	if res.Error != nil {
		return translate(res.Error, "delete")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, appErr.MsgEntityNotFound)
	}
	return nil
}

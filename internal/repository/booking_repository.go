package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hotel-booking/engine/internal/models"
	"github.com/hotel-booking/engine/pkg/pagination"
)

// BookingFilter narrows booking listings; zero fields are ignored.
type BookingFilter struct {
	UserID  uuid.UUID
	HotelID uuid.UUID
	RoomID  uuid.UUID
	Status  models.BookingStatus
}

var bookingColumns = pagination.Columns{
	"id":           "bookings.id",
	"guests":       "bookings.guests",
	"checkInDate":  "bookings.check_in_date",
	"checkoutDate": "bookings.check_out_date",
	"status":       "bookings.status",
	"createdAt":    "bookings.created_at",
	"updatedAt":    "bookings.updated_at",
}

// AvailabilityCheck receives the number of active bookings overlapping a
// requested period and rejects the booking by returning an error.
type AvailabilityCheck func(room models.Room, overlapping int64) error

type BookingRepository interface {
	BaseRepository[models.Booking]
	GetWithRelations(ctx context.Context, id uuid.UUID, dest *models.Booking) error
	List(ctx context.Context, f BookingFilter, p pagination.Params) ([]models.Booking, *int64, error)
	CountOverlapping(ctx context.Context, b models.Booking) (int64, error)
	CreateIfAvailable(ctx context.Context, b *models.Booking, check AvailabilityCheck) error
	UpdateIfAvailable(ctx context.Context, b *models.Booking, check AvailabilityCheck) error
	SettleExpired(ctx context.Context, now time.Time) (completed, canceled int64, err error)
}

type bookingRepository struct {
	BaseRepository[models.Booking]
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{BaseRepository: NewBaseRepository[models.Booking](db), db: db}
}

func withRelations(db *gorm.DB) *gorm.DB {
	unscoped := func(db *gorm.DB) *gorm.DB { return db.Unscoped() }
	return db.
		Preload("User").
		Preload("Hotel", unscoped).
		Preload("Hotel.Address", unscoped).
		Preload("Room")
}

func (r *bookingRepository) GetWithRelations(ctx context.Context, id uuid.UUID, dest *models.Booking) error {
	if err := r.db.WithContext(ctx).Scopes(withRelations).First(dest, "bookings.id = ?", id).Error; err != nil {
		return translate(err, "get")
	}
	return nil
}

func (r *bookingRepository) List(ctx context.Context, f BookingFilter, p pagination.Params) ([]models.Booking, *int64, error) {
	var filters []scope
	if f.UserID != uuid.Nil {
		filters = append(filters, equals("bookings.user_id", f.UserID))
	}
	if f.HotelID != uuid.Nil {
		filters = append(filters, equals("bookings.hotel_id", f.HotelID))
	}
	if f.RoomID != uuid.Nil {
		filters = append(filters, equals("bookings.room_id", f.RoomID))
	}
	if f.Status != "" {
		filters = append(filters, equals("bookings.status", f.Status))
	}
	return listPage[models.Booking](ctx, r.db, p, bookingColumns, filters, withRelations)
}

// overlapping matches active bookings of the room whose period touches or
// intersects [in, out]. Both bounds are inclusive.
func overlapping(roomID, hotelID uuid.UUID, in, out time.Time) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("room_id = ? AND hotel_id = ?", roomID, hotelID).
			Where("check_in_date <= ? AND check_out_date >= ?", out, in).
			Where("status <> ?", models.BookingStatusCanceled)
	}
}

// CountOverlapping counts the active bookings other than b that hold b's
// room during its period.
func (r *bookingRepository) CountOverlapping(ctx context.Context, b models.Booking) (int64, error) {
	return countOverlapping(r.db.WithContext(ctx), b)
}

func countOverlapping(db *gorm.DB, b models.Booking) (int64, error) {
	var n int64
	q := db.Model(&models.Booking{}).
		Scopes(overlapping(b.RoomID, b.HotelID, b.CheckInDate, b.CheckoutDate))
	if b.ID != uuid.Nil {
		q = q.Where("id <> ?", b.ID)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, translate(err, "count")
	}
	return n, nil
}

// lockRoom takes the row lock every write that depends on a room's
// bookings or beds serializes on.
func lockRoom(tx *gorm.DB, roomID, hotelID uuid.UUID) (models.Room, error) {
	var room models.Room
	err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ? AND hotel_id = ?", roomID, hotelID).
		First(&room).Error
	if err != nil {
		return room, translate(err, "get")
	}
	return room, nil
}

// maxActiveGuests is the largest guest count among the room's non-canceled bookings.
func maxActiveGuests(db *gorm.DB, roomID uuid.UUID) (int, error) {
	var n int
	err := db.Model(&models.Booking{}).
		Select("COALESCE(MAX(guests), 0)").
		Where("room_id = ? AND status <> ?", roomID, models.BookingStatusCanceled).
		Scan(&n).Error
	if err != nil {
		return 0, translate(err, "get")
	}
	return n, nil
}

// CreateIfAvailable locks the room row, counts overlapping active bookings
// and inserts b only when check accepts. Concurrent requests for the same
// room are serialized on the lock.
func (r *bookingRepository) CreateIfAvailable(ctx context.Context, b *models.Booking, check AvailabilityCheck) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, b.RoomID, b.HotelID)
		if err != nil {
			return err
		}
		n, err := countOverlapping(tx, *b)
		if err != nil {
			return err
		}
		if err := check(room, n); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return translate(err, "create")
		}
		return nil
	})
}

// UpdateIfAvailable is the update counterpart of CreateIfAvailable: b's own
// row is left out of the overlap count.
func (r *bookingRepository) UpdateIfAvailable(ctx context.Context, b *models.Booking, check AvailabilityCheck) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, b.RoomID, b.HotelID)
		if err != nil {
			return err
		}
		n, err := countOverlapping(tx, *b)
		if err != nil {
			return err
		}
		if err := check(room, n); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(b).Error; err != nil {
			return translate(err, "update")
		}
		return nil
	})
}

// SettleExpired completes confirmed bookings whose checkout has passed and
// cancels pending bookings whose check-in has passed.
func (r *bookingRepository) SettleExpired(ctx context.Context, now time.Time) (int64, int64, error) {
	var completed, canceled int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Booking{}).
			Where("status = ? AND check_out_date < ?", models.BookingStatusConfirmed, now).
			Update("status", models.BookingStatusCompleted)
		if res.Error != nil {
			return translate(res.Error, "update")
		}
		completed = res.RowsAffected

		res = tx.Model(&models.Booking{}).
			Where("status = ? AND check_in_date < ?", models.BookingStatusPending, now).
			Update("status", models.BookingStatusCanceled)
		if res.Error != nil {
			return translate(res.Error, "update")
		}
		canceled = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return completed, canceled, nil
}

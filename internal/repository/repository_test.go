package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hotel-booking/engine/internal/migrations"
	"github.com/hotel-booking/engine/internal/models"
	"github.com/hotel-booking/engine/pkg/database"
	appErr "github.com/hotel-booking/engine/pkg/errors"
	"github.com/hotel-booking/engine/pkg/pagination"
)

// openTestDB starts a disposable postgres and migrates it.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("booking_test"),
		tcpostgres.WithUsername("booking"),
		tcpostgres.WithPassword("booking"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.OpenPostgres(ctx, dsn, zap.NewNop(), database.Options{MaxRetries: 3})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))
	return db
}

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

type fixture struct {
	user  models.User
	hotel models.Hotel
	room  models.Room
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	ctx := context.Background()
	var f fixture

	f.user = models.User{Name: "Ana", Email: "ana@example.com", TaxID: "12345678901", Phone: "11999999999", Birthdate: datatypes.Date(day("1990-04-01"))}
	require.NoError(t, NewUserRepository(db).Create(ctx, &f.user))

	f.hotel = models.Hotel{
		Name: "Seaside", ContactPhone: "11988887777", Rating: models.HotelRatingSuperior,
		Address: models.Address{Street: "Av. Atlantica", District: "Copacabana", City: "Rio de Janeiro", State: "RJ", Zipcode: "22021001"},
	}
	require.NoError(t, NewHotelRepository(db).CreateWithAddress(ctx, &f.hotel))

	f.room = models.Room{HotelID: f.hotel.ID, Number: 101, DoubleBed: 2, Price: decimal.RequireFromString("350.00")}
	require.NoError(t, NewRoomRepository(db).Create(ctx, &f.room))
	return f
}

func TestRepositories(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	f := seed(t, db)

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		dup := models.User{Name: "Other", Email: "ana@example.com", TaxID: "98765432100", Phone: "11911111111", Birthdate: datatypes.Date(day("1985-01-01"))}
		err := NewUserRepository(db).Create(ctx, &dup)
		require.Error(t, err)
		assert.True(t, appErr.IsCode(err, appErr.CodeConflict))
	})

	t.Run("user pages are windowed and counted", func(t *testing.T) {
		users := NewUserRepository(db)
		for i := 0; i < 24; i++ {
			u := models.User{
				Name:      "Guest",
				Email:     uuid.NewString() + "@example.com",
				TaxID:     uuid.NewString()[:8] + "000",
				Phone:     "11900000000",
				Birthdate: datatypes.Date(day("2000-01-01")),
			}
			require.NoError(t, users.Create(ctx, &u))
		}
		p := pagination.Params{Page: 2, PerPage: 10, Sort: "email", Order: pagination.OrderAsc, Count: true}
		rows, count, err := users.List(ctx, UserFilter{Name: "guest"}, p)
		require.NoError(t, err)
		assert.Len(t, rows, 10)
		require.NotNil(t, count)
		assert.Equal(t, int64(24), *count)

		all, _, err := users.List(ctx, UserFilter{Name: "guest"}, pagination.Params{Page: 1, PerPage: 1000, Sort: "email", Order: pagination.OrderAsc})
		require.NoError(t, err)
		assert.Equal(t, all[10].ID, rows[0].ID)
		assert.Equal(t, all[19].ID, rows[9].ID)
	})

	t.Run("unknown sort field is invalid", func(t *testing.T) {
		_, _, err := NewUserRepository(db).List(ctx, UserFilter{}, pagination.Params{Page: 1, PerPage: 10, Sort: "password"})
		assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
	})

	t.Run("overlapping bookings are counted inclusively", func(t *testing.T) {
		bookings := NewBookingRepository(db)
		existing := models.Booking{
			Guests: 2, CheckInDate: day("2024-01-08"), CheckoutDate: day("2024-01-12"), Status: models.BookingStatusConfirmed,
			UserID: f.user.ID, HotelID: f.hotel.ID, RoomID: f.room.ID,
		}
		require.NoError(t, bookings.Create(ctx, &existing))

		next := models.Booking{
			Guests: 2, CheckInDate: day("2024-01-05"), CheckoutDate: day("2024-01-10"), Status: models.BookingStatusPending,
			UserID: f.user.ID, HotelID: f.hotel.ID, RoomID: f.room.ID,
		}
		n, err := bookings.CountOverlapping(ctx, next)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		touching := next
		touching.CheckInDate, touching.CheckoutDate = day("2024-01-12"), day("2024-01-14")
		n, err = bookings.CountOverlapping(ctx, touching)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = bookings.CountOverlapping(ctx, existing)
		require.NoError(t, err)
		assert.Zero(t, n)

		var seen int64 = -1
		err = bookings.CreateIfAvailable(ctx, &next, func(room models.Room, overlapping int64) error {
			seen = overlapping
			assert.Equal(t, 4, room.Capacity())
			if overlapping > 0 {
				return appErr.New(appErr.CodeConflict, "taken")
			}
			return nil
		})
		assert.True(t, appErr.IsCode(err, appErr.CodeConflict))
		assert.Equal(t, int64(1), seen)
		assert.Equal(t, uuid.Nil, next.ID)

		var got models.Booking
		require.NoError(t, bookings.GetWithRelations(ctx, existing.ID, &got))
		assert.Equal(t, f.user.Email, got.User.Email)
		assert.Equal(t, "Rio de Janeiro", got.Hotel.Address.City)
		assert.Equal(t, 101, got.Room.Number)
	})

	t.Run("booking a room under the wrong hotel is not found", func(t *testing.T) {
		b := models.Booking{
			Guests: 1, CheckInDate: day("2025-03-01"), CheckoutDate: day("2025-03-02"), Status: models.BookingStatusPending,
			UserID: f.user.ID, HotelID: uuid.New(), RoomID: f.room.ID,
		}
		err := NewBookingRepository(db).CreateIfAvailable(ctx, &b, func(models.Room, int64) error { return nil })
		assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	})

	t.Run("settle completes and cancels expired bookings", func(t *testing.T) {
		bookings := NewBookingRepository(db)
		pending := models.Booking{
			Guests: 1, CheckInDate: day("2024-02-01"), CheckoutDate: day("2024-02-03"), Status: models.BookingStatusPending,
			UserID: f.user.ID, HotelID: f.hotel.ID, RoomID: f.room.ID,
		}
		require.NoError(t, bookings.Create(ctx, &pending))

		completed, canceled, err := bookings.SettleExpired(ctx, day("2024-06-01"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), completed)
		assert.Equal(t, int64(1), canceled)

		var got models.Booking
		require.NoError(t, bookings.GetByID(ctx, pending.ID, &got))
		assert.Equal(t, models.BookingStatusCanceled, got.Status)
	})

	t.Run("beds cannot drop below booked guests", func(t *testing.T) {
		require.NoError(t, NewBookingRepository(db).Create(ctx, &models.Booking{
			Guests: 3, CheckInDate: day("2025-05-01"), CheckoutDate: day("2025-05-05"), Status: models.BookingStatusConfirmed,
			UserID: f.user.ID, HotelID: f.hotel.ID, RoomID: f.room.ID,
		}))
		rooms := NewRoomRepository(db)
		fits := func(r models.Room) CapacityCheck {
			return func(booked int) error {
				assert.Equal(t, 3, booked)
				if r.Capacity() < booked {
					return appErr.New(appErr.CodeInvalid, "too small")
				}
				return nil
			}
		}

		shrunk := f.room
		shrunk.DoubleBed, shrunk.SingleBed = 1, 0
		err := rooms.UpdateIfFits(ctx, &shrunk, fits(shrunk))
		assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
		var got models.Room
		require.NoError(t, rooms.GetInHotel(ctx, f.hotel.ID, f.room.ID, &got))
		assert.Equal(t, 2, got.DoubleBed)

		shrunk.SingleBed = 1
		require.NoError(t, rooms.UpdateIfFits(ctx, &shrunk, fits(shrunk)))
		require.NoError(t, rooms.GetInHotel(ctx, f.hotel.ID, f.room.ID, &got))
		assert.Equal(t, 3, got.Capacity())

		require.NoError(t, rooms.UpdateIfFits(ctx, &f.room, fits(f.room)))
	})

	t.Run("concurrent bookings of one period admit a single winner", func(t *testing.T) {
		bookings := NewBookingRepository(db)
		var (
			wg  sync.WaitGroup
			won atomic.Int32
		)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				b := models.Booking{
					Guests: 1, CheckInDate: day("2025-07-01"), CheckoutDate: day("2025-07-03"), Status: models.BookingStatusPending,
					UserID: f.user.ID, HotelID: f.hotel.ID, RoomID: f.room.ID,
				}
				err := bookings.CreateIfAvailable(ctx, &b, func(_ models.Room, overlapping int64) error {
					if overlapping > 0 {
						return appErr.New(appErr.CodeConflict, "taken")
					}
					return nil
				})
				if err == nil {
					won.Add(1)
					return
				}
				assert.True(t, appErr.IsCode(err, appErr.CodeConflict), err)
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), won.Load())

		var n int64
		require.NoError(t, db.Model(&models.Booking{}).
			Where("room_id = ? AND check_in_date = ?", f.room.ID, day("2025-07-01")).
			Count(&n).Error)
		assert.Equal(t, int64(1), n)
	})

	t.Run("reactivating into a taken period is refused", func(t *testing.T) {
		bookings := NewBookingRepository(db)
		b := models.Booking{
			Guests: 1, CheckInDate: day("2025-07-02"), CheckoutDate: day("2025-07-04"), Status: models.BookingStatusCanceled,
			UserID: f.user.ID, HotelID: f.hotel.ID, RoomID: f.room.ID,
		}
		require.NoError(t, bookings.Create(ctx, &b))

		b.Status = models.BookingStatusConfirmed
		var seen int64 = -1
		err := bookings.UpdateIfAvailable(ctx, &b, func(_ models.Room, overlapping int64) error {
			seen = overlapping
			if overlapping > 0 {
				return appErr.New(appErr.CodeConflict, "taken")
			}
			return nil
		})
		assert.True(t, appErr.IsCode(err, appErr.CodeConflict))
		assert.Equal(t, int64(1), seen)

		var got models.Booking
		require.NoError(t, bookings.GetByID(ctx, b.ID, &got))
		assert.Equal(t, models.BookingStatusCanceled, got.Status)
	})

	t.Run("user with bookings cannot be deleted", func(t *testing.T) {
		err := NewUserRepository(db).Delete(ctx, f.user.ID)
		require.Error(t, err)
		assert.True(t, appErr.IsCode(err, appErr.CodeConflict))
	})

	t.Run("soft delete and restore hotel", func(t *testing.T) {
		hotels := NewHotelRepository(db)
		require.NoError(t, hotels.SoftDelete(ctx, f.hotel.ID))

		var h models.Hotel
		assert.True(t, appErr.IsCode(hotels.GetByID(ctx, f.hotel.ID, &h), appErr.CodeNotFound))

		deleted, count, err := hotels.List(ctx, HotelFilter{City: "rio"}, pagination.Params{Page: 1, PerPage: 10, Count: true}, true)
		require.NoError(t, err)
		require.Len(t, deleted, 1)
		assert.Equal(t, int64(1), *count)
		assert.True(t, deleted[0].DeletedAt.Valid)
		assert.True(t, deleted[0].Address.DeletedAt.Valid)

		var restored models.Hotel
		require.NoError(t, hotels.Restore(ctx, f.hotel.ID, &restored))
		assert.False(t, restored.DeletedAt.Valid)
		assert.False(t, restored.Address.DeletedAt.Valid)

		err = hotels.Restore(ctx, f.hotel.ID, &restored)
		assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	})

	t.Run("room numbers are unique per hotel", func(t *testing.T) {
		dup := models.Room{HotelID: f.hotel.ID, Number: 101, SingleBed: 1, Price: decimal.NewFromInt(100)}
		err := NewRoomRepository(db).Create(ctx, &dup)
		assert.True(t, appErr.IsCode(err, appErr.CodeConflict))

		floor := decimal.NewFromInt(300)
		rooms, _, err := NewRoomRepository(db).ListInHotel(ctx, f.hotel.ID, RoomFilter{MinPrice: &floor}, pagination.Params{Page: 1, PerPage: 10})
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.True(t, rooms[0].Price.Equal(decimal.RequireFromString("350")))
	})

	t.Run("deleting a room removes its bookings", func(t *testing.T) {
		require.NoError(t, NewRoomRepository(db).DeleteInHotel(ctx, f.hotel.ID, f.room.ID))
		var n int64
		require.NoError(t, db.Model(&models.Booking{}).Where("room_id = ?", f.room.ID).Count(&n).Error)
		assert.Zero(t, n)
		assert.True(t, appErr.IsCode(NewRoomRepository(db).DeleteInHotel(ctx, f.hotel.ID, f.room.ID), appErr.CodeNotFound))
	})
}

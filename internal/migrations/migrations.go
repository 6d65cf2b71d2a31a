// Package migrations owns the database schema: gorm AutoMigrate for the
// models plus the constraints AutoMigrate cannot express.
package migrations

import (
	"gorm.io/gorm"

	"github.com/hotel-booking/engine/internal/models"
)

// registerModels returns all models that need migration, parents first.
func registerModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Address{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	}
}

// Run executes all database migrations.
func Run(db *gorm.DB) error {
	if err := enableUUIDExtension(db); err != nil {
		return err
	}
	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}
	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle.
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addBookingChecks,
		addActiveBookingIndex,
		addRoomChecks,
	}

	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}

	return nil
}

// enableUUIDExtension ensures gen_random_uuid() is available.
func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

func addBookingChecks(db *gorm.DB) error {
	return db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_bookings_period') THEN
				ALTER TABLE bookings ADD CONSTRAINT chk_bookings_period CHECK (check_in_date < check_out_date);
			END IF;
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_bookings_guests') THEN
				ALTER TABLE bookings ADD CONSTRAINT chk_bookings_guests CHECK (guests > 0);
			END IF;
		END $$;
	`).Error
}

// addActiveBookingIndex backs the overlap lookup, which ignores canceled bookings.
func addActiveBookingIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_active_room_period
		ON bookings(room_id, check_in_date, check_out_date)
		WHERE status <> 'canceled'
	`).Error
}

func addRoomChecks(db *gorm.DB) error {
	return db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_rooms_beds') THEN
				ALTER TABLE rooms ADD CONSTRAINT chk_rooms_beds CHECK (single_bed >= 0 AND double_bed >= 0);
			END IF;
		END $$;
	`).Error
}

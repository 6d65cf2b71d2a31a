package services

import (
	"fmt"

	"github.com/hotel-booking/engine/internal/models"
	appErr "github.com/hotel-booking/engine/pkg/errors"
)

const MsgPeriodReserved = "checkInDate and checkoutDate period has already been reserved"

// RoomCapacity is the number of guests a room can host: two per double bed
// and one per single bed.
func RoomCapacity(room models.Room) int {
	return room.Capacity()
}

// VerifyAvailability rejects a booking when another active booking holds
// the room during the requested period, or when the guests do not fit.
func VerifyAvailability(overlapping int64, room models.Room, guests int) error {
	if overlapping > 0 {
		return appErr.New(appErr.CodeConflict, MsgPeriodReserved)
	}
	return VerifyCapacity(room, guests)
}

// VerifyCapacity rejects guest counts above the room capacity.
func VerifyCapacity(room models.Room, guests int) error {
	if c := RoomCapacity(room); guests > c {
		return appErr.New(appErr.CodeInvalid, fmt.Sprintf("guests must be less than or equal to room capacity (%d)", c))
	}
	return nil
}

// Package services holds the business operations behind the HTTP API.
// Services receive their repositories through constructors and return
// *errors.AppError values the API layer maps to status codes.
package services

import (
	"slices"

	"github.com/hotel-booking/engine/internal/models"
	appErr "github.com/hotel-booking/engine/pkg/errors"
)

// describe names the missing entity in not found errors coming from a repository.
func describe(err error, entity string) error {
	if appErr.IsCode(err, appErr.CodeNotFound) {
		return appErr.Wrap(err, appErr.CodeNotFound, entity+" does not exist")
	}
	return err
}

func validRating(r models.HotelRating) bool {
	return slices.Contains(models.HotelRatings, r)
}

func validStatus(s models.BookingStatus) bool {
	return slices.Contains(models.BookingStatuses, s)
}

package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hotel-booking/engine/internal/api/types"
	"github.com/hotel-booking/engine/internal/api/validators"
	"github.com/hotel-booking/engine/internal/models"
	"github.com/hotel-booking/engine/internal/repository"
	"github.com/hotel-booking/engine/internal/services"
	"github.com/hotel-booking/engine/pkg/pagination"
)

type BookingsHandler struct {
	svc services.BookingService
}

func NewBookingsHandler(svc services.BookingService) *BookingsHandler {
	return &BookingsHandler{svc: svc}
}

// List godoc
// @Summary  List bookings
// @Tags     bookings
// @Produce  json
// @Param    page     query  int     false  "page number"  default(1)
// @Param    perPage  query  int     false  "page size"    default(1000)
// @Param    sort     query  string  false  "sort field"   Enums(guests, checkInDate, checkoutDate, status, createdAt, updatedAt)
// @Param    order    query  string  false  "sort order"   Enums(ASC, DESC)
// @Param    count    query  bool    false  "include the total count"
// @Param    userId   query  string  false  "user id"   format(uuid)
// @Param    hotelId  query  string  false  "hotel id"  format(uuid)
// @Param    roomId   query  string  false  "room id"   format(uuid)
// @Param    status   query  string  false  "status"    Enums(pending, confirmed, canceled, completed)
// @Success  200  {object}  pagination.Page[types.BookingDto]
// @Failure  400  {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /bookings [get]
func (h *BookingsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	p := q.page()
	filter := repository.BookingFilter{
		UserID:  q.id("userId"),
		HotelID: q.id("hotelId"),
		RoomID:  q.id("roomId"),
		Status:  models.BookingStatus(q.oneOf("status", "pending", "confirmed", "canceled", "completed")),
	}
	if err := q.err(); err != nil {
		writeError(w, r, err)
		return
	}
	page, err := h.svc.ListBookings(r.Context(), filter, p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pagination.Map(page, types.BookingRecord))
}

// Create godoc
// @Summary  Book a room
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    body  body      types.CreateBookingRequest  true  "booking"
// @Success  201   {object}  types.BookingDto
// @Failure  400   {object}  types.ErrorResponse
// @Failure  404   {object}  types.ErrorResponse
// @Failure  409   {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /bookings [post]
func (h *BookingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateBookingRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	// formats were checked by decode
	checkIn, _ := validators.ParseTimestamp(req.CheckInDate)
	checkout, _ := validators.ParseTimestamp(req.CheckoutDate)
	b, err := h.svc.CreateBooking(r.Context(), &services.CreateBookingInput{
		UserID:       uuid.MustParse(req.UserID),
		HotelID:      uuid.MustParse(req.HotelID),
		RoomID:       uuid.MustParse(req.RoomID),
		Guests:       req.Guests,
		CheckInDate:  checkIn,
		CheckoutDate: checkout,
		Status:       models.BookingStatus(req.Status),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.NewBookingDto(b))
}

// Get godoc
// @Summary  Get a booking
// @Tags     bookings
// @Produce  json
// @Param    bookingId  path      string  true  "booking id"  format(uuid)
// @Success  200        {object}  types.BookingDto
// @Failure  404        {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /bookings/{bookingId} [get]
func (h *BookingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "bookingId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	b, err := h.svc.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewBookingDto(b))
}

// Update godoc
// @Summary  Update the guests or status of a booking
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    bookingId  path      string                      true  "booking id"  format(uuid)
// @Param    body       body      types.UpdateBookingRequest  true  "fields to change"
// @Success  200        {object}  types.BookingDto
// @Failure  400        {object}  types.ErrorResponse
// @Failure  404        {object}  types.ErrorResponse
// @Failure  409        {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /bookings/{bookingId} [patch]
func (h *BookingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "bookingId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req types.UpdateBookingRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	input := &services.UpdateBookingInput{Guests: req.Guests}
	if req.Status != nil {
		status := models.BookingStatus(*req.Status)
		input.Status = &status
	}
	b, err := h.svc.UpdateBooking(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewBookingDto(b))
}

// Delete godoc
// @Summary  Delete a booking
// @Tags     bookings
// @Param    bookingId  path  string  true  "booking id"  format(uuid)
// @Success  204
// @Failure  404  {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /bookings/{bookingId} [delete]
func (h *BookingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "bookingId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.DeleteBooking(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

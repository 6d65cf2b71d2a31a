package handlers

import (
	"context"
	"net/http"

	"github.com/hotel-booking/engine/internal/api/types"
	"github.com/hotel-booking/engine/internal/models"
	"github.com/hotel-booking/engine/internal/repository"
	"github.com/hotel-booking/engine/internal/services"
	"github.com/hotel-booking/engine/pkg/pagination"
)

type HotelsHandler struct {
	svc services.HotelService
}

func NewHotelsHandler(svc services.HotelService) *HotelsHandler {
	return &HotelsHandler{svc: svc}
}

type hotelLister func(context.Context, repository.HotelFilter, pagination.Params) (pagination.Page[models.Hotel], error)

// List godoc
// @Summary  List hotels
// @Tags     hotels
// @Produce  json
// @Param    page          query  int     false  "page number"  default(1)
// @Param    perPage       query  int     false  "page size"    default(1000)
// @Param    sort          query  string  false  "sort field"   Enums(name, contactPhone, rating, createdAt, updatedAt, city, state)
// @Param    order         query  string  false  "sort order"   Enums(ASC, DESC)
// @Param    count         query  bool    false  "include the total count"
// @Param    name          query  string  false  "name contains"
// @Param    contactPhone  query  string  false  "exact contact phone"
// @Param    rating        query  string  false  "rating"  Enums(eco, standard, superior, luxury)
// @Param    city          query  string  false  "address city contains"
// @Param    state         query  string  false  "address state contains"
// @Success  200  {object}  pagination.Page[types.HotelDto]
// @Failure  400  {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /hotels [get]
func (h *HotelsHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListHotels)
}

// ListDeleted godoc
// @Summary  List soft-deleted hotels
// @Tags     hotels
// @Produce  json
// @Param    page     query  int     false  "page number"  default(1)
// @Param    perPage  query  int     false  "page size"    default(1000)
// @Param    sort     query  string  false  "sort field"
// @Param    order    query  string  false  "sort order"   Enums(ASC, DESC)
// @Success  200  {object}  pagination.Page[types.HotelDto]
// @Failure  400  {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /hotels/deleted [get]
func (h *HotelsHandler) ListDeleted(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListDeletedHotels)
}

func (h *HotelsHandler) list(w http.ResponseWriter, r *http.Request, list hotelLister) {
	q := newQuery(r)
	p := q.page()
	filter := repository.HotelFilter{
		Name:         q.str("name"),
		ContactPhone: q.str("contactPhone"),
		Rating:       models.HotelRating(q.oneOf("rating", "eco", "standard", "superior", "luxury")),
		City:         q.str("city"),
		State:        q.str("state"),
	}
	if err := q.err(); err != nil {
		writeError(w, r, err)
		return
	}
	page, err := list(r.Context(), filter, p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pagination.Map(page, types.HotelRecord))
}

// Create godoc
// @Summary  Create a hotel with its address
// @Tags     hotels
// @Accept   json
// @Produce  json
// @Param    body  body      types.CreateHotelRequest  true  "hotel"
// @Success  201   {object}  types.HotelDto
// @Failure  400   {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /hotels [post]
func (h *HotelsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateHotelRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	a := req.Address
	hotel, err := h.svc.CreateHotel(r.Context(), &services.CreateHotelInput{
		Name:         req.Name,
		ContactPhone: req.ContactPhone,
		Rating:       models.HotelRating(req.Rating),
		Address: services.AddressInput{
			Street:   a.Street,
			Number:   a.Number,
			District: a.District,
			City:     a.City,
			State:    a.State,
			Zipcode:  a.Zipcode,
		},
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.NewHotelDto(hotel))
}

// Get godoc
// @Summary  Get a hotel
// @Tags     hotels
// @Produce  json
// @Param    hotelId  path      string  true  "hotel id"  format(uuid)
// @Success  200      {object}  types.HotelDto
// @Failure  404      {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /hotels/{hotelId} [get]
func (h *HotelsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "hotelId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	hotel, err := h.svc.GetHotel(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewHotelDto(hotel))
}

// Update godoc
// @Summary  Update a hotel and its address
// @Tags     hotels
// @Accept   json
// @Produce  json
// @Param    hotelId  path      string                    true  "hotel id"  format(uuid)
// @Param    body     body      types.UpdateHotelRequest  true  "fields to change"
// @Success  200      {object}  types.HotelDto
// @Failure  400      {object}  types.ErrorResponse
// @Failure  404      {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /hotels/{hotelId} [patch]
func (h *HotelsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "hotelId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req types.UpdateHotelRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	input := &services.UpdateHotelInput{Name: req.Name, ContactPhone: req.ContactPhone}
	if req.Rating != nil {
		rating := models.HotelRating(*req.Rating)
		input.Rating = &rating
	}
	if a := req.Address; a != nil {
		input.Address = &services.AddressPatch{
			Street:   a.Street,
			Number:   a.Number,
			District: a.District,
			City:     a.City,
			State:    a.State,
			Zipcode:  a.Zipcode,
		}
	}
	hotel, err := h.svc.UpdateHotel(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewHotelDto(hotel))
}

// Delete godoc
// @Summary  Soft-delete a hotel
// @Tags     hotels
// @Param    hotelId  path  string  true  "hotel id"  format(uuid)
// @Success  204
// @Failure  404  {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /hotels/{hotelId} [delete]
func (h *HotelsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "hotelId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.DeleteHotel(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Restore godoc
// @Summary  Restore a soft-deleted hotel
// @Tags     hotels
// @Produce  json
// @Param    hotelId  path      string  true  "hotel id"  format(uuid)
// @Success  200      {object}  types.HotelDto
// @Failure  404      {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /hotels/{hotelId}/restore [put]
func (h *HotelsHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "hotelId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	hotel, err := h.svc.RestoreHotel(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewHotelDto(hotel))
}

package handlers

import (
	"net/http"

	"github.com/hotel-booking/engine/internal/api/types"
	"github.com/hotel-booking/engine/internal/repository"
	"github.com/hotel-booking/engine/internal/services"
	"github.com/hotel-booking/engine/pkg/pagination"
)

// RoomsHandler serves the rooms nested under /hotels/{hotelId}/rooms.
type RoomsHandler struct {
	svc services.RoomService
}

func NewRoomsHandler(svc services.RoomService) *RoomsHandler {
	return &RoomsHandler{svc: svc}
}

// List godoc
// @Summary  List the rooms of a hotel
// @Tags     rooms
// @Produce  json
// @Param    hotelId    path   string  true   "hotel id"  format(uuid)
// @Param    page       query  int     false  "page number"  default(1)
// @Param    perPage    query  int     false  "page size"    default(1000)
// @Param    sort       query  string  false  "sort field"   Enums(number, singleBed, doubleBed, price, createdAt, updatedAt)
// @Param    order      query  string  false  "sort order"   Enums(ASC, DESC)
// @Param    count      query  bool    false  "include the total count"
// @Param    number     query  int     false  "exact room number"
// @Param    singleBed  query  int     false  "exact single beds"
// @Param    doubleBed  query  int     false  "exact double beds"
// @Param    minPrice   query  number  false  "lowest price"
// @Param    maxPrice   query  number  false  "highest price"
// @Success  200  {object}  pagination.Page[types.RoomDto]
// @Failure  400  {object}  types.ErrorResponse
// @Failure  404  {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /hotels/{hotelId}/rooms [get]
func (h *RoomsHandler) List(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathUUID(r, "hotelId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := newQuery(r)
	p := q.page()
	filter := repository.RoomFilter{
		SingleBed: q.intPtr("singleBed"),
		DoubleBed: q.intPtr("doubleBed"),
		Number:    q.intPtr("number"),
		MinPrice:  q.decimalPtr("minPrice"),
		MaxPrice:  q.decimalPtr("maxPrice"),
	}
	if err := q.err(); err != nil {
		writeError(w, r, err)
		return
	}
	page, err := h.svc.ListRooms(r.Context(), hotelID, filter, p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pagination.Map(page, types.RoomRecord))
}

// Create godoc
// @Summary  Create a room
// @Tags     rooms
// @Accept   json
// @Produce  json
// @Param    hotelId  path      string                   true  "hotel id"  format(uuid)
// @Param    body     body      types.CreateRoomRequest  true  "room"
// @Success  201      {object}  types.RoomDto
// @Failure  400      {object}  types.ErrorResponse
// @Failure  404      {object}  types.ErrorResponse
// @Failure  409      {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /hotels/{hotelId}/rooms [post]
func (h *RoomsHandler) Create(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathUUID(r, "hotelId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req types.CreateRoomRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	room, err := h.svc.CreateRoom(r.Context(), hotelID, &services.CreateRoomInput{
		SingleBed: *req.SingleBed,
		DoubleBed: *req.DoubleBed,
		Number:    *req.Number,
		Price:     *req.Price,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.NewRoomDto(room))
}

// Get godoc
// @Summary  Get a room
// @Tags     rooms
// @Produce  json
// @Param    hotelId  path      string  true  "hotel id"  format(uuid)
// @Param    roomId   path      string  true  "room id"   format(uuid)
// @Success  200      {object}  types.RoomDto
// @Failure  404      {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /hotels/{hotelId}/rooms/{roomId} [get]
func (h *RoomsHandler) Get(w http.ResponseWriter, r *http.Request) {
	hotelID, roomID, err := roomPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	room, err := h.svc.GetRoom(r.Context(), hotelID, roomID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewRoomDto(room))
}

// Update godoc
// @Summary  Update a room
// @Tags     rooms
// @Accept   json
// @Produce  json
// @Param    hotelId  path      string                   true  "hotel id"  format(uuid)
// @Param    roomId   path      string                   true  "room id"   format(uuid)
// @Param    body     body      types.UpdateRoomRequest  true  "fields to change"
// @Success  200      {object}  types.RoomDto
// @Failure  400      {object}  types.ErrorResponse
// @Failure  404      {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /hotels/{hotelId}/rooms/{roomId} [patch]
func (h *RoomsHandler) Update(w http.ResponseWriter, r *http.Request) {
	hotelID, roomID, err := roomPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req types.UpdateRoomRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	room, err := h.svc.UpdateRoom(r.Context(), hotelID, roomID, &services.UpdateRoomInput{
		SingleBed: req.SingleBed,
		DoubleBed: req.DoubleBed,
		Number:    req.Number,
		Price:     req.Price,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewRoomDto(room))
}

// Delete godoc
// @Summary  Delete a room and its bookings
// @Tags     rooms
// @Param    hotelId  path  string  true  "hotel id"  format(uuid)
// @Param    roomId   path  string  true  "room id"   format(uuid)
// @Success  204
// @Failure  404  {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /hotels/{hotelId}/rooms/{roomId} [delete]
func (h *RoomsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	hotelID, roomID, err := roomPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.DeleteRoom(r.Context(), hotelID, roomID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

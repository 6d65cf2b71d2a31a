package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/hotel-booking/engine/internal/api/types"
	"github.com/hotel-booking/engine/internal/repository"
	"github.com/hotel-booking/engine/internal/services"
	"github.com/hotel-booking/engine/pkg/pagination"
)

type UsersHandler struct {
	svc services.UserService
}

func NewUsersHandler(svc services.UserService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

// List godoc
// @Summary  List users
// @Tags     users
// @Produce  json
// @Param    page       query    int     false  "page number"  default(1)
// @Param    perPage    query    int     false  "page size"    default(1000)
// @Param    sort       query    string  false  "sort field"   Enums(name, email, taxId, phone, birthdate, createdAt, updatedAt)
// @Param    order      query    string  false  "sort order"   Enums(ASC, DESC)
// @Param    count      query    bool    false  "include the total count"
// @Param    name       query    string  false  "name contains"
// @Param    email      query    string  false  "exact email"
// @Param    taxId      query    string  false  "exact tax id"
// @Param    phone      query    string  false  "exact phone"
// @Param    birthdate  query    string  false  "exact birthdate (2006-01-02)"
// @Success  200  {object}  pagination.Page[types.UserDto]
// @Failure  400  {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /users [get]
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	p := q.page()
	filter := repository.UserFilter{
		Name:      q.str("name"),
		Email:     strings.ToLower(q.str("email")),
		TaxID:     q.str("taxId"),
		Phone:     q.str("phone"),
		Birthdate: q.date("birthdate"),
	}
	if err := q.err(); err != nil {
		writeError(w, r, err)
		return
	}
	page, err := h.svc.ListUsers(r.Context(), filter, p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pagination.Map(page, types.UserRecord))
}

// Create godoc
// @Summary  Create a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body  body      types.CreateUserRequest  true  "user"
// @Success  201   {object}  types.UserDto
// @Failure  400   {object}  types.ErrorResponse
// @Failure  409   {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /users [post]
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	birthdate, _ := time.Parse(time.DateOnly, req.Birthdate)
	u, err := h.svc.CreateUser(r.Context(), &services.CreateUserInput{
		Name:      req.Name,
		Email:     req.Email,
		TaxID:     req.TaxID,
		Phone:     req.Phone,
		Birthdate: birthdate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.NewUserDto(u))
}

// Get godoc
// @Summary  Get a user
// @Tags     users
// @Produce  json
// @Param    userId  path      string  true  "user id"  format(uuid)
// @Success  200     {object}  types.UserDto
// @Failure  404     {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /users/{userId} [get]
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewUserDto(u))
}

// Update godoc
// @Summary  Update a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    userId  path      string                   true  "user id"  format(uuid)
// @Param    body    body      types.UpdateUserRequest  true  "fields to change"
// @Success  200     {object}  types.UserDto
// @Failure  400     {object}  types.ErrorResponse
// @Failure  404     {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /users/{userId} [patch]
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req types.UpdateUserRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	input := &services.UpdateUserInput{Name: req.Name, TaxID: req.TaxID, Phone: req.Phone}
	if req.Birthdate != nil {
		d, _ := time.Parse(time.DateOnly, *req.Birthdate)
		input.Birthdate = &d
	}
	u, err := h.svc.UpdateUser(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewUserDto(u))
}

// Delete godoc
// @Summary  Delete a user
// @Tags     users
// @Param    userId  path  string  true  "user id"  format(uuid)
// @Success  204
// @Failure  404  {object}  types.ErrorResponse
// @Failure  409  {object}  types.ErrorResponse
// @Security BearerAuth
// @Router   /users/{userId} [delete]
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/hotel-booking/engine/internal/api/handlers"
	"github.com/hotel-booking/engine/internal/models"
	"github.com/hotel-booking/engine/internal/repository"
	"github.com/hotel-booking/engine/internal/services"
	appErr "github.com/hotel-booking/engine/pkg/errors"
	"github.com/hotel-booking/engine/pkg/logger"
	"github.com/hotel-booking/engine/pkg/pagination"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests (required by middleware)
	_, err := logger.Init("error", "json")
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

type testServer struct {
	users    *mockUserService
	hotels   *mockHotelService
	rooms    *mockRoomService
	bookings *mockBookingService
	handler  http.Handler
}

func newTestServer(secret []byte) *testServer {
	s := &testServer{
		users:    new(mockUserService),
		hotels:   new(mockHotelService),
		rooms:    new(mockRoomService),
		bookings: new(mockBookingService),
	}
	s.handler = NewRouter(Dependencies{
		HMACSecret:      secret,
		AllowedOrigins:  []string{"https://desk.example.com"},
		UsersHandler:    handlers.NewUsersHandler(s.users),
		HotelsHandler:   handlers.NewHotelsHandler(s.hotels),
		RoomsHandler:    handlers.NewRoomsHandler(s.rooms),
		BookingsHandler: handlers.NewBookingsHandler(s.bookings),
	})
	return s
}

func (s *testServer) do(method, path, body string, header ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestCreateUserEndpoint(t *testing.T) {
	s := newTestServer(nil)
	id := uuid.New()
	birth, _ := time.Parse(time.DateOnly, "1990-04-01")
	s.users.On("CreateUser", mock.Anything, &services.CreateUserInput{
		Name: "Ana", Email: "ana@example.com", TaxID: "12345678901", Phone: "11999999999", Birthdate: birth,
	}).Return(&models.User{ID: id, Name: "Ana", Email: "ana@example.com", TaxID: "12345678901", Phone: "11999999999", Birthdate: datatypes.Date(birth)}, nil).Once()

	body := `{"name":"Ana","email":"ana@example.com","taxId":"12345678901","phone":"11999999999","birthdate":"1990-04-01"}`
	rr := s.do(http.MethodPost, "/api/v1/users", body)
	require.Equal(t, http.StatusCreated, rr.Code)
	out := decodeBody(t, rr)
	assert.Equal(t, id.String(), out["id"])
	assert.Equal(t, "1990-04-01", out["birthdate"])
	assert.Equal(t, "12345678901", out["taxId"])

	s.users.On("CreateUser", mock.Anything, mock.Anything).Return(nil, appErr.New(appErr.CodeConflict, appErr.MsgEntityConflict)).Once()
	rr = s.do(http.MethodPost, "/api/v1/users", body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"statusCode":409,"error":"Conflict","message":"entity already exists"}`, rr.Body.String())
}

func TestCreateUserValidation(t *testing.T) {
	s := newTestServer(nil)

	rr := s.do(http.MethodPost, "/api/v1/users", `{"name":"Ana","email":"nope","taxId":"123","phone":"11999999999","birthdate":"01/04/1990"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	msg := decodeBody(t, rr)["message"].(string)
	assert.Contains(t, msg, "email must be an email")
	assert.Contains(t, msg, "taxId must be 11 characters long")
	assert.Contains(t, msg, "birthdate must be a date formatted as 2006-01-02")

	rr = s.do(http.MethodPost, "/api/v1/users", `{"name":"Ana","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeBody(t, rr)["message"], `"password"`)

	s.users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestListUsersEndpoint(t *testing.T) {
	s := newTestServer(nil)
	total := int64(25)
	p := pagination.Params{Page: 2, PerPage: 10, Sort: "name", Order: pagination.OrderDesc, Count: true}
	s.users.On("ListUsers", mock.Anything, repository.UserFilter{Name: "an", Email: "ana@example.com"}, p).
		Return(pagination.NewPage(p, []models.User{{ID: uuid.New(), Name: "Ana"}}, &total), nil)

	rr := s.do(http.MethodGet, "/api/v1/users?page=2&perPage=10&sort=name&order=desc&count=true&name=an&email=ANA@example.com", "")
	require.Equal(t, http.StatusOK, rr.Code)
	out := decodeBody(t, rr)
	assert.EqualValues(t, 2, out["page"])
	assert.EqualValues(t, 10, out["perPage"])
	assert.EqualValues(t, 25, out["count"])
	assert.Equal(t, "name", out["sort"])
	assert.Equal(t, "DESC", out["order"])
	assert.Len(t, out["records"], 1)

	rr = s.do(http.MethodGet, "/api/v1/users?perPage=5000&page=0", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	msg := decodeBody(t, rr)["message"].(string)
	assert.Contains(t, msg, "perPage must be between 1 and 1000")
	assert.Contains(t, msg, "page must be at least 1")

	rr = s.do(http.MethodGet, fmt.Sprintf("/api/v1/users?page=%d", pagination.MaxPage+1), "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeBody(t, rr)["message"], fmt.Sprintf("page must be at most %d", pagination.MaxPage))

	rr = s.do(http.MethodGet, "/api/v1/users?page=9223372036854775807", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	s.users.AssertNumberOfCalls(t, "ListUsers", 1)
}

func TestInvalidPathID(t *testing.T) {
	s := newTestServer(nil)
	rr := s.do(http.MethodGet, "/api/v1/users/42", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "userId must be a UUID", decodeBody(t, rr)["message"])
}

func TestHotelEndpoints(t *testing.T) {
	s := newTestServer(nil)
	id := uuid.New()
	hotel := &models.Hotel{ID: id, Name: "Seaside", Rating: models.HotelRatingEco, Address: models.Address{City: "Rio"}}

	s.hotels.On("RestoreHotel", mock.Anything, id).Return(hotel, nil)
	rr := s.do(http.MethodPut, "/api/v1/hotels/"+id.String()+"/restore", "")
	require.Equal(t, http.StatusOK, rr.Code)
	out := decodeBody(t, rr)
	assert.Nil(t, out["deletedAt"])
	assert.Nil(t, out["address"].(map[string]any)["deletedAt"])

	s.hotels.On("DeleteHotel", mock.Anything, id).Return(nil)
	rr = s.do(http.MethodDelete, "/api/v1/hotels/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	p := pagination.Params{}.Normalize()
	s.hotels.On("ListDeletedHotels", mock.Anything, repository.HotelFilter{Rating: models.HotelRatingEco}, p).
		Return(pagination.NewPage[models.Hotel](p, nil, nil), nil)
	rr = s.do(http.MethodGet, "/api/v1/hotels/deleted?rating=eco", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"page":1,"perPage":1000,"records":[]}`, rr.Body.String())

	rr = s.do(http.MethodGet, "/api/v1/hotels?rating=five", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(http.MethodPost, "/api/v1/hotels", `{"name":"Seaside","contactPhone":"11988887777","rating":"eco","address":{"street":"A","district":"B","city":"C","state":"D","zipcode":"123"}}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "address.zipcode must be 8 characters long", decodeBody(t, rr)["message"])
	s.hotels.AssertNotCalled(t, "CreateHotel", mock.Anything, mock.Anything)
}

func TestRoomEndpoints(t *testing.T) {
	s := newTestServer(nil)
	hotelID := uuid.New()

	rr := s.do(http.MethodPost, "/api/v1/hotels/"+hotelID.String()+"/rooms", `{"singleBed":0,"doubleBed":2,"number":101,"price":10.555}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	s.rooms.On("CreateRoom", mock.Anything, hotelID, mock.MatchedBy(func(in *services.CreateRoomInput) bool {
		return in.DoubleBed == 2 && in.SingleBed == 0 && in.Number == 101 && in.Price.Equal(decimal.RequireFromString("350.5"))
	})).
		Return(&models.Room{ID: uuid.New(), HotelID: hotelID, DoubleBed: 2, Number: 101, Price: decimal.RequireFromString("350.5")}, nil)
	rr = s.do(http.MethodPost, "/api/v1/hotels/"+hotelID.String()+"/rooms", `{"singleBed":0,"doubleBed":2,"number":101,"price":350.5}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"price":350.50`)
	assert.Contains(t, rr.Body.String(), `"capacity":4`)

	rr = s.do(http.MethodPost, "/api/v1/hotels/"+hotelID.String()+"/rooms", `{"doubleBed":2,"number":101,"price":1}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "singleBed is required", decodeBody(t, rr)["message"])

	roomID := uuid.New()
	s.rooms.On("DeleteRoom", mock.Anything, hotelID, roomID).Return(appErr.New(appErr.CodeNotFound, "room does not exist"))
	rr = s.do(http.MethodDelete, "/api/v1/hotels/"+hotelID.String()+"/rooms/"+roomID.String(), "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBookingEndpoints(t *testing.T) {
	s := newTestServer(nil)
	userID, hotelID, roomID := uuid.New(), uuid.New(), uuid.New()
	body := `{"userId":"` + userID.String() + `","hotelId":"` + hotelID.String() + `","roomId":"` + roomID.String() +
		`","guests":2,"checkInDate":"2024-01-05","checkoutDate":"2024-01-10"}`

	s.bookings.On("CreateBooking", mock.Anything, mock.MatchedBy(func(in *services.CreateBookingInput) bool {
		return in.UserID == userID && in.RoomID == roomID && in.CheckInDate.Day() == 5 && in.CheckoutDate.Day() == 10
	})).Return(nil, appErr.New(appErr.CodeConflict, services.MsgPeriodReserved)).Once()
	rr := s.do(http.MethodPost, "/api/v1/bookings", body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, services.MsgPeriodReserved, decodeBody(t, rr)["message"])

	s.bookings.On("CreateBooking", mock.Anything, mock.Anything).
		Return(nil, appErr.New(appErr.CodeInvalid, "guests must be less than or equal to room capacity (4)")).Once()
	rr = s.do(http.MethodPost, "/api/v1/bookings", strings.Replace(body, `"guests":2`, `"guests":5`, 1))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "guests must be less than or equal to room capacity (4)", decodeBody(t, rr)["message"])

	rr = s.do(http.MethodPost, "/api/v1/bookings", strings.Replace(body, "2024-01-10", "tomorrow", 1))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	id := uuid.New()
	status := models.BookingStatusConfirmed
	s.bookings.On("UpdateBooking", mock.Anything, id, &services.UpdateBookingInput{Status: &status}).
		Return(&models.Booking{ID: id, Status: status, Guests: 2}, nil)
	rr = s.do(http.MethodPatch, "/api/v1/bookings/"+id.String(), `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "confirmed", decodeBody(t, rr)["status"])

	s.bookings.On("DeleteBooking", mock.Anything, id).Return(nil)
	rr = s.do(http.MethodDelete, "/api/v1/bookings/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = s.do(http.MethodGet, "/api/v1/bookings?status=archived&userId=x", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBearerAuth(t *testing.T) {
	secret := []byte("test-secret")
	s := newTestServer(secret)
	id := uuid.New()
	s.users.On("GetUser", mock.Anything, id).Return(&models.User{ID: id}, nil)

	rr := s.do(http.MethodGet, "/api/v1/users/"+id.String(), "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "front-desk"}).SignedString(secret)
	require.NoError(t, err)
	rr = s.do(http.MethodGet, "/api/v1/users/"+id.String(), "", "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	rr = s.do(http.MethodOptions, "/api/v1/users", "", "Origin", "https://desk.example.com", "Access-Control-Request-Method", "GET")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://desk.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "X-Request-ID", rr.Header().Get("Access-Control-Expose-Headers"))
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hotel-booking/engine/internal/api/middleware"
	"github.com/hotel-booking/engine/internal/api/types"
	"github.com/hotel-booking/engine/internal/api/validators"
	appErr "github.com/hotel-booking/engine/pkg/errors"
	"github.com/hotel-booking/engine/pkg/pagination"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders err as an ErrorResponse. Server side failures are
// logged with their cause.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := types.FromError(err)
	if resp.StatusCode >= http.StatusInternalServerError {
		middleware.RequestLogger(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, resp.StatusCode, resp)
}

func invalid(message string) error {
	return appErr.New(appErr.CodeInvalid, message)
}

// decode reads a JSON body into dst, rejecting unknown fields, and validates it.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			return invalid("request body must not be empty")
		case errors.As(err, &syntaxErr):
			return invalid(fmt.Sprintf("malformed json at position %d", syntaxErr.Offset))
		case errors.As(err, &typeErr):
			return invalid(fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type))
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			return invalid(strings.TrimPrefix(err.Error(), "json: ") + " is not allowed")
		}
		return invalid("invalid json: " + err.Error())
	}
	if err := validators.New().Struct(dst); err != nil {
		return invalid(validators.Describe(err))
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, invalid(name + " must be a UUID")
	}
	return id, nil
}

// query reads typed values from the URL query, collecting every problem.
type query struct {
	values url.Values
	errs   []string
}

func newQuery(r *http.Request) *query {
	return &query{values: r.URL.Query()}
}

func (q *query) fail(name, want string) {
	q.errs = append(q.errs, fmt.Sprintf("%s must be %s", name, want))
}

func (q *query) str(name string) string {
	return strings.TrimSpace(q.values.Get(name))
}

func (q *query) intPtr(name string) *int {
	s := q.str(name)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		q.fail(name, "an integer")
		return nil
	}
	return &n
}

func (q *query) boolean(name string) bool {
	s := q.str(name)
	if s == "" {
		return false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		q.fail(name, "a boolean")
	}
	return b
}

func (q *query) decimalPtr(name string) *decimal.Decimal {
	s := q.str(name)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		q.fail(name, "a number")
		return nil
	}
	return &d
}

func (q *query) id(name string) uuid.UUID {
	s := q.str(name)
	if s == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		q.fail(name, "a UUID")
	}
	return id
}

func (q *query) date(name string) *time.Time {
	s := q.str(name)
	if s == "" {
		return nil
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		q.fail(name, "a date formatted as 2006-01-02")
		return nil
	}
	return &d
}

func (q *query) oneOf(name string, allowed ...string) string {
	s := q.str(name)
	if s == "" {
		return ""
	}
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	q.fail(name, "one of: "+strings.Join(allowed, ", "))
	return ""
}

// page reads the pagination parameters shared by every list endpoint.
func (q *query) page() pagination.Params {
	p := pagination.Params{
		Sort:  q.str("sort"),
		Order: pagination.Order(strings.ToUpper(q.str("order"))),
		Count: q.boolean("count"),
	}
	if n := q.intPtr("page"); n != nil {
		p.Page = *n
		if *n < 1 {
			q.fail("page", "at least 1")
		} else if *n > pagination.MaxPage {
			q.fail("page", fmt.Sprintf("at most %d", pagination.MaxPage))
		}
	}
	if n := q.intPtr("perPage"); n != nil {
		p.PerPage = *n
		if *n < 1 || *n > pagination.MaxPerPage {
			q.fail("perPage", fmt.Sprintf("between 1 and %d", pagination.MaxPerPage))
		}
	}
	p = p.Normalize()
	if p.Order != pagination.OrderAsc && p.Order != pagination.OrderDesc {
		q.fail("order", "one of: ASC, DESC")
	}
	return p
}

func (q *query) err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return invalid(strings.Join(q.errs, "; "))
}

func roomPath(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	hotelID, err := pathUUID(r, "hotelId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	roomID, err := pathUUID(r, "roomId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return hotelID, roomID, nil
}

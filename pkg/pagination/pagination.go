// Package pagination holds the page/sort parameters shared by every list
// endpoint and the envelope list responses are returned in.
package pagination

import (
	"fmt"
	"math"
	"slices"
	"strings"

	appErr "github.com/hotel-booking/engine/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 1000
	MaxPerPage     = 1000
	// MaxPage keeps (Page-1)*PerPage inside int for any valid PerPage.
	MaxPage = math.MaxInt / MaxPerPage
)

// Params are the window and ordering options accepted by list operations.
type Params struct {
	Page    int    `json:"page" validate:"gte=1"`
	PerPage int    `json:"perPage" validate:"gte=1,lte=1000"`
	Sort    string `json:"sort,omitempty" validate:"omitempty,min=1"`
	Order   Order  `json:"order,omitempty" validate:"omitempty,oneof=ASC DESC"`
	Count   bool   `json:"count"`
}

// Normalize fills zero values with defaults and caps Page at MaxPage.
func (p Params) Normalize() Params {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PerPage == 0 {
		p.PerPage = DefaultPerPage
	}
	if p.Order == "" {
		p.Order = OrderAsc
	}
	p.Order = Order(strings.ToUpper(string(p.Order)))
	return p
}

func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

// Columns maps public sort field names to database columns.
type Columns map[string]string

// ResolveSort returns the column for the requested sort field, or "" when
// no sort was requested.
func (c Columns) ResolveSort(field string) (string, error) {
	if field == "" {
		return "", nil
	}
	col, ok := c[field]
	if !ok {
		return "", appErr.New(appErr.CodeInvalid, fmt.Sprintf("sort must be one of: %s", strings.Join(c.fields(), ", ")))
	}
	return col, nil
}

func (c Columns) fields() []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Window applies offset and limit.
func Window(p Params) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.PerPage)
	}
}

// OrderBy orders by column in the requested direction; empty column is a no-op.
func OrderBy(column string, order Order) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if column == "" {
			return db
		}
		return db.Order(clause.OrderByColumn{
			Column: clause.Column{Name: column, Raw: strings.Contains(column, ".")},
			Desc:   order == OrderDesc,
		})
	}
}

// Page is the response envelope of list operations.
type Page[T any] struct {
	Page    int    `json:"page"`
	PerPage int    `json:"perPage"`
	Count   *int64 `json:"count,omitempty"`
	Sort    string `json:"sort,omitempty"`
	Order   Order  `json:"order,omitempty"`
	Records []T    `json:"records"`
}

// NewPage builds the envelope; sort and order are echoed only when a sort was requested.
func NewPage[T any](p Params, records []T, count *int64) Page[T] {
	if records == nil {
		records = []T{}
	}
	out := Page[T]{Page: p.Page, PerPage: p.PerPage, Count: count, Records: records}
	if p.Sort != "" {
		out.Sort = p.Sort
		out.Order = p.Order
	}
	return out
}

// Map converts the records of a page.
func Map[T, U any](in Page[T], fn func(T) U) Page[U] {
	out := Page[U]{Page: in.Page, PerPage: in.PerPage, Count: in.Count, Sort: in.Sort, Order: in.Order, Records: make([]U, 0, len(in.Records))}
	for _, r := range in.Records {
		out.Records = append(out.Records, fn(r))
	}
	return out
}

// Package validators builds the validator shared by the request DTOs.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// New returns the process-wide validator with the custom tags registered.
func New() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		v.RegisterCustomTypeFunc(decimalString, decimal.Decimal{})
		_ = v.RegisterValidation("price", validatePrice)
		_ = v.RegisterValidation("timestamp", validateTimestamp)
		instance = v
	})
	return instance
}

// ParseTimestamp accepts RFC 3339 timestamps and plain dates.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

// Describe turns validation errors into a single client facing message.
func Describe(err error) string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		msgs = append(msgs, describeField(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeField(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be an email"
	case "uuid":
		return field + " must be a UUID"
	case "numeric":
		return field + " must contain only digits"
	case "len":
		return fmt.Sprintf("%s must be %s characters long", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as %s", field, fe.Param())
	case "timestamp":
		return field + " must be an ISO 8601 date or timestamp"
	case "price":
		return field + " must be a non-negative number with at most 2 decimal places"
	}
	return fmt.Sprintf("%s failed on %s", field, fe.Tag())
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func decimalString(v reflect.Value) interface{} {
	if d, ok := v.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func validatePrice(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative() && d.Equal(d.Round(2))
}

func validateTimestamp(fl validator.FieldLevel) bool {
	_, err := ParseTimestamp(fl.Field().String())
	return err == nil
}

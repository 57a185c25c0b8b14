// Package validate builds the request validator shared by the HTTP handlers.
package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var hhmmRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var ErrBadDate = errors.New("date must be YYYY-MM-DD or RFC 3339")

// New returns a validator that reports JSON field names, understands
// decimal.Decimal bounds and knows the hhmm, date and notpast tags.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("notpast", notPast)

	return v
}

func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	f, _ := d.Float64()
	return f
}

// ParseDate accepts a calendar date or a full RFC 3339 timestamp and returns
// it in UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}

	return t.UTC(), nil
}

// notPast accepts dates from the start of the current UTC day onwards.
func notPast(fl validator.FieldLevel) bool {
	var t time.Time

	switch v := fl.Field().Interface().(type) {
	case time.Time:
		t = v
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return false
		}
		t = parsed
	default:
		return false
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	return !t.UTC().Before(today)
}

package util

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

var (
	// ErrNotNumeric is returned when a numeric field receives a token which is not a number
	ErrNotNumeric = errors.New("not a valid number")
	// ErrInvalidValue is returned for any other token which cannot be converted
	ErrInvalidValue = errors.New("invalid value")
)

var (
	durationType = reflect.TypeOf(time.Duration(0))
	timeType     = reflect.TypeOf(time.Time{})
)

// IsNumeric reports whether values of t are parsed as numbers
func IsNumeric(t reflect.Type) bool {
	if t == durationType {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// IsInteger reports whether t has a signed or unsigned integer kind
func IsInteger(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// CanConvert reports whether ConvertString supports values of t
func CanConvert(t reflect.Type) bool {
	if t == durationType || t == timeType {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool:
		return true
	}
	return IsNumeric(t)
}

// ConvertString converts a single token into a value of type t
func ConvertString(value string, t reflect.Type) (reflect.Value, error) {
	v := reflect.New(t).Elem()

	switch {
	case t == durationType:
		d, err := time.ParseDuration(value)
		if err != nil {
			return v, fmt.Errorf("%w: %q: %w", ErrInvalidValue, value, err)
		}
		v.SetInt(int64(d))
		return v, nil
	case t == timeType:
		tm, err := dateparse.ParseAny(value)
		if err != nil {
			return v, fmt.Errorf("%w: %q: %w", ErrInvalidValue, value, err)
		}
		v.Set(reflect.ValueOf(tm))
		return v, nil
	}

	switch t.Kind() {
	case reflect.String:
		v.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return v, fmt.Errorf("%w: %q", ErrInvalidValue, value)
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(value, 10, t.Bits())
		if err != nil {
			return v, fmt.Errorf("%w: %q", ErrNotNumeric, value)
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(value, 10, t.Bits())
		if err != nil {
			return v, fmt.Errorf("%w: %q", ErrNotNumeric, value)
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, t.Bits())
		if err != nil {
			return v, fmt.Errorf("%w: %q", ErrNotNumeric, value)
		}
		v.SetFloat(f)
	default:
		return v, fmt.Errorf("%w: unsupported type %s", ErrInvalidValue, t)
	}
	return v, nil
}

package util

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type level uint8

func TestConvertString(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		typ     reflect.Type
		want    any
		wantErr error
	}{
		{name: "string", value: "-x", typ: reflect.TypeOf(""), want: "-x"},
		{name: "bool", value: "true", typ: reflect.TypeOf(false), want: true},
		{name: "int", value: "-42", typ: reflect.TypeOf(0), want: -42},
		{name: "int8 overflow", value: "300", typ: reflect.TypeOf(int8(0)), wantErr: ErrNotNumeric},
		{name: "named uint", value: "7", typ: reflect.TypeOf(level(0)), want: level(7)},
		{name: "negative uint", value: "-1", typ: reflect.TypeOf(uint(0)), wantErr: ErrNotNumeric},
		{name: "float", value: "1.5", typ: reflect.TypeOf(float64(0)), want: 1.5},
		{name: "not a number", value: "abc", typ: reflect.TypeOf(0), wantErr: ErrNotNumeric},
		{name: "duration", value: "1m30s", typ: reflect.TypeOf(time.Duration(0)), want: 90 * time.Second},
		{name: "bad duration", value: "soon", typ: reflect.TypeOf(time.Duration(0)), wantErr: ErrInvalidValue},
		{name: "bad bool", value: "perhaps", typ: reflect.TypeOf(false), wantErr: ErrInvalidValue},
		{name: "unsupported", value: "x", typ: reflect.TypeOf(struct{}{}), wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertString(tt.value, tt.typ)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got.Interface())
		})
	}
}

func TestConvertString_Time(t *testing.T) {
	got, err := ConvertString("2024-03-01", reflect.TypeOf(time.Time{}))
	assert.Nil(t, err)
	tm := got.Interface().(time.Time)
	assert.Equal(t, 2024, tm.Year())
	assert.Equal(t, time.March, tm.Month())
}

func TestKinds(t *testing.T) {
	assert.True(t, IsNumeric(reflect.TypeOf(float32(0))))
	assert.False(t, IsNumeric(reflect.TypeOf(time.Duration(0))))
	assert.True(t, IsInteger(reflect.TypeOf(level(0))))
	assert.False(t, IsInteger(reflect.TypeOf(1.0)))
	assert.True(t, CanConvert(reflect.TypeOf(time.Time{})))
	assert.False(t, CanConvert(reflect.TypeOf([]string{})))
}

package utils

import (
	"reflect"
	"strings"
	"time"
)

// TimestampLayout is RFC3339 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(TimestampLayout)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// Sanitize trims every string (and []string element) of the struct pointed by 'o'.
// Pointer-to-string fields are trimmed in place when set.
func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		sanitizeValue(v.Field(i))
	}
}

func sanitizeValue(field reflect.Value) {
	switch field.Kind() {
	case reflect.String:
		field.SetString(sanitizeString(field.String()))

	case reflect.Ptr:
		if !field.IsNil() {
			sanitizeValue(field.Elem())
		}

	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String {
			for j := 0; j < field.Len(); j++ {
				field.Index(j).SetString(sanitizeString(field.Index(j).String()))
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}

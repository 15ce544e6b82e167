package util

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// RowToMap flattens a persisted record into a column-name -> string
// mapping suitable for a JSON data row. Nullable columns that are NULL
// stay nil instead of being stringified; association fields are
// skipped, only their foreign keys appear.
func RowToMap(record interface{}) map[string]interface{} {
	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	row := make(map[string]interface{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || isAssociation(field.Type) {
			continue
		}
		row[snakeCase(field.Name)] = fieldString(v.Field(i))
	}
	return row
}

// RowsToMaps applies RowToMap across a slice of records.
func RowsToMaps[T any](records []T) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(records))
	for i := range records {
		rows = append(rows, RowToMap(records[i]))
	}
	return rows
}

func isAssociation(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	return t != timeType && t != decimalType
}

func fieldString(v reflect.Value) interface{} {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch val := v.Interface().(type) {
	case time.Time:
		// date columns carry no clock component
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format(time.RFC3339)
	case decimal.Decimal:
		return val.String()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && (runes[i-1] < 'A' || runes[i-1] > 'Z' || (i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z')) {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

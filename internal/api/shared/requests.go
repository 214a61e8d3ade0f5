package shared

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
)

// DecodeJSON decodes the request body into the given struct and trims
// surrounding whitespace from every string field.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	TrimStrings(v)
	return nil
}

// ValidateRequest validates the given struct using the shared validator.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return validate.Struct(v)
}

// TrimStrings trims leading and trailing whitespace from the string and
// *string fields of the struct v points to, descending into nested structs.
// Anything other than a pointer to a struct is left alone.
func TrimStrings(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return
	}
	trimValue(rv.Elem())
}

func trimValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(strings.TrimSpace(v.String()))
		}
	case reflect.Ptr:
		if !v.IsNil() {
			trimValue(v.Elem())
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				trimValue(v.Field(i))
			}
		}
	}
}

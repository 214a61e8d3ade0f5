package shared

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/shopspring/decimal"
)

// validate is the process-wide validator. Field names in its errors are the
// JSON names of the request fields.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "alphaspace", func(fl validator.FieldLevel) bool {
		return domain.IsAlphaWords(fl.Field().String())
	})
	mustRegister(v, "money", validateMoney)
	mustRegister(v, "password", func(fl validator.FieldLevel) bool {
		return domain.IsStrongPassword(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// validateMoney implements the money=p:s tag: a non-negative decimal that fits
// NUMERIC(p, s) without rounding.
func validateMoney(fl validator.FieldLevel) bool {
	precision, scale, ok := moneyParam(fl.Param())
	if !ok {
		return false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return domain.FitsMoney(d, precision, scale)
}

func moneyParam(param string) (precision, scale int, ok bool) {
	p, s, found := strings.Cut(param, ":")
	if !found {
		return 0, 0, false
	}
	precision, err := strconv.Atoi(p)
	if err != nil {
		return 0, 0, false
	}
	scale, err = strconv.Atoi(s)
	if err != nil || scale > precision {
		return 0, 0, false
	}
	return precision, scale, true
}

// FieldErrors flattens a validation failure into a map from JSON field name to
// reason. It understands validator errors and domain.ValidationError and
// returns nil for anything else.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fieldPath(fe)] = fieldMessage(fe)
		}
		return fields
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return map[string]string{ve.Field: ve.Message}
	}
	return nil
}

// fieldPath drops the request struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		return rest
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if isString {
			return "must be at least " + fe.Param() + " characters long"
		}
		return "must be at least " + fe.Param()
	case "max":
		if isString {
			return "must be at most " + fe.Param() + " characters long"
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "alphaspace":
		return "must contain only letters"
	case "money":
		if p, s, ok := moneyParam(fe.Param()); ok {
			return fmt.Sprintf("must be a non-negative amount with at most %d digits, %d after the point", p, s)
		}
		return "is not a valid amount"
	case "password":
		return "must contain upper and lower case letters, a digit and one of " + domain.PasswordSpecialChars
	case "eqfield":
		return "must match " + strings.ToLower(fe.Param())
	default:
		return "is invalid"
	}
}

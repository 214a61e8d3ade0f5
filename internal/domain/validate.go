package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// checkLength reports a ValidationError when value is outside [min, max] runes.
func checkLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min {
		return NewValidationError(field, "is too short", nil)
	}
	if max > 0 && n > max {
		return NewValidationError(field, "is too long", nil)
	}
	return nil
}

// checkAlpha reports a ValidationError unless value consists of letters
// separated by single spaces.
func checkAlpha(field, value string) error {
	if !IsAlphaWords(value) {
		return NewValidationError(field, "must contain only letters", nil)
	}
	return nil
}

// Upper bounds of the SMALLINT identity columns and the INTEGER count columns.
const (
	MaxID  = 32767
	MaxInt = 2147483647
)

// checkID reports a ValidationError unless id fits a SMALLINT identity.
func checkID(field string, id int64) error {
	if id <= 0 || id > MaxID {
		return NewValidationError(field, "must be an integer between 1 and 32767", ErrInvalidID)
	}
	return nil
}

// checkPositive reports a ValidationError unless n fits a positive INTEGER column.
func checkPositive(field string, n int) error {
	if n <= 0 || int64(n) > MaxInt {
		return NewValidationError(field, "must be a positive integer", nil)
	}
	return nil
}

// checkSlug validates a stored or supplied slug.
func checkSlug(value string) error {
	if err := checkLength("slug", value, SlugMinLength, SlugMaxLength); err != nil {
		return err
	}
	if Slugify(value) != value {
		return NewValidationError("slug", "must be lowercase letters, digits and hyphens", nil)
	}
	return nil
}

// IsAlphaWords reports whether s is made of letters, with single spaces
// allowed between words.
func IsAlphaWords(s string) bool {
	if s == "" || strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		return false
	}
	prevSpace := false
	for _, r := range s {
		if r == ' ' {
			if prevSpace {
				return false
			}
			prevSpace = true
			continue
		}
		if !unicode.IsLetter(r) {
			return false
		}
		prevSpace = false
	}
	return true
}

// FitsMoney reports whether d is non-negative and fits a NUMERIC(precision, scale)
// column without rounding.
func FitsMoney(d decimal.Decimal, precision, scale int) bool {
	if d.IsNegative() {
		return false
	}
	if !d.Equal(d.Truncate(int32(scale))) {
		return false
	}
	intDigits := len(d.Truncate(0).Abs().String())
	if d.Truncate(0).IsZero() {
		intDigits = 0
	}
	return intDigits <= precision-scale
}

// checkMoney reports a ValidationError when price does not fit NUMERIC(precision, scale).
func checkMoney(field string, price decimal.Decimal, precision, scale int) error {
	if !FitsMoney(price, precision, scale) {
		return NewValidationError(field, "is out of range", nil)
	}
	return nil
}

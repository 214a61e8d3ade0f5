package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// Slug length bounds enforced by the schema.
const (
	SlugMinLength = 4
	SlugMaxLength = 128
)

// Slugify joins parts with hyphens and reduces the result to a lowercase ASCII
// slug. Non-latin scripts are transliterated and runs of other characters
// collapse into single hyphens. The result never exceeds SlugMaxLength and
// never ends in a hyphen.
func Slugify(parts ...string) string {
	s := slug.Make(strings.Join(parts, "-"))
	if len(s) > SlugMaxLength {
		s = strings.TrimRight(s[:SlugMaxLength], "-")
	}
	return s
}

// unixPart renders t as a whole-second Unix timestamp for use in a slug.
func unixPart(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

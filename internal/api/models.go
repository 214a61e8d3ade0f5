package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Date is a calendar date in a request body. It accepts "2006-01-02" as well
// as full RFC 3339 timestamps and is normalized to UTC.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
}

func (d *Date) value() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

func decimalValue(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// Catalog request payloads. Slug is optional everywhere: an empty slug is
// derived on create and leaves the stored one in place on update.

// UniverseRequest is the body of POST and PUT /universes.
type UniverseRequest struct {
	Slug        string `json:"slug"         validate:"omitempty,min=4,max=128"`
	Title       string `json:"title"        validate:"required,min=4,max=64,alphaspace"`
	DateCreated *Date  `json:"date_created" validate:"required"`
}

func (r *UniverseRequest) toDomain(id int64) *domain.Universe {
	return &domain.Universe{
		ID:          id,
		Slug:        r.Slug,
		Title:       r.Title,
		DateCreated: r.DateCreated.value(),
	}
}

// AuthorRequest is the body of POST and PUT /authors. Comics, when present,
// becomes the exact set of comics linked to the author.
type AuthorRequest struct {
	Slug     string  `json:"slug"     validate:"omitempty,min=4,max=128"`
	Name     string  `json:"name"     validate:"required,min=4,max=64,alphaspace"`
	Surname  string  `json:"surname"  validate:"required,min=4,max=64,alphaspace"`
	Birthday *Date   `json:"birthday" validate:"required"`
	Comics   []int64 `json:"comics"   validate:"omitempty,dive,gt=0,max=32767"`
}

func (r *AuthorRequest) toDomain(id int64) *domain.Author {
	return &domain.Author{
		ID:        id,
		Slug:      r.Slug,
		Name:      r.Name,
		Surname:   r.Surname,
		Birthday:  r.Birthday.value(),
		ComicsIDs: r.Comics,
	}
}

// CharacterRequest is the body of POST and PUT /characters.
type CharacterRequest struct {
	Slug        string `json:"slug"         validate:"omitempty,min=4,max=128"`
	Name        string `json:"name"         validate:"required,min=2,max=64,alphaspace"`
	DateCreated *Date  `json:"date_created" validate:"required"`
	Role        string `json:"role"         validate:"required,min=4,max=64,alphaspace"`
	Power       string `json:"power"        validate:"required,min=4,max=128,alphaspace"`
	UniverseID  int64  `json:"universe_id"  validate:"required,gt=0,max=32767"`
	AuthorID    int64  `json:"author_id"    validate:"required,gt=0,max=32767"`
}

func (r *CharacterRequest) toDomain(id int64) *domain.Character {
	return &domain.Character{
		ID:          id,
		Slug:        r.Slug,
		Name:        r.Name,
		DateCreated: r.DateCreated.value(),
		Role:        r.Role,
		Power:       r.Power,
		UniverseID:  r.UniverseID,
		AuthorID:    r.AuthorID,
	}
}

// ComicsRequest is the body of POST and PUT /comics. Characters and Authors,
// when present, replace the corresponding links.
type ComicsRequest struct {
	Slug        string           `json:"slug"         validate:"omitempty,min=4,max=128"`
	Title       string           `json:"title"        validate:"required,min=4,max=128,alphaspace"`
	Volume      int              `json:"volume"       validate:"required,gt=0,max=2147483647"`
	DateCreated *Date            `json:"date_created" validate:"required"`
	Price       *decimal.Decimal `json:"price"        validate:"required,money=10:2"`
	Country     string           `json:"country"      validate:"required,min=4,max=64,alphaspace"`
	Characters  []int64          `json:"characters"   validate:"omitempty,dive,gt=0,max=32767"`
	Authors     []int64          `json:"authors"      validate:"omitempty,dive,gt=0,max=32767"`
}

func (r *ComicsRequest) toDomain(id int64) *domain.Comics {
	return &domain.Comics{
		ID:           id,
		Slug:         r.Slug,
		Title:        r.Title,
		Volume:       r.Volume,
		DateCreated:  r.DateCreated.value(),
		Price:        decimalValue(r.Price),
		Country:      r.Country,
		CharacterIDs: r.Characters,
		AuthorIDs:    r.Authors,
	}
}

// DeviceRequest is the body of POST and PUT /devices.
type DeviceRequest struct {
	Slug         string           `json:"slug"           validate:"omitempty,min=4,max=128"`
	Title        string           `json:"title"          validate:"required,min=4,max=128,alphaspace"`
	TypeOfDevice string           `json:"type_of_device" validate:"required,min=4,max=64,alphaspace"`
	Price        *decimal.Decimal `json:"price"          validate:"required,money=5:2"`
	UniverseID   int64            `json:"universe_id"    validate:"required,gt=0,max=32767"`
	CharacterID  int64            `json:"character_id"   validate:"required,gt=0,max=32767"`
}

func (r *DeviceRequest) toDomain(id int64) *domain.Device {
	return &domain.Device{
		ID:           id,
		Slug:         r.Slug,
		Title:        r.Title,
		TypeOfDevice: r.TypeOfDevice,
		Price:        decimalValue(r.Price),
		UniverseID:   r.UniverseID,
		CharacterID:  r.CharacterID,
	}
}

// SweetRequest is the body of POST and PUT /sweets.
type SweetRequest struct {
	Slug        string           `json:"slug"         validate:"omitempty,min=4,max=128"`
	Title       string           `json:"title"        validate:"required,min=4,max=128,alphaspace"`
	Price       *decimal.Decimal `json:"price"        validate:"required,money=4:2"`
	Weight      int              `json:"weight"       validate:"required,gt=0,max=2147483647"`
	CharacterID int64            `json:"character_id" validate:"required,gt=0,max=32767"`
}

func (r *SweetRequest) toDomain(id int64) *domain.Sweet {
	return &domain.Sweet{
		ID:          id,
		Slug:        r.Slug,
		Title:       r.Title,
		Price:       decimalValue(r.Price),
		Weight:      r.Weight,
		CharacterID: r.CharacterID,
	}
}

// ToyRequest is the body of POST and PUT /toys.
type ToyRequest struct {
	Slug        string           `json:"slug"         validate:"omitempty,min=4,max=128"`
	Title       string           `json:"title"        validate:"required,min=4,max=128,alphaspace"`
	Age         int              `json:"age"          validate:"required,gt=0,max=2147483647"`
	TypeOfToy   string           `json:"type_of_toy"  validate:"required,min=4,max=64,alphaspace"`
	Price       *decimal.Decimal `json:"price"        validate:"required,money=4:2"`
	UniverseID  int64            `json:"universe_id"  validate:"required,gt=0,max=32767"`
	CharacterID int64            `json:"character_id" validate:"required,gt=0,max=32767"`
}

func (r *ToyRequest) toDomain(id int64) *domain.Toy {
	return &domain.Toy{
		ID:          id,
		Slug:        r.Slug,
		Title:       r.Title,
		Age:         r.Age,
		TypeOfToy:   r.TypeOfToy,
		Price:       decimalValue(r.Price),
		UniverseID:  r.UniverseID,
		CharacterID: r.CharacterID,
	}
}

// ComicsAuthorRequest is the body of POST /comics_authors.
type ComicsAuthorRequest struct {
	ComicsID int64 `json:"comics_id" validate:"required,gt=0,max=32767"`
	AuthorID int64 `json:"author_id" validate:"required,gt=0,max=32767"`
}

// ComicsCharacterRequest is the body of POST and PUT /comics_characters.
type ComicsCharacterRequest struct {
	ComicsID    int64 `json:"comics_id"    validate:"required,gt=0,max=32767"`
	CharacterID int64 `json:"character_id" validate:"required,gt=0,max=32767"`
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name            string `json:"name"             validate:"required,min=4,max=64,alphaspace"`
	Email           string `json:"email"            validate:"required,email,max=128"`
	Password        string `json:"password"         validate:"required,min=8,max=64,password"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginRequest defines the payload for the user login endpoint. Passwords that
// could never have been registered are rejected before any hash comparison.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64,password"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	// RefreshToken is the JWT refresh token to be used to obtain a new token pair
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// User is set on register and login, not on refresh.
	User *domain.User `json:"user,omitempty"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token"`

	// ExpiresAt is the RFC 3339 timestamp when the access token expires
	ExpiresAt string `json:"expires_at"`
}

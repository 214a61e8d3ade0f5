package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/service"
	"github.com/phrazzld/geekshop-api/internal/store"
)

// MockUniverseService implements service.UniverseService with one function field per method.
// Methods whose field is nil return zero values and no error.
type MockUniverseService struct {
	ListFn       func(ctx context.Context, page store.Page) ([]*domain.Universe, error)
	GetFn        func(ctx context.Context, id int64) (*domain.Universe, error)
	CreateFn     func(ctx context.Context, universe *domain.Universe) error
	UpdateFn     func(ctx context.Context, universe *domain.Universe) error
	DeleteFn     func(ctx context.Context, id int64) error
	CharactersFn func(ctx context.Context, id int64) ([]*domain.Character, error)
	DevicesFn    func(ctx context.Context, id int64) ([]*domain.Device, error)
	ToysFn       func(ctx context.Context, id int64) ([]*domain.Toy, error)
}

var _ service.UniverseService = (*MockUniverseService)(nil)

// List implements service.UniverseService.
func (m *MockUniverseService) List(ctx context.Context, page store.Page) ([]*domain.Universe, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	return nil, nil
}

// Get implements service.UniverseService.
func (m *MockUniverseService) Get(ctx context.Context, id int64) (*domain.Universe, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

// Create implements service.UniverseService.
func (m *MockUniverseService) Create(ctx context.Context, universe *domain.Universe) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, universe)
	}
	return nil
}

// Update implements service.UniverseService.
func (m *MockUniverseService) Update(ctx context.Context, universe *domain.Universe) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, universe)
	}
	return nil
}

// Delete implements service.UniverseService.
func (m *MockUniverseService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// Characters implements service.UniverseService.
func (m *MockUniverseService) Characters(ctx context.Context, id int64) ([]*domain.Character, error) {
	if m.CharactersFn != nil {
		return m.CharactersFn(ctx, id)
	}
	return nil, nil
}

// Devices implements service.UniverseService.
func (m *MockUniverseService) Devices(ctx context.Context, id int64) ([]*domain.Device, error) {
	if m.DevicesFn != nil {
		return m.DevicesFn(ctx, id)
	}
	return nil, nil
}

// Toys implements service.UniverseService.
func (m *MockUniverseService) Toys(ctx context.Context, id int64) ([]*domain.Toy, error) {
	if m.ToysFn != nil {
		return m.ToysFn(ctx, id)
	}
	return nil, nil
}


// MockAuthorService implements service.AuthorService with one function field per method.
// Methods whose field is nil return zero values and no error.
type MockAuthorService struct {
	ListFn       func(ctx context.Context, page store.Page) ([]*domain.Author, error)
	GetFn        func(ctx context.Context, id int64) (*domain.Author, error)
	CreateFn     func(ctx context.Context, author *domain.Author) error
	UpdateFn     func(ctx context.Context, author *domain.Author) error
	DeleteFn     func(ctx context.Context, id int64) error
	CharactersFn func(ctx context.Context, id int64) ([]*domain.Character, error)
	ComicsFn     func(ctx context.Context, id int64) ([]*domain.Comics, error)
}

var _ service.AuthorService = (*MockAuthorService)(nil)

// List implements service.AuthorService.
func (m *MockAuthorService) List(ctx context.Context, page store.Page) ([]*domain.Author, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	return nil, nil
}

// Get implements service.AuthorService.
func (m *MockAuthorService) Get(ctx context.Context, id int64) (*domain.Author, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

// Create implements service.AuthorService.
func (m *MockAuthorService) Create(ctx context.Context, author *domain.Author) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, author)
	}
	return nil
}

// Update implements service.AuthorService.
func (m *MockAuthorService) Update(ctx context.Context, author *domain.Author) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, author)
	}
	return nil
}

// Delete implements service.AuthorService.
func (m *MockAuthorService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// Characters implements service.AuthorService.
func (m *MockAuthorService) Characters(ctx context.Context, id int64) ([]*domain.Character, error) {
	if m.CharactersFn != nil {
		return m.CharactersFn(ctx, id)
	}
	return nil, nil
}

// Comics implements service.AuthorService.
func (m *MockAuthorService) Comics(ctx context.Context, id int64) ([]*domain.Comics, error) {
	if m.ComicsFn != nil {
		return m.ComicsFn(ctx, id)
	}
	return nil, nil
}


// MockCharacterService implements service.CharacterService with one function field per method.
// Methods whose field is nil return zero values and no error.
type MockCharacterService struct {
	ListFn     func(ctx context.Context, page store.Page) ([]*domain.Character, error)
	GetFn      func(ctx context.Context, id int64) (*domain.Character, error)
	CreateFn   func(ctx context.Context, character *domain.Character) error
	UpdateFn   func(ctx context.Context, character *domain.Character) error
	DeleteFn   func(ctx context.Context, id int64) error
	UniverseFn func(ctx context.Context, id int64) (*domain.Universe, error)
	AuthorFn   func(ctx context.Context, id int64) (*domain.Author, error)
	DevicesFn  func(ctx context.Context, id int64) ([]*domain.Device, error)
	SweetsFn   func(ctx context.Context, id int64) ([]*domain.Sweet, error)
	ToysFn     func(ctx context.Context, id int64) ([]*domain.Toy, error)
	ComicsFn   func(ctx context.Context, id int64) ([]*domain.Comics, error)
}

var _ service.CharacterService = (*MockCharacterService)(nil)

// List implements service.CharacterService.
func (m *MockCharacterService) List(ctx context.Context, page store.Page) ([]*domain.Character, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	return nil, nil
}

// Get implements service.CharacterService.
func (m *MockCharacterService) Get(ctx context.Context, id int64) (*domain.Character, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

// Create implements service.CharacterService.
func (m *MockCharacterService) Create(ctx context.Context, character *domain.Character) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, character)
	}
	return nil
}

// Update implements service.CharacterService.
func (m *MockCharacterService) Update(ctx context.Context, character *domain.Character) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, character)
	}
	return nil
}

// Delete implements service.CharacterService.
func (m *MockCharacterService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// Universe implements service.CharacterService.
func (m *MockCharacterService) Universe(ctx context.Context, id int64) (*domain.Universe, error) {
	if m.UniverseFn != nil {
		return m.UniverseFn(ctx, id)
	}
	return nil, nil
}

// Author implements service.CharacterService.
func (m *MockCharacterService) Author(ctx context.Context, id int64) (*domain.Author, error) {
	if m.AuthorFn != nil {
		return m.AuthorFn(ctx, id)
	}
	return nil, nil
}

// Devices implements service.CharacterService.
func (m *MockCharacterService) Devices(ctx context.Context, id int64) ([]*domain.Device, error) {
	if m.DevicesFn != nil {
		return m.DevicesFn(ctx, id)
	}
	return nil, nil
}

// Sweets implements service.CharacterService.
func (m *MockCharacterService) Sweets(ctx context.Context, id int64) ([]*domain.Sweet, error) {
	if m.SweetsFn != nil {
		return m.SweetsFn(ctx, id)
	}
	return nil, nil
}

// Toys implements service.CharacterService.
func (m *MockCharacterService) Toys(ctx context.Context, id int64) ([]*domain.Toy, error) {
	if m.ToysFn != nil {
		return m.ToysFn(ctx, id)
	}
	return nil, nil
}

// Comics implements service.CharacterService.
func (m *MockCharacterService) Comics(ctx context.Context, id int64) ([]*domain.Comics, error) {
	if m.ComicsFn != nil {
		return m.ComicsFn(ctx, id)
	}
	return nil, nil
}


// MockComicsService implements service.ComicsService with one function field per method.
// Methods whose field is nil return zero values and no error.
type MockComicsService struct {
	ListFn       func(ctx context.Context, page store.Page) ([]*domain.Comics, error)
	GetFn        func(ctx context.Context, id int64) (*domain.Comics, error)
	CreateFn     func(ctx context.Context, comics *domain.Comics) error
	UpdateFn     func(ctx context.Context, comics *domain.Comics) error
	DeleteFn     func(ctx context.Context, id int64) error
	AuthorsFn    func(ctx context.Context, id int64) ([]*domain.Author, error)
	CharactersFn func(ctx context.Context, id int64) ([]*domain.Character, error)
}

var _ service.ComicsService = (*MockComicsService)(nil)

// List implements service.ComicsService.
func (m *MockComicsService) List(ctx context.Context, page store.Page) ([]*domain.Comics, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	return nil, nil
}

// Get implements service.ComicsService.
func (m *MockComicsService) Get(ctx context.Context, id int64) (*domain.Comics, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

// Create implements service.ComicsService.
func (m *MockComicsService) Create(ctx context.Context, comics *domain.Comics) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comics)
	}
	return nil
}

// Update implements service.ComicsService.
func (m *MockComicsService) Update(ctx context.Context, comics *domain.Comics) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, comics)
	}
	return nil
}

// Delete implements service.ComicsService.
func (m *MockComicsService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// Authors implements service.ComicsService.
func (m *MockComicsService) Authors(ctx context.Context, id int64) ([]*domain.Author, error) {
	if m.AuthorsFn != nil {
		return m.AuthorsFn(ctx, id)
	}
	return nil, nil
}

// Characters implements service.ComicsService.
func (m *MockComicsService) Characters(ctx context.Context, id int64) ([]*domain.Character, error) {
	if m.CharactersFn != nil {
		return m.CharactersFn(ctx, id)
	}
	return nil, nil
}


// MockDeviceService implements service.DeviceService with one function field per method.
// Methods whose field is nil return zero values and no error.
type MockDeviceService struct {
	ListFn      func(ctx context.Context, page store.Page) ([]*domain.Device, error)
	GetFn       func(ctx context.Context, id int64) (*domain.Device, error)
	CreateFn    func(ctx context.Context, device *domain.Device) error
	UpdateFn    func(ctx context.Context, device *domain.Device) error
	DeleteFn    func(ctx context.Context, id int64) error
	UniverseFn  func(ctx context.Context, id int64) (*domain.Universe, error)
	CharacterFn func(ctx context.Context, id int64) (*domain.Character, error)
}

var _ service.DeviceService = (*MockDeviceService)(nil)

// List implements service.DeviceService.
func (m *MockDeviceService) List(ctx context.Context, page store.Page) ([]*domain.Device, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	return nil, nil
}

// Get implements service.DeviceService.
func (m *MockDeviceService) Get(ctx context.Context, id int64) (*domain.Device, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

// Create implements service.DeviceService.
func (m *MockDeviceService) Create(ctx context.Context, device *domain.Device) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, device)
	}
	return nil
}

// Update implements service.DeviceService.
func (m *MockDeviceService) Update(ctx context.Context, device *domain.Device) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, device)
	}
	return nil
}

// Delete implements service.DeviceService.
func (m *MockDeviceService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// Universe implements service.DeviceService.
func (m *MockDeviceService) Universe(ctx context.Context, id int64) (*domain.Universe, error) {
	if m.UniverseFn != nil {
		return m.UniverseFn(ctx, id)
	}
	return nil, nil
}

// Character implements service.DeviceService.
func (m *MockDeviceService) Character(ctx context.Context, id int64) (*domain.Character, error) {
	if m.CharacterFn != nil {
		return m.CharacterFn(ctx, id)
	}
	return nil, nil
}


// MockSweetService implements service.SweetService with one function field per method.
// Methods whose field is nil return zero values and no error.
type MockSweetService struct {
	ListFn      func(ctx context.Context, page store.Page) ([]*domain.Sweet, error)
	GetFn       func(ctx context.Context, id int64) (*domain.Sweet, error)
	CreateFn    func(ctx context.Context, sweet *domain.Sweet) error
	UpdateFn    func(ctx context.Context, sweet *domain.Sweet) error
	DeleteFn    func(ctx context.Context, id int64) error
	UniverseFn  func(ctx context.Context, id int64) (*domain.Universe, error)
	CharacterFn func(ctx context.Context, id int64) (*domain.Character, error)
}

var _ service.SweetService = (*MockSweetService)(nil)

// List implements service.SweetService.
func (m *MockSweetService) List(ctx context.Context, page store.Page) ([]*domain.Sweet, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	return nil, nil
}

// Get implements service.SweetService.
func (m *MockSweetService) Get(ctx context.Context, id int64) (*domain.Sweet, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

// Create implements service.SweetService.
func (m *MockSweetService) Create(ctx context.Context, sweet *domain.Sweet) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, sweet)
	}
	return nil
}

// Update implements service.SweetService.
func (m *MockSweetService) Update(ctx context.Context, sweet *domain.Sweet) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, sweet)
	}
	return nil
}

// Delete implements service.SweetService.
func (m *MockSweetService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// Universe implements service.SweetService.
func (m *MockSweetService) Universe(ctx context.Context, id int64) (*domain.Universe, error) {
	if m.UniverseFn != nil {
		return m.UniverseFn(ctx, id)
	}
	return nil, nil
}

// Character implements service.SweetService.
func (m *MockSweetService) Character(ctx context.Context, id int64) (*domain.Character, error) {
	if m.CharacterFn != nil {
		return m.CharacterFn(ctx, id)
	}
	return nil, nil
}


// MockToyService implements service.ToyService with one function field per method.
// Methods whose field is nil return zero values and no error.
type MockToyService struct {
	ListFn      func(ctx context.Context, page store.Page) ([]*domain.Toy, error)
	GetFn       func(ctx context.Context, id int64) (*domain.Toy, error)
	CreateFn    func(ctx context.Context, toy *domain.Toy) error
	UpdateFn    func(ctx context.Context, toy *domain.Toy) error
	DeleteFn    func(ctx context.Context, id int64) error
	UniverseFn  func(ctx context.Context, id int64) (*domain.Universe, error)
	CharacterFn func(ctx context.Context, id int64) (*domain.Character, error)
}

var _ service.ToyService = (*MockToyService)(nil)

// List implements service.ToyService.
func (m *MockToyService) List(ctx context.Context, page store.Page) ([]*domain.Toy, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	return nil, nil
}

// Get implements service.ToyService.
func (m *MockToyService) Get(ctx context.Context, id int64) (*domain.Toy, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

// Create implements service.ToyService.
func (m *MockToyService) Create(ctx context.Context, toy *domain.Toy) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, toy)
	}
	return nil
}

// Update implements service.ToyService.
func (m *MockToyService) Update(ctx context.Context, toy *domain.Toy) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, toy)
	}
	return nil
}

// Delete implements service.ToyService.
func (m *MockToyService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// Universe implements service.ToyService.
func (m *MockToyService) Universe(ctx context.Context, id int64) (*domain.Universe, error) {
	if m.UniverseFn != nil {
		return m.UniverseFn(ctx, id)
	}
	return nil, nil
}

// Character implements service.ToyService.
func (m *MockToyService) Character(ctx context.Context, id int64) (*domain.Character, error) {
	if m.CharacterFn != nil {
		return m.CharacterFn(ctx, id)
	}
	return nil, nil
}


// MockLinkService implements service.LinkService with one function field per method.
// Methods whose field is nil return zero values and no error.
type MockLinkService struct {
	ListComicsAuthorsFn     func(ctx context.Context, page store.Page) ([]domain.ComicsAuthor, error)
	LinkComicsAuthorFn      func(ctx context.Context, link domain.ComicsAuthor) error
	UnlinkComicsAuthorFn    func(ctx context.Context, link domain.ComicsAuthor) error
	ListComicsCharactersFn  func(ctx context.Context, page store.Page) ([]domain.ComicsCharacter, error)
	GetComicsCharacterFn    func(ctx context.Context, link domain.ComicsCharacter) (domain.ComicsCharacter, error)
	LinkComicsCharacterFn   func(ctx context.Context, link domain.ComicsCharacter) error
	UpdateComicsCharacterFn func(ctx context.Context, from, to domain.ComicsCharacter) error
	UnlinkComicsCharacterFn func(ctx context.Context, link domain.ComicsCharacter) error
}

var _ service.LinkService = (*MockLinkService)(nil)

// ListComicsAuthors implements service.LinkService.
func (m *MockLinkService) ListComicsAuthors(ctx context.Context, page store.Page) ([]domain.ComicsAuthor, error) {
	if m.ListComicsAuthorsFn != nil {
		return m.ListComicsAuthorsFn(ctx, page)
	}
	return nil, nil
}

// LinkComicsAuthor implements service.LinkService.
func (m *MockLinkService) LinkComicsAuthor(ctx context.Context, link domain.ComicsAuthor) error {
	if m.LinkComicsAuthorFn != nil {
		return m.LinkComicsAuthorFn(ctx, link)
	}
	return nil
}

// UnlinkComicsAuthor implements service.LinkService.
func (m *MockLinkService) UnlinkComicsAuthor(ctx context.Context, link domain.ComicsAuthor) error {
	if m.UnlinkComicsAuthorFn != nil {
		return m.UnlinkComicsAuthorFn(ctx, link)
	}
	return nil
}

// ListComicsCharacters implements service.LinkService.
func (m *MockLinkService) ListComicsCharacters(ctx context.Context, page store.Page) ([]domain.ComicsCharacter, error) {
	if m.ListComicsCharactersFn != nil {
		return m.ListComicsCharactersFn(ctx, page)
	}
	return nil, nil
}

// GetComicsCharacter implements service.LinkService.
func (m *MockLinkService) GetComicsCharacter(ctx context.Context, link domain.ComicsCharacter) (domain.ComicsCharacter, error) {
	if m.GetComicsCharacterFn != nil {
		return m.GetComicsCharacterFn(ctx, link)
	}
	return domain.ComicsCharacter{}, nil
}

// LinkComicsCharacter implements service.LinkService.
func (m *MockLinkService) LinkComicsCharacter(ctx context.Context, link domain.ComicsCharacter) error {
	if m.LinkComicsCharacterFn != nil {
		return m.LinkComicsCharacterFn(ctx, link)
	}
	return nil
}

// UpdateComicsCharacter implements service.LinkService.
func (m *MockLinkService) UpdateComicsCharacter(ctx context.Context, from, to domain.ComicsCharacter) error {
	if m.UpdateComicsCharacterFn != nil {
		return m.UpdateComicsCharacterFn(ctx, from, to)
	}
	return nil
}

// UnlinkComicsCharacter implements service.LinkService.
func (m *MockLinkService) UnlinkComicsCharacter(ctx context.Context, link domain.ComicsCharacter) error {
	if m.UnlinkComicsCharacterFn != nil {
		return m.UnlinkComicsCharacterFn(ctx, link)
	}
	return nil
}


// MockUserService implements service.UserService with one function field per method.
// Methods whose field is nil return zero values and no error.
type MockUserService struct {
	GetUserFn        func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetUserByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	CreateUserFn     func(ctx context.Context, name, email, password, confirm string) (*domain.User, error)
	AuthenticateFn   func(ctx context.Context, email, password string) (*domain.User, error)
}

var _ service.UserService = (*MockUserService)(nil)

// GetUser implements service.UserService.
func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return nil, nil
}

// GetUserByEmail implements service.UserService.
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetUserByEmailFn != nil {
		return m.GetUserByEmailFn(ctx, email)
	}
	return nil, nil
}

// CreateUser implements service.UserService.
func (m *MockUserService) CreateUser(ctx context.Context, name, email, password, confirm string) (*domain.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, name, email, password, confirm)
	}
	return nil, nil
}

// Authenticate implements service.UserService.
func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, email, password)
	}
	return nil, nil
}

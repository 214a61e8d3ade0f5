// Package mocks provides shared test doubles for the geek shop API.
//
// Store mocks (UniverseStore, ComicsAuthorStore, UserStore, ...) are testify
// mocks: set expectations with On and check them with AssertExpectations.
// Service and auth mocks (MockUniverseService, MockJWTService,
// MockPasswordVerifier, ...) use function fields instead, so a test only
// stubs the calls it cares about:
//
//	universes := &mocks.MockUniverseService{
//	    GetFn: func(ctx context.Context, id int64) (*domain.Universe, error) {
//	        return nil, store.ErrUniverseNotFound
//	    },
//	}
//
// Unset function fields return zero values and a nil error.
package mocks

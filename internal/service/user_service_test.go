package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/mocks"
	"github.com/phrazzld/geekshop-api/internal/service"
	"github.com/phrazzld/geekshop-api/internal/store"
)

const strongPassword = "Web$linger42"

func TestUserService_CreateUser(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		users := new(mocks.UserStore)
		db, sqlMock := newTxDB(t)
		expectCommit(sqlMock)

		users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "peter@example.com" && u.Password == strongPassword
		})).Return(nil)

		svc := service.NewUserService(users, &mocks.MockPasswordVerifier{}, db, testLogger)
		user, err := svc.CreateUser(context.Background(), "Peter", "Peter@Example.com", strongPassword, strongPassword)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		users.AssertExpectations(t)
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		users := new(mocks.UserStore)
		db, _ := newTxDB(t)

		svc := service.NewUserService(users, &mocks.MockPasswordVerifier{}, db, testLogger)
		_, err := svc.CreateUser(context.Background(), "Peter", "peter@example.com", strongPassword, "other")

		assert.ErrorIs(t, err, service.ErrPasswordMismatch)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("weak password", func(t *testing.T) {
		db, _ := newTxDB(t)
		svc := service.NewUserService(new(mocks.UserStore), &mocks.MockPasswordVerifier{}, db, testLogger)

		_, err := svc.CreateUser(context.Background(), "Peter", "peter@example.com", "password", "password")
		assert.ErrorIs(t, err, domain.ErrPasswordTooWeak)
	})

	t.Run("email already registered", func(t *testing.T) {
		users := new(mocks.UserStore)
		db, sqlMock := newTxDB(t)
		expectRollback(sqlMock)

		users.On("Create", mock.Anything, mock.Anything).Return(store.ErrEmailExists)

		svc := service.NewUserService(users, &mocks.MockPasswordVerifier{}, db, testLogger)
		_, err := svc.CreateUser(context.Background(), "Peter", "peter@example.com", strongPassword, strongPassword)
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	stored := &domain.User{ID: uuid.New(), Email: "peter@example.com", HashedPassword: "hash"}

	tests := []struct {
		name        string
		storeErr    error
		accept      bool
		wantErr     error
		wantHashes  []string
		wantMissing int
	}{
		{name: "valid credentials", accept: true, wantHashes: []string{"hash"}},
		{name: "unknown email", storeErr: store.ErrUserNotFound, wantErr: service.ErrInvalidCredentials, wantMissing: 1},
		{name: "wrong password", accept: false, wantErr: service.ErrInvalidCredentials, wantHashes: []string{"hash"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users := new(mocks.UserStore)
			if tc.storeErr != nil {
				users.On("GetByEmail", mock.Anything, "peter@example.com").Return(nil, tc.storeErr)
			} else {
				users.On("GetByEmail", mock.Anything, "peter@example.com").Return(stored, nil)
			}
			verifier := &mocks.MockPasswordVerifier{Accept: tc.accept}
			db, _ := newTxDB(t)

			svc := service.NewUserService(users, verifier, db, testLogger)
			user, err := svc.Authenticate(context.Background(), "peter@example.com", strongPassword)

			assert.Equal(t, tc.wantHashes, verifier.ComparedHashes)
			assert.Equal(t, tc.wantMissing, verifier.MissingChecks, "unknown emails still pay for a hash comparison")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID, user.ID)
		})
	}
}

func TestUserService_AuthenticateStoreFailure(t *testing.T) {
	users := new(mocks.UserStore)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))
	db, _ := newTxDB(t)

	svc := service.NewUserService(users, &mocks.MockPasswordVerifier{}, db, testLogger)
	_, err := svc.Authenticate(context.Background(), "peter@example.com", strongPassword)

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
}

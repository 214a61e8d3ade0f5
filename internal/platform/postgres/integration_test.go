//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/platform/postgres"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/phrazzld/geekshop-api/internal/testdb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Each subtest runs in its own transaction: a failed statement aborts the
// surrounding transaction in PostgreSQL, so constraint violations come last.

func TestCatalogStoresIntegration(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		universes := postgres.NewPostgresUniverseStore(tx, nil)
		authors := postgres.NewPostgresAuthorStore(tx, nil)
		characters := postgres.NewPostgresCharacterStore(tx, nil)
		comics := postgres.NewPostgresComicsStore(tx, nil)
		comicsAuthors := postgres.NewPostgresComicsAuthorStore(tx, nil)
		comicsCharacters := postgres.NewPostgresComicsCharacterStore(tx, nil)

		universe := &domain.Universe{Slug: "integration-marvel", Title: "Integration Marvel", DateCreated: marvelDate}
		require.NoError(t, universes.Create(ctx, universe))
		require.NotZero(t, universe.ID)

		author := &domain.Author{
			Slug: "integration-stan", Name: "Integration", Surname: "Lieber",
			Birthday: time.Date(1922, 12, 28, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, authors.Create(ctx, author))

		character := &domain.Character{
			Slug: "integration-thor", Name: "Thor", DateCreated: marvelDate,
			Role: "Hero", Power: "Thunder", UniverseID: universe.ID, AuthorID: author.ID,
		}
		require.NoError(t, characters.Create(ctx, character))

		issue := &domain.Comics{
			Slug: "integration-journey", Title: "Integration Journey", Volume: 83,
			DateCreated: marvelDate, Price: decimal.RequireFromString("12.50"), Country: "United States",
		}
		require.NoError(t, comics.Create(ctx, issue))

		got, err := comics.GetByID(ctx, issue.ID)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("12.5").Equal(got.Price))

		require.NoError(t, comicsAuthors.Create(ctx, domain.ComicsAuthor{ComicsID: issue.ID, AuthorID: author.ID}))
		require.NoError(t, comicsCharacters.ReplaceForComics(ctx, issue.ID, []int64{character.ID, character.ID}))

		ids, err := comicsAuthors.ComicsIDsByAuthor(ctx, author.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{issue.ID}, ids)

		characterIDs, err := comicsCharacters.CharacterIDsByComics(ctx, issue.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{character.ID}, characterIDs, "replacement ids are deduplicated")

		inUniverse, err := characters.ListByUniverse(ctx, universe.ID)
		require.NoError(t, err)
		require.Len(t, inUniverse, 1)
		assert.Equal(t, "Thor", inUniverse[0].Name)

		taken, err := universes.TitleExists(ctx, "Integration Marvel", 0)
		require.NoError(t, err)
		assert.True(t, taken)
		taken, err = universes.TitleExists(ctx, "Integration Marvel", universe.ID)
		require.NoError(t, err)
		assert.False(t, taken, "a row does not clash with itself")

		err = comicsAuthors.Create(ctx, domain.ComicsAuthor{ComicsID: issue.ID, AuthorID: author.ID})
		assert.ErrorIs(t, err, store.ErrLinkExists)
	})
}

func TestCatalogStoresIntegrationConstraints(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	t.Run("unknown universe", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			characters := postgres.NewPostgresCharacterStore(tx, nil)

			err := characters.Create(ctx, &domain.Character{
				Slug: "integration-orphan", Name: "Orphan", DateCreated: marvelDate,
				Role: "Nobody", Power: "None at all", UniverseID: 32000, AuthorID: 32000,
			})
			assert.ErrorIs(t, err, store.ErrInvalidEntity)
		})
	})

	t.Run("duplicate title", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			universes := postgres.NewPostgresUniverseStore(tx, nil)
			require.NoError(t, universes.Create(ctx, &domain.Universe{
				Slug: "integration-dc-1", Title: "Integration DC", DateCreated: marvelDate,
			}))

			err := universes.Create(ctx, &domain.Universe{
				Slug: "integration-dc-2", Title: "Integration DC", DateCreated: marvelDate,
			})
			assert.ErrorIs(t, err, store.ErrDuplicate)
		})
	})

	t.Run("missing row", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			toys := postgres.NewPostgresToyStore(tx, nil)

			_, err := toys.GetByID(ctx, 32000)
			assert.ErrorIs(t, err, store.ErrToyNotFound)
			assert.ErrorIs(t, toys.Delete(ctx, 32000), store.ErrToyNotFound)
		})
	})
}

func TestUserStoreIntegration(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewPostgresUserStore(tx, 4, nil)

		user, err := domain.NewUser("Integration Parker", "Integration.Parker@example.com", "Web$linger1")
		require.NoError(t, err)
		require.NoError(t, users.Create(ctx, user))
		assert.Empty(t, user.Password, "plaintext is cleared after hashing")

		found, err := users.GetByEmail(ctx, "integration.parker@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.NotEmpty(t, found.HashedPassword)

		twin, err := domain.NewUser("Integration Twin", "integration.parker@example.com", "Web$linger2")
		require.NoError(t, err)
		assert.ErrorIs(t, users.Create(ctx, twin), store.ErrEmailExists)
	})
}

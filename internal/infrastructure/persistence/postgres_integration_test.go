//go:build integration

package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/migration"
	"github.com/propertyhub/backend/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupPostgres starts a disposable PostgreSQL container and applies the
// embedded migrations to it
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("propertyhub_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	migrateDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	m, err := migration.NewFromFS(migrateDB, migrations.FS, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Up())
	require.NoError(t, m.Close())

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestPostgres_OrgScopedRepositories(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	orgs := NewGormOrganizationRepository(db)
	properties := NewGormPropertyRepository(db)
	units := NewGormUnitRepository(db)

	acme, err := identity.NewOrganization("Acme Rentals")
	require.NoError(t, err)
	require.NoError(t, orgs.Save(ctx, acme))
	other, err := identity.NewOrganization("Other Holdings")
	require.NoError(t, err)
	require.NoError(t, orgs.Save(ctx, other))

	maple := newTestProperty(t, acme.ID, "Maple Court", "Austin")
	require.NoError(t, properties.Save(ctx, maple))
	foreign := newTestProperty(t, other.ID, "Foreign Plaza", "Austin")
	require.NoError(t, properties.Save(ctx, foreign))

	t.Run("lookups never cross organizations", func(t *testing.T) {
		_, err := properties.FindByIDForOrg(ctx, acme.ID, foreign.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		list, err := properties.FindAllForOrg(ctx, acme.ID, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, maple.ID, list[0].ID)
	})

	t.Run("optimistic locking", func(t *testing.T) {
		stale, err := properties.FindByIDForOrg(ctx, acme.ID, maple.ID)
		require.NoError(t, err)

		require.NoError(t, maple.Update("Maple Court East", maple.Type, maple.Address, ""))
		require.NoError(t, properties.Save(ctx, maple))

		require.NoError(t, stale.Update("Stale", stale.Type, stale.Address, ""))
		assert.ErrorIs(t, properties.Save(ctx, stale), shared.ErrConcurrencyConflict)
	})

	t.Run("unit numbers are unique per property ignoring case", func(t *testing.T) {
		spec := property.UnitSpec{Bedrooms: 1, Bathrooms: decimal.NewFromInt(1), MarketRent: decimal.NewFromInt(1200)}
		u, err := property.NewUnit(acme.ID, uuid.New(), maple.ID, "4B", spec)
		require.NoError(t, err)
		require.NoError(t, units.Save(ctx, u))

		exists, err := units.ExistsByNumber(ctx, acme.ID, maple.ID, "4b", nil)
		require.NoError(t, err)
		assert.True(t, exists)

		dup, err := property.NewUnit(acme.ID, uuid.New(), maple.ID, "4b", spec)
		require.NoError(t, err)
		assert.ErrorIs(t, units.Save(ctx, dup), shared.ErrAlreadyExists)
	})

	t.Run("referenced rows cannot be deleted", func(t *testing.T) {
		assert.ErrorIs(t, properties.DeleteForOrg(ctx, acme.ID, maple.ID), shared.ErrInvalidState)

		_, err := properties.FindByIDForOrg(ctx, acme.ID, maple.ID)
		assert.NoError(t, err)
	})

	t.Run("active organizations", func(t *testing.T) {
		require.NoError(t, other.Suspend())
		require.NoError(t, orgs.Save(ctx, other))

		ids, err := orgs.FindActiveIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{acme.ID}, ids)
	})
}

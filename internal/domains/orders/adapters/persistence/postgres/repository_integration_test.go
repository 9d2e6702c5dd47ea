//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/go-order-api/internal/domains/orders/domain"
	"github.com/Apurer/go-order-api/internal/domains/orders/ports"
	"github.com/Apurer/go-order-api/internal/platform/migrations"
)

func setupOrderPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("orderapi_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func newStoredOrder(orderID, userID int64, total string, status string, createdAt time.Time) *domain.Order {
	return &domain.Order{
		OrderID:   orderID,
		UserID:    userID,
		Total:     decimal.RequireFromString(total),
		Status:    status,
		CreatedAt: createdAt,
	}
}

func TestRepository_SaveAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrderPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	createdAt := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	saved, err := repo.Save(ctx, newStoredOrder(1001, 7, "49.99", "PENDING", createdAt))
	require.NoError(t, err)
	assert.Positive(t, saved.ID)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), fetched.OrderID)
	assert.True(t, fetched.Total.Equal(decimal.RequireFromString("49.99")))

	byExternal, err := repo.GetByOrderID(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byExternal.ID)

	_, err = repo.GetByID(ctx, saved.ID+100)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_UniqueOrderIDConstraint(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrderPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	createdAt := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	_, err := repo.Save(ctx, newStoredOrder(1001, 7, "49.99", "PENDING", createdAt))
	require.NoError(t, err)

	_, err = repo.Save(ctx, newStoredOrder(1001, 9, "10.00", "PENDING", createdAt))
	assert.ErrorIs(t, err, ports.ErrDuplicateOrderID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRepository_UpdateKeepsCreatedAt(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrderPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	createdAt := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	saved, err := repo.Save(ctx, newStoredOrder(1001, 7, "49.99", "PENDING", createdAt))
	require.NoError(t, err)

	saved.Status = "SHIPPED"
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "SHIPPED", updated.Status)
	assert.True(t, updated.CreatedAt.Equal(createdAt))
}

func TestRepository_ListByUserIDOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrderPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	base := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	_, err := repo.Save(ctx, newStoredOrder(1001, 7, "10.00", "PENDING", base))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newStoredOrder(2002, 9, "20.00", "PENDING", base.Add(time.Minute)))
	require.NoError(t, err)
	newest, err := repo.Save(ctx, newStoredOrder(3003, 7, "30.00", "SHIPPED", base.Add(2*time.Minute)))
	require.NoError(t, err)

	list, err := repo.ListByUserID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newest.ID, list[0].ID)

	byStatus, err := repo.ListByStatus(ctx, "PENDING")
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	combo, err := repo.ListByUserIDAndStatus(ctx, 7, "PENDING")
	require.NoError(t, err)
	require.Len(t, combo, 1)
	assert.Equal(t, int64(1001), combo[0].OrderID)
}

func TestRepository_ExistsAndDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrderPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	createdAt := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	saved, err := repo.Save(ctx, newStoredOrder(1001, 7, "49.99", "PENDING", createdAt))
	require.NoError(t, err)

	exists, err := repo.ExistsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsByOrderID(ctx, 1001)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, saved.ID))
	assert.ErrorIs(t, repo.Delete(ctx, saved.ID), ports.ErrNotFound)

	exists, err = repo.ExistsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

package persistence

import (
	"context"
	"testing"

	"github.com/fakturo/backend/internal/domain/catalog"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupProductTestDB creates an in-memory SQLite database for testing
func setupProductTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			unit_price DECIMAL NOT NULL DEFAULT 0,
			unit TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	return db
}

func newTestProduct(t *testing.T, name string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, "Consulting by the hour", decimal.RequireFromString("95.00"), catalog.UnitHour)
	require.NoError(t, err)
	return product
}

func TestGormProductRepository_SaveAndFind(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := newTestProduct(t, "Consulting")
	err := repo.Save(ctx, product)
	require.NoError(t, err)
	assert.NotZero(t, product.ID)

	retrieved, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Consulting", retrieved.Name)
	assert.Equal(t, catalog.UnitHour, retrieved.Unit)
	assert.True(t, retrieved.UnitPrice.Equal(decimal.RequireFromString("95.00")))
}

func TestGormProductRepository_SaveUpdatesExisting(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := newTestProduct(t, "Consulting")
	require.NoError(t, repo.Save(ctx, product))

	require.NoError(t, product.ChangePrice(decimal.RequireFromString("110.00")))
	require.NoError(t, repo.Save(ctx, product))

	retrieved, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, retrieved.UnitPrice.Equal(decimal.RequireFromString("110.00")))

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestGormProductRepository_ExistsByName(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := newTestProduct(t, "Consulting")
	require.NoError(t, repo.Save(ctx, product))

	exists, err := repo.ExistsByName(ctx, "Consulting", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Consulting", product.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByName(ctx, "Support", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormProductRepository_Delete(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := newTestProduct(t, "Consulting")
	require.NoError(t, repo.Save(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err := repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = repo.Delete(ctx, product.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

package persistence

import (
	"context"
	"testing"

	"github.com/fakturo/backend/internal/domain/identity"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupUserTestDB creates an in-memory SQLite database for testing
func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	return db
}

func newTestUser(t *testing.T, email string) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Test User", email, "s3cret-pass", identity.RoleEmployee)
	require.NoError(t, err)
	return user
}

func TestGormUserRepository_SaveAssignsID(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newTestUser(t, "anna@example.com")
	require.Zero(t, user.ID)

	err := repo.Save(ctx, user)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	retrieved, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", retrieved.Email)
	assert.Equal(t, identity.RoleEmployee, retrieved.Role)
	assert.Equal(t, user.PasswordHash, retrieved.PasswordHash)
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newTestUser(t, "bernd@example.com")
	require.NoError(t, repo.Save(ctx, user))

	t.Run("matches regardless of case", func(t *testing.T) {
		retrieved, err := repo.FindByEmail(ctx, "BERND@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, retrieved.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormUserRepository_ExistsByEmail(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newTestUser(t, "clara@example.com")
	require.NoError(t, repo.Save(ctx, user))

	exists, err := repo.ExistsByEmail(ctx, "clara@example.com", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// The owner of the email is excluded from the check
	exists, err = repo.ExistsByEmail(ctx, "clara@example.com", user.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "other@example.com", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormUserRepository_FindAll(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	first := newTestUser(t, "a@example.com")
	second := newTestUser(t, "b@example.com")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.ID, users[0].ID)
	assert.Equal(t, second.ID, users[1].ID)
}

func TestGormUserRepository_Delete(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newTestUser(t, "doris@example.com")
	require.NoError(t, repo.Save(ctx, user))

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err := repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = repo.Delete(ctx, user.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

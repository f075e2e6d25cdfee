package identity

import "context"

// UserRepository defines the persistence contract for users
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll returns all users ordered by ID ascending
	FindAll(ctx context.Context) ([]User, error)

	// ExistsByEmail checks if a user with the given email exists, excluding
	// the user with excludeID (0 to exclude nobody)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)

	// Save persists a user (insert or update)
	Save(ctx context.Context, user *User) error

	// Delete removes a user by ID
	Delete(ctx context.Context, id uint) error
}

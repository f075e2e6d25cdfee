package identity

import (
	"strings"

	"github.com/fakturo/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

const minPasswordLength = 8

// User represents an account that can authenticate and act as a principal.
type User struct {
	shared.BaseEntity
	Name         string
	Email        string
	PasswordHash string
	Role         Role
}

// NewUser creates a new user with a hashed password.
func NewUser(name, email, password string, role Role) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("User name cannot be empty")
	}
	if err := shared.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewValidationError("Invalid role: " + string(role))
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Role:         role,
	}, nil
}

// ChangeEmail updates the user's email after format validation. Uniqueness is
// checked by the application service against the repository.
func (u *User) ChangeEmail(email string) error {
	if err := shared.ValidateEmail(email); err != nil {
		return err
	}
	u.Email = strings.ToLower(strings.TrimSpace(email))
	u.Touch()
	return nil
}

// ChangePassword replaces the password hash after validating the new password.
func (u *User) ChangePassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

// ChangeRole assigns a new role to the user.
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return shared.NewValidationError("Invalid role: " + string(role))
	}
	u.Role = role
	u.Touch()
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return shared.NewValidationError("Password must be at least 8 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	return string(hash), nil
}

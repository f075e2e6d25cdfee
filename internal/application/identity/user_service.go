package identity

import (
	"context"

	"github.com/fakturo/backend/internal/domain/identity"
	"github.com/fakturo/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UserService handles user account management
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create creates a new user account
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	role, err := identity.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(req.Name, req.Email, req.Password, role)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewConflictError("User with this email already exists")
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save user", zap.Error(err))
		return nil, err
	}

	s.logger.Info("User created", zap.Uint("user_id", user.ID), zap.String("role", user.Role.String()))

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uint) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// List returns all users. A storage failure degrades to an empty list.
func (s *UserService) List(ctx context.Context) []UserResponse {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return []UserResponse{}
	}
	return ToUserResponses(users)
}

// UpdateEmail changes a user's email address
func (s *UserService) UpdateEmail(ctx context.Context, id uint, req UpdateEmailRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := user.ChangeEmail(req.Email); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewConflictError("User with this email already exists")
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to update user email", zap.Uint("user_id", id), zap.Error(err))
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// UpdatePassword changes a user's password
func (s *UserService) UpdatePassword(ctx context.Context, id uint, req UpdatePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(req.Password); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to update user password", zap.Uint("user_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("User password changed", zap.Uint("user_id", id))
	return nil
}

// UpdateRole changes a user's role
func (s *UserService) UpdateRole(ctx context.Context, id uint, req UpdateRoleRequest) (*UserResponse, error) {
	role, err := identity.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := user.ChangeRole(role); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to update user role", zap.Uint("user_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("User role changed", zap.Uint("user_id", id), zap.String("role", role.String()))

	response := ToUserResponse(user)
	return &response, nil
}

// Delete removes a user account
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

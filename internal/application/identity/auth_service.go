package identity

import (
	"context"

	"github.com/fakturo/backend/internal/domain/identity"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies the credentials and issues an access token. A wrong
// email and a wrong password produce the same error so the response
// does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if !shared.IsNotFound(err) {
			s.logger.Error("Failed to look up user during login", zap.Error(err))
		}
		return nil, shared.NewUnauthenticatedError("Invalid email or password")
	}

	if !user.CheckPassword(req.Password) {
		s.logger.Warn("Failed login attempt", zap.String("email", req.Email))
		return nil, shared.NewUnauthenticatedError("Invalid email or password")
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role.String())
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, err
	}

	s.logger.Info("User logged in", zap.Uint("user_id", user.ID))

	return &LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		User:        ToUserResponse(user),
	}, nil
}

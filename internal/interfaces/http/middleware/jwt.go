package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fakturo/backend/internal/domain/identity"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/infrastructure/auth"
	"github.com/fakturo/backend/internal/infrastructure/logger"
	"github.com/fakturo/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by the authentication middleware
const (
	JWTClaimsKey = "jwt_claims"
	AuthUserKey  = "auth_user"
	AuthHeader   = "Authorization"
	BearerPrefix = "Bearer "
)

// JWTAuthMiddleware validates the bearer token and resolves the principal.
// The user is loaded from storage on every request so deleted accounts and
// role changes take effect immediately, not at token expiry.
func JWTAuthMiddleware(jwtService *auth.JWTService, userRepo identity.UserRepository, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeader)
		if authHeader == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, "Missing token")
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, "Token has expired")
				return
			}
			log.Debug("Token validation failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
			abortUnauthorized(c, "Invalid token")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if shared.IsNotFound(err) {
				// A valid token whose account has been removed reports
				// the missing principal rather than a credential failure.
				c.AbortWithStatusJSON(http.StatusNotFound,
					dto.NewErrorResponse(shared.CodeNotFound, "Account no longer exists"))
				return
			}
			log.Error("Failed to resolve token principal",
				zap.Uint("user_id", claims.UserID),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(dto.ErrCodeInternal, "An unexpected error occurred"))
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(AuthUserKey, user)

		ctx := c.Request.Context()
		ctx, _ = logger.WithUserID(ctx, logger.FromContext(ctx), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(shared.CodeUnauthenticated, message))
}

// GetAuthUser retrieves the authenticated user from the gin context
func GetAuthUser(c *gin.Context) *identity.User {
	if value, exists := c.Get(AuthUserKey); exists {
		if user, ok := value.(*identity.User); ok {
			return user
		}
	}
	return nil
}

// GetJWTClaims retrieves the validated token claims from the gin context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if value, exists := c.Get(JWTClaimsKey); exists {
		if claims, ok := value.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

package middleware

import (
	"net/http"
	"strconv"

	"github.com/fakturo/backend/internal/domain/identity"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequireRole rejects requests whose principal ranks below minRole.
// Must run after JWTAuthMiddleware.
func RequireRole(minRole identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetAuthUser(c)
		if user == nil {
			abortUnauthorized(c, "Authentication required")
			return
		}
		if !user.Role.AtLeast(minRole) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(shared.CodeForbidden, "Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin allows the request when the :id path parameter matches
// the principal's own ID, or when the principal is an admin.
func RequireSelfOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetAuthUser(c)
		if user == nil {
			abortUnauthorized(c, "Authentication required")
			return
		}
		if user.Role.AtLeast(identity.RoleAdmin) {
			c.Next()
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || uint(id) != user.ID {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(shared.CodeForbidden, "Insufficient permissions"))
			return
		}
		c.Next()
	}
}

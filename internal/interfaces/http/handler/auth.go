package handler

import (
	identityapp "github.com/fakturo/backend/internal/application/identity"
	"github.com/fakturo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and issues an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Me returns the authenticated user's own profile
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetAuthUser(c)
	if user == nil {
		h.InternalError(c, "Principal missing from context")
		return
	}
	h.Success(c, identityapp.ToUserResponse(user))
}

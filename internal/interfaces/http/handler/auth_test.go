package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	identityapp "github.com/fakturo/backend/internal/application/identity"
	"github.com/fakturo/backend/internal/domain/identity"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/infrastructure/auth"
	"github.com/fakturo/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests-only",
		Expiration: time.Hour,
		Issuer:     "fakturo-test",
	})
}

func loginTestRouter(repo identity.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	authService := identityapp.NewAuthService(repo, newTestJWTService(), zap.NewNop())
	h := NewAuthHandler(authService)

	r := gin.New()
	r.POST("/api/v1/auth/login", h.Login)
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	user, err := identity.NewUser("Anna Admin", "anna@example.com", "correct-horse", identity.RoleAdmin)
	require.NoError(t, err)
	user.ID = 1

	t.Run("returns token for valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "anna@example.com").Return(user, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"email":"anna@example.com","password":"correct-horse"}`))
		req.Header.Set("Content-Type", "application/json")
		loginTestRouter(repo).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				AccessToken string `json:"access_token"`
				TokenType   string `json:"token_type"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.NotEmpty(t, body.Data.AccessToken)
		assert.Equal(t, "Bearer", body.Data.TokenType)
	})

	t.Run("rejects wrong password with 401", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "anna@example.com").Return(user, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"email":"anna@example.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		loginTestRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), shared.CodeUnauthenticated)
	})

	t.Run("unknown email yields the same 401 as wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, shared.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"email":"nobody@example.com","password":"whatever"}`))
		req.Header.Set("Content-Type", "application/json")
		loginTestRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
	})

	t.Run("rejects malformed body with 400", func(t *testing.T) {
		repo := new(MockUserRepository)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"email":`))
		req.Header.Set("Content-Type", "application/json")
		loginTestRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

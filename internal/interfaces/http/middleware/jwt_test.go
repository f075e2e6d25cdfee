package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]identity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestJWTService(expiration time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests-only",
		Expiration: expiration,
		Issuer:     "fakturo-test",
	})
}

func testEmployee(t *testing.T, id uint) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Test User", "user@example.com", "s3cret-pass", identity.RoleEmployee)
	require.NoError(t, err)
	user.ID = id
	return user
}

func authTestRouter(jwtService *auth.JWTService, repo identity.UserRepository, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuthMiddleware(jwtService, repo, zap.NewNop())}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetAuthUser(c).ID})
	})
	r.GET("/protected/:id", handlers...)
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)

	t.Run("accepts valid token", func(t *testing.T) {
		user := testEmployee(t, 7)
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(7)).Return(user, nil)

		token, err := jwtService.GenerateToken(7, user.Email, user.Role.String())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected/7", nil)
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		authTestRouter(jwtService, repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects missing header", func(t *testing.T) {
		repo := new(MockUserRepository)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected/7", nil)
		authTestRouter(jwtService, repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), shared.CodeUnauthenticated)
	})

	t.Run("rejects malformed header", func(t *testing.T) {
		repo := new(MockUserRepository)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected/7", nil)
		req.Header.Set("Authorization", "Token abc")
		authTestRouter(jwtService, repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expiredService := newTestJWTService(-time.Minute)
		repo := new(MockUserRepository)

		token, err := expiredService.GenerateToken(7, "user@example.com", "EMPLOYEE")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected/7", nil)
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		authTestRouter(expiredService, repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("rejects token of deleted user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(7)).Return(nil, shared.ErrNotFound)

		token, err := jwtService.GenerateToken(7, "user@example.com", "EMPLOYEE")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected/7", nil)
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		authTestRouter(jwtService, repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "no longer exists")
	})
}

func TestRequireRole(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)

	issueRequest := func(t *testing.T, minRole identity.Role, userRole identity.Role) *httptest.ResponseRecorder {
		t.Helper()
		user, err := identity.NewUser("Test User", "user@example.com", "s3cret-pass", userRole)
		require.NoError(t, err)
		user.ID = 7

		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(7)).Return(user, nil)

		token, err := jwtService.GenerateToken(7, user.Email, user.Role.String())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected/7", nil)
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		authTestRouter(jwtService, repo, RequireRole(minRole)).ServeHTTP(w, req)
		return w
	}

	t.Run("allows equal role", func(t *testing.T) {
		w := issueRequest(t, identity.RoleEmployee, identity.RoleEmployee)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("allows higher role", func(t *testing.T) {
		w := issueRequest(t, identity.RoleEmployee, identity.RoleAdmin)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects lower role", func(t *testing.T) {
		w := issueRequest(t, identity.RoleAdmin, identity.RoleEmployee)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), shared.CodeForbidden)
	})
}

func TestRequireSelfOrAdmin(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)

	issueRequest := func(t *testing.T, userID uint, role identity.Role, targetID string) *httptest.ResponseRecorder {
		t.Helper()
		user, err := identity.NewUser("Test User", "user@example.com", "s3cret-pass", role)
		require.NoError(t, err)
		user.ID = userID

		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, userID).Return(user, nil)

		token, err := jwtService.GenerateToken(userID, user.Email, user.Role.String())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected/"+targetID, nil)
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		authTestRouter(jwtService, repo, RequireSelfOrAdmin()).ServeHTTP(w, req)
		return w
	}

	t.Run("allows own resource", func(t *testing.T) {
		w := issueRequest(t, 7, identity.RoleViewer, "7")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("allows admin on any resource", func(t *testing.T) {
		w := issueRequest(t, 7, identity.RoleAdmin, "9")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects other users' resources", func(t *testing.T) {
		w := issueRequest(t, 7, identity.RoleEmployee, "9")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// Package router assembles the gin engine: middleware chain, public
// endpoints and the role-gated API routes.
package router

import (
	"net/http"

	"github.com/fakturo/backend/internal/domain/identity"
	"github.com/fakturo/backend/internal/infrastructure/auth"
	"github.com/fakturo/backend/internal/infrastructure/config"
	"github.com/fakturo/backend/internal/infrastructure/logger"
	"github.com/fakturo/backend/internal/interfaces/http/handler"
	"github.com/fakturo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies carries everything the router needs to wire the routes
type Dependencies struct {
	Config     *config.Config
	Logger     *zap.Logger
	JWTService *auth.JWTService
	UserRepo   identity.UserRepository

	AuthHandler     *handler.AuthHandler
	CustomerHandler *handler.CustomerHandler
	ProductHandler  *handler.ProductHandler
	DocumentHandler *handler.DocumentHandler
	UserHandler     *handler.UserHandler
	PrintHandler    *handler.PrintHandler
}

// New builds the gin engine with the full middleware chain and all routes.
// Reads require VIEWER, writes EMPLOYEE, deletes and user management ADMIN.
func New(deps Dependencies) *gin.Engine {
	engine := gin.New()

	if len(deps.Config.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(deps.Config.HTTP.TrustedProxies)
	}

	corsConfig := middleware.DefaultCORSConfig()
	if len(deps.Config.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = deps.Config.HTTP.CORSAllowOrigins
	}
	if len(deps.Config.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = deps.Config.HTTP.CORSAllowMethods
	}
	if len(deps.Config.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = deps.Config.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(deps.Logger),
		logger.GinMiddleware(deps.Logger),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	api.POST("/auth/login", deps.AuthHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddleware(deps.JWTService, deps.UserRepo, deps.Logger))

	authed.GET("/auth/me", deps.AuthHandler.Me)

	registerCustomerRoutes(authed, deps.CustomerHandler)
	registerProductRoutes(authed, deps.ProductHandler)
	registerDocumentRoutes(authed, deps.DocumentHandler, deps.PrintHandler)
	registerUserRoutes(authed, deps.UserHandler)

	return engine
}

func registerCustomerRoutes(rg *gin.RouterGroup, h *handler.CustomerHandler) {
	customers := rg.Group("/customers")
	customers.GET("", middleware.RequireRole(identity.RoleViewer), h.List)
	customers.GET("/:id", middleware.RequireRole(identity.RoleViewer), h.Get)
	customers.POST("", middleware.RequireRole(identity.RoleEmployee), h.Create)
	customers.PUT("/:id", middleware.RequireRole(identity.RoleEmployee), h.Update)
	customers.DELETE("/:id", middleware.RequireRole(identity.RoleAdmin), h.Delete)
}

func registerProductRoutes(rg *gin.RouterGroup, h *handler.ProductHandler) {
	products := rg.Group("/products")
	products.GET("", middleware.RequireRole(identity.RoleViewer), h.List)
	products.GET("/:id", middleware.RequireRole(identity.RoleViewer), h.Get)
	products.POST("", middleware.RequireRole(identity.RoleEmployee), h.Create)
	products.PUT("/:id", middleware.RequireRole(identity.RoleEmployee), h.Update)
	products.DELETE("/:id", middleware.RequireRole(identity.RoleAdmin), h.Delete)
}

func registerDocumentRoutes(rg *gin.RouterGroup, h *handler.DocumentHandler, print *handler.PrintHandler) {
	documents := rg.Group("/documents")
	documents.GET("", middleware.RequireRole(identity.RoleViewer), h.List)
	documents.GET("/:id", middleware.RequireRole(identity.RoleViewer), h.Get)
	documents.POST("", middleware.RequireRole(identity.RoleEmployee), h.Create)
	documents.PUT("/:id", middleware.RequireRole(identity.RoleEmployee), h.Update)
	documents.DELETE("/:id", middleware.RequireRole(identity.RoleAdmin), h.Delete)

	documents.GET("/:id/pdf", middleware.RequireRole(identity.RoleEmployee), print.RenderInvoice)

	documents.GET("/:id/items", middleware.RequireRole(identity.RoleViewer), h.ListItems)
	documents.GET("/:id/items/:itemId", middleware.RequireRole(identity.RoleViewer), h.GetItem)
	documents.POST("/:id/items", middleware.RequireRole(identity.RoleEmployee), h.AddItem)
	documents.PUT("/:id/items/:itemId", middleware.RequireRole(identity.RoleEmployee), h.UpdateItem)
	documents.DELETE("/:id/items/:itemId", middleware.RequireRole(identity.RoleAdmin), h.DeleteItem)
}

func registerUserRoutes(rg *gin.RouterGroup, h *handler.UserHandler) {
	users := rg.Group("/users")
	users.GET("", middleware.RequireRole(identity.RoleAdmin), h.List)
	users.POST("", middleware.RequireRole(identity.RoleAdmin), h.Create)
	users.GET("/:id", middleware.RequireSelfOrAdmin(), h.Get)
	users.PUT("/:id/email", middleware.RequireSelfOrAdmin(), h.UpdateEmail)
	users.PUT("/:id/password", middleware.RequireSelfOrAdmin(), h.UpdatePassword)
	users.PUT("/:id/role", middleware.RequireRole(identity.RoleAdmin), h.UpdateRole)
	users.DELETE("/:id", middleware.RequireRole(identity.RoleAdmin), h.Delete)
}

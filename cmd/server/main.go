package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/fakturo/backend/internal/application/catalog"
	documentapp "github.com/fakturo/backend/internal/application/document"
	identityapp "github.com/fakturo/backend/internal/application/identity"
	partnerapp "github.com/fakturo/backend/internal/application/partner"
	printingapp "github.com/fakturo/backend/internal/application/printing"
	"github.com/fakturo/backend/internal/infrastructure/auth"
	"github.com/fakturo/backend/internal/infrastructure/config"
	"github.com/fakturo/backend/internal/infrastructure/logger"
	"github.com/fakturo/backend/internal/infrastructure/persistence"
	"github.com/fakturo/backend/internal/infrastructure/printing"
	"github.com/fakturo/backend/internal/interfaces/http/handler"
	"github.com/fakturo/backend/internal/interfaces/http/middleware"
	"github.com/fakturo/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Fakturo Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	documentRepo := persistence.NewGormDocumentRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)

	// Initialize PDF renderer
	renderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Invoice.RenderTimeout,
		NoSandbox:      os.Getuid() == 0,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	userService := identityapp.NewUserService(userRepo, log)
	customerService := partnerapp.NewCustomerService(customerRepo, documentRepo, log)
	productService := catalogapp.NewProductService(productRepo, itemRepo, log)
	documentService := documentapp.NewDocumentService(documentRepo, customerRepo, userRepo, log)
	itemService := documentapp.NewItemService(itemRepo, documentRepo, productRepo, log)
	printService := printingapp.NewService(documentRepo, itemRepo, customerRepo, productRepo, renderer, cfg.Invoice, log)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Report validation failures using JSON field names
	middleware.SetupValidator()

	// Build router with all handlers
	engine := router.New(router.Dependencies{
		Config:     cfg,
		Logger:     log,
		JWTService: jwtService,
		UserRepo:   userRepo,

		AuthHandler:     handler.NewAuthHandler(authService),
		CustomerHandler: handler.NewCustomerHandler(customerService),
		ProductHandler:  handler.NewProductHandler(productService),
		DocumentHandler: handler.NewDocumentHandler(documentService, itemService),
		UserHandler:     handler.NewUserHandler(userService),
		PrintHandler:    handler.NewPrintHandler(printService),
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

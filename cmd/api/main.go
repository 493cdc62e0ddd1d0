package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AliJone/Gaza/internal/cache"
	"github.com/AliJone/Gaza/internal/config"
	"github.com/AliJone/Gaza/internal/database"
	"github.com/AliJone/Gaza/internal/handler"
	"github.com/AliJone/Gaza/internal/middleware"
	"github.com/AliJone/Gaza/internal/repository"
	"github.com/AliJone/Gaza/internal/service"
	"github.com/AliJone/Gaza/internal/worker"
)

// main is the application entrypoint for the boycott catalog API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting catalog api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 3c. Initialize catalog listing cache
	listCache := cache.NewCatalogCache(redisClient, cfg.Catalog.ListCacheTTL)

	// 4. Initialize repositories
	entryRepo := repository.NewEntryRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)

	// 5. Initialize services
	catalogSvc := service.NewCatalogService(entryRepo, listCache, cfg.Catalog.DetailIncludePending)
	submissionSvc := service.NewSubmissionService(entryRepo)
	moderationSvc := service.NewModerationService(entryRepo, listCache)
	adminAuthSvc := service.NewAdminAuthService(adminRepo, cfg.JWTSecret)

	// 6. Initialize handlers
	handlers := &Handlers{
		Health:     handler.NewHealthHandler(db),
		Catalog:    handler.NewCatalogHandler(catalogSvc),
		Submission: handler.NewSubmissionHandler(submissionSvc),
		Moderation: handler.NewModerationHandler(moderationSvc),
		Auth:       handler.NewAuthHandler(adminAuthSvc),
	}

	// 7. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware(cfg.JWTSecret)

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw)

	// 9. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 10. Start workers
	go worker.NewPendingMonitorWorker(moderationSvc, cfg.Worker.PendingMonitorInterval).Start(ctx)

	// 11. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 12. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 13. Cancel context to stop workers
	cancel()

	// 14. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health     *handler.HealthHandler
	Catalog    *handler.CatalogHandler
	Submission *handler.SubmissionHandler
	Moderation *handler.ModerationHandler
	Auth       *handler.AuthHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Public catalog routes
	catalog := router.Group("/v1/catalog")
	{
		catalog.GET("/entries", handlers.Catalog.ListEntries)
		catalog.GET("/entries/:id", handlers.Catalog.GetEntry)
		catalog.GET("/search", handlers.Catalog.SearchEntries)
		catalog.POST("/entries", handlers.Submission.SubmitEntry)
	}

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", handlers.Auth.Login)
	admin.Use(jwtMiddleware.Handle())
	{
		// Moderation queue
		admin.GET("/entries", handlers.Moderation.ListEntries)
		admin.PUT("/entries/:id/status", handlers.Moderation.UpdateEntryStatus)

		// Moderator accounts
		admin.POST("/users", handlers.Auth.CreateUser)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

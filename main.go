package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/andrewpaige1/vocabook-api/config"
	"github.com/andrewpaige1/vocabook-api/handlers"
	"github.com/andrewpaige1/vocabook-api/importer"
	"github.com/andrewpaige1/vocabook-api/logger"
	"github.com/andrewpaige1/vocabook-api/middleware"
	"github.com/andrewpaige1/vocabook-api/repository"
	"github.com/andrewpaige1/vocabook-api/service"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection
	db, err := config.Connect(cfg.DB, zl)
	if err != nil {
		zl.Fatal("connect database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zl.Fatal("get sql handle", zap.Error(err))
	}
	defer sqlDB.Close()

	progressRepo := repository.NewProgressRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	vocabularyRepo := repository.NewVocabularyRepository(db)
	userRepo := repository.NewUserRepository(db)
	statsRepo := repository.NewStatsRepository(sqlx.NewDb(sqlDB, cfg.DB.SQLXDriverName()), cfg.DB.SQLXDriverName())

	catalogService := service.NewCatalogService(categoryRepo, vocabularyRepo, zl)

	h := &handlers.Handler{
		Progress:  service.NewProgressService(progressRepo, categoryRepo, vocabularyRepo, zl),
		Dashboard: service.NewDashboardService(statsRepo),
		Catalog:   catalogService,
		Users:     service.NewUserService(userRepo, zl),
		Importer:  importer.New(catalogService, zl),
		JWT:       cfg.JWT,
		Cookie:    cfg.Cookie,
		Log:       zl,
		Now:       time.Now,
	}

	ensureValidToken, err := middleware.EnsureValidToken(cfg.JWT, zl)
	if err != nil {
		zl.Fatal("set up token validation", zap.Error(err))
	}
	currentUser := middleware.CurrentUser(userRepo, zl)
	authenticate := func(next http.Handler) http.Handler {
		return ensureValidToken(currentUser(next))
	}

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(middleware.RequestLogger(zl)(h.Routes(authenticate)))

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           corsHandler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		zl.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zl.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown", zap.Error(err))
	}
}

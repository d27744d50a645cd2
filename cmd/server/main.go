package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	// internal imports
	"github.com/artem13815/resumeai/api/http"
	"github.com/artem13815/resumeai/api/http/handlers"
	"github.com/artem13815/resumeai/pkg/auth"
	"github.com/artem13815/resumeai/pkg/config"
	"github.com/artem13815/resumeai/pkg/health"
	"github.com/artem13815/resumeai/pkg/health/checkers"
	"github.com/artem13815/resumeai/pkg/history"
	"github.com/artem13815/resumeai/pkg/kvstore"
	"github.com/artem13815/resumeai/pkg/logger"
	"github.com/artem13815/resumeai/pkg/quota"
	"github.com/artem13815/resumeai/pkg/scan"
	"github.com/artem13815/resumeai/pkg/security/jwt"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	zl, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	// Durable key-value store (users, history, quotas)
	store, err := kvstore.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		zl.Fatal("open kv store", zap.Error(err))
	}
	defer store.Close()

	// Wire dependencies
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	userRepo := auth.NewKVUserRepository(store)
	authUC := auth.NewAuthService(userRepo, jwtGen)
	authHandler := handlers.NewAuthHandler(authUC)

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewKVChecker(store))
	healthHandler := handlers.NewHealthHandler(readiness)

	pipeline := scan.NewPipeline(zl)
	quotas := quota.New(store, cfg.FreeScanLimit)
	hist := history.New(store)

	scanHandler := handlers.NewScanHandler(pipeline, quotas, hist, zl, cfg.MaxUploadMB)
	historyHandler := handlers.NewHistoryHandler(hist)
	quotaHandler := handlers.NewQuotaHandler(quotas)
	adminHandler := handlers.NewAdminHandler(quotas)

	// JWT auth middleware for protected routes
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)

	app := fiber.New(fiber.Config{
		BodyLimit: (cfg.MaxUploadMB + 1) << 20,
	})
	http.Register(app, authHandler, healthHandler, scanHandler, historyHandler, quotaHandler, adminHandler, authMW)

	zl.Info("HTTP server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

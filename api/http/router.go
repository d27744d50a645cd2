package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeai/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	scan *handlers.ScanHandler,
	hist *handlers.HistoryHandler,
	quota *handlers.QuotaHandler,
	admin *handlers.AdminHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Resume scanning
	protected := v1.Group("", authMW)
	protected.Post("/scan", scan.Scan)
	protected.Post("/scan/batch", scan.BatchScan)
	protected.Get("/history", hist.List)
	protected.Delete("/history", hist.Clear)
	protected.Get("/quota", quota.Status)

	adm := protected.Group("/admin", handlers.RequireAdmin)
	adm.Post("/pro", admin.GrantPro)
	adm.Delete("/pro/:email", admin.RevokePro)
}

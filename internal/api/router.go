package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/billpie/billpie/internal/api/handler"
	"github.com/billpie/billpie/internal/api/middleware"
	"github.com/billpie/billpie/internal/core/service"
	"github.com/billpie/billpie/internal/infrastructure/billdesk"
	"github.com/billpie/billpie/internal/infrastructure/config"
	"github.com/billpie/billpie/internal/infrastructure/session"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(client *billdesk.Client, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("billpie"))

	// --- Dependencies ---
	catalog := billdesk.NewBillCatalog(client)
	ledger := billdesk.NewPaymentLedger(client)
	profiles := billdesk.NewProfileStore(client)
	sessions := session.NewStore(rdb)

	billService := service.NewBillService(catalog, log)
	paymentService := service.NewPaymentService(catalog, ledger, sessions, log)
	historyService := service.NewHistoryService(ledger, log)
	profileService := service.NewProfileService(profiles, sessions, log)

	billHandler := handler.NewBillHandler(billService)
	paymentHandler := handler.NewPaymentHandler(paymentService, historyService)
	profileHandler := handler.NewProfileHandler(profileService)

	auth := middleware.Auth(cfg.IdentitySecret)
	optionalAuth := middleware.OptionalAuth(cfg.IdentitySecret)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb, client)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Bill listing (public: browsing never requires sign-in) ---
	e.GET("/v1/bills", billHandler.List)
	e.GET("/v1/bills/recent", billHandler.Recent)

	// --- Payment submission (optional auth: the service decides, stashing
	// the bill for signed-out callers) ---
	e.POST("/v1/payments", paymentHandler.Create, optionalAuth)
	e.GET("/v1/payments/pending", paymentHandler.Pending, optionalAuth)

	// --- Payment history (auth required) ---
	e.GET("/v1/payments", paymentHandler.List, auth)
	e.GET("/v1/payments/:id", paymentHandler.Get, auth)
	e.DELETE("/v1/payments/:id", paymentHandler.Delete, auth)
	e.GET("/v1/payments/:id/receipt", paymentHandler.Receipt, auth)
	e.GET("/v1/payments/:id/share", paymentHandler.Share, auth)

	// --- Profile and preferences (auth required) ---
	e.POST("/v1/profile", profileHandler.Create, auth)
	e.GET("/v1/profile", profileHandler.Get, auth)
	e.PATCH("/v1/profile", profileHandler.Update, auth)
	e.GET("/v1/profile/theme", profileHandler.Theme, auth)
	e.PUT("/v1/profile/theme", profileHandler.SetTheme, auth)

	return e
}

package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pneumatic/guestbook/internal/api/handler"
	"github.com/pneumatic/guestbook/internal/api/session"
	"github.com/pneumatic/guestbook/internal/core/ports"
	"github.com/pneumatic/guestbook/internal/infrastructure/config"
	"github.com/pneumatic/guestbook/internal/web"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when Redis is not configured.
func NewRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client, registrations ports.RegistrationService, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("build renderer: %w", err)
	}
	e.Renderer = renderer
	e.Validator = handler.NewFormValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("guestbook"))
	e.Use(session.Middleware(cfg.SecretKey, cfg.Session.MaxAge))

	// --- Pages ---
	indexHandler := handler.NewIndexHandler(registrations, log)
	greetingHandler := handler.NewGreetingHandler()

	e.GET("/", indexHandler.Index)
	e.POST("/", indexHandler.Submit)
	e.GET("/user/:name", greetingHandler.User)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/healthz", healthHandler.Liveness)
	e.GET("/healthz/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}

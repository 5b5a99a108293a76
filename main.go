package main

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/HSouheill/barrim_storefront/cache"
	"github.com/HSouheill/barrim_storefront/carousel"
	"github.com/HSouheill/barrim_storefront/config"
	"github.com/HSouheill/barrim_storefront/controllers"
	"github.com/HSouheill/barrim_storefront/middleware"
	"github.com/HSouheill/barrim_storefront/routes"
	"github.com/HSouheill/barrim_storefront/services"
	"github.com/HSouheill/barrim_storefront/websocket"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg)

	// Ensure correct MIME type for SVG files
	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := newStore(cfg, logger)
	api := services.NewAPIClient(cfg.APIBaseURL, cfg.APITimeout, cfg.APIDebug, logger)

	storefront := services.NewStorefront(api, store, services.StorefrontOptions{
		HeroCacheTTL:         cfg.HeroCacheTTL,
		AdCacheTTL:           cfg.AdCacheTTL,
		EventCacheTTL:        cfg.EventCacheTTL,
		BrandCacheTTL:        cfg.BrandCacheTTL,
		CategoryCacheTTL:     cfg.CategoryCacheTTL,
		CarouselInterval:     cfg.CarouselInterval,
		HeroRefreshInterval:  cfg.HeroRefreshInterval,
		AdRefreshInterval:    cfg.AdRefreshInterval,
		EventRefreshInterval: cfg.EventRefreshInterval,
		DefaultBannerLink:    cfg.DefaultBannerLink,
		DefaultBrandLogo:     cfg.DefaultBrandLogo,
		DefaultCategoryImage: cfg.DefaultCategoryImage,
	}, logger)

	var mailer services.Mailer
	if cfg.SMTPEnabled() {
		mailer = services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	} else {
		logger.Info().Msg("SMTP not configured, contact acknowledgements disabled")
	}
	validate := services.NewValidator()
	contact := services.NewContactService(api, validate, mailer, logger)
	share := services.NewShareService(api, cfg.PublicBaseURL)

	pages, err := services.LoadPages()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load static pages")
	}

	// Create WebSocket hub
	wsHub := websocket.NewHub()
	go wsHub.Run(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validate}

	rateLimiter := middleware.NewRateLimiter()
	defer rateLimiter.Stop()

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Metrics())
	corsConfig := middleware.NewCORSConfig(cfg.CORSAllowedOrigins)
	e.Use(middleware.CORSWithConfig(corsConfig))
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		AllowedDomains: []string{"ws:", "wss:"},
	}))
	e.Use(middleware.RequireContentType())
	e.Use(rateLimiter.RateLimit())

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
			"cache":  cfg.CacheDriver,
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	session := websocket.SessionConfig{
		Rotation: carousel.Config{
			Interval:    cfg.CarouselInterval,
			ResumeDelay: cfg.CarouselResumeDelay,
		},
		SwipeThreshold: cfg.SwipeThreshold,
		AllowedOrigins: corsConfig.AllowOrigins,
	}

	routes.SetupRoutes(e, routes.Controllers{
		Storefront:  controllers.NewStorefrontController(storefront, share),
		Contact:     controllers.NewContactController(contact),
		Pages:       controllers.NewPageController(pages),
		Carousel:    controllers.NewCarouselController(wsHub, storefront.LiveCarousels(), session, logger),
		AdminBanner: controllers.NewAdminBannerController(api, storefront, wsHub),
		AdminBrand:  controllers.NewAdminBrandController(api, storefront),
	}, middleware.JWTMiddleware(cfg.JWTSecret, logger))

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("storefront listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newStore picks the payload cache backend. Redis that does not answer
// falls back to process memory.
func newStore(cfg *config.Config, logger zerolog.Logger) cache.Store {
	if cfg.CacheDriver == "redis" {
		if client := config.ConnectRedis(cfg, logger); client != nil {
			return cache.NewRedisStore(client, cfg.RedisPrefix)
		}
	}
	return cache.NewMemoryStore()
}

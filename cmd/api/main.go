package main

// @title TrackLane API
// @version 1.0
// @description Music licensing marketplace API. Tracks, licenses, monthly producer payouts.
// @termsOfService https://tracklane.io/terms

// @contact.name API Support
// @contact.url https://tracklane.io/support
// @contact.email support@tracklane.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tracklane/tracklane/config"
	"github.com/tracklane/tracklane/pkg/analytics"
	"github.com/tracklane/tracklane/pkg/api/handlers"
	custommw "github.com/tracklane/tracklane/pkg/api/middleware"
	"github.com/tracklane/tracklane/pkg/auth"
	"github.com/tracklane/tracklane/pkg/billing"
	"github.com/tracklane/tracklane/pkg/cache"
	"github.com/tracklane/tracklane/pkg/catalog"
	"github.com/tracklane/tracklane/pkg/database"
	"github.com/tracklane/tracklane/pkg/email"
	"github.com/tracklane/tracklane/pkg/export"
	"github.com/tracklane/tracklane/pkg/jobs"
	"github.com/tracklane/tracklane/pkg/metrics"
	custommiddleware "github.com/tracklane/tracklane/pkg/middleware"
	"github.com/tracklane/tracklane/pkg/payments"
	"github.com/tracklane/tracklane/pkg/payout"
	"github.com/tracklane/tracklane/pkg/slack"
)

// CustomValidator wraps go-playground/validator for Echo's c.Validate
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0, // Capture 100% of transactions in development, adjust in production
			AttachStacktrace: true,
			BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
				// Filter out sensitive data or customize events here
				return event
			},
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database with SSL configuration
	sslCfg := &database.SSLConfig{
		Mode:         cfg.DBSSLMode,
		CertPath:     cfg.DBSSLCertPath,
		KeyPath:      cfg.DBSSLKeyPath,
		RootCertPath: cfg.DBSSLRootCertPath,
	}
	db, err := database.NewClientWithSSL(cfg.DatabaseURL, sslCfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	roleRateLimiter := custommiddleware.NewRoleRateLimiter()       // Role-based limits for authenticated users
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)       // 5 req/min for login
	registerRateLimiter := custommiddleware.NewRateLimiter(3, 1)   // 3 req/min for registration
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // 100 req/min for Stripe webhooks

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true, // Repanic after capturing to let the Recover middleware handle it
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.HTTPMiddleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.DefaultSecurityHeadersConfig()))

	// Global rate limiting (default 60 req/min)
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "TrackLane API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		// Check database connection
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		// Check Redis connection
		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API v1 routes group with versioning middleware
	v1 := e.Group("/api/v1")
	v1.Use(custommiddleware.APIVersionMiddleware(custommiddleware.CurrentAPIVersion))

	// Version info endpoint (public)
	v1.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, custommiddleware.VersionInfo(custommiddleware.CurrentAPIVersion))
	})

	// Ping endpoint (public)
	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Initialize JWT blacklist
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Initialize email service
	emailService := email.NewService(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.FrontendURL,
		cfg.SendGridAPIKey,
	)
	// Service logs its own initialization status

	// Initialize Slack ops notifications (if configured)
	var slackService *slack.Service
	if cfg.SlackWebhookURL != "" {
		slackService = slack.NewService(slack.NewWebhookClient(cfg.SlackWebhookURL))
		log.Printf("✅ Slack notifications enabled")
	} else {
		log.Printf("ℹ️  Slack notifications disabled (no webhook URL configured)")
	}

	// Initialize services
	circleClient := payments.NewCircleClient(cfg.CircleAPIKey, cfg.CircleBaseURL)
	payoutService := payout.NewService(db.Ent, circleClient)
	payoutService.SetNotifier(emailService)
	payoutService.SetMetrics(prometheusMetrics)
	catalogService := catalog.NewService(db.Ent, redisClient)
	billingService := billing.NewService(db.Ent, catalogService, &billing.StripeConfig{
		SecretKey:     cfg.StripeSecretKey,
		WebhookSecret: cfg.StripeWebhookSecret,
		SuccessURL:    cfg.CheckoutSuccessURL,
		CancelURL:     cfg.CheckoutCancelURL,
	})
	billingService.SetEmailSender(emailService)
	billingService.SetMetrics(prometheusMetrics)
	if slackService != nil {
		billingService.SetAlerter(slackService)
	}
	analyticsService := analytics.NewService(db.Ent, redisClient)
	exportService := export.NewService(db.Ent, cfg.ExportStoragePath)
	log.Printf("✅ Payout, catalog, billing, analytics and export services initialized")

	// Initialize cron manager for the monthly payout pipeline
	cronManager := jobs.NewCronManager(payoutService, log.Default())
	if slackService != nil {
		cronManager.SetAlerts(slackService)
	}
	if cfg.PayoutCronJobs {
		if err := cronManager.SetupJobs(); err != nil {
			log.Fatalf("❌ Failed to setup cron jobs: %v", err)
		}
		cronManager.Start()
		log.Printf("✅ Payout cron jobs started")
	} else {
		log.Printf("ℹ️  Payout cron jobs disabled (PAYOUT_CRON_JOBS=false)")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, tokenBlacklist, emailService, prometheusMetrics)
	trackHandler := handlers.NewTrackHandler(catalogService)
	billingHandler := handlers.NewBillingHandler(billingService)
	payoutHandler := handlers.NewPayoutHandler(db.Ent, payoutService)
	settingsHandler := handlers.NewSettingsHandler(db.Ent)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	exportHandler := handlers.NewExportHandler(exportService)

	jwtAuth := custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent)

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		// Register with strict rate limit
		authRoutes.POST("/register", authHandler.Register, registerRateLimiter.RateLimitMiddleware())
		// Login with rate limit: 5 per minute (prevent brute force)
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		// Me endpoint with JWT validation and blacklist check
		authRoutes.GET("/me", authHandler.Me, jwtAuth)
		// Logout endpoint (revoke token)
		authRoutes.POST("/logout", authHandler.Logout, jwtAuth)
		// Payout wallet address for producers
		authRoutes.PUT("/wallet", authHandler.UpdateWallet, jwtAuth)
	}

	// Track catalog routes (browse is public, publish is producer-only)
	trackRoutes := v1.Group("/tracks")
	{
		trackRoutes.GET("", trackHandler.List)
		trackRoutes.GET("/:id", trackHandler.Get)
		trackRoutes.POST("", trackHandler.Create, jwtAuth, custommiddleware.RequireProducer(db.Ent))
		trackRoutes.POST("/:id/publish", trackHandler.Publish, jwtAuth, custommiddleware.RequireProducer(db.Ent))
	}

	// Billing routes
	billingRoutes := v1.Group("/billing")
	{
		// Checkout requires an authenticated buyer
		billingRoutes.POST("/checkout", billingHandler.Checkout, jwtAuth, roleRateLimiter.Middleware())
		// Stripe webhook (signature-verified, no JWT)
		billingRoutes.POST("/webhook", billingHandler.Webhook, webhookRateLimiter.RateLimitMiddleware())
	}

	// Admin routes (payout pipeline, settings, analytics)
	admin := v1.Group("/admin")
	admin.Use(jwtAuth)
	admin.Use(custommiddleware.RequireAdmin(db.Ent))
	admin.Use(roleRateLimiter.Middleware())
	{
		admin.POST("/payouts/generate", payoutHandler.Generate)
		admin.POST("/payouts/disburse", payoutHandler.Disburse)
		admin.POST("/payouts/retry", payoutHandler.Retry)
		admin.GET("/payouts", payoutHandler.List)
		admin.GET("/payouts/export", exportHandler.PayoutReport)

		admin.GET("/settings/compensation", settingsHandler.Get)
		admin.PUT("/settings/compensation", settingsHandler.Update)

		admin.GET("/analytics/revenue", analyticsHandler.Revenue)
		admin.GET("/analytics/top-producers", analyticsHandler.TopProducers)
		admin.GET("/analytics/payout-totals", analyticsHandler.PayoutTotals)
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 TrackLane API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("🔒 Auth endpoints: login (5/min), register (3/min), webhook (100/min)")
	if cfg.PayoutCronJobs {
		log.Printf("⏰ Cron jobs: generate (1st 2AM), disburse (2nd 2AM), retry (5th 2AM)")
	}

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Stop cron jobs
	if cfg.PayoutCronJobs {
		cronManager.Stop()
		log.Println("✅ Cron jobs stopped")
	}

	// Gracefully shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}

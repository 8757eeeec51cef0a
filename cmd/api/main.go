package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"erpapi/docs"
	"erpapi/internal/auth"
	"erpapi/internal/captcha"
	"erpapi/internal/config"
	"erpapi/internal/database"
	"erpapi/internal/database/migration"
	"erpapi/internal/events"
	handlers "erpapi/internal/http/handler"
	"erpapi/internal/http/middleware"
	"erpapi/internal/logging"
	"erpapi/internal/mail"
	"erpapi/internal/otel"
	"erpapi/internal/repository/mongodb"
	"erpapi/internal/repository/postgres"
	"erpapi/internal/service"
	"erpapi/internal/storage"
)

// @title ERP API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	logger := logging.Default(cfg.Location())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fatal := func(msg string, err error) {
		logger.Error(msg, "error", err)
		os.Exit(1)
	}

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		fatal("tracing_init_failed", err)
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		fatal("postgres_connect_failed", err)
	}
	if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
		fatal("migration_failed", err)
	}

	mongoClient, mongoDB, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		fatal("mongo_connect_failed", err)
	}
	if err := migration.EnsureIndexes(ctx, mongoDB, logger); err != nil {
		fatal("mongo_indexes_failed", err)
	}

	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		if objStore, err = storage.NewMinIO(cfg.MinIO); err != nil {
			fatal("object_storage_init_failed", err)
		}
	} else {
		logger.Warn("object_storage_disabled")
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		logger.Info("kafka_publisher_configured", "brokers", strings.Join(cfg.Kafka.Brokers, ","), "topic", cfg.Kafka.Topic)
	}

	// Mail is optional; the email endpoints answer 503 without it.
	var (
		sender mail.Sender
		inbox  mail.Inbox
	)
	if s, err := mail.NewMailjetSender(cfg.Mailjet); err == nil {
		sender = s
	} else if !errors.Is(err, mail.ErrNotConfigured) {
		fatal("mailjet_init_failed", err)
	}
	if in, err := mail.NewIMAPInbox(cfg.IMAP); err == nil {
		inbox = in
	} else if !errors.Is(err, mail.ErrNotConfigured) {
		fatal("imap_init_failed", err)
	}

	var verifier captcha.Verifier = captcha.Disabled{}
	if cfg.Recaptcha.Enabled {
		verifier = captcha.NewRecaptcha(cfg.Recaptcha)
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		fatal("token_manager_init_failed", err)
	}

	accountRepo := postgres.NewAccountPostgres(db)
	activityRepo := postgres.NewActivityPostgres(db)
	userRepo := mongodb.NewUserMongo(mongoDB)
	inquiryRepo := mongodb.NewInquiryMongo(mongoDB)
	notificationRepo := mongodb.NewNotificationMongo(mongoDB)
	tutorialRepo := mongodb.NewTutorialMongo(mongoDB)
	emailRepo := mongodb.NewEmailMongo(mongoDB)
	assetRepo := mongodb.NewAssetMongo(mongoDB)
	productRepo := mongodb.NewProductMongo(mongoDB)

	services := handlers.Services{
		Auth:          service.NewAuthService(userRepo, tokens),
		Users:         service.NewUserService(userRepo),
		Accounts:      service.NewAccountService(accountRepo, notificationRepo, publisher, logger),
		Activities:    service.NewActivityService(activityRepo),
		Inquiries:     service.NewInquiryService(inquiryRepo, notificationRepo, publisher, verifier, logger),
		Notifications: service.NewNotificationService(notificationRepo),
		Tutorials:     service.NewTutorialService(tutorialRepo),
		Emails:        service.NewEmailService(emailRepo, sender, inbox, cfg.Mailjet.FromEmail, logger),
		Assets:        service.NewAssetService(assetRepo, objStore, logger),
		Products:      service.NewProductService(productRepo, objStore, logger),
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		fatal("metrics_init_failed", err)
	}

	app := fiber.New(handlers.ServerConfig(cfg.Proxy))
	if cfg.Proxy.Header != "" {
		logger.Info("client_ip_from_header", "header", cfg.Proxy.Header, "trusted_proxies", strings.Join(cfg.Proxy.TrustedProxies, ","))
	}

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, handlers.Dependencies{
		Services: services,
		Tokens:   tokens,
		Stores:   []handlers.Pinger{db, database.MongoPinger{Client: mongoClient}},
		Limiter:  limiter,
	})

	go func() {
		addr := ":" + cfg.Port
		logger.Info("server_starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			logger.Error("server_failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("server_stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("http_shutdown_failed", "error", err)
	}
	if limiter != nil {
		limiter.Stop()
	}
	if err := publisher.Close(); err != nil {
		logger.Error("kafka_close_failed", "error", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Error("mongo_disconnect_failed", "error", err)
	}
	if err := db.Close(); err != nil {
		logger.Error("postgres_close_failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing_shutdown_failed", "error", err)
	}
}

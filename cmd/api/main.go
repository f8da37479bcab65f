package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tkexclusiv/catalog_api/internal/config"
	"github.com/tkexclusiv/catalog_api/internal/database"
	"github.com/tkexclusiv/catalog_api/internal/handler"
	"github.com/tkexclusiv/catalog_api/internal/metrics"
	"github.com/tkexclusiv/catalog_api/internal/middleware"
	"github.com/tkexclusiv/catalog_api/internal/models"
	"github.com/tkexclusiv/catalog_api/internal/repository"
	"github.com/tkexclusiv/catalog_api/internal/service"
)

// main is the application entrypoint for the catalog API.
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
	if err := database.RunMigrations(db.DB, cfg.MigrationsPath); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 4. Initialize external clients
	storage, err := service.NewS3Storage(context.Background(), &cfg.S3)
	if err != nil {
		log.Error().Err(err).Msg("object storage initialization failed")
		fmt.Fprintf(os.Stderr, "object storage initialization failed: %v\n", err)
		os.Exit(1)
	}
	mailer, err := service.NewSMTPMailer(&cfg.Mail)
	if err != nil {
		log.Error().Err(err).Msg("mailer initialization failed")
		fmt.Fprintf(os.Stderr, "mailer initialization failed: %v\n", err)
		os.Exit(1)
	}

	// 5. Initialize repositories and services
	catalog := handler.CatalogServices{
		Categories: service.NewResourceService(repository.NewResourceRepository[models.Category](db, repository.CategorySchema)),
		Products:   service.NewResourceService(repository.NewResourceRepository[models.Product](db, repository.ProductSchema)),
		Banners:    service.NewResourceService(repository.NewResourceRepository[models.Banner](db, repository.BannerSchema)),
		Promotions: service.NewResourceService(repository.NewResourceRepository[models.Promotion](db, repository.PromotionSchema)),
		Articles:   service.NewResourceService(repository.NewResourceRepository[models.Article](db, repository.ArticleSchema)),
	}
	settingsSvc := service.NewSettingsService(repository.NewSettingRepository(db))
	catalogSvc := service.NewCatalogService(repository.NewPublicCatalogRepository(db))
	authSvc := service.NewAuthService(db, &cfg.Auth)
	uploadSvc := service.NewUploadService(storage, cfg.S3.PublicBaseURL)
	notifySvc := service.NewNotifyService(mailer, &cfg.Mail)

	// 6. Initialize handlers
	handlers := &handler.Handlers{
		Health:        handler.NewHealthHandler(db),
		AdminCatalog:  handler.NewAdminCatalogHandler(catalog, settingsSvc),
		PublicCatalog: handler.NewPublicCatalogHandler(catalogSvc, settingsSvc),
		Auth:          handler.NewAuthHandler(authSvc),
		Upload:        handler.NewUploadHandler(uploadSvc),
		Notify:        handler.NewNotifyHandler(notifySvc),
	}

	// 7. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware(httpMetrics))
	handler.SetupRoutes(router, handlers, cfg.AdminSecretKey)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

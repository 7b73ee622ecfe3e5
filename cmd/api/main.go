package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/orbya/portfolio-backend/api/middleware"
	"github.com/orbya/portfolio-backend/api/routes"
	"github.com/orbya/portfolio-backend/internal/admin"
	"github.com/orbya/portfolio-backend/internal/contact"
	"github.com/orbya/portfolio-backend/internal/content"
	"github.com/orbya/portfolio-backend/internal/media"
	"github.com/orbya/portfolio-backend/internal/projects"
	"github.com/orbya/portfolio-backend/internal/siteconfig"
	"github.com/orbya/portfolio-backend/internal/skills"
	"github.com/orbya/portfolio-backend/internal/status"
	"github.com/orbya/portfolio-backend/pkg/config"
	"github.com/orbya/portfolio-backend/pkg/db"
	"github.com/orbya/portfolio-backend/pkg/logger"
	"github.com/orbya/portfolio-backend/pkg/migrate"
	"github.com/orbya/portfolio-backend/pkg/redis"
	"github.com/orbya/portfolio-backend/pkg/storage/local"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRun(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	mediaStore, err := local.NewStore(cfg.Media)
	if err != nil {
		logg.Error(context.Background(), "failed to prepare media store", err)
		os.Exit(1)
	}

	svcs, err := buildServices(cfg, dbClient, mediaStore)
	if err != nil {
		logg.Error(context.Background(), "failed to build services", err)
		os.Exit(1)
	}

	if err := svcs.Admin.EnsureCredential(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to seed admin credential", err)
		os.Exit(1)
	}
	if err := svcs.SiteConfig.EnsureSeeded(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to seed site config", err)
		os.Exit(1)
	}

	deps := routes.Pingers{DB: dbClient, Media: mediaStore}
	var rateLimiter middleware.RateLimiterStore
	if redisClient != nil {
		deps.Redis = redisClient
		rateLimiter = redisClient
	}

	registry := prometheus.NewRegistry()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, deps, svcs, rateLimiter, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func buildServices(cfg *config.Config, dbClient *db.Client, mediaStore *local.Store) (routes.Services, error) {
	var svcs routes.Services
	var err error

	conn := dbClient.DB()

	if svcs.Admin, err = admin.NewService(admin.NewRepository(conn), cfg.JWT, cfg.Admin, cfg.Password); err != nil {
		return svcs, err
	}
	if svcs.Projects, err = projects.NewService(projects.NewRepository(conn)); err != nil {
		return svcs, err
	}
	if svcs.Skills, err = skills.NewService(skills.NewRepository(conn)); err != nil {
		return svcs, err
	}
	if svcs.Content, err = content.NewService(content.NewRepository(conn), dbClient); err != nil {
		return svcs, err
	}
	if svcs.SiteConfig, err = siteconfig.NewService(siteconfig.NewRepository(conn)); err != nil {
		return svcs, err
	}
	if svcs.Contact, err = contact.NewService(contact.NewRepository(conn)); err != nil {
		return svcs, err
	}
	if svcs.Status, err = status.NewService(status.NewRepository(conn)); err != nil {
		return svcs, err
	}
	if svcs.Media, err = media.NewService(mediaStore, cfg.Media); err != nil {
		return svcs, err
	}
	return svcs, nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blog-backend/cmd/api/auth"
	"blog-backend/cmd/api/handlers"
	"blog-backend/cmd/api/middleware"
	"blog-backend/cmd/api/router"
	"blog-backend/cmd/api/services"
	"blog-backend/config"
	"blog-backend/db"
	"blog-backend/eventbus"
	"blog-backend/events"
	"blog-backend/feeder"
	"blog-backend/internal/logger"
	"blog-backend/repositories"
	"blog-backend/repositories/memory"
)

// @title           Blog API
// @version         1.0
// @description     Blog posts, tags and admin authoring API
// @BasePath        /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	posts, tags, health, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		logger.ErrorWithFields("failed to initialize storage", logger.Fields{"driver": cfg.Storage.Driver, "error": err.Error()})
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.ErrorWithFields("failed to close mongodb", logger.Fields{"error": err.Error()})
		}
	}()

	bus := openEventBus(cfg.Events)
	defer bus.Close()
	publisher := events.NewPublisher(bus, eventbus.NewTopic(cfg.Events.Topic))

	jwtManager, err := auth.NewJWTManager(os.Getenv("JWT_SECRET"), cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	if err != nil {
		logger.ErrorWithFields("failed to initialize jwt manager", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}

	accounts := make([]services.Account, 0, len(cfg.Auth.Users))
	for _, u := range cfg.Auth.Users {
		accounts = append(accounts, services.Account{Username: u.Username, PasswordHash: u.PasswordHash, IsAdmin: u.IsAdmin})
	}
	if len(accounts) == 0 {
		logger.WarnWithFields("no accounts configured, admin routes are unreachable", logger.Fields{})
	}

	blogSvc := services.NewBlogService(posts, tags, publisher, services.BlogOptions{
		WordsPerMinute: cfg.Blog.WordsPerMinute,
		ExcerptLength:  cfg.Blog.ExcerptLength,
	})
	tagSvc := services.NewTagService(tags, posts, publisher)
	authSvc := services.NewAuthService(accounts, jwtManager)
	importSvc := services.NewImportService(blogSvc, tagSvc, feeder.NewFetcher(nil))

	var limiter *middleware.IPRateLimiter
	if cfg.Auth.LoginRatePerMinute > 0 {
		limiter = middleware.NewIPRateLimiter(cfg.Auth.LoginRatePerMinute, cfg.Auth.LoginRatePerMinute)
		go limiter.Run(ctx.Done())
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	engine := router.New(router.Deps{
		Blog:   blogSvc,
		Tags:   tagSvc,
		Auth:   authSvc,
		Import: importSvc,
		Feed: handlers.FeedInfo{
			Title:       cfg.Blog.SiteTitle,
			Link:        cfg.Blog.SiteURL,
			Description: cfg.Blog.SiteTitle,
		},
		LoginLimiter: limiter,
		Registry:     registry,
		Health:       health,
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router.WithCORS(engine, cfg.Server.AllowedOrigins),
	}

	go func() {
		logger.InfoWithFields("starting blog api", logger.Fields{"addr": cfg.Server.Addr, "storage": cfg.Storage.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithFields("http server failed", logger.Fields{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	logger.InfoWithFields("shutting down blog api", logger.Fields{})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithFields("graceful shutdown failed", logger.Fields{"error": err.Error()})
	}
	logger.InfoWithFields("blog api stopped", logger.Fields{})
}

func openStorage(ctx context.Context, cfg config.StorageConfig) (repositories.BlogRepository, repositories.TagRepository, func(context.Context) error, error) {
	switch cfg.Driver {
	case "mongo", "mongodb":
		if err := db.Init(ctx, cfg.MongoURI, cfg.MongoDBName); err != nil {
			return nil, nil, nil, err
		}
		database := db.Database()
		health := func(ctx context.Context) error {
			return db.Client().Ping(ctx, readpref.Primary())
		}
		return repositories.NewMongoPostRepository(database), repositories.NewMongoTagRepository(database), health, nil
	default:
		if cfg.Driver != "memory" {
			logger.WarnWithFields("unknown storage driver, using memory", logger.Fields{"driver": cfg.Driver})
		}
		store := memory.NewStore()
		return store.Posts(), store.Tags(), nil, nil
	}
}

func openEventBus(cfg config.EventsConfig) eventbus.EventBus {
	if cfg.KafkaBrokers == "" {
		return eventbus.NewLogEventBus()
	}
	if err := eventbus.EnsureTopics(cfg.KafkaBrokers, eventbus.NewTopic(cfg.Topic), 3); err != nil {
		logger.ErrorWithFields("failed to ensure event topic", logger.Fields{"topic": cfg.Topic, "error": err.Error()})
	}
	bus, err := eventbus.NewKafkaEventBus(cfg.KafkaBrokers)
	if err != nil {
		logger.ErrorWithFields("failed to create kafka event bus, events will only be logged", logger.Fields{"error": err.Error()})
		return eventbus.NewLogEventBus()
	}
	return bus
}

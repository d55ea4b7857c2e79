package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"shopeasy/internal/config"
	"shopeasy/internal/favorites"
	"shopeasy/internal/feed"
	"shopeasy/internal/publisher"
	"shopeasy/internal/repository"
	"shopeasy/internal/scheduler"
	"shopeasy/internal/source/fakestore"
	"shopeasy/internal/storage/memory"
	"shopeasy/internal/storage/postgres"
	"shopeasy/internal/telemetry"
	"shopeasy/internal/viewstate"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	favoriteID := flag.Int64("favorite", 0, "product id to load and add to favorites at start")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, *favoriteID, logger); err != nil {
		logger.Error("shopeasy stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, favoriteID int64, logger *slog.Logger) error {
	tel, err := telemetry.New(ctx, telemetry.Config{
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		Insecure:    cfg.Tracing.Insecure,
	}, logger)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tel.Shutdown(shutdownCtx)
	}()

	table, closeTable, err := openTable(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeTable()

	source, err := fakestore.New(fakestore.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	}, logger)
	if err != nil {
		return fmt.Errorf("create catalog source: %w", err)
	}

	store := favorites.NewStore(table, logger)
	catalogRepo := repository.NewCatalog(source, logger)
	favoritesRepo := repository.NewFavorites(store)

	products := viewstate.NewProducts(ctx, catalogRepo, favoritesRepo, logger)
	defer products.Close()
	detail := viewstate.NewProductDetail(ctx, catalogRepo, favoritesRepo, logger)
	defer detail.Close()
	users := viewstate.NewUsers(ctx, catalogRepo, logger)
	defer users.Close()
	favs := viewstate.NewFavorites(ctx, favoritesRepo, logger)
	defer favs.Close()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logNotifications(ctx, logger, products.Notifications(ctx), detail.Notifications(ctx), favs.Notifications(ctx))
		return nil
	})

	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		defer rabbitMQ.Close()

		g.Go(func() error {
			return feed.New(favoritesRepo, rabbitMQ, logger).Run(ctx)
		})
	}

	sched := scheduler.NewScheduler(cfg.Session.RefreshInterval, logger, products, users)
	g.Go(func() error {
		return sched.Start(ctx)
	})

	if favoriteID > 0 {
		g.Go(func() error {
			favoriteProduct(detail, favoriteID, logger)
			return nil
		})
	}

	logger.Info("starting shopeasy session",
		"api", cfg.API.BaseURL,
		"storage", cfg.Storage.Driver,
		"refresh_interval", cfg.Session.RefreshInterval,
		"feed", cfg.RabbitMQ.Enabled,
	)

	err = g.Wait()

	logger.Info("session finished",
		"products", len(products.State().Products),
		"users", len(users.State().Users),
		"favorites", len(favs.State().Favorites),
	)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func openTable(ctx context.Context, cfg *config.Config, logger *slog.Logger) (favorites.Table, func(), error) {
	if cfg.Storage.Driver != config.DriverPostgres {
		return memory.NewFavoriteStore(), func() {}, nil
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database")

	if err := postgres.NewMigrator(db, logger).Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	return postgres.NewFavoriteStore(db), func() { db.Close() }, nil
}

// favoriteProduct loads the product with id on the detail screen and saves
// it as a favorite when it is not one already.
func favoriteProduct(detail *viewstate.ProductDetail, id int64, logger *slog.Logger) {
	detail.Dispatch(viewstate.LoadProductDetails{ID: id})
	detail.Wait()

	st := detail.State()
	switch {
	case st.Error != "":
		logger.Warn("product not loaded", "id", id, "error", st.Error)
	case st.Product == nil:
	case st.IsFavorite:
		logger.Info("product already in favorites", "id", id)
	default:
		detail.Dispatch(viewstate.AddToFavorites{Product: *st.Product})
	}
}

func logNotifications(ctx context.Context, logger *slog.Logger, streams ...<-chan viewstate.Notification) {
	merged := make(chan viewstate.Notification)
	for _, ch := range streams {
		go func(ch <-chan viewstate.Notification) {
			for {
				select {
				case <-ctx.Done():
					return
				case n := <-ch:
					select {
					case merged <- n:
					case <-ctx.Done():
						return
					}
				}
			}
		}(ch)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-merged:
			logger.Info("notification", "id", n.ID, "message", n.Message)
		}
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

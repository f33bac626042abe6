package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"okaigpt/backend/internal/api"
	"okaigpt/backend/internal/broker"
	"okaigpt/backend/internal/config"
	"okaigpt/backend/internal/database"
	"okaigpt/backend/internal/producer"
	"okaigpt/backend/internal/repository"
	"okaigpt/backend/internal/service"
)

// App holds the wired server and the resources it must release on exit.
type App struct {
	DB      *sql.DB
	Server  *http.Server
	closers []io.Closer
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		stop()
	}

	slog.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return 1
	}
	slog.Info("Server stopped successfully")
	return 0
}

// NewApp opens the database, connects the configured brokers and builds the
// HTTP server. The caller owns the returned App and must Close it.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.")
	app := &App{DB: db}

	dispatcher, notifier, err := app.connectBrokers(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	repo := repository.NewSQLiteRepository(db)
	settingsService := service.NewSettingsService(db)
	settings, err := settingsService.InitAndGet(context.Background())
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize application settings: %w", err)
	}
	slog.Info("Loaded application settings", "theme", settings.Theme)

	producers := producer.NewPlaceholder(cfg.AssetBaseURL).Set()
	handlers := api.Handlers{
		Chat:  api.NewChatHandler(service.NewChatService(repo), settingsService),
		Video: api.NewVideoHandler(service.NewVideoService(repo, dispatcher, notifier)),
		Tools: api.NewToolHandler(service.NewToolService(repo, producers), service.NewActivityService(repo)),
	}
	router := api.NewRouter(handlers, db, cfg.AllowedOrigins())

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return app, nil
}

// connectBrokers returns the RabbitMQ and Redis adapters when configured and
// the logging/no-op fallbacks otherwise.
func (a *App) connectBrokers(cfg *config.Config) (broker.VideoDispatcher, broker.StatusNotifier, error) {
	var dispatcher broker.VideoDispatcher = broker.LogDispatcher{}
	var notifier broker.StatusNotifier = broker.NopNotifier{}

	if cfg.RabbitURL != "" {
		publisher, err := broker.NewRabbitPublisher(cfg.RabbitURL, cfg.RabbitQueue)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		a.closers = append(a.closers, publisher)
		dispatcher = publisher
		slog.Info("Video jobs will be published to RabbitMQ", "queue", cfg.RabbitQueue)
	}

	if cfg.RedisAddr != "" {
		redisNotifier, err := broker.NewRedisNotifier(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisChannel)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		a.closers = append(a.closers, redisNotifier)
		notifier = redisNotifier
		slog.Info("Video status changes will be published to Redis", "channel", cfg.RedisChannel)
	}

	return dispatcher, notifier, nil
}

// Close releases the broker connections and the database.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			slog.Warn("Failed to close broker connection", "error", err)
		}
	}
	a.closers = nil
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

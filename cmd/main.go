package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"framed-chat/ai"
	"framed-chat/repositories"
	"framed-chat/runtime"
	"framed-chat/runtime/workers"
	"framed-chat/services"
	"framed-chat/ws"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so deferred cleanup always executes before
// the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := newLogger(config.LogLevel)

	// 2. History store (Postgres when configured, embedded Badger otherwise)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, log, config)
	if err != nil {
		return err
	}
	defer closeStore()

	// 3. Collaborators
	responder := ai.NewOpenAIResponder(log, config.OpenAIKey, config.OpenAIModel)
	hub := ws.NewHub(log)
	registry := runtime.NewRegistry(log)
	chat := services.NewChatService(log, registry, store, responder, hub)

	// 4. Background workers under supervision
	sup := workers.NewSupervisor(log)
	sup.Add(
		workers.NewRetentionWorker(log, store, registry,
			config.RetentionInterval, config.RetentionMaxAge, config.SessionIdleTTL),
		workers.NewStatsWorker(log, config.StatsInterval),
	)
	go sup.Run(ctx)

	// 5. HTTP + websocket surface
	server := ws.NewServer(log, hub, chat, config.Origins(), config.ConnectionBufferSize, config.StaticDir)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: server.Routes()}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Server is running", "address", address)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 7. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}

func openStore(ctx context.Context, log *slog.Logger, config Config) (repositories.IMessageStore, func(), error) {
	if config.PGHost != "" {
		store, err := repositories.NewPostgresStore(log, repositories.PostgresParams{
			Host:     config.PGHost,
			User:     config.PGUser,
			Password: config.PGPassword,
			Database: config.PGDatabase,
			Port:     config.PGPort,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("postgres store: %w", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, nil, fmt.Errorf("postgres schema: %w", err)
		}
		log.Info("Using Postgres history store", "host", config.PGHost, "database", config.PGDatabase)
		return store, func() {
			log.Info("Closing Postgres...")
			_ = store.Close()
		}, nil
	}

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, nil, fmt.Errorf("database opening failed: %w", err)
	}
	log.Info("Using embedded Badger history store", "path", config.BadgerFilepath)
	return repositories.NewBadgerStore(db, log), func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}, nil
}

func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

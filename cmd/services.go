package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/xvierd/pomodoro-cli/internal/adapters/notification"
	"github.com/xvierd/pomodoro-cli/internal/adapters/storage"
	"github.com/xvierd/pomodoro-cli/internal/adapters/tui"
	"github.com/xvierd/pomodoro-cli/internal/config"
	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
	"github.com/xvierd/pomodoro-cli/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config      *config.Config
	logger      *log.Logger
	logFile     *os.File
	store       *storage.FallbackStore
	state       *domain.TimerState
	persistence *services.PersistenceService
	stats       *services.StateService
	notifier    *notification.Notifier
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	// Load configuration
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	// Determine database path
	if dbPath == "" {
		dbPath = config.GetDBPath(app.config)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	app.logger, app.logFile = openLogger(config.GetLogPath(app.config))
	app.notifier = notification.New(&app.config.Notifications)

	// A database that cannot be opened degrades to memory for this run.
	primary, err := storage.New(dbPath)
	if err != nil {
		app.logger.Printf("opening %s: %v", dbPath, err)
		primary = nil
	}
	app.store = storage.NewFallbackStore(primary, app.logger)

	app.state = domain.NewTimerState()
	app.persistence = services.NewPersistenceService(app.store, app.state, app.logger)
	app.stats = services.NewStateService(app.store)

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	var err error
	if app.store != nil {
		err = app.store.Close()
	}
	if app.logFile != nil {
		_ = app.logFile.Close()
	}
	return err
}

// openLogger appends to path. The terminal belongs to the UI, so a log
// file that cannot be opened discards output instead.
func openLogger(path string) (*log.Logger, *os.File) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err == nil {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err == nil {
			return log.New(f, "pomodoro ", log.LstdFlags), f
		}
	}
	return log.New(io.Discard, "", 0), nil
}

// loadEngine restores the saved snapshot and returns an engine that
// reports through presenter. One-shot commands never start the countdown.
func loadEngine(ctx context.Context, presenter ports.Presenter) *services.TimerService {
	if _, err := app.persistence.LoadState(ctx); err != nil {
		app.logger.Printf("restoring state: %v", err)
	}
	return services.NewTimerService(app.state, app.persistence, presenter, tui.NewScheduler(), app.logger)
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/sidebarkit/internal/config"
	"github.com/alexisbeaulieu97/sidebarkit/internal/cookie"
	"github.com/alexisbeaulieu97/sidebarkit/internal/cookie/filejar"
	"github.com/alexisbeaulieu97/sidebarkit/internal/cookie/sqlitejar"
	"github.com/alexisbeaulieu97/sidebarkit/internal/logger"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Jar    cookie.Jar
	Logger *logger.Logger

	// fileJar is set for the file backend, the only one that can be watched.
	fileJar *filejar.Jar
	closers []func() error
}

// openApp loads the configuration, opens the log file and the state jar.
func openApp(ctx context.Context, flags *rootFlags) (*AppContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	app := &AppContext{Config: cfg}
	if err := app.openLogger(); err != nil {
		return nil, err
	}
	if err := app.openJar(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// openLogger writes to a file because the TUI owns stdout.
func (a *AppContext) openLogger() error {
	path, err := a.Config.Logging.LogPath()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	a.closers = append(a.closers, f.Close)

	log, err := logger.New(logger.Options{
		Level:     a.Config.Logging.Level,
		Writer:    f,
		Component: "sidebarkit",
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.Logger = log.With("correlation_id", logger.NewCorrelationID())
	return nil
}

func (a *AppContext) openJar(ctx context.Context) error {
	path, err := a.Config.Storage.StoragePath()
	if err != nil {
		return fmt.Errorf("resolve storage path: %w", err)
	}

	switch a.Config.Storage.Backend {
	case config.BackendSQLite:
		jar, err := sqlitejar.Open(ctx, path, nil)
		if err != nil {
			return err
		}
		a.Jar = jar
		a.closers = append(a.closers, jar.Close)
	case config.BackendMemory:
		a.Jar = cookie.NewMemoryJar(nil)
	default:
		jar, err := filejar.New(path, nil)
		if err != nil {
			return err
		}
		a.Jar = jar
		a.fileJar = jar
	}

	a.Logger.Debug("state jar opened", "backend", a.Config.Storage.Backend, "path", path)
	return nil
}

// Close releases the jar and the log file, newest first.
func (a *AppContext) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"os/signal"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AppProvider interface {
	Run() error
	Converse(context.Context) func() error
	Stop(context.Context, context.Context) func() error
}

type App struct {
	logger   *zap.Logger
	config   *Config
	commands map[string]CommandHandle
	in       io.Reader
	out      io.Writer
	cleanups []func()
}

// NewApp provides an instance of App.
func NewApp() (AppProvider, error) {
	config, err := LoadAndInitConfigs(GitCommit, GitTag, BuildTime)
	if err != nil {
		return nil, fmt.Errorf("failed to setup app configuration: %s", err)
	}

	// ensure the logs folder exists and Setup the logging module.
	err = os.MkdirAll(filepath.Dir(config.LogFile), 0o700)
	if err != nil {
		return nil, fmt.Errorf("failed to create logging folder: %s", err)
	}
	logFile, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create logging file: %s", err)
	}
	closer := func() {
		if cerr := logFile.Close(); cerr != nil {
			fmt.Println("error during closing of log file: ", cerr)
		}
	}
	logger, flusher := SetupLogging(config, logFile)

	// Setup the session vault on the configured durable storage.
	var vault SessionVault
	cleanups := []func(){flusher, closer}
	switch config.Vault.Kind {
	case VaultKindRedis:
		redisClient, err := GetRedisClient(config)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis server: %s", err)
		}
		cleanups = append(cleanups, func() { _ = redisClient.Close() })
		vault = NewRedisSessionVault(logger, redisClient)
	default:
		if err := os.MkdirAll(filepath.Dir(config.Vault.FilePath), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create the session vault folder: %s", err)
		}
		boltDBClient, err := GetBoltDBClient(config)
		if err != nil {
			return nil, fmt.Errorf("failed to open the session vault: %s", err)
		}
		cleanups = append(cleanups, func() { _ = boltDBClient.Close() })
		vault = NewBoltSessionVault(logger, &config.Vault, boltDBClient)
	}

	// Setup the backend client, the stores and the read services.
	backend := NewBackendClient(logger, &config.Backend)
	sessions := NewSessionStore(logger, vault, backend)
	cart := NewCartStore(logger, backend, sessions)
	orders := NewOrderService(logger, backend, sessions)
	books := NewBookService(logger, backend, sessions)

	console := NewConsoleHandler(
		logger,
		config,
		&Statistics{
			version:  config.GitTag,
			started:  time.Now(),
			runtime:  runtime.Version(),
			platform: runtime.GOOS + "/" + runtime.GOARCH,
		},
		NewClock(config.IsProduction),
		NewIDsHandler(),
		sessions,
		cart,
		orders,
		books,
	)

	// Use git commit in case the tag is not set.
	if config.GitTag == "" {
		console.stats.version = config.GitCommit
	}

	// Build the middlewares stack and wire the commands.
	middlewares := console.MiddlewaresStack()
	commands := console.SetupCommands(&middlewares)

	return &App{
		logger:   logger,
		config:   config,
		commands: commands,
		in:       os.Stdin,
		out:      os.Stdout,
		cleanups: cleanups,
	}, nil
}

// Run starts the console loop and a goroutine which is responsible to stop it.
func (app *App) Run() error {
	defer app.Clean()
	nCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(nCtx)

	g.Go(app.Converse(gCtx))
	g.Go(app.Stop(nCtx, gCtx))

	err := g.Wait()
	app.logger.Info("storefront console stopped",
		zap.String("app.backend", app.config.Backend.BaseURL),
		zap.Error(err),
	)
	return err
}

// Clean calls all registered cleanups functions.
func (app *App) Clean() {
	for _, f := range app.cleanups {
		f()
	}
}

// Converse reads console lines and dispatches them until the user
// exits or the group context is done. Its returned error will be
// caught by the errorgroup.
func (app *App) Converse(gCtx context.Context) func() error {
	return func() error {
		app.logger.Info("storefront console starting",
			zap.String("app.backend", app.config.Backend.BaseURL),
		)
		fmt.Fprintln(app.out, "bookshop storefront. type `help` for the list of commands.")

		lines := make(chan string)
		scanner := bufio.NewScanner(app.in)
		go func() {
			defer close(lines)
			for scanner.Scan() {
				select {
				case lines <- scanner.Text():
				case <-gCtx.Done():
					return
				}
			}
		}()

		fmt.Fprint(app.out, "> ")
		for {
			select {
			case <-gCtx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return scanner.Err()
				}
				if !Dispatch(gCtx, app.out, app.commands, line) {
					return nil
				}
				fmt.Fprint(app.out, "> ")
			}
		}
	}
}

// Stop listens for the group context and states the reason of the
// shutdown. We explicitly return `nil` to allow the errorgroup catches
// only the `Converse` method result.
func (app *App) Stop(nCtx, gCtx context.Context) func() error {
	return func() error {
		<-gCtx.Done()

		if nCtx.Err() != nil {
			app.logger.Info("storefront console stopping. reason: requested to stop")
		} else {
			app.logger.Info("storefront console stopping. reason: session ended")
		}
		return nil
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/jrazmi/tasklist/app/tasklist/api"
	"github.com/jrazmi/tasklist/app/tasklist/config"
	"github.com/jrazmi/tasklist/app/tasklist/site"
	"github.com/jrazmi/tasklist/bridge/scaffolding/mid"
	"github.com/jrazmi/tasklist/core/repositories"
	"github.com/jrazmi/tasklist/infrastructure/postgresdb"
	"github.com/jrazmi/tasklist/infrastructure/web"
	"github.com/jrazmi/tasklist/sdk/environment"
	"github.com/jrazmi/tasklist/sdk/logger"
	"github.com/jrazmi/tasklist/sdk/telemetry"
)

var build = "develop"
var appName = "TASKLIST"

func main() {
	environment.LoadEnv()
	ctx := context.Background()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuring logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	// DATABASES
	pg, err := postgresdb.NewFromEnv(appName,
		postgresdb.WithLogger(log.Logger),
	)
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pg.Close()
	}()

	if err := postgresdb.Migrate(ctx, pg); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	// REPOSITORIES
	log.InfoContext(ctx, "startup", "status", "initializing repository support")
	repos := repositories.NewPostgresRepositories(log, pg)

	siteCfg := config.Tasklist{
		Build:        build,
		Logger:       log,
		Repositories: repos,
		Telemetry:    telemetry.NewTelemetry(),
		DB:           pg,
	}

	handler, err := webHandler(siteCfg)
	if err != nil {
		return fmt.Errorf("building web handler: %w", err)
	}

	server, err := web.NewServerFromEnv(appName,
		web.WithHandler(handler),
		web.WithErrorLog(logger.NewStdLogger(log, logger.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("configuring webserver: %w", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func webHandler(cfg config.Tasklist) (http.Handler, error) {
	wh, err := web.NewWebHandlerFromEnv(appName,
		web.WithLogging(cfg.Logger.Logger),
		web.WithTelemetry(cfg.Telemetry),
		web.WithGlobalMiddleware(
			mid.Logger(cfg.Logger),
			mid.Errors(cfg.Logger),
			mid.Metrics(),
			mid.Panics(),
		),
	)
	if err != nil {
		return nil, err
	}

	api.AddHandlers(wh, cfg)

	if err := site.AddHandlers(wh); err != nil {
		return nil, err
	}

	return wh, nil
}

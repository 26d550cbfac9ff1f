package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/ryhoangf/iValuate/internal/api/handlers"
	mw "github.com/ryhoangf/iValuate/internal/api/middleware"
	"github.com/ryhoangf/iValuate/internal/engine"
	"github.com/ryhoangf/iValuate/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

var serveMigrate bool

func serveCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and scheduler",
		RunE:  runServe,
	}
	c.Flags().BoolVar(&serveMigrate, "migrate", false, "run migrations before serving")
	return c
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, closer, err := loadRuntime()
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.Endpoint,
		Insecure:    cfg.Telemetry.Insecure,
		ServiceName: cfg.Telemetry.ServiceName,
		Version:     Version,
		SampleRatio: cfg.Telemetry.SampleRatio,
	})
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	s, err := openStore(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer s.Close()

	if serveMigrate {
		if err := s.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	eng := newEngine(cfg, s, log)

	var sched *engine.Scheduler
	if cfg.Schedule.RollupEnabled() {
		sched, err = engine.NewScheduler(eng, cfg.Schedule.RollupInterval, log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(
		mw.RequestLog(log),
		mw.Recovery(log),
		mw.Metrics(),
		mw.RateLimit(cfg.Server.RateLimit.PerSecond, cfg.Server.RateLimit.Burst),
	)

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(s))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("iValuate API", Version))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(eng))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(eng))

	addr := cfg.Server.Host + ":" + strconv.Itoa(cfg.Server.Port)
	log.Info("starting server", "addr", addr, "driver", cfg.Database.Driver)

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var errs []error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			errs = append(errs, fmt.Errorf("serving http: %w", err))
		}
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down server: %w", err))
	}
	if sched != nil {
		select {
		case <-sched.Stop().Done():
		case <-shutdownCtx.Done():
			log.Warn("scheduler did not stop before timeout")
		}
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down telemetry: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.Info("server stopped")
	return nil
}

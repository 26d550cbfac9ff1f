package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ryhoangf/iValuate/internal/config"
	"github.com/ryhoangf/iValuate/internal/engine"
	"github.com/ryhoangf/iValuate/internal/store"
	"github.com/ryhoangf/iValuate/pkg/logger"
)

// loadRuntime reads the config file and builds the process logger. The
// returned closer flushes the log file, if one is configured.
func loadRuntime() (*config.Config, *slog.Logger, io.Closer, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log, closer := logger.NewWithFile(cfg.Logging.Level, cfg.Logging.Format, logger.FileOptions{
		Path:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	})
	slog.SetDefault(log)

	return cfg, log, closer, nil
}

// openStore connects to the configured backend.
func openStore(ctx context.Context, cfg *config.DatabaseConfig) (store.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		s, err := store.NewSQLiteStore(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return s, nil
	default:
		s, err := store.NewPostgresStore(ctx, cfg.DSN(), store.WithPoolSize(int32(cfg.PoolSize)))
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		return s, nil
	}
}

func newEngine(cfg *config.Config, s store.Store, log *slog.Logger) *engine.Engine {
	return engine.NewEngine(s,
		engine.WithLogger(log),
		engine.WithWindowDays(cfg.Pricing.WindowDays),
		engine.WithSimilarLimit(cfg.Pricing.SimilarLimit),
		engine.WithCurrency(cfg.Pricing.Currency),
	)
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ryhoangf/iValuate/internal/seed"
)

func seedCmd() *cobra.Command {
	var (
		file    string
		migrate bool
	)

	c := &cobra.Command{
		Use:   "seed",
		Short: "Load products, listings and price history from a YAML fixture file",
		Example: `  ivaluate seed --file fixtures.yaml
  ivaluate seed --file fixtures.yaml --migrate`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, closer, err := loadRuntime()
			if err != nil {
				return err
			}
			defer closer.Close()

			fixtures, err := seed.Load(file)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			s, err := openStore(ctx, &cfg.Database)
			if err != nil {
				return err
			}
			defer s.Close()

			if migrate {
				if err := s.Migrate(ctx); err != nil {
					return fmt.Errorf("running migrations: %w", err)
				}
			}

			res, err := seed.Apply(ctx, s, fixtures)
			if err != nil {
				return err
			}

			log.Info("seed complete",
				"products", res.Products,
				"listings", res.Listings,
				"history", res.History,
			)
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "fixtures.yaml", "fixture file path")
	c.Flags().BoolVar(&migrate, "migrate", false, "run migrations before seeding")

	return c
}

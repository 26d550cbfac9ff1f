package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func rollupCmd() *cobra.Command {
	var date string

	c := &cobra.Command{
		Use:   "rollup",
		Short: "Summarize current listings into the daily price history",
		Example: `  ivaluate rollup
  ivaluate rollup --date 2026-03-01`,
		RunE: func(_ *cobra.Command, _ []string) error {
			day := time.Now()
			if date != "" {
				d, err := time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
				day = d
			}

			cfg, log, closer, err := loadRuntime()
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()

			s, err := openStore(ctx, &cfg.Database)
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := newEngine(cfg, s, log).RunHistoryRollup(ctx, day)
			if err != nil {
				return fmt.Errorf("running history rollup: %w", err)
			}

			fmt.Printf("Rolled up %s: %d products, %d written, %d failed\n",
				res.Date.Format(time.DateOnly), res.Products, res.Written, res.Failed)
			return nil
		},
	}

	c.Flags().StringVar(&date, "date", "", "day to roll up (YYYY-MM-DD, default today)")

	return c
}

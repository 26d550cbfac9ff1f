package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func rollupCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "rollup",
		Short: "Trigger the daily price history rollup",
		Example: `  ival rollup
  ival rollup --date 2026-03-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var day time.Time
			if date != "" {
				d, err := time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
				day = d
			}

			result, err := newClient().RunRollup(cmd.Context(), day)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stdout(cmd), result)
			}
			_, err = fmt.Fprintf(stdout(cmd), "Rolled up %s: %d products, %d written, %d failed\n",
				result.Date.Format(time.DateOnly), result.Products, result.Written, result.Failed)
			return err
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to roll up (YYYY-MM-DD, default server today)")

	return cmd
}

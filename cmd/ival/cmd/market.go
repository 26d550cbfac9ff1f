package cmd

import (
	"github.com/spf13/cobra"
)

// hintFlags are the optional estimate hints shared by market and impact.
type hintFlags struct {
	condition     string
	batteryHealth int
}

func (h *hintFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&h.condition, "condition", "", "condition rank hint (S, A, B, C, D)")
	cmd.Flags().IntVar(&h.batteryHealth, "battery-health", 0, "battery health hint (0-100)")
}

func (h *hintFlags) battery(cmd *cobra.Command) *int {
	if !cmd.Flags().Changed("battery-health") {
		return nil
	}
	return &h.batteryHealth
}

func marketCmd() *cobra.Command {
	var hints hintFlags

	cmd := &cobra.Command{
		Use:   "market <keyword>",
		Short: "Estimate the market price of a product",
		Long: "Resolves the keyword to a product and estimates its fair market price range\n" +
			"from recent price history, falling back to current listings.",
		Example: `  ival market "iPhone 13 Pro"
  ival market "iPhone 13 Pro" --condition A --battery-health 92
  ival market pixel --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := newClient().MarketPrice(cmd.Context(), args[0], hints.condition, hints.battery(cmd))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stdout(cmd), result)
			}
			return printMarketPrice(stdout(cmd), result)
		},
	}
	hints.register(cmd)

	return cmd
}

func impactCmd() *cobra.Command {
	var hints hintFlags

	cmd := &cobra.Command{
		Use:   "impact <keyword>",
		Short: "Show how each hint moves the estimated price",
		Example: `  ival impact "iPhone 13" --condition S --battery-health 96`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := newClient().FeatureImpact(cmd.Context(), args[0], hints.condition, hints.battery(cmd))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stdout(cmd), result)
			}
			return printFeatureImpact(stdout(cmd), result)
		},
	}
	hints.register(cmd)

	return cmd
}

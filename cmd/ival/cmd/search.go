package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/ryhoangf/iValuate/pkg/types"
)

func searchCmd() *cobra.Command {
	var (
		f          domain.ListingFilters
		minBattery float64
		minPrice   float64
		maxPrice   float64
		facets     bool
	)

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search listings by keyword and filters",
		Long: "Searches listings whose product name or model series contains the keyword.\n" +
			"Results are ordered by price, cheapest first.",
		Example: `  ival search "iPhone 13"
  ival search "iPhone 13" --condition S --has-box --min-battery 90
  ival search pixel --max-price 5000000 --facets`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("min-battery") {
				f.MinBattery = &minBattery
			}
			if flags.Changed("min-price") {
				f.MinPrice = &minPrice
			}
			if flags.Changed("max-price") {
				f.MaxPrice = &maxPrice
			}

			result, err := newClient().Search(cmd.Context(), args[0], f)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stdout(cmd), result)
			}
			if len(result.Listings) == 0 {
				_, err := fmt.Fprintln(stdout(cmd), "No listings found.")
				return err
			}
			if err := printSearchResult(stdout(cmd), result); err != nil {
				return err
			}
			if facets {
				return printFacets(stdout(cmd), &result.AvailableFilters)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.Condition, "condition", "", "condition rank (S, A, B, C, D)")
	flags.StringVar(&f.Color, "color", "", "color")
	flags.StringVar(&f.Platform, "platform", "", "source platform")
	flags.StringVar(&f.BatteryStatus, "battery-status", "", "battery status")
	flags.StringVar(&f.ScreenCondition, "screen-condition", "", "screen condition")
	flags.StringVar(&f.BodyCondition, "body-condition", "", "body condition")
	flags.BoolVar(&f.BatteryReplaced, "battery-replaced", false, "only listings with a replaced battery")
	flags.BoolVar(&f.HasBox, "has-box", false, "only listings with the original box")
	flags.BoolVar(&f.HasCharger, "has-charger", false, "only listings with a charger")
	flags.BoolVar(&f.IsSimFree, "sim-free", false, "only SIM-free listings")
	flags.BoolVar(&f.FullyFunctional, "fully-functional", false, "only fully functional listings")
	flags.Float64Var(&minBattery, "min-battery", 0, "minimum battery health percentage")
	flags.Float64Var(&minPrice, "min-price", 0, "minimum price")
	flags.Float64Var(&maxPrice, "max-price", 0, "maximum price")
	flags.BoolVar(&facets, "facets", false, "also print the available filter values")

	return cmd
}

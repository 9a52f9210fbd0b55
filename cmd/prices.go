package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/platewise/internal/insights"
)

var pricesCmd = &cobra.Command{
	Use:   "prices <file>",
	Short: "Show the price-range distribution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		if !ds.Columns.PriceRange {
			return fmt.Errorf("no price range column found in %s", ds.Source)
		}
		dist := insights.PriceDistribution(ds)

		var b strings.Builder
		for _, p := range dist {
			bar := strings.Repeat("#", int(p.Percent/2))
			fmt.Fprintf(&b, "%-4s %5d (%5.1f%%) %s\n", p.Label, p.Count, p.Percent, bar)
		}
		return emit(dist, b.String())
	},
}

func init() {
	rootCmd.AddCommand(pricesCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/platewise/internal/insights"
)

var deliveryCmd = &cobra.Command{
	Use:   "delivery <file>",
	Short: "Compare restaurants with and without online delivery",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		if !ds.Columns.OnlineDelivery {
			return fmt.Errorf("no online delivery column found in %s", ds.Source)
		}
		split := insights.Delivery(ds)

		var b strings.Builder
		fmt.Fprintf(&b, "with delivery:    %5d (%5.1f%%), avg rating %.2f\n",
			split.With.Count, split.With.Percent, split.With.AvgRating)
		fmt.Fprintf(&b, "without delivery: %5d (%5.1f%%), avg rating %.2f\n",
			split.Without.Count, split.Without.Percent, split.Without.AvgRating)
		return emit(split, b.String())
	},
}

func init() {
	rootCmd.AddCommand(deliveryCmd)
}

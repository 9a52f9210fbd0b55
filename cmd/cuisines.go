package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/platewise/internal/insights"
)

var cuTop int

var cuisinesCmd = &cobra.Command{
	Use:   "cuisines <file>",
	Short: "Rank the most common cuisines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		if !ds.Columns.Cuisines {
			return fmt.Errorf("no cuisines column found in %s", ds.Source)
		}
		top := cuTop
		if !cmd.Flags().Changed("top") && cfg != nil && cfg.TopN > 0 {
			top = cfg.TopN
		}
		counts := insights.TopCuisines(ds, top)

		var b strings.Builder
		for _, c := range counts {
			fmt.Fprintf(&b, "- %s: %d (%.1f%% of restaurants)\n", c.Cuisine, c.Count, c.Percent)
		}
		return emit(counts, b.String())
	},
}

func init() {
	rootCmd.AddCommand(cuisinesCmd)
	cuisinesCmd.Flags().IntVar(&cuTop, "top", 3, "number of cuisines to show (0 = all)")
}

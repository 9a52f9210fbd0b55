package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/platewise/internal/insights"
)

var ciTop int

var citiesCmd = &cobra.Command{
	Use:   "cities <file>",
	Short: "Rank cities by restaurant count and average rating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		if !ds.Columns.City {
			return fmt.Errorf("no city column found in %s", ds.Source)
		}
		stats := insights.CityStats(ds)
		byRating := insights.TopByRating(stats)

		top := ciTop
		if top > 0 {
			if len(stats) > top {
				stats = stats[:top]
			}
			if len(byRating) > top {
				byRating = byRating[:top]
			}
		}

		type result struct {
			ByCount  []insights.CityStat `json:"by_count" yaml:"by_count"`
			ByRating []insights.CityStat `json:"by_rating" yaml:"by_rating"`
		}
		res := result{ByCount: stats, ByRating: byRating}

		var b strings.Builder
		b.WriteString("[BY RESTAURANT COUNT]\n")
		for _, c := range res.ByCount {
			fmt.Fprintf(&b, "- %s: %d restaurants\n", c.City, c.Count)
		}
		b.WriteString("\n[BY AVERAGE RATING]\n")
		for _, c := range res.ByRating {
			fmt.Fprintf(&b, "- %s: %.2f over %d rated\n", c.City, c.AvgRating, c.Rated)
		}
		return emit(res, b.String())
	},
}

func init() {
	rootCmd.AddCommand(citiesCmd)
	citiesCmd.Flags().IntVar(&ciTop, "top", 10, "number of cities per ranking (0 = all)")
}

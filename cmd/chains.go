package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/platewise/internal/chains"
	"github.com/KaramelBytes/platewise/internal/report"
)

var (
	chMinOutlets int
	chTop        int
)

var chainsCmd = &cobra.Command{
	Use:   "chains <file>",
	Short: "Identify restaurant chains and rank their performance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		minOutlets := chMinOutlets
		if !cmd.Flags().Changed("min-outlets") && cfg != nil && cfg.MinOutlets > 0 {
			minOutlets = cfg.MinOutlets
		}
		groups := chains.Identify(ds.Records, minOutlets)
		metrics := chains.Aggregate(groups)
		logger.Debug("chains identified", "groups", len(groups))

		type result struct {
			Source     string           `json:"source" yaml:"source"`
			Skipped    int              `json:"skipped" yaml:"skipped"`
			Chains     []chains.Metrics `json:"chains" yaml:"chains"`
			Widespread *chains.Metrics  `json:"most_widespread,omitempty" yaml:"most_widespread,omitempty"`
			TopRated   *chains.Metrics  `json:"best_rated,omitempty" yaml:"best_rated,omitempty"`
			Popular    *chains.Metrics  `json:"most_popular,omitempty" yaml:"most_popular,omitempty"`
		}
		res := result{Source: ds.Source, Skipped: ds.Skipped}
		// the queries only fail on empty metrics; the empty-chains note
		// below covers that case
		if m, err := chains.MostWidespread(metrics); err == nil {
			res.Widespread = &m
		}
		if m, err := chains.BestRated(metrics); err == nil {
			res.TopRated = &m
		}
		if m, err := chains.MostPopular(metrics); err == nil {
			res.Popular = &m
		}
		if chTop > 0 && len(metrics) > chTop {
			metrics = metrics[:chTop]
		}
		res.Chains = metrics

		if outputFormat() == "table" {
			r := &report.Report{Source: ds.Source, Rows: ds.Len(), Skipped: ds.Skipped,
				Chains: res.Chains, Widespread: res.Widespread, TopRated: res.TopRated, Popular: res.Popular}
			r.RenderTable(os.Stdout)
			return nil
		}

		var b strings.Builder
		if len(res.Chains) == 0 {
			b.WriteString("No restaurant chains detected in this dataset.\n")
		}
		for _, m := range res.Chains {
			fmt.Fprintf(&b, "- %s: %d outlets across %d cities — avg rating %.2f (±%.2f), votes %d\n",
				m.Name, m.Outlets, m.Cities, m.AvgRating, m.RatingStdDev, m.TotalVotes)
		}
		if res.Widespread != nil {
			fmt.Fprintf(&b, "Most widespread: %s (%d cities)\n", res.Widespread.Name, res.Widespread.Cities)
		}
		if res.TopRated != nil {
			fmt.Fprintf(&b, "Best rated: %s (%.2f)\n", res.TopRated.Name, res.TopRated.AvgRating)
		}
		if res.Popular != nil {
			fmt.Fprintf(&b, "Most popular: %s (%d votes)\n", res.Popular.Name, res.Popular.TotalVotes)
		}
		return emit(res, b.String())
	},
}

func init() {
	rootCmd.AddCommand(chainsCmd)
	chainsCmd.Flags().IntVar(&chMinOutlets, "min-outlets", 2, "minimum outlets for a name to count as a chain")
	chainsCmd.Flags().IntVar(&chTop, "top", 0, "show only the top N chains by outlet count (0 = all)")
}

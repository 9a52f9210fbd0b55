package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/platewise/internal/report"
	"github.com/KaramelBytes/platewise/internal/utils"
)

var (
	repOutputPath string
	repMinOutlets int
	repTop        int
	repSave       bool
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Run every analysis and produce a full report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		opt := report.DefaultOptions()
		if cfg != nil {
			if cfg.MinOutlets > 0 {
				opt.MinOutlets = cfg.MinOutlets
			}
			if cfg.TopN > 0 {
				opt.TopN = cfg.TopN
			}
		}
		if cmd.Flags().Changed("min-outlets") {
			opt.MinOutlets = repMinOutlets
		}
		if cmd.Flags().Changed("top") {
			opt.TopN = repTop
		}
		rep := report.Build(ds, opt)
		logger.Debug("report built", "run_id", rep.RunID, "chains", len(rep.Chains))

		var out []byte
		switch outputFormat() {
		case "json":
			out, err = rep.JSON()
		case "yaml":
			out, err = rep.YAML()
		case "table":
			if repOutputPath == "" && !repSave {
				rep.RenderTable(os.Stdout)
				return nil
			}
			var b strings.Builder
			rep.RenderTable(&b)
			out = []byte(b.String())
		default:
			out = []byte(rep.Markdown())
		}
		if err != nil {
			return err
		}

		written := false
		if repOutputPath != "" {
			if err := utils.SafeWriteFile(repOutputPath, out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote report to %s\n", repOutputPath)
			written = true
		}
		if repSave && cfg != nil {
			if err := utils.EnsureDir(cfg.ReportsDir); err != nil {
				return fmt.Errorf("ensure reports dir: %w", err)
			}
			base := strings.TrimSuffix(ds.Source, filepath.Ext(ds.Source))
			path := filepath.Join(cfg.ReportsDir, base+"."+rep.RunID+".report.md")
			if err := utils.SafeWriteFile(path, out); err != nil {
				return fmt.Errorf("save report: %w", err)
			}
			fmt.Printf("✓ Saved report as %s\n", filepath.Base(path))
			written = true
		}
		if !written {
			fmt.Print(string(out))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&repOutputPath, "output", "o", "", "optional path to write the report")
	reportCmd.Flags().BoolVar(&repSave, "save", false, "also save the report under the configured reports dir")
	reportCmd.Flags().IntVar(&repMinOutlets, "min-outlets", 2, "minimum outlets for a name to count as a chain")
	reportCmd.Flags().IntVar(&repTop, "top", 10, "cap for ranked sections (0 = all)")
}

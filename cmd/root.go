package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/platewise/internal/config"
	"github.com/KaramelBytes/platewise/internal/dataset"
)

var (
	// Global flags (wired to config via loadConfig)
	cfgFile       string
	debug         bool
	flagDelimiter string
	flagFormat    string
	flagMaxRows   int

	// Loaded configuration
	cfg *cfgpkg.Global

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "platewise",
	Short: "Platewise: restaurant dataset analysis from the command line",
	Long:  `Platewise loads a restaurant CSV dataset and produces descriptive analyses: chain detection and performance, top cuisines, city rankings, price-range distribution, online delivery split, and map extents.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.platewise/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "output format: markdown | table | json | yaml (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagMaxRows, "max-rows", 0, "maximum rows to process, 0 = config default")
}

func loadConfig() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: defaults still allow every analysis to run
		logger.Warn("failed to load config, using defaults", "err", err)
		c = &cfgpkg.Global{MaxRows: 100000, MinOutlets: 2, TopN: 10, Format: "markdown"}
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("format") && flagFormat != "" {
		cfg.Format = flagFormat
	}
	if f.Changed("max-rows") && flagMaxRows > 0 {
		cfg.MaxRows = flagMaxRows
	}
	if f.Changed("delimiter") && flagDelimiter != "" {
		cfg.Delimiter = flagDelimiter
	}
}

// parseDelimiter maps the flag/config spelling to a rune; 0 means
// auto-detect.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}

// loadDataset opens and validates the CSV at path using the effective
// flag/config options.
func loadDataset(path string) (*dataset.Dataset, error) {
	opt := dataset.DefaultOptions()
	if cfg != nil {
		if cfg.MaxRows > 0 {
			opt.MaxRows = cfg.MaxRows
		}
		d, err := parseDelimiter(cfg.Delimiter)
		if err != nil {
			return nil, err
		}
		opt.Delimiter = d
	}
	ds, err := dataset.Load(path, opt)
	if err != nil {
		return nil, err
	}
	logger.Debug("dataset loaded", "source", ds.Source, "rows", ds.Len(), "skipped", ds.Skipped)
	if ds.Skipped > 0 {
		logger.Warn("rows failed validation and were skipped", "count", ds.Skipped)
	}
	return ds, nil
}

func outputFormat() string {
	if cfg != nil && cfg.Format != "" {
		return cfg.Format
	}
	return "markdown"
}

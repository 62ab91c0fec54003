package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/framekit/go-sboarray/bench"
)

var (
	verbose    bool
	configPath string
	outPath    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sbobench",
	Short: "Benchmark runner for the sboarray container",
	Long: `sbobench measures sboarray workloads described by named scenarios and
writes the results to a JSON file for later plotting and comparison.

Scenarios come from a YAML config file, or from a built-in set covering each
operation below and above the inline threshold.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run scenarios and write a results file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := bench.DefaultConfig()
		if configPath != "" {
			var err error
			cfg, err = bench.LoadConfig(configPath)
			if err != nil {
				return err
			}
			logger.Info("loaded scenario config",
				zap.String("path", configPath),
				zap.Int("scenarios", len(cfg.Scenarios)),
			)
		}

		report, err := bench.NewRunner(logger).Run(cfg)
		if err != nil {
			return err
		}
		if err := report.WriteFile(outPath); err != nil {
			return err
		}
		logger.Info("results written",
			zap.String("path", outPath),
			zap.String("run_id", report.RunID),
		)
		return nil
	},
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the built-in scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range bench.DefaultConfig().Scenarios {
			fmt.Printf("%-28s op=%-12s element=%-6s items=%d\n",
				s.Name, s.Op, s.Element, s.Items)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "scenarios YAML file (default: built-in set)")
	runCmd.Flags().StringVarP(&outPath, "out", "o", "results.json", "results output file")
	rootCmd.AddCommand(runCmd, scenariosCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

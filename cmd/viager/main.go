package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/viagerpro/internal/calculation"
	"github.com/rgehrsitz/viagerpro/internal/config"
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/logging"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "viager",
		Short:         "Viager valuation and risk calculator",
		Long:          "Estimate the cost, savings and break-even point of French life-annuity property deals (viager).",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("tables", "", "YAML reference-table override file (default: $VIAGER_TABLES_FILE or built-in tables)")
	root.PersistentFlags().Bool("debug", false, "Log every intermediate figure of the calculation")

	root.AddCommand(
		newCalculateCmd(),
		newValidateCmd(),
		newExampleCmd(),
		newCompareCmd(),
		newSolveCmd(),
		newSensitivityCmd(),
		newDiseasesCmd(),
		newMarketCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "viager %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

// newLogger builds the CLI logger from the environment; --debug forces the debug level
func newLogger(cmd *cobra.Command, appCfg *config.AppConfig) (*slog.Logger, error) {
	level := appCfg.LogLevel
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		level = "debug"
	}
	return logging.FromSettings(level, appCfg.LogFormat, cmd.ErrOrStderr())
}

// newEngine builds the calculation engine over the selected reference tables
func newEngine(cmd *cobra.Command) (*calculation.CalculationEngine, *slog.Logger, error) {
	appCfg := config.LoadAppConfig()
	logger, err := newLogger(cmd, appCfg)
	if err != nil {
		return nil, nil, err
	}
	engine, err := engineWithLogger(cmd, appCfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return engine, logger, nil
}

func engineWithLogger(cmd *cobra.Command, appCfg *config.AppConfig, logger *slog.Logger) (*calculation.CalculationEngine, error) {
	tablesFile, _ := cmd.Flags().GetString("tables")
	if tablesFile == "" {
		tablesFile = appCfg.TablesFile
	}
	tables, err := config.ResolveTables(tablesFile)
	if err != nil {
		return nil, err
	}
	if tablesFile != "" {
		logger.Info("reference tables loaded", "file", tablesFile, "version", tables.Version())
	}

	engine := calculation.NewCalculationEngineWithTables(tables)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(logging.NewEngineLogger(logger))
		engine.Debug = true
	}
	return engine, nil
}

func loadDeals(path string) (*domain.Configuration, error) {
	return config.NewInputParser().LoadFromFile(path)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

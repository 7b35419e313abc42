package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/viagerpro/internal/calculation"
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSensitivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensitivity [deals-file]",
		Short: "Sweep one deal parameter and report how savings and break-even move",
		Long: `Sweep one parameter of a deal between two bounds and evaluate every step.

Parameters: rente, bouquet, age, taxe_fonciere, property_price.

Examples:
  viager sensitivity deals.yaml --deal paris --param rente --min 400 --max 1200 --steps 9
  viager sensitivity deals.yaml --param age --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: runSensitivity,
	}
	cmd.Flags().String("deal", "", "Deal to analyse (default: first deal)")
	cmd.Flags().String("param", "rente", "Parameter to sweep")
	cmd.Flags().Float64("min", 0, "Lower bound (default: built-in range)")
	cmd.Flags().Float64("max", 0, "Upper bound (default: built-in range)")
	cmd.Flags().Int("steps", 0, "Number of steps (default: built-in range)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	return cmd
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	cfg, err := loadDeals(args[0])
	if err != nil {
		return err
	}
	dealName, _ := cmd.Flags().GetString("deal")
	deal, err := cfg.FindDeal(dealName)
	if err != nil {
		return err
	}

	paramName, _ := cmd.Flags().GetString("param")
	param, err := sensitivityParameter(cmd, paramName)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	formatter, err := output.GetSensitivityFormatter(format)
	if err != nil {
		return err
	}

	engine, _, err := newEngine(cmd)
	if err != nil {
		return err
	}
	analysis, err := calculation.NewSensitivityAnalyzer(engine).AnalyzeSingleParameter(deal, param)
	if err != nil {
		return err
	}

	s, err := formatter.FormatSensitivityAnalysis(analysis)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), s)
	if !strings.HasSuffix(s, "\n") {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

// sensitivityParameter starts from the built-in range and applies the flag overrides
func sensitivityParameter(cmd *cobra.Command, name string) (domain.SensitivityParameter, error) {
	params := domain.SensitivityParameters()
	param, ok := params[name]
	if !ok {
		names := make([]string, 0, len(params))
		for n := range params {
			names = append(names, n)
		}
		sort.Strings(names)
		return param, fmt.Errorf("unknown parameter %q (want one of %s)", name, strings.Join(names, ", "))
	}

	if cmd.Flags().Changed("min") {
		v, _ := cmd.Flags().GetFloat64("min")
		param.MinValue = decimal.NewFromFloat(v)
	}
	if cmd.Flags().Changed("max") {
		v, _ := cmd.Flags().GetFloat64("max")
		param.MaxValue = decimal.NewFromFloat(v)
	}
	if cmd.Flags().Changed("steps") {
		steps, _ := cmd.Flags().GetInt("steps")
		if steps < 1 {
			return param, fmt.Errorf("--steps must be at least 1")
		}
		param.Steps = steps
	}
	return param, nil
}

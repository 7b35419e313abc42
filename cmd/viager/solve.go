package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rgehrsitz/viagerpro/internal/breakeven"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [deals-file]",
		Short: "Find the payments at which a deal stops being profitable",
		Long: `Goal-seek the rente or bouquet of a deal.

Targets:
  max_rente    largest monthly rente that keeps break-even beyond the expected duration
  max_bouquet  largest bouquet that keeps break-even beyond the expected duration
  fair_rente   rente at which the viager costs the same as a direct purchase
  all          every target above

Examples:
  viager solve deals.yaml --deal paris --target max_rente
  viager solve deals.yaml --deal paris --target all --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}
	cmd.Flags().String("deal", "", "Deal to solve (default: first deal)")
	cmd.Flags().String("target", string(breakeven.TargetAll), "Target: max_rente, max_bouquet, fair_rente or all")
	cmd.Flags().Float64("min-rente", 0, "Lower rente bound in euros (default 1)")
	cmd.Flags().Float64("max-rente", 0, "Upper rente bound in euros (default: property price)")
	cmd.Flags().Float64("min-bouquet", 0, "Lower bouquet bound in euros (default 1)")
	cmd.Flags().Float64("max-bouquet", 0, "Upper bouquet bound in euros (default: property price)")
	cmd.Flags().Float64("tolerance", 50, "Savings tolerance for fair_rente, in euros")
	cmd.Flags().Duration("timeout", 30*time.Second, "Abort the search after this long")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadDeals(args[0])
	if err != nil {
		return err
	}
	dealName, _ := cmd.Flags().GetString("deal")
	deal, err := cfg.FindDeal(dealName)
	if err != nil {
		return err
	}

	targetStr, _ := cmd.Flags().GetString("target")
	target, err := breakeven.ParseTarget(targetStr)
	if err != nil {
		return err
	}

	engine, logger, err := newEngine(cmd)
	if err != nil {
		return err
	}

	options := breakeven.DefaultSolverOptions()
	tolerance, _ := cmd.Flags().GetFloat64("tolerance")
	options.Tolerance = decimal.NewFromFloat(tolerance)
	solver := breakeven.NewSolver(engine, options)

	constraints := breakeven.Constraints{
		MinRente:   boundFlag(cmd, "min-rente"),
		MaxRente:   boundFlag(cmd, "max-rente"),
		MinBouquet: boundFlag(cmd, "min-bouquet"),
		MaxBouquet: boundFlag(cmd, "max-bouquet"),
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	format, _ := cmd.Flags().GetString("format")
	format = strings.ToLower(format)
	if format != "table" && format != "json" {
		return fmt.Errorf("unsupported format: %s", format)
	}
	out := cmd.OutOrStdout()

	if target == breakeven.TargetAll {
		multi, err := solver.OptimizeAll(ctx, deal, constraints)
		if err != nil {
			return err
		}
		for name, reason := range multi.Failures {
			logger.Warn("target not solved", "target", name, "reason", reason)
		}
		if format == "json" {
			s, err := (&breakeven.JSONFormatter{Pretty: true}).FormatMulti(multi)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, s)
			return nil
		}
		fmt.Fprint(out, (&breakeven.TableFormatter{}).FormatMulti(multi))
		return nil
	}

	result, err := solver.Optimize(ctx, breakeven.OptimizationRequest{
		Deal:        deal,
		Target:      target,
		Constraints: constraints,
	})
	if err != nil {
		return err
	}
	if format == "json" {
		s, err := (&breakeven.JSONFormatter{Pretty: true}).Format(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
		return nil
	}
	fmt.Fprint(out, (&breakeven.TableFormatter{}).Format(result))
	return nil
}

// boundFlag returns nil for an unset bound so the solver applies its default
func boundFlag(cmd *cobra.Command, name string) *decimal.Decimal {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	d := decimal.NewFromFloat(v)
	return &d
}

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/viagerpro/internal/market"
	"github.com/spf13/cobra"
)

func newDiseasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diseases",
		Short: "List the disease catalog and its life-expectancy adjustments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := newEngine(cmd)
			if err != nil {
				return err
			}
			diseases := engine.Tables.Diseases()

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				data, err := json.MarshalIndent(diseases, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tREDUCTION (YEARS)\tMULTIPLIER")
			for _, d := range diseases {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Code, d.Name, d.LifeReductionYears.StringFixed(1), d.SurvivalMultiplier.StringFixed(2))
			}
			return w.Flush()
		},
	}
	cmd.Flags().Bool("json", false, "Print the catalog as JSON")
	return cmd
}

func newMarketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market [postal-code]",
		Short: "Show the price references of a department",
		Long: `Show the department price references and legend for a postal code. With --dvf, the
transactions of a DVF export are summarised and their percentiles used for the legend.`,
		Args: cobra.ExactArgs(1),
		RunE: runMarket,
	}
	cmd.Flags().String("dvf", "", "DVF transaction export to summarise")
	return cmd
}

func runMarket(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	p := market.LookupDepartment(args[0])
	if p.Code == market.DefaultDepartment {
		fmt.Fprintf(out, "Unknown department for %s, using national references\n", args[0])
	}

	fmt.Fprintf(out, "%s (%s)\n", p.Name, p.Code)
	fmt.Fprintln(out, strings.Repeat("=", 40))
	fmt.Fprintf(out, "Average price: %s €/m²\n", market.FormatK(p.Avg))
	legend := market.DepartmentLegend(p)

	dvfFile, _ := cmd.Flags().GetString("dvf")
	if dvfFile != "" {
		summary, err := loadDVF(dvfFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "DVF transactions: %d read, %d valid, %d priced\n", summary.Transactions, summary.Valid, summary.Count)
		if summary.Available() {
			fmt.Fprintf(out, "Observed average: %s €/m²\n", market.FormatK(summary.AveragePriceM2))
		}
		if summary.Percentiles != nil {
			pc := summary.Percentiles
			fmt.Fprintf(out, "Percentiles: p10 %s  p25 %s  p50 %s  p75 %s  p90 %s\n",
				market.FormatK(pc.P10), market.FormatK(pc.P25), market.FormatK(pc.P50), market.FormatK(pc.P75), market.FormatK(pc.P90))
			legend = market.PercentileLegend(*pc)
		}
	}

	fmt.Fprintln(out, "\nLegend (€/m²):")
	for _, e := range legend {
		fmt.Fprintf(out, "  %s  %s\n", e.Color, e.Range)
	}
	return nil
}

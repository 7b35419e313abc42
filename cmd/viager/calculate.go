package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/rgehrsitz/viagerpro/internal/config"
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/market"
	"github.com/rgehrsitz/viagerpro/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newCalculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [deals-file]",
		Short: "Value every deal of a file",
		Long: `Value the deals of a YAML or JSON file: life expectancy, occupancy-right value,
total cost, savings against a direct purchase and break-even month.

Examples:
  viager calculate deals.yaml
  viager calculate deals.yaml --deal paris --format json
  viager calculate deals.yaml --dvf dvf_75011.json --format html > report.html`,
		Args: cobra.ExactArgs(1),
		RunE: runCalculate,
	}
	cmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.FormatterNames(), ", ")+")")
	cmd.Flags().String("deal", "", "Only value the named deal")
	cmd.Flags().String("dvf", "", "DVF transaction export used as market average for deals without avg_price_m2")
	cmd.Flags().Bool("assumptions", false, "Append the valuation conventions to console output")
	return cmd
}

func runCalculate(cmd *cobra.Command, args []string) error {
	cfg, err := loadDeals(args[0])
	if err != nil {
		return err
	}
	engine, logger, err := newEngine(cmd)
	if err != nil {
		return err
	}

	dealName, _ := cmd.Flags().GetString("deal")
	if dealName != "" {
		deal, err := cfg.FindDeal(dealName)
		if err != nil {
			return err
		}
		cfg = &domain.Configuration{Deals: []domain.Deal{*deal}}
	}

	dvfFile, _ := cmd.Flags().GetString("dvf")
	if dvfFile != "" {
		summary, err := loadDVF(dvfFile)
		if err != nil {
			return err
		}
		if !summary.Available() {
			logger.Warn("no usable transaction in DVF export", "file", dvfFile, "transactions", summary.Transactions)
		}
		fillMarketAverage(cfg, &summary, logger)
	} else {
		fillMarketAverage(cfg, nil, logger)
	}

	for i := range cfg.Deals {
		for _, w := range config.DealWarnings(&cfg.Deals[i]) {
			logger.Warn(w, "deal", cfg.Deals[i].Name)
		}
	}

	results := engine.CalculateAll(cfg)

	format, _ := cmd.Flags().GetString("format")
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unsupported format: %s", format)
	}
	if format == "console" {
		showAssumptions, _ := cmd.Flags().GetBool("assumptions")
		formatter = output.ConsoleFormatter{ShowAssumptions: showAssumptions}
	}
	data, err := formatter.Format(results)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func loadDVF(path string) (market.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return market.Summary{}, fmt.Errorf("failed to open DVF export: %w", err)
	}
	defer f.Close()

	transactions, err := market.DecodeTransactions(f)
	if err != nil {
		return market.Summary{}, err
	}
	return market.Summarize(transactions), nil
}

// fillMarketAverage sets avg_price_m2 on deals that lack one: the DVF average
// when available, else the department average of the deal's postal code
func fillMarketAverage(cfg *domain.Configuration, dvf *market.Summary, logger *slog.Logger) {
	for i := range cfg.Deals {
		deal := &cfg.Deals[i]
		if !deal.AvgPriceM2.IsZero() {
			continue
		}
		if dvf != nil && dvf.Available() {
			deal.AvgPriceM2 = decimal.NewFromInt(dvf.AveragePriceM2)
			logger.Info("market average from DVF", "deal", deal.Name, "avg_price_m2", dvf.AveragePriceM2, "sample", dvf.Count)
			continue
		}
		if p, ok := market.FindDepartment(deal.PostalCode); ok {
			deal.AvgPriceM2 = p.AveragePriceM2()
			logger.Info("market average from department", "deal", deal.Name, "department", p.Name, "avg_price_m2", p.Avg)
		}
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [deals-file]",
		Short: "Validate a deals file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadDeals(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := range cfg.Deals {
				for _, w := range config.DealWarnings(&cfg.Deals[i]) {
					fmt.Fprintf(out, "warning: %s: %s\n", cfg.Deals[i].Name, w)
				}
			}
			fmt.Fprintf(out, "Deals file %s is valid (%d deals: %s)\n", args[0], len(cfg.Deals), strings.Join(cfg.DealNames(), ", "))
			return nil
		},
	}
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Write an example deals file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := output.SaveConfiguration(exampleConfiguration(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example deals written to %s\n", args[0])
			return nil
		},
	}
}

func exampleConfiguration() *domain.Configuration {
	return &domain.Configuration{Deals: []domain.Deal{
		{
			Name:          "paris_single",
			Description:   "Two-room flat, single seller in good health",
			PostalCode:    "75011",
			PropertyPrice: decimal.NewFromInt(300000),
			Surface:       decimal.NewFromInt(60),
			Bouquet:       decimal.NewFromInt(50000),
			Rente:         decimal.NewFromInt(800),
			TaxeFonciere:  decimal.NewFromInt(1200),
			AvgPriceM2:    decimal.NewFromInt(5000),
			Seller:        domain.Person{Age: 65, Gender: domain.Male, Disease: domain.DiseaseNone},
		},
		{
			Name:          "lyon_couple",
			Description:   "House occupied by a couple",
			PostalCode:    "69003",
			PropertyPrice: decimal.NewFromInt(420000),
			Surface:       decimal.NewFromInt(95),
			Bouquet:       decimal.NewFromInt(80000),
			Rente:         decimal.NewFromInt(1100),
			TaxeFonciere:  decimal.NewFromInt(1800),
			Seller:        domain.Person{Age: 78, Gender: domain.Male, Disease: domain.DiseaseCoronary},
			Partner:       &domain.Person{Age: 75, Gender: domain.Female, Disease: domain.DiseaseNone},
		},
	}}
}

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/viagerpro/internal/calculation"
	"github.com/rgehrsitz/viagerpro/internal/config"
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/tui"
)

func main() {
	dealName := flag.String("deal", "", "deal to pre-fill the form with (default: first deal)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: viager-tui [--deal name] [deals-file]")
		flag.PrintDefaults()
	}
	flag.Parse()

	appCfg := config.LoadAppConfig()
	tables, err := config.ResolveTables(appCfg.TablesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	engine := calculation.NewCalculationEngineWithTables(tables)

	// Start from an empty form unless a deals file is given
	var deal *domain.Deal
	if flag.NArg() > 0 {
		cfg, err := config.NewInputParser().LoadFromFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		deal, err = cfg.FindDeal(*dealName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(
		tui.NewModel(engine, deal),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

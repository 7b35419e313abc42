package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/viagerpro/internal/compare"
	"github.com/rgehrsitz/viagerpro/internal/transform"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [deals-file]",
		Short: "Compare a base deal with template variants and other deals",
		Long: `Compare a base deal against negotiated variants (templates) and other deals of the file.

Examples:
  viager compare deals.yaml --base paris --with rente_minus_10pct,no_property_tax
  viager compare deals.yaml --base paris --deals lyon --format csv
  viager compare --list-templates  # Show all available templates
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompare,
	}
	cmd.Flags().String("base", "", "Base deal name (default: first deal)")
	cmd.Flags().String("with", "", "Comma-separated list of templates to apply to the base deal")
	cmd.Flags().String("deals", "", "Comma-separated list of other deals to compare")
	cmd.Flags().String("transform", "", "Ad-hoc variant of the base deal, e.g. adjust_rente:percent=-15")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	cmd.Flags().Bool("list-templates", false, "List all available deal templates")
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
		fmt.Fprint(out, transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("deals file required for comparison (use --list-templates to see available templates)")
	}

	cfg, err := loadDeals(args[0])
	if err != nil {
		return err
	}
	engine, _, err := newEngine(cmd)
	if err != nil {
		return err
	}

	base, _ := cmd.Flags().GetString("base")
	templatesStr, _ := cmd.Flags().GetString("with")
	dealsStr, _ := cmd.Flags().GetString("deals")
	transformSpec, _ := cmd.Flags().GetString("transform")

	opts := compare.CompareOptions{
		BaseDealName: base,
		Templates:    transform.ParseTemplateList(templatesStr),
		Deals:        transform.ParseTemplateList(dealsStr),
	}
	if len(opts.Templates) == 0 && len(opts.Deals) == 0 && transformSpec == "" {
		return fmt.Errorf("nothing to compare: use --with, --deals or --transform")
	}

	compareEngine := compare.NewCompareEngine(engine)
	if transformSpec != "" {
		t, err := transform.NewTransformRegistry().ParseTransformSpec(transformSpec)
		if err != nil {
			return err
		}
		compareEngine.TemplateRegistry.Register(transform.Template{
			Name:        "custom",
			Description: transformSpec,
			Transforms:  []transform.DealTransform{t},
		})
		opts.Templates = append(opts.Templates, "custom")
	}

	compSet, err := compareEngine.Compare(cmd.Context(), cfg, opts)
	if err != nil {
		return err
	}
	compSet.ConfigPath = args[0]

	format, _ := cmd.Flags().GetString("format")
	switch strings.ToLower(format) {
	case "table":
		fmt.Fprint(out, (&compare.TableFormatter{}).Format(compSet))
	case "compact":
		fmt.Fprint(out, (&compare.TableFormatter{}).FormatCompact(compSet))
	case "csv":
		s, err := (&compare.CSVFormatter{}).Format(compSet)
		if err != nil {
			return err
		}
		fmt.Fprint(out, s)
	case "json":
		s, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}

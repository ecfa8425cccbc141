package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"erpgen/internal/config"
	"erpgen/internal/export"
	"erpgen/internal/generator"
	"erpgen/internal/logger"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full company/invoice/payment dataset",
	Long: `Generate a complete fake ERP dataset and write it to CSV files.

The pipeline runs in three stages with a hard barrier between them:
companies are generated first, then one invoice batch per monthly period of
the lookback window, then one payment per invoice. Batches run in parallel
on a fixed-size worker pool; each batch job owns an independently seeded
random stream, so the output is reproducible for a given seed and
configuration regardless of worker scheduling.

Output files:
  company-data.csv              all companies, contact fields flattened
  invoice-data-{year}-{month}.csv  one per period
  payment-data-{batch}.csv      one per payment batch

All flags fall back to ERPGEN_* environment variables (see .env support).`,
	Example: `  # Generate with defaults (1000 companies, 2 years back, seed 42)
  erpgen generate

  # Small deterministic dataset in a custom directory
  erpgen generate --companies 50 --invoices-per-period 100 --out ./testdata

  # Exercise the pipeline without writing files
  erpgen generate --dry-run`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int("companies", 0, "Total number of companies to generate")
	generateCmd.Flags().Int("batch-size", 0, "Companies (and payments) per batch job")
	generateCmd.Flags().Int("invoices-per-period", 0, "Invoices issued per monthly period")
	generateCmd.Flags().Int("years-back", -1, "Full historical years before the current one")
	generateCmd.Flags().Float64("active-pct", 0, "Share of companies active per period (0-1]")
	generateCmd.Flags().Float64("amount-low", 0, "Minimum invoice amount")
	generateCmd.Flags().Float64("amount-high", 0, "Maximum invoice amount")
	generateCmd.Flags().Float64("split-pct", -1, "Payment split roll threshold [0-1]")
	generateCmd.Flags().Int("workers", 0, "Worker pool size")
	generateCmd.Flags().Uint64("seed", 0, "Base random seed")
	generateCmd.Flags().String("out", "", "Output directory for CSV files")
	generateCmd.Flags().Bool("dry-run", false, "Generate but don't write any files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("generate")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyGenerateFlags(cmd, cfg)

	genCfg := cfg.GeneratorConfig()
	if err := genCfg.Validate(); err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	log.Info().
		Int("companies", genCfg.Companies).
		Int("invoices_per_period", genCfg.InvoicesPerPeriod).
		Int("years_back", genCfg.YearsBack).
		Int("workers", genCfg.Workers).
		Uint64("seed", genCfg.Seed).
		Str("out", cfg.OutputDir).
		Bool("dry_run", dryRun).
		Msg("Starting dataset generation")

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("                         ERP DATASET GENERATION")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("Companies: %d (batches of %d)\n", genCfg.Companies, genCfg.BatchSize)
	fmt.Printf("Invoices per period: %d, lookback: %d year(s)\n", genCfg.InvoicesPerPeriod, genCfg.YearsBack)
	fmt.Printf("Workers: %d, seed: %d\n", genCfg.Workers, genCfg.Seed)
	if dryRun {
		fmt.Println("Mode: dry run (no files will be written)")
	} else {
		fmt.Printf("Output: %s\n", cfg.OutputDir)
	}
	fmt.Println()

	var sink generator.Sink = export.Discard{}
	if !dryRun {
		csvSink, err := export.NewCSVSink(cfg.OutputDir)
		if err != nil {
			return err
		}
		sink = csvSink
	}

	gen, err := generator.New(genCfg, sink)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := gen.Generate(context.Background()); err != nil {
		return fmt.Errorf("dataset generation failed: %w", err)
	}

	fmt.Printf("Total time: %.3fs\n", time.Since(start).Seconds())
	fmt.Println(strings.Repeat("=", 80))
	return nil
}

// applyGenerateFlags overlays any explicitly set flags onto the env-derived
// configuration. Flags win over environment variables.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("companies") {
		cfg.Companies, _ = flags.GetInt("companies")
	}
	if flags.Changed("batch-size") {
		cfg.BatchSize, _ = flags.GetInt("batch-size")
	}
	if flags.Changed("invoices-per-period") {
		cfg.InvoicesPerPeriod, _ = flags.GetInt("invoices-per-period")
	}
	if flags.Changed("years-back") {
		cfg.YearsBack, _ = flags.GetInt("years-back")
	}
	if flags.Changed("active-pct") {
		cfg.ActivePct, _ = flags.GetFloat64("active-pct")
	}
	if flags.Changed("amount-low") {
		cfg.AmountLow, _ = flags.GetFloat64("amount-low")
	}
	if flags.Changed("amount-high") {
		cfg.AmountHigh, _ = flags.GetFloat64("amount-high")
	}
	if flags.Changed("split-pct") {
		cfg.SplitPct, _ = flags.GetFloat64("split-pct")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("out") {
		cfg.OutputDir, _ = flags.GetString("out")
	}
}

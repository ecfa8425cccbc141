package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"erpgen/internal/calendar"
	"erpgen/internal/logger"
)

var periodsCmd = &cobra.Command{
	Use:   "periods",
	Short: "Print the billing periods for a lookback window",
	Long: `Print the month-aligned billing periods invoice generation would use.

Each full historical year contributes twelve periods; the current year is
truncated at today. Useful for checking how many invoice batches a given
lookback produces before running a full generation.`,
	Example: `  # Periods for the default two-year lookback
  erpgen periods

  # One historical year, anchored at a fixed date
  erpgen periods --years-back 1 --today 2024-03-15`,
	Args: cobra.NoArgs,
	RunE: runPeriods,
}

func init() {
	rootCmd.AddCommand(periodsCmd)

	periodsCmd.Flags().Int("years-back", 2, "Full historical years before the current one")
	periodsCmd.Flags().String("today", "", "Anchor date (YYYY-MM-DD, default: current date)")
}

func runPeriods(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("periods")

	yearsBack, _ := cmd.Flags().GetInt("years-back")
	if yearsBack < 0 {
		return fmt.Errorf("years-back cannot be negative, got %d", yearsBack)
	}

	today := time.Now().UTC()
	if anchor, _ := cmd.Flags().GetString("today"); anchor != "" {
		parsed, err := time.Parse("2006-01-02", anchor)
		if err != nil {
			return fmt.Errorf("invalid anchor date %q: %w", anchor, err)
		}
		today = parsed
	}

	periods := calendar.YearRanges(yearsBack, today)

	log.Info().
		Int("years_back", yearsBack).
		Str("today", today.Format("2006-01-02")).
		Int("periods", len(periods)).
		Msg("Computed billing periods")

	fmt.Printf("%-4s  %-10s  %-10s  %s\n", "#", "start", "end", "days")
	for i, p := range periods {
		fmt.Printf("%-4d  %s  %s  %d\n", i+1,
			p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"), p.Days())
	}
	fmt.Printf("\n%d periods total\n", len(periods))
	return nil
}

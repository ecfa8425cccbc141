package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"erpgen/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "erpgen",
	Short: "erpgen - generate referentially consistent fake ERP datasets",
	Long: `erpgen synthesizes an internally consistent financial test dataset:
companies, invoices issued across historical monthly periods, and payments
settling those invoices, exported as flat CSV files.

The data is fake but referentially sound: every invoice points at a
generated company, every payment application points at a generated invoice,
and payment amounts conserve invoice totals exactly. Runs are seeded, so
the same configuration reproduces the same dataset.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("erpgen executed")

		fmt.Println("Welcome to erpgen!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}

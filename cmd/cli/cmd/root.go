// Package cmd provides the CLI commands for creator-rates.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"creator-rates/internal/config"
	"creator-rates/internal/logging"
)

var (
	cfgFile string
	verbose bool

	cfg config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "creator-rates",
	Short: "Price creator sponsorship deals",
	Long: `creator-rates is a deterministic rate engine for creator sponsorships.

It converts an audience profile and a campaign brief into a priced quote
with a full layer breakdown and a reproducible formula.

Examples:
  creator-rates quote ./campaign.hcl
  creator-rates quote --format json ./campaign.hcl
  creator-rates tables`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./creator-rates.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("creator-rates version 1.0.0")
	},
}

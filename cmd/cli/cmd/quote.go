// Package cmd - quote command
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"creator-rates/adapters/briefdoc"
	"creator-rates/core/engine"
	"creator-rates/core/output"
	"creator-rates/internal/logging"
)

var (
	outputFormat string
	showLayers   bool
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <brief.hcl>",
	Short: "Price a campaign brief",
	Long: `Parse a brief document and produce a priced quote.

The document is HCL with a profile block, a brief block, and
optionally a fit_score block.

Examples:
  creator-rates quote ./campaign.hcl
  creator-rates quote --format json ./campaign.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	quoteCmd.Flags().BoolVarP(&showLayers, "layers", "l", true, "show the layer breakdown")
}

func runQuote(cmd *cobra.Command, args []string) error {
	input, err := briefdoc.ParseFile(args[0])
	if err != nil {
		return err
	}

	log := logging.Named("quote")
	log.Debug("brief parsed",
		zap.String("file", args[0]),
		zap.Int64("followers", input.Profile.TotalReach))

	result := engine.CalculatePrice(&input.Profile, &input.Brief, input.Fit)

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	return output.New(format, showLayers && cfg.Output.ShowLayers).Render(os.Stdout, result)
}

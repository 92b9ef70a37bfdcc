// Package output - human-readable CLI renderer
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"creator-rates/core/types"
)

type cliFormatter struct {
	showLayers bool
}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) Render(w io.Writer, result *types.PricingResult) error {
	sym := result.CurrencySymbol

	fmt.Fprintf(w, "Pricing model: %s\n", result.PricingModel)

	if f.showLayers && len(result.Layers) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "LAYER\tADJUSTMENT\tRUNNING\tNOTE")
		for _, layer := range result.Layers {
			adj := ""
			if layer.Multiplier != 0 {
				adj = fmt.Sprintf("× %.4g", layer.Multiplier)
			} else if !layer.Adjustment.IsZero() {
				adj = sym + layer.Adjustment.String()
			}
			running := ""
			if !layer.BaseValue.IsZero() {
				running = sym + layer.BaseValue.StringFixed(2)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", layer.Name, adj, running, layer.Description)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\nFormula: %s\n", result.Formula)
	fmt.Fprintf(w, "Per deliverable: %s%s\n", sym, result.PricePerDeliverable)
	fmt.Fprintf(w, "Total (× %d): %s%s\n", result.Quantity, sym, result.TotalPrice)
	fmt.Fprintf(w, "Quote valid for %d days\n", result.ValidityDays)

	f.renderBreakdowns(w, result, sym)
	return nil
}

func (f *cliFormatter) renderBreakdowns(w io.Writer, result *types.PricingResult, sym string) {
	if b := result.Affiliate; b != nil && result.Hybrid == nil {
		if b.TypicalRange != nil {
			fmt.Fprintf(w, "Typical %s commission: %.4g%%-%.4g%%\n",
				b.Category, b.TypicalRange.Min, b.TypicalRange.Max)
		}
	}
	if b := result.Hybrid; b != nil {
		fmt.Fprintf(w, "Guaranteed base fee: %s%s\n", sym, b.BaseFee)
		fmt.Fprintf(w, "Affiliate estimate: %s%s\n", sym, b.Affiliate.EstimatedEarnings)
		fmt.Fprintf(w, "Combined estimate: %s%s\n", sym, b.CombinedEstimate)
	}
	if b := result.Performance; b != nil {
		fmt.Fprintf(w, "Base fee: %s%s\n", sym, b.BaseFee)
		fmt.Fprintf(w, "Bonus at %d %s: %s%s (potential total %s%s)\n",
			b.Threshold, b.Metric, sym, b.BonusAmount, sym, b.PotentialTotal)
	}
	if b := result.Retainer; b != nil {
		fmt.Fprintf(w, "Term: %s (%.0f%% volume discount)\n", b.Term, b.VolumeDiscount*100)
		for _, r := range b.Rates {
			fmt.Fprintf(w, "  %s: %s%s × %d/month\n", r.Format, sym, r.Rate, r.PerMonth)
		}
		fmt.Fprintf(w, "Monthly rate: %s%s\n", sym, b.MonthlyRate)
		fmt.Fprintf(w, "Total contract value: %s%s\n", sym, b.TotalContractValue)
	}
}

// Package cmd - tables command
package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"creator-rates/core/rates"
)

// tablesCmd prints the static rate card
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the rate card tables",
	Run: func(cmd *cobra.Command, args []string) {
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

		fmt.Fprintln(tw, "TIER\tMIN FOLLOWERS\tBASE RATE")
		for _, row := range rates.TierTable() {
			fmt.Fprintf(tw, "%s\t%d\t%d\n", row.Tier, row.MinFollowers, row.BaseRate)
		}

		fmt.Fprintln(tw, "\nNICHE\tPREMIUM")
		printMultipliers(tw, rates.NicheTable())

		fmt.Fprintln(tw, "\nPLATFORM\tMULTIPLIER")
		printMultipliers(tw, rates.PlatformTable())

		fmt.Fprintln(tw, "\nREGION\tMULTIPLIER")
		printMultipliers(tw, rates.RegionTable())

		fmt.Fprintln(tw, "\nSEASON\tWINDOW\tPREMIUM")
		for _, s := range rates.SeasonTable() {
			fmt.Fprintf(tw, "%s\t%s\t%+.0f%%\n", s.DisplayName, s.Window, s.Premium*100)
		}

		fmt.Fprintln(tw, "\nWHITELISTING\tPREMIUM")
		printMultipliers(tw, rates.WhitelistingTable())

		fmt.Fprintln(tw, "\nAFFILIATE CATEGORY\tTYPICAL COMMISSION")
		categories := rates.AffiliateCategoryTable()
		for _, name := range sortedKeys(categories) {
			r := categories[name]
			fmt.Fprintf(tw, "%s\t%.4g%%-%.4g%%\n", name, r.Min, r.Max)
		}

		tw.Flush()
	},
}

func printMultipliers(tw *tabwriter.Writer, table map[string]float64) {
	for _, key := range sortedKeys(table) {
		fmt.Fprintf(tw, "%s\t%.4g\n", key, table[key])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ilexagri/website/internal/analysis"
)

var analysisCmd = &cobra.Command{
	Use:   "analysis <range-slug> <product-slug>",
	Short: "Print the nutrient chart entries for a product",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		p, err := cat.Product(args[0], args[1])
		if err != nil {
			return err
		}
		entries := p.Chart()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NUTRIENT\tVALUE\tCOLOR\tLABEL")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.DisplayLabel, analysis.FormatPercent(e.Value), e.Color(), e.FullLabel)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if skipped := len(p.Analysis) - len(entries); skipped > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%d nutrient(s) not charted\n", skipped)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analysisCmd)
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List product ranges and products with their URLs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, c := range cat.Categories() {
			fmt.Fprintf(w, "%s\t%s\n", c.Name, c.URL())
			products, err := cat.Products(c.Slug)
			if err != nil {
				return err
			}
			for _, p := range products {
				fmt.Fprintf(w, "  %s\t%s\n", p.Name, p.URL())
			}
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

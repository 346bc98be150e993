package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ilexagri/website/internal/common"
)

var slugCmd = &cobra.Command{
	Use:   "slug <text>...",
	Short: "Print the URL slug for a product or range name",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), common.Slug(strings.Join(args, " ")))
	},
}

func init() {
	rootCmd.AddCommand(slugCmd)
}

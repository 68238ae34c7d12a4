// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-engine/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the supported query types and output formats",
	Long: `Catalog lists the EDR query types and output formats a configuration
may reference. A configuration naming anything outside these lists is
rejected at load time.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(os.Stdout, "Query types:")
		for _, name := range catalog.QueryTypeNames() {
			entry, _ := catalog.QueryType(name)
			fmt.Fprintf(os.Stdout, "  %-12s %s\n", name, entry.Statement)
		}
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, "Output formats:")
		for _, name := range catalog.FormatNames() {
			fmt.Fprintf(os.Stdout, "  %s\n", name)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
